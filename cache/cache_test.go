package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A nil cache stands in when redis is not configured; every operation is a
// silent no-op and reads always miss.
func TestNilCacheIsNoOp(t *testing.T) {
	t.Parallel()

	var c *Cache
	ctx := context.Background()

	var dest []string
	found, err := c.Get(ctx, "key", &dest)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "key", []string{"a"}, time.Minute))
	require.NoError(t, c.Delete(ctx, "key"))
}
