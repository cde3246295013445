package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shopcore-api/database"
	"github.com/shopcore-api/models"
)

// newTestDB opens a named in-memory sqlite database so every connection in
// the pool sees the same data, migrated to the current schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, password string, status models.UserStatus) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Email:    email,
		Name:     "Test User",
		Role:     "customer",
		Status:   status,
		Password: string(hashed),
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int, available bool) models.Product {
	t.Helper()

	product := models.Product{
		Name:         name,
		Description:  "seeded",
		Price:        price,
		Stock:        stock,
		Availability: available,
		Status:       true,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}
