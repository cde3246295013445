package dto

// CreateProductRequest represents a new catalog entry. Stock defaults to 0
// when omitted.
type CreateProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required"`
	Stock        *int    `json:"stock"`
	Availability *bool   `json:"availability" binding:"required"`
}

// UpdateProductRequest carries a partial patch; fields are validated only
// when present
type UpdateProductRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Stock        *int     `json:"stock"`
	Availability *bool    `json:"availability"`
}
