package repositories

import (
	"gorm.io/gorm"

	"github.com/shopcore-api/models"
)

// ProductRepository handles database operations for products
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindByID retrieves a product by primary key
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	result := r.db.First(&product, "id = ?", id)
	return product, result.Error
}

// FindAvailable retrieves one page of products with availability set,
// in store-default order
func (r *ProductRepository) FindAvailable(offset, limit int) ([]models.Product, error) {
	var products []models.Product
	result := r.db.Where("availability = ?", true).Offset(offset).Limit(limit).Find(&products)
	return products, result.Error
}

// Create inserts a new product into the database
func (r *ProductRepository) Create(product models.Product) (models.Product, error) {
	result := r.db.Create(&product)
	return product, result.Error
}

// Save persists all fields of an existing product
func (r *ProductRepository) Save(product models.Product) (models.Product, error) {
	result := r.db.Save(&product)
	return product, result.Error
}
