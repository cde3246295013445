package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shopcore-api/models"
	"github.com/shopcore-api/utils"
)

// OrderRepository handles database operations for orders and their line items
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository instance
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// FindByID retrieves an order with its client and line items, each line item
// resolved to its product
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	result := r.db.Preload("Client").Preload("Items.Product").First(&order, "id = ?", id)
	return order, result.Error
}

// FindByClientID retrieves all orders placed by a client, same eager shape
// as FindByID
func (r *OrderRepository) FindByClientID(clientID uint) ([]models.Order, error) {
	var orders []models.Order
	result := r.db.Preload("Client").Preload("Items.Product").
		Where("client_id = ?", clientID).Find(&orders)
	return orders, result.Error
}

// CreateWithItems inserts the order and all of its line items in one
// transaction. Every referenced product is checked inside the transaction;
// if any is missing the whole operation rolls back and nothing persists.
func (r *OrderRepository) CreateWithItems(order models.Order) (models.Order, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			var product models.Product
			if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &utils.NotFoundError{Resource: "product", ID: item.ProductID}
				}
				return err
			}
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return r.FindByID(order.ID)
}

// UpdateStatus sets the status column and returns the reloaded order
func (r *OrderRepository) UpdateStatus(id uint, status models.OrderStatus) (models.Order, error) {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return models.Order{}, result.Error
	}
	return r.FindByID(id)
}
