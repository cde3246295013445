package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shopcore-api/dto"
	"github.com/shopcore-api/models"
	"github.com/shopcore-api/repositories"
	"github.com/shopcore-api/utils"
)

// OrderService handles order creation, lookup and the status workflow.
type OrderService struct {
	orders *repositories.OrderRepository
	users  *repositories.UserRepository
}

// NewOrderService creates an order service with its repositories injected.
func NewOrderService(orders *repositories.OrderRepository, users *repositories.UserRepository) *OrderService {
	return &OrderService{orders: orders, users: users}
}

// CreateOrder creates a PENDING order for a client with one line item per
// input entry. The order and all line items are persisted atomically: if
// the client or any referenced product does not exist, nothing is written.
func (s *OrderService) CreateOrder(req dto.CreateOrderRequest) (models.Order, error) {
	for _, line := range req.Products {
		if line.Quantity <= 0 {
			return models.Order{}, &utils.ValidationError{Field: "quantity", Message: "must be a positive integer"}
		}
	}

	if _, err := s.users.FindByID(req.Client); errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, &utils.NotFoundError{Resource: "user", ID: req.Client}
	} else if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		ClientID: req.Client,
		Status:   models.OrderStatusPending,
	}
	for _, line := range req.Products {
		order.Items = append(order.Items, models.OrderLineItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	order, err := s.orders.CreateWithItems(order)
	if err != nil {
		return models.Order{}, err
	}

	logrus.WithFields(logrus.Fields{"orderId": order.ID, "clientId": order.ClientID}).Info("order created")
	return order, nil
}

// GetOrderByID retrieves an order with its client and line items, each line
// item resolved to its product.
func (s *OrderService) GetOrderByID(id uint) (models.Order, error) {
	order, err := s.orders.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, &utils.NotFoundError{Resource: "order", ID: id}
	} else if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// GetOrdersByClientID retrieves all orders placed by a client. A client with
// no orders yields an empty slice, not an error.
func (s *OrderService) GetOrdersByClientID(clientID uint) ([]models.Order, error) {
	return s.orders.FindByClientID(clientID)
}

// UpdateOrderStatus moves an order to the target status. The workflow only
// permits forward progress (PENDING -> PROCESSING -> DELIVERING -> COMPLETED)
// or cancellation from a non-terminal state; anything else is rejected
// before the store is touched.
func (s *OrderService) UpdateOrderStatus(id uint, target models.OrderStatus) (models.Order, error) {
	if !target.Valid() {
		return models.Order{}, &utils.ValidationError{Field: "status", Message: "unknown order status"}
	}

	order, err := s.orders.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, &utils.NotFoundError{Resource: "order", ID: id}
	} else if err != nil {
		return models.Order{}, err
	}

	if !order.Status.CanTransitionTo(target) {
		return models.Order{}, &utils.InvalidTransitionError{From: string(order.Status), To: string(target)}
	}

	order, err = s.orders.UpdateStatus(id, target)
	if err != nil {
		return models.Order{}, err
	}

	logrus.WithFields(logrus.Fields{"orderId": id, "status": target}).Info("order status changed")
	return order, nil
}

// ProcessOrder moves an order into PROCESSING.
func (s *OrderService) ProcessOrder(id uint) (models.Order, error) {
	return s.UpdateOrderStatus(id, models.OrderStatusProcessing)
}

// DeliverOrder moves an order into DELIVERING.
func (s *OrderService) DeliverOrder(id uint) (models.Order, error) {
	return s.UpdateOrderStatus(id, models.OrderStatusDelivering)
}

// CompleteOrder moves an order into COMPLETED.
func (s *OrderService) CompleteOrder(id uint) (models.Order, error) {
	return s.UpdateOrderStatus(id, models.OrderStatusCompleted)
}

// CancelOrder moves an order into CANCELED.
func (s *OrderService) CancelOrder(id uint) (models.Order, error) {
	return s.UpdateOrderStatus(id, models.OrderStatusCanceled)
}
