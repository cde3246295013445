package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcore-api/dto"
	"github.com/shopcore-api/models"
	"github.com/shopcore-api/services"
)

// OrderController maps the /orders routes onto the order service
type OrderController struct {
	service *services.OrderService
}

// NewOrderController creates an order controller
func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// Get returns an order with its client and resolved line items
func (ctl *OrderController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := ctl.service.GetOrderByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetByClient returns every order placed by a client
func (ctl *OrderController) GetByClient(c *gin.Context) {
	clientID, ok := pathID(c, "id")
	if !ok {
		return
	}

	orders, err := ctl.service.GetOrdersByClientID(clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Create places a new order
func (ctl *OrderController) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	order, err := ctl.service.CreateOrder(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// Process moves an order into PROCESSING
func (ctl *OrderController) Process(c *gin.Context) {
	ctl.changeStatus(c, models.OrderStatusProcessing)
}

// Deliver moves an order into DELIVERING
func (ctl *OrderController) Deliver(c *gin.Context) {
	ctl.changeStatus(c, models.OrderStatusDelivering)
}

// Complete moves an order into COMPLETED
func (ctl *OrderController) Complete(c *gin.Context) {
	ctl.changeStatus(c, models.OrderStatusCompleted)
}

// Cancel moves an order into CANCELED
func (ctl *OrderController) Cancel(c *gin.Context) {
	ctl.changeStatus(c, models.OrderStatusCanceled)
}

func (ctl *OrderController) changeStatus(c *gin.Context, status models.OrderStatus) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := ctl.service.UpdateOrderStatus(id, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
