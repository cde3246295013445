package dto

// OrderLineInput is one product-and-quantity entry of a new order
type OrderLineInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// CreateOrderRequest represents a new order for a client
type CreateOrderRequest struct {
	Client   uint             `json:"client" binding:"required"`
	Products []OrderLineInput `json:"products" binding:"required,min=1,dive"`
}
