package models

import "time"

// OrderStatus represents where an order sits in its workflow
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusDelivering OrderStatus = "DELIVERING"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCanceled   OrderStatus = "CANCELED"
)

// orderTransitions is the allowed forward edge per state. Cancellation is a
// side exit from every non-terminal state; COMPLETED and CANCELED are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCanceled},
	OrderStatusProcessing: {OrderStatusDelivering, OrderStatusCanceled},
	OrderStatusDelivering: {OrderStatusCompleted, OrderStatusCanceled},
	OrderStatusCompleted:  {},
	OrderStatusCanceled:   {},
}

// CanTransitionTo reports whether the workflow permits moving to target.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is expected from s.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// Valid reports whether s is one of the known workflow states.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Order represents a transaction placed by a client
type Order struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	ClientID  uint            `json:"clientId" gorm:"not null;index"`
	Client    User            `json:"client" gorm:"foreignKey:ClientID"`
	Status    OrderStatus     `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	Items     []OrderLineItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// OrderLineItem is one product-and-quantity entry owned by exactly one order
type OrderLineItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"orderId" gorm:"not null;index"`
	ProductID uint    `json:"productId" gorm:"not null;index"`
	Product   Product `json:"product" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity" gorm:"not null"`
}
