// Package entity contains the core business objects of the project.
package entity

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending indicates an order awaiting confirmation.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusProcessing indicates an order being prepared.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipped indicates an order in transit.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered indicates a completed order.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled indicates a cancelled order.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is created by checkout from a snapshot of the cart. It is immutable
// afterwards except for status transitions driven by the backend.
type Order struct {
	ID              string
	UserID          string
	Items           []CartItem // Snapshot of the cart lines at checkout time.
	TotalAmount     float64
	Status          OrderStatus
	CreatedAt       time.Time
	DeliveryAddress string
	PaymentMethod   string
}
