package usecase

import (
	"context"

	"shamba/internal/domain/entity"
)

// --- Input DTOs ---

// CheckoutInput defines the data required to place an order from the cart.
type CheckoutInput struct {
	DeliveryAddress string
	PaymentMethod   string
}

// --- Output DTOs ---

// CheckoutOutput returns the placed order and a scannable payment code.
type CheckoutOutput struct {
	Order     *entity.Order
	PaymentQR []byte
}

// CartUsecase holds the in-memory shopping cart. The cart is session
// scoped: it starts empty on every process start and is never persisted.
type CartUsecase interface {
	// AddItem puts quantity units of the product into the cart. Adding a
	// product already present merges into the existing line.
	AddItem(product entity.Product, quantity int) error

	// UpdateQuantity sets the line quantity for a product. A quantity of
	// zero or less removes the line.
	UpdateQuantity(productID string, quantity int)

	// RemoveItem drops the product's line. Unknown ids are ignored.
	RemoveItem(productID string)

	// Clear empties the cart.
	Clear()

	// Checkout places an order with the current cart contents and clears
	// the cart on success.
	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutOutput, error)

	// Items returns a snapshot of the cart lines.
	Items() []entity.CartItem

	// ItemCount returns the sum of line quantities.
	ItemCount() int

	// TotalAmount returns the sum of line subtotals.
	TotalAmount() float64
}
