// Package entity contains the core business objects of the project.
package entity

// CartItem is a single line in the shopping cart. Quantity is always a
// positive integer; a line whose quantity would drop to zero is removed from
// the cart instead.
type CartItem struct {
	Product  Product
	Quantity int
}

// Subtotal returns price * quantity for this line.
func (i CartItem) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}
