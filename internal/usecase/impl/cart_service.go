package impl

import (
	"context"
	"log/slog"
	"sync"

	"shamba/internal/domain/entity"
	domainerrors "shamba/internal/domain/errors"
	"shamba/internal/domain/service"
	"shamba/internal/usecase"

	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
//
// The cart is process-local state. It is never persisted, so a restart or a
// logout-login cycle within one process keeps whatever was in it.
type cartService struct {
	backend service.Backend
	session usecase.SessionUsecase
	qrcode  service.QRCodeService
	logger  *slog.Logger

	mu    sync.RWMutex
	items []entity.CartItem
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Backend service.Backend
	Session usecase.SessionUsecase
	QRCode  service.QRCodeService
	Logger  *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		backend: params.Backend,
		session: params.Session,
		qrcode:  params.QRCode,
		logger:  params.Logger,
	}
}

// AddItem puts quantity units of the product into the cart, merging into an
// existing line when the product is already present.
func (srv *cartService) AddItem(product entity.Product, quantity int) error {
	if quantity <= 0 {
		return domainerrors.ErrInvalidQuantity
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	for i := range srv.items {
		if srv.items[i].Product.ID == product.ID {
			srv.items[i].Quantity += quantity

			return nil
		}
	}

	srv.items = append(srv.items, entity.CartItem{Product: product, Quantity: quantity})

	return nil
}

// UpdateQuantity sets the line quantity for a product. Zero or negative
// removes the line; unknown ids are ignored.
func (srv *cartService) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		srv.RemoveItem(productID)

		return
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	for i := range srv.items {
		if srv.items[i].Product.ID == productID {
			srv.items[i].Quantity = quantity

			return
		}
	}
}

// RemoveItem drops the product's line. Unknown ids are ignored.
func (srv *cartService) RemoveItem(productID string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	for i := range srv.items {
		if srv.items[i].Product.ID == productID {
			srv.items = append(srv.items[:i], srv.items[i+1:]...)

			return
		}
	}
}

// Clear empties the cart.
func (srv *cartService) Clear() {
	srv.mu.Lock()
	srv.items = nil
	srv.mu.Unlock()
}

// Checkout places an order with the current cart contents. The cart is
// cleared only after the backend accepts the order.
func (srv *cartService) Checkout(ctx context.Context, input usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	user := srv.session.CurrentUser()
	if user == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	items := srv.Items()
	if len(items) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	resp := srv.backend.CreateOrder(ctx, user.ID, items, input.DeliveryAddress, input.PaymentMethod)
	if !resp.Success {
		srv.logger.Error("Order rejected", slog.String("userID", user.ID), slog.String("reason", resp.Error))

		return nil, domainerrors.ErrBackendFailure.WrapMessage(resp.Error)
	}

	order := resp.Data

	srv.Clear()

	// The QR is a convenience on top of a placed order; losing it does not
	// undo the checkout.
	paymentQR, err := srv.qrcode.GeneratePaymentQR(order.ID)
	if err != nil {
		srv.logger.Warn("Failed to generate payment QR", slog.String("orderID", order.ID), slog.Any("error", err))
		paymentQR = nil
	}

	srv.logger.Info("Order placed",
		slog.String("orderID", order.ID),
		slog.String("userID", user.ID),
		slog.Float64("total", order.TotalAmount))

	return &usecase.CheckoutOutput{Order: &order, PaymentQR: paymentQR}, nil
}

// Items returns a snapshot of the cart lines.
func (srv *cartService) Items() []entity.CartItem {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	items := make([]entity.CartItem, len(srv.items))
	copy(items, srv.items)

	return items
}

// ItemCount returns the sum of line quantities.
func (srv *cartService) ItemCount() int {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	count := 0
	for _, item := range srv.items {
		count += item.Quantity
	}

	return count
}

// TotalAmount returns the sum of line subtotals.
func (srv *cartService) TotalAmount() float64 {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	total := 0.0
	for _, item := range srv.items {
		total += item.Subtotal()
	}

	return total
}
