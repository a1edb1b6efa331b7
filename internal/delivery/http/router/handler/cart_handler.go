package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"shamba/internal/delivery/http/response"
	domainerrors "shamba/internal/domain/errors"
	"shamba/internal/domain/service"
	"shamba/internal/usecase"
	"shamba/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC  usecase.CartUsecase
	Backend service.Backend
	Logger  *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	cartUC  usecase.CartUsecase
	backend service.Backend
	logger  *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC:  params.CartUC,
		backend: params.Backend,
		logger:  params.Logger,
	}
}

// AddItemRequest represents the request body for adding a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required"`
}

// UpdateQuantityRequest represents the request body for changing a line quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest represents the request body for placing an order.
type CheckoutRequest struct {
	DeliveryAddress string `json:"delivery_address" validate:"required"`
	PaymentMethod   string `json:"payment_method" validate:"required"`
}

// cartBody is the response payload for cart endpoints.
type cartBody struct {
	Items          any     `json:"items"`
	ItemCount      int     `json:"item_count"`
	TotalAmount    float64 `json:"total_amount"`
	FormattedTotal string  `json:"formatted_total"`
}

func (h *CartHandler) body() cartBody {
	total := h.cartUC.TotalAmount()

	return cartBody{
		Items:          h.cartUC.Items(),
		ItemCount:      h.cartUC.ItemCount(),
		TotalAmount:    total,
		FormattedTotal: util.FormatCurrency(total, "KES"),
	}
}

// GetCart returns the cart contents.
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.body(), "")
}

// AddItem resolves the product and puts it in the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp := h.backend.GetProductsByIDs(c.Request().Context(), []string{req.ProductID})
	if !resp.Success {
		return errors.WithStack(domainerrors.ErrBackendFailure.WrapMessage(resp.Error))
	}
	if len(resp.Data) == 0 {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "Unknown product: "+req.ProductID)
	}

	if err := h.cartUC.AddItem(resp.Data[0], req.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.body(), "Added to cart")
}

// UpdateQuantity sets the quantity for a cart line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	h.cartUC.UpdateQuantity(c.Param("id"), req.Quantity)

	return response.Success(c, http.StatusOK, h.body(), "Cart updated")
}

// RemoveItem drops a cart line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	h.cartUC.RemoveItem(c.Param("id"))

	return response.Success(c, http.StatusOK, h.body(), "Removed from cart")
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	h.cartUC.Clear()

	return response.Success(c, http.StatusOK, h.body(), "Cart cleared")
}

// Checkout places an order with the cart contents.
func (h *CartHandler) Checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.cartUC.Checkout(c.Request().Context(), usecase.CheckoutInput{
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	body := map[string]any{"order": output.Order}
	if len(output.PaymentQR) > 0 {
		body["payment_qr"] = base64.StdEncoding.EncodeToString(output.PaymentQR)
	}

	return response.Success(c, http.StatusCreated, body, "Order placed successfully")
}
