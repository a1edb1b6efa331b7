package handler

import (
	"log/slog"
	"net/http"

	"shamba/internal/delivery/http/middleware"
	"shamba/internal/delivery/http/response"
	"shamba/internal/domain/entity"
	domainerrors "shamba/internal/domain/errors"
	"shamba/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	Backend service.Backend
	Logger  *slog.Logger
}

// CatalogHandler holds dependencies for product and order handlers.
type CatalogHandler struct {
	backend service.Backend
	logger  *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		backend: params.Backend,
		logger:  params.Logger,
	}
}

// GetProducts returns the catalog, optionally filtered by category.
func (h *CatalogHandler) GetProducts(c echo.Context) error {
	category := entity.Category(c.QueryParam("category"))

	resp := h.backend.GetProducts(c.Request().Context(), category)
	if !resp.Success {
		return errors.WithStack(domainerrors.ErrBackendFailure.WrapMessage(resp.Error))
	}

	return response.Success(c, http.StatusOK, resp.Data, "")
}

// GetCategories returns the known product categories.
func (h *CatalogHandler) GetCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.Categories(), "")
}

// GetOrders returns the authenticated user's order history.
func (h *CatalogHandler) GetOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	resp := h.backend.GetOrders(c.Request().Context(), userID)
	if !resp.Success {
		return errors.WithStack(domainerrors.ErrBackendFailure.WrapMessage(resp.Error))
	}

	return response.Success(c, http.StatusOK, resp.Data, "")
}
