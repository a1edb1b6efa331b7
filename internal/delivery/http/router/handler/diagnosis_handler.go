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

// DiagnosisHandlerParams holds dependencies for DiagnosisHandler, injected by Fx.
type DiagnosisHandlerParams struct {
	fx.In

	Backend service.Backend
	Logger  *slog.Logger
}

// DiagnosisHandler holds dependencies for crop diagnosis handlers.
type DiagnosisHandler struct {
	backend service.Backend
	logger  *slog.Logger
}

// NewDiagnosisHandler is the constructor for DiagnosisHandler.
func NewDiagnosisHandler(params DiagnosisHandlerParams) *DiagnosisHandler {
	return &DiagnosisHandler{
		backend: params.Backend,
		logger:  params.Logger,
	}
}

// DiagnoseRequest represents the request body for a crop diagnosis.
type DiagnoseRequest struct {
	ImageURI string  `json:"image_uri" validate:"required"`
	Lat      float64 `json:"lat,omitempty"`
	Lon      float64 `json:"lon,omitempty"`
	Address  string  `json:"address,omitempty"`
}

// Diagnose analyzes a crop image and returns the result.
func (h *DiagnosisHandler) Diagnose(c echo.Context) error {
	var req DiagnoseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid diagnosis input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var location *entity.Location
	if req.Lat != 0 || req.Lon != 0 || req.Address != "" {
		location = &entity.Location{Latitude: req.Lat, Longitude: req.Lon, Address: req.Address}
	}

	resp := h.backend.Diagnose(c.Request().Context(), entity.DiagnosisRequest{
		ImageURI: req.ImageURI,
		Location: location,
	})
	if !resp.Success {
		return errors.WithStack(domainerrors.ErrBackendFailure.WrapMessage(resp.Error))
	}

	return response.Success(c, http.StatusOK, resp.Data, "Diagnosis completed")
}

// GetHistory returns the authenticated user's past diagnoses.
func (h *DiagnosisHandler) GetHistory(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	resp := h.backend.GetDiagnosisHistory(c.Request().Context(), userID)
	if !resp.Success {
		return errors.WithStack(domainerrors.ErrBackendFailure.WrapMessage(resp.Error))
	}

	return response.Success(c, http.StatusOK, resp.Data, "")
}
