package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"shamba/internal/delivery/http/response"
	"shamba/internal/domain/entity"
	domainerrors "shamba/internal/domain/errors"
	"shamba/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// WeatherHandlerParams holds dependencies for WeatherHandler, injected by Fx.
type WeatherHandlerParams struct {
	fx.In

	Backend service.Backend
	Logger  *slog.Logger
}

// WeatherHandler holds dependencies for weather handlers.
type WeatherHandler struct {
	backend service.Backend
	logger  *slog.Logger
}

// NewWeatherHandler is the constructor for WeatherHandler.
func NewWeatherHandler(params WeatherHandlerParams) *WeatherHandler {
	return &WeatherHandler{
		backend: params.Backend,
		logger:  params.Logger,
	}
}

// GetWeather returns conditions, forecast, alerts and farming tips for the
// given location. All query parameters are optional.
func (h *WeatherHandler) GetWeather(c echo.Context) error {
	location := entity.Location{Address: c.QueryParam("address")}

	if lat := c.QueryParam("lat"); lat != "" {
		value, err := strconv.ParseFloat(lat, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid lat parameter")
		}
		location.Latitude = value
	}
	if lon := c.QueryParam("lon"); lon != "" {
		value, err := strconv.ParseFloat(lon, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid lon parameter")
		}
		location.Longitude = value
	}

	resp := h.backend.GetWeather(c.Request().Context(), location)
	if !resp.Success {
		return errors.WithStack(domainerrors.ErrBackendFailure.WrapMessage(resp.Error))
	}

	return response.Success(c, http.StatusOK, resp.Data, "")
}
