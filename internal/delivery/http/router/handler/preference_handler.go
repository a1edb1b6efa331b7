package handler

import (
	"log/slog"
	"net/http"

	"shamba/internal/delivery/http/response"
	"shamba/internal/domain/entity"
	"shamba/internal/i18n"
	"shamba/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PreferenceHandlerParams holds dependencies for PreferenceHandler, injected by Fx.
type PreferenceHandlerParams struct {
	fx.In

	PreferenceUC usecase.PreferenceUsecase
	Logger       *slog.Logger
}

// PreferenceHandler holds dependencies for preference-related handlers.
type PreferenceHandler struct {
	preferenceUC usecase.PreferenceUsecase
	logger       *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler.
func NewPreferenceHandler(params PreferenceHandlerParams) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUC: params.PreferenceUC,
		logger:       params.Logger,
	}
}

// SetLanguageRequest represents the request body for switching languages.
type SetLanguageRequest struct {
	Language string `json:"language" validate:"required"`
}

// preferencesBody is the response payload for the preferences endpoints.
type preferencesBody struct {
	Language string `json:"language"`
	DarkMode bool   `json:"dark_mode"`
}

func (h *PreferenceHandler) body() preferencesBody {
	return preferencesBody{
		Language: h.preferenceUC.Language().String(),
		DarkMode: h.preferenceUC.IsDarkMode(),
	}
}

// GetPreferences returns the active preferences.
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.body(), "")
}

// SetLanguage switches the app language.
func (h *PreferenceHandler) SetLanguage(c echo.Context) error {
	var req SetLanguageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid language input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.preferenceUC.SetLanguage(c.Request().Context(), entity.Language(req.Language)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.body(), "Language updated")
}

// ToggleTheme flips between light and dark mode.
func (h *PreferenceHandler) ToggleTheme(c echo.Context) error {
	h.preferenceUC.ToggleDarkMode(c.Request().Context())

	return response.Success(c, http.StatusOK, h.body(), "Theme updated")
}

// GetStrings returns the UI string table. The lang query parameter overrides
// the active language.
func (h *PreferenceHandler) GetStrings(c echo.Context) error {
	lang := h.preferenceUC.Language()
	if param := c.QueryParam("lang"); param != "" {
		requested := entity.Language(param)
		if !requested.IsValid() {
			return response.BadRequest(c, "UNSUPPORTED_LANGUAGE", "Unsupported language: "+param)
		}
		lang = requested
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"language": lang.String(),
		"strings":  i18n.Strings(lang),
	}, "")
}
