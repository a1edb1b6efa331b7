// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"shamba/internal/delivery/http/response"
	"shamba/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthHandler holds dependencies for session-related handlers.
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUpRequest represents the request body for registering an account.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone,omitempty"`
}

// ResetPasswordRequest represents the request body for a password reset.
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateProfileRequest represents the request body for a partial profile
// update. Absent fields are left untouched.
type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// sessionBody is the response payload for authenticated session endpoints.
type sessionBody struct {
	User  any    `json:"user"`
	Token string `json:"token"`
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.sessionUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionBody{User: output.User, Token: h.sessionUC.Token()}, "Login successful")
}

// SignUp handles the registration request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.sessionUC.SignUp(c.Request().Context(), usecase.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, sessionBody{User: output.User, Token: h.sessionUC.Token()}, "Account created successfully")
}

// SignInWithGoogle handles the Google sign-in request.
func (h *AuthHandler) SignInWithGoogle(c echo.Context) error {
	output, err := h.sessionUC.SignInWithGoogle(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionBody{User: output.User, Token: h.sessionUC.Token()}, "Login successful")
}

// Logout handles the logout request. It always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessionUC.Logout(c.Request().Context())

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// ResetPassword handles the password reset request.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.sessionUC.ResetPassword(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, message)
}

// GetProfile returns the authenticated user.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	user := h.sessionUC.CurrentUser()
	if user == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "No active session")
	}

	return response.Success(c, http.StatusOK, user, "")
}

// UpdateProfile applies a partial update to the authenticated user.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	err := h.sessionUC.UpdateUser(c.Request().Context(), usecase.UpdateUserInput{
		Name:      req.Name,
		Phone:     req.Phone,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.sessionUC.CurrentUser(), "Profile updated successfully")
}
