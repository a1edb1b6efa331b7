// Package service defines interfaces for external collaborators consumed by
// the application layer (the backend adapter, QR generation).
package service

import (
	"context"

	"shamba/internal/domain/entity"
)

// Response is the uniform envelope returned by every backend operation.
// Success=false is the sole failure signal crossing this boundary: the
// adapter converts every internal error into an envelope instead of
// returning a Go error.
type Response[T any] struct {
	Success bool
	Data    T
	Error   string // Failure reason, set only when Success is false.
	Message string // Optional human-readable note on success.
}

// Ok builds a successful envelope.
func Ok[T any](data T, message string) Response[T] {
	return Response[T]{Success: true, Data: data, Message: message}
}

// Fail builds a failed envelope.
func Fail[T any](reason string) Response[T] {
	return Response[T]{Success: false, Error: reason}
}

// Failure reasons the backend emits verbatim. Callers branch on these
// instead of parsing free-form envelope text.
const (
	// ReasonCancelled marks a request aborted by the caller's context.
	ReasonCancelled = "request cancelled"

	// ReasonAccountExists marks a sign-up against an already registered email.
	ReasonAccountExists = "An account with this email already exists."
)

// Credentials is the email/password pair for login.
type Credentials struct {
	Email    string
	Password string
}

// SignUpCredentials extends Credentials with the profile fields collected at
// registration. Phone is optional.
type SignUpCredentials struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// AuthPayload pairs a user record with the session token issued for it.
type AuthPayload struct {
	User  entity.User
	Token string
}

// Backend is the remote API stand-in. Every method simulates network latency
// and returns fixtures; none of them return a Go error, per the envelope
// contract above. Cancelled contexts surface as failed envelopes.
type Backend interface {
	Login(ctx context.Context, creds Credentials) Response[AuthPayload]
	SignUp(ctx context.Context, creds SignUpCredentials) Response[AuthPayload]
	SignInWithGoogle(ctx context.Context) Response[AuthPayload]
	ResetPassword(ctx context.Context, email string) Response[struct{}]
	UpdateProfile(ctx context.Context, userID string, update entity.UserUpdate) Response[entity.User]

	GetProducts(ctx context.Context, category entity.Category) Response[[]entity.Product]
	GetProductsByIDs(ctx context.Context, ids []string) Response[[]entity.Product]
	CreateOrder(ctx context.Context, userID string, items []entity.CartItem, deliveryAddress, paymentMethod string) Response[entity.Order]
	GetOrders(ctx context.Context, userID string) Response[[]entity.Order]

	GetWeather(ctx context.Context, location entity.Location) Response[entity.WeatherData]

	Diagnose(ctx context.Context, req entity.DiagnosisRequest) Response[entity.DiagnosisResult]
	GetDiagnosisHistory(ctx context.Context, userID string) Response[[]entity.DiagnosisResult]
}

// TokenVerifier checks a session token and returns the user ID it was issued
// for. The HTTP delivery uses it to guard authenticated routes.
type TokenVerifier interface {
	VerifyToken(token string) (userID string, err error)
}
