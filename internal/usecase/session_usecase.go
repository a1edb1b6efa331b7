// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"shamba/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// UpdateUserInput carries a partial profile update. Nil fields are left
// untouched.
type UpdateUserInput struct {
	Name      *string
	Phone     *string
	AvatarURL *string
}

// --- Output DTOs ---

// SessionOutput returns the authenticated user after a successful
// login or registration.
type SessionOutput struct {
	User *entity.User
}

// SessionUsecase holds the authenticated session. It owns the current user,
// the session token, and their persisted copies in the preference store.
//
// The token and the user record are always written and cleared together.
// A store holding only one of the two is treated as corrupted and wiped
// during Restore.
type SessionUsecase interface {
	// Restore rebuilds the session from the preference store. It runs its
	// work at most once; later calls return the first outcome.
	Restore(ctx context.Context) error

	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)
	SignUp(ctx context.Context, input SignUpInput) (*SessionOutput, error)
	SignInWithGoogle(ctx context.Context) (*SessionOutput, error)

	// Logout clears the session. It reports nothing: once the in-memory
	// state is gone the user is logged out, whatever the store says.
	Logout(ctx context.Context)

	// UpdateUser applies a partial profile update through the backend. When
	// no user is authenticated it returns nil without calling the backend.
	UpdateUser(ctx context.Context, input UpdateUserInput) error

	// ResetPassword requests a password reset mail for the address.
	ResetPassword(ctx context.Context, email string) (string, error)

	// CurrentUser returns a copy of the authenticated user, or nil.
	CurrentUser() *entity.User

	// Token returns the session token, or "" when unauthenticated.
	Token() string

	IsAuthenticated() bool
	IsLoading() bool
}
