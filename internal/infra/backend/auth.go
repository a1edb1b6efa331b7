package backend

import (
	"context"
	"log/slog"
	"strings"

	"shamba/internal/domain/entity"
	"shamba/internal/domain/service"

	"github.com/google/uuid"
)

// Login authenticates an email/password pair. Known accounts get a real
// password check; unknown emails receive a fabricated demo user so the app is
// usable without a prior sign-up, as the original demo service behaved.
func (a *Adapter) Login(ctx context.Context, creds service.Credentials) service.Response[service.AuthPayload] {
	if err := a.delay(ctx, a.authLatency); err != nil {
		return service.Fail[service.AuthPayload](service.ReasonCancelled)
	}

	email := normalizeEmail(creds.Email)
	if email == "" || creds.Password == "" {
		return service.Fail[service.AuthPayload]("Email and password are required.")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	acc, known := a.accounts[email]
	if known {
		if !checkPassword(acc.passwordHash, creds.Password) {
			a.logger.Debug("Login rejected", slog.String("email", email))

			return service.Fail[service.AuthPayload]("Login failed. Please check your credentials.")
		}
	} else {
		acc = a.registerAccount(entity.User{
			ID:        uuid.NewString(),
			Email:     email,
			Name:      "John Farmer",
			Language:  entity.LanguageEnglish,
			CreatedAt: a.clock(),
		}, hashPassword(creds.Password))
	}

	token, err := a.signer.Mint(acc.user.ID, acc.user.Email)
	if err != nil {
		return service.Fail[service.AuthPayload]("Login failed. Please try again.")
	}

	return service.Ok(service.AuthPayload{User: acc.user, Token: token}, "Login successful")
}

// SignUp registers a new account. It fails when the email is already taken.
func (a *Adapter) SignUp(ctx context.Context, creds service.SignUpCredentials) service.Response[service.AuthPayload] {
	if err := a.delay(ctx, a.authLatency); err != nil {
		return service.Fail[service.AuthPayload](service.ReasonCancelled)
	}

	email := normalizeEmail(creds.Email)
	if email == "" || creds.Password == "" || strings.TrimSpace(creds.Name) == "" {
		return service.Fail[service.AuthPayload]("Name, email and password are required.")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.accounts[email]; exists {
		return service.Fail[service.AuthPayload](service.ReasonAccountExists)
	}

	acc := a.registerAccount(entity.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      creds.Name,
		Phone:     creds.Phone,
		Language:  entity.LanguageEnglish,
		CreatedAt: a.clock(),
	}, hashPassword(creds.Password))

	token, err := a.signer.Mint(acc.user.ID, acc.user.Email)
	if err != nil {
		return service.Fail[service.AuthPayload]("Sign up failed. Please try again.")
	}

	return service.Ok(service.AuthPayload{User: acc.user, Token: token}, "Account created successfully")
}

// SignInWithGoogle simulates the federated sign-in path with a fixed Google
// identity. The resulting account has no password; it can only be reached
// through this path.
func (a *Adapter) SignInWithGoogle(ctx context.Context) service.Response[service.AuthPayload] {
	if err := a.delay(ctx, a.authLatency); err != nil {
		return service.Fail[service.AuthPayload](service.ReasonCancelled)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	const googleEmail = "user@gmail.com"
	acc, known := a.accounts[googleEmail]
	if !known {
		acc = a.registerAccount(entity.User{
			ID:        uuid.NewString(),
			Email:     googleEmail,
			Name:      "Google User",
			Language:  entity.LanguageEnglish,
			CreatedAt: a.clock(),
		}, nil)
	}

	token, err := a.signer.Mint(acc.user.ID, acc.user.Email)
	if err != nil {
		return service.Fail[service.AuthPayload]("Google sign-in failed.")
	}

	return service.Ok(service.AuthPayload{User: acc.user, Token: token}, "Google sign-in successful")
}

// ResetPassword pretends to send a reset link. Message-only success.
func (a *Adapter) ResetPassword(ctx context.Context, email string) service.Response[struct{}] {
	if err := a.delay(ctx, a.authLatency); err != nil {
		return service.Fail[struct{}](service.ReasonCancelled)
	}

	if normalizeEmail(email) == "" {
		return service.Fail[struct{}]("Email is required.")
	}

	return service.Ok(struct{}{}, "Password reset link sent to your email")
}

// UpdateProfile merges a partial update into the stored account and returns
// the updated user.
func (a *Adapter) UpdateProfile(ctx context.Context, userID string, update entity.UserUpdate) service.Response[entity.User] {
	if err := a.delay(ctx, a.fetchLatency); err != nil {
		return service.Fail[entity.User](service.ReasonCancelled)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	acc, ok := a.byID[userID]
	if !ok {
		return service.Fail[entity.User]("User not found")
	}

	acc.user = update.Apply(acc.user)

	return service.Ok(acc.user, "Profile updated successfully")
}
