// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"shamba/internal/domain/entity"
	domainerrors "shamba/internal/domain/errors"
	"shamba/internal/domain/repository"
	"shamba/internal/domain/service"
	"shamba/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
//
// The session token and the serialized user record live under separate store
// keys, but they are only meaningful as a pair. Every write path touches both
// keys, and Restore wipes whichever key survives alone.
type sessionService struct {
	backend service.Backend
	store   repository.PreferenceStore
	logger  *slog.Logger

	restoreOnce sync.Once
	restoreErr  error

	mu      sync.RWMutex
	user    *entity.User
	token   string
	loading bool
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Backend service.Backend
	Store   repository.PreferenceStore
	Logger  *slog.Logger
}

// NewSessionService is the constructor for sessionService. It receives all dependencies as interfaces.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		backend: params.Backend,
		store:   params.Store,
		logger:  params.Logger,
		loading: true,
	}
}

// Restore rebuilds the session from the preference store. The work runs at
// most once; the loading flag drops whatever the outcome.
func (srv *sessionService) Restore(ctx context.Context) error {
	srv.restoreOnce.Do(func() {
		srv.restoreErr = srv.restore(ctx)
		srv.setLoading(false)
	})

	return srv.restoreErr
}

func (srv *sessionService) restore(ctx context.Context) error {
	token, tokenErr := srv.store.Get(ctx, repository.KeyAuthToken)
	if tokenErr != nil && !errors.Is(tokenErr, repository.ErrKeyNotFound) {
		return errors.Wrap(tokenErr, "failed to read stored session token")
	}

	userData, userErr := srv.store.Get(ctx, repository.KeyUserData)
	if userErr != nil && !errors.Is(userErr, repository.ErrKeyNotFound) {
		return errors.Wrap(userErr, "failed to read stored user record")
	}

	hasToken := tokenErr == nil
	hasUser := userErr == nil

	// A lone key means a crash between the paired writes. Wipe the survivor
	// and start signed out.
	if hasToken != hasUser {
		srv.logger.Warn("Found partial session in store, clearing it",
			slog.Bool("hasToken", hasToken), slog.Bool("hasUser", hasUser))
		srv.clearStoredSession(ctx)

		return nil
	}

	if !hasToken {
		return nil
	}

	var user entity.User
	if err := json.Unmarshal([]byte(userData), &user); err != nil {
		srv.logger.Warn("Stored user record is corrupted, clearing session", slog.Any("error", err))
		srv.clearStoredSession(ctx)

		return nil
	}

	srv.mu.Lock()
	srv.user = &user
	srv.token = token
	srv.mu.Unlock()

	srv.logger.Info("Session restored", slog.String("userID", user.ID))

	return nil
}

// Login authenticates with the backend and persists the resulting session.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	srv.setLoading(true)
	defer srv.setLoading(false)

	resp := srv.backend.Login(ctx, service.Credentials{
		Email:    input.Email,
		Password: input.Password,
	})
	if !resp.Success {
		srv.logger.Info("Login rejected", slog.String("email", input.Email), slog.String("reason", resp.Error))

		return nil, authFailure(domainerrors.ErrInvalidCredentials, resp.Error)
	}

	return srv.beginSession(ctx, resp.Data)
}

// SignUp registers a new account and persists the resulting session.
func (srv *sessionService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.SessionOutput, error) {
	srv.setLoading(true)
	defer srv.setLoading(false)

	resp := srv.backend.SignUp(ctx, service.SignUpCredentials{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Phone:    input.Phone,
	})
	if !resp.Success {
		srv.logger.Info("Sign up rejected", slog.String("email", input.Email), slog.String("reason", resp.Error))

		return nil, signUpFailure(resp.Error)
	}

	return srv.beginSession(ctx, resp.Data)
}

// SignInWithGoogle authenticates through the Google flow.
func (srv *sessionService) SignInWithGoogle(ctx context.Context) (*usecase.SessionOutput, error) {
	srv.setLoading(true)
	defer srv.setLoading(false)

	resp := srv.backend.SignInWithGoogle(ctx)
	if !resp.Success {
		return nil, authFailure(domainerrors.ErrInvalidCredentials, resp.Error)
	}

	return srv.beginSession(ctx, resp.Data)
}

// beginSession installs the authenticated payload in memory and mirrors it
// into the store.
func (srv *sessionService) beginSession(ctx context.Context, payload service.AuthPayload) (*usecase.SessionOutput, error) {
	user := payload.User

	srv.mu.Lock()
	srv.user = &user
	srv.token = payload.Token
	srv.mu.Unlock()

	if err := srv.persistSession(ctx, user, payload.Token); err != nil {
		// The in-memory session stays valid; a half-written store pair would
		// resurrect badly on the next start, so drop both keys.
		srv.logger.Error("Failed to persist session, clearing stored copy", slog.Any("error", err))
		srv.clearStoredSession(ctx)
	}

	srv.logger.Info("Session started", slog.String("userID", user.ID))

	return &usecase.SessionOutput{User: srv.CurrentUser()}, nil
}

func (srv *sessionService) persistSession(ctx context.Context, user entity.User, token string) error {
	data, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "failed to serialize user record")
	}

	if err := srv.store.Set(ctx, repository.KeyAuthToken, token); err != nil {
		return errors.Wrap(err, "failed to store session token")
	}
	if err := srv.store.Set(ctx, repository.KeyUserData, string(data)); err != nil {
		return errors.Wrap(err, "failed to store user record")
	}

	return nil
}

func (srv *sessionService) clearStoredSession(ctx context.Context) {
	if err := srv.store.Delete(ctx, repository.KeyAuthToken); err != nil {
		srv.logger.Warn("Failed to delete stored session token", slog.Any("error", err))
	}
	if err := srv.store.Delete(ctx, repository.KeyUserData); err != nil {
		srv.logger.Warn("Failed to delete stored user record", slog.Any("error", err))
	}
}

// Logout clears the session. Store failures are logged and swallowed: once
// the in-memory state is gone the user is signed out either way.
func (srv *sessionService) Logout(ctx context.Context) {
	srv.mu.Lock()
	wasAuthenticated := srv.user != nil
	srv.user = nil
	srv.token = ""
	srv.mu.Unlock()

	srv.clearStoredSession(ctx)

	if wasAuthenticated {
		srv.logger.Info("Session ended")
	}
}

// UpdateUser applies a partial profile update through the backend. Without an
// authenticated user it returns nil and does nothing.
func (srv *sessionService) UpdateUser(ctx context.Context, input usecase.UpdateUserInput) error {
	srv.mu.RLock()
	current := srv.user
	srv.mu.RUnlock()

	if current == nil {
		return nil
	}

	resp := srv.backend.UpdateProfile(ctx, current.ID, entity.UserUpdate{
		Name:      input.Name,
		Phone:     input.Phone,
		AvatarURL: input.AvatarURL,
	})
	if !resp.Success {
		srv.logger.Error("Profile update failed", slog.String("userID", current.ID), slog.String("reason", resp.Error))

		return domainerrors.ErrBackendFailure.WrapMessage(resp.Error)
	}

	updated := resp.Data

	srv.mu.Lock()
	srv.user = &updated
	token := srv.token
	srv.mu.Unlock()

	if err := srv.persistSession(ctx, updated, token); err != nil {
		srv.logger.Warn("Failed to persist updated user record", slog.Any("error", err))
	}

	return nil
}

// ResetPassword asks the backend to send a reset mail and returns its
// confirmation message.
func (srv *sessionService) ResetPassword(ctx context.Context, email string) (string, error) {
	resp := srv.backend.ResetPassword(ctx, email)
	if !resp.Success {
		return "", domainerrors.ErrBackendFailure.WrapMessage(resp.Error)
	}

	return resp.Message, nil
}

// CurrentUser returns a copy of the authenticated user, or nil.
func (srv *sessionService) CurrentUser() *entity.User {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.user == nil {
		return nil
	}

	user := *srv.user

	return &user
}

// Token returns the session token, or "" when unauthenticated.
func (srv *sessionService) Token() string {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.token
}

// IsAuthenticated reports whether a user is signed in.
func (srv *sessionService) IsAuthenticated() bool {
	return srv.CurrentUser() != nil
}

// IsLoading reports whether the initial restore or an authentication call is
// in flight.
func (srv *sessionService) IsLoading() bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.loading
}

func (srv *sessionService) setLoading(v bool) {
	srv.mu.Lock()
	srv.loading = v
	srv.mu.Unlock()
}

// authFailure maps a failed auth envelope onto a domain error. Cancellation
// is a transport condition, not a credentials problem.
func authFailure(base *domainerrors.BaseError, reason string) error {
	if reason == service.ReasonCancelled {
		return domainerrors.ErrBackendFailure.WrapMessage(reason)
	}

	return base.WrapMessage(reason)
}

// signUpFailure maps a failed sign-up envelope onto a domain error. Only a
// genuinely taken email surfaces as ErrAccountExists; the backend's other
// rejections are input problems.
func signUpFailure(reason string) error {
	switch reason {
	case service.ReasonCancelled:
		return domainerrors.ErrBackendFailure.WrapMessage(reason)
	case service.ReasonAccountExists:
		return domainerrors.ErrAccountExists.WrapMessage(reason)
	default:
		return domainerrors.ErrValidationFailed.WrapMessage(reason)
	}
}
