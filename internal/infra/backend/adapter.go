// Package backend implements the mock backend adapter. It stands in for the
// remote farm-assistant API: every operation waits a configurable simulated
// latency and answers from fixtures or from small in-memory tables. Failures
// never cross the boundary as Go errors; they are folded into the response
// envelope.
package backend

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"shamba/config"
	"shamba/internal/domain/entity"
	"shamba/internal/domain/service"

	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

// account is a registered identity inside the mock backend. PasswordHash is
// empty for accounts created through federated sign-in.
type account struct {
	user         entity.User
	passwordHash []byte
}

// Adapter is the stateful mock backend.
type Adapter struct {
	authLatency      time.Duration
	fetchLatency     time.Duration
	diagnosisLatency time.Duration

	signer *tokenSigner
	picker FixturePicker
	clock  func() time.Time
	logger *slog.Logger

	mu       sync.RWMutex
	accounts map[string]*account // keyed by lowercased email
	byID     map[string]*account // same records, keyed by user ID
	orders   map[string][]entity.Order
	nextID   int
}

var (
	_ service.Backend       = (*Adapter)(nil)
	_ service.TokenVerifier = (*Adapter)(nil)
)

// Params holds dependencies for the Adapter, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New builds the adapter from config: latencies, the token secret/TTL, and
// the fixture picker seed.
func New(params Params) *Adapter {
	cfg := params.Config.Backend

	return NewAdapter(Options{
		AuthLatency:      cfg.AuthLatency,
		FetchLatency:     cfg.FetchLatency,
		DiagnosisLatency: cfg.DiagnosisLatency,
		TokenSecret:      cfg.TokenSecret,
		TokenTTL:         cfg.TokenTTL,
		Picker:           NewSeededPicker(cfg.Seed),
		Logger:           params.Logger,
	})
}

// Options configures an Adapter directly; tests use this to zero out
// latencies and pin the clock and fixture selection.
type Options struct {
	AuthLatency      time.Duration
	FetchLatency     time.Duration
	DiagnosisLatency time.Duration
	TokenSecret      string
	TokenTTL         time.Duration
	Picker           FixturePicker
	Clock            func() time.Time
	Logger           *slog.Logger
}

// NewAdapter builds an adapter from explicit options.
func NewAdapter(opts Options) *Adapter {
	if opts.Picker == nil {
		opts.Picker = NewSeededPicker(0)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}

	return &Adapter{
		authLatency:      opts.AuthLatency,
		fetchLatency:     opts.FetchLatency,
		diagnosisLatency: opts.DiagnosisLatency,
		signer:           newTokenSigner(opts.TokenSecret, opts.TokenTTL, opts.Clock),
		picker:           opts.Picker,
		clock:            opts.Clock,
		logger:           opts.Logger,
		accounts:         make(map[string]*account),
		byID:             make(map[string]*account),
		orders:           make(map[string][]entity.Order),
	}
}

// delay blocks for the simulated network latency. It returns the context's
// error when cancelled so callers can fold it into a failure envelope.
func (a *Adapter) delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// registerAccount stores a new account record. Caller must hold the lock.
func (a *Adapter) registerAccount(user entity.User, passwordHash []byte) *account {
	acc := &account{user: user, passwordHash: passwordHash}
	a.accounts[normalizeEmail(user.Email)] = acc
	a.byID[user.ID] = acc

	return acc
}

func hashPassword(password string) []byte {
	// Mock backend: cost floor keeps tests fast, real strength is irrelevant.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil
	}

	return hash
}

func checkPassword(hash []byte, password string) bool {
	if len(hash) == 0 {
		return false
	}

	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
