package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"shamba/internal/domain/repository"
	"shamba/internal/infra/backend"
	"shamba/internal/infra/securestore"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testBackend returns a zero-latency adapter with deterministic fixture
// selection and a fixed clock.
func testBackend() *backend.Adapter {
	return backend.NewAdapter(backend.Options{
		TokenSecret: "test-secret",
		TokenTTL:    time.Hour,
		Picker:      &backend.RoundRobinPicker{},
		Clock: func() time.Time {
			return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		},
		Logger: testLogger(),
	})
}

// failingStore wraps a working store and fails selected operations, for
// exercising the fail-open write paths.
type failingStore struct {
	inner   repository.PreferenceStore
	getErr  error
	setErr  error
	delErr  error
}

func (s *failingStore) Get(ctx context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}

	return s.inner.Get(ctx, key)
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}

	return s.inner.Set(ctx, key, value)
}

func (s *failingStore) Delete(ctx context.Context, key string) error {
	if s.delErr != nil {
		return s.delErr
	}

	return s.inner.Delete(ctx, key)
}

func newSessionOver(store repository.PreferenceStore) *sessionService {
	return NewSessionService(SessionServiceParams{
		Backend: testBackend(),
		Store:   store,
		Logger:  testLogger(),
	}).(*sessionService)
}

func newMemoryStore() *securestore.MemoryStore {
	return securestore.NewMemoryStore()
}
