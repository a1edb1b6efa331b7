package backend

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"shamba/internal/domain/entity"
	"shamba/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClock = func() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()

	return NewAdapter(Options{
		TokenSecret: "test-secret",
		TokenTTL:    time.Hour,
		Picker:      &RoundRobinPicker{},
		Clock:       testClock,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestAdapter_Login_UnknownEmailFabricatesUser(t *testing.T) {
	adapter := newTestAdapter(t)

	resp := adapter.Login(context.Background(), service.Credentials{
		Email:    "a@b.com",
		Password: "x",
	})

	require.True(t, resp.Success, resp.Error)
	assert.Equal(t, "a@b.com", resp.Data.User.Email)
	assert.NotEmpty(t, resp.Data.Token)

	userID, err := adapter.VerifyToken(resp.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Data.User.ID, userID)
}

func TestAdapter_Login_WrongPasswordForKnownAccount(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	signUp := adapter.SignUp(ctx, service.SignUpCredentials{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "correct-horse",
	})
	require.True(t, signUp.Success, signUp.Error)

	resp := adapter.Login(ctx, service.Credentials{
		Email:    "asha@example.com",
		Password: "wrong",
	})

	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestAdapter_SignUp_DuplicateEmail(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	creds := service.SignUpCredentials{Name: "Asha", Email: "asha@example.com", Password: "pw12345"}
	require.True(t, adapter.SignUp(ctx, creds).Success)

	resp := adapter.SignUp(ctx, creds)
	assert.False(t, resp.Success)
	assert.Equal(t, service.ReasonAccountExists, resp.Error)
}

func TestAdapter_SignInWithGoogle_ReturnsStableIdentity(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	first := adapter.SignInWithGoogle(ctx)
	require.True(t, first.Success)

	second := adapter.SignInWithGoogle(ctx)
	require.True(t, second.Success)

	assert.Equal(t, first.Data.User.ID, second.Data.User.ID)
	assert.Equal(t, "user@gmail.com", second.Data.User.Email)
}

func TestAdapter_UpdateProfile_MergesPartialUpdate(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	login := adapter.Login(ctx, service.Credentials{Email: "a@b.com", Password: "x"})
	require.True(t, login.Success)

	name := "Amina Farmer"
	resp := adapter.UpdateProfile(ctx, login.Data.User.ID, entity.UserUpdate{Name: &name})

	require.True(t, resp.Success, resp.Error)
	assert.Equal(t, "Amina Farmer", resp.Data.Name)
	assert.Equal(t, "a@b.com", resp.Data.Email)
}

func TestAdapter_UpdateProfile_UnknownUser(t *testing.T) {
	adapter := newTestAdapter(t)

	resp := adapter.UpdateProfile(context.Background(), "nobody", entity.UserUpdate{})
	assert.False(t, resp.Success)
}

func TestAdapter_GetProducts_FiltersByCategory(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	all := adapter.GetProducts(ctx, "")
	require.True(t, all.Success)
	assert.Len(t, all.Data, 8)

	seeds := adapter.GetProducts(ctx, entity.CategorySeeds)
	require.True(t, seeds.Success)
	require.Len(t, seeds.Data, 2)
	for _, p := range seeds.Data {
		assert.Equal(t, entity.CategorySeeds, p.Category)
	}

	unknown := adapter.GetProducts(ctx, entity.Category("livestock"))
	assert.False(t, unknown.Success)
}

func TestAdapter_GetProductsByIDs(t *testing.T) {
	adapter := newTestAdapter(t)

	resp := adapter.GetProductsByIDs(context.Background(), []string{"prod-3", "prod-1", "missing"})
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "prod-1", resp.Data[0].ID)
	assert.Equal(t, "prod-3", resp.Data[1].ID)
}

func TestAdapter_CreateOrder_ComputesTotalAndRecords(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	items := []entity.CartItem{
		{Product: entity.Product{ID: "p1", Price: 1000}, Quantity: 1},
		{Product: entity.Product{ID: "p2", Price: 500}, Quantity: 2},
	}

	created := adapter.CreateOrder(ctx, "user-1", items, "Nairobi", "M-Pesa")
	require.True(t, created.Success, created.Error)
	assert.Equal(t, float64(2000), created.Data.TotalAmount)
	assert.Equal(t, entity.OrderStatusPending, created.Data.Status)

	listed := adapter.GetOrders(ctx, "user-1")
	require.True(t, listed.Success)

	var found bool
	for _, order := range listed.Data {
		if order.ID == created.Data.ID {
			found = true
		}
	}
	assert.True(t, found, "placed order should appear in history")
}

func TestAdapter_CreateOrder_RejectsEmptyCart(t *testing.T) {
	adapter := newTestAdapter(t)

	resp := adapter.CreateOrder(context.Background(), "user-1", nil, "Nairobi", "M-Pesa")
	assert.False(t, resp.Success)
}

func TestAdapter_Diagnose_RoundRobinIsDeterministic(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()
	req := entity.DiagnosisRequest{ImageURI: "file:///crop.jpg"}

	first := adapter.Diagnose(ctx, req)
	require.True(t, first.Success)
	assert.Equal(t, "Tomato", first.Data.CropName)

	second := adapter.Diagnose(ctx, req)
	require.True(t, second.Success)
	assert.Equal(t, "Maize", second.Data.CropName)

	assert.Equal(t, "file:///crop.jpg", second.Data.ImageURI)
	assert.NotEqual(t, first.Data.ID, second.Data.ID)
}

func TestAdapter_Diagnose_RequiresImage(t *testing.T) {
	adapter := newTestAdapter(t)

	resp := adapter.Diagnose(context.Background(), entity.DiagnosisRequest{})
	assert.False(t, resp.Success)
}

func TestAdapter_GetWeather_UsesLocationAddress(t *testing.T) {
	adapter := newTestAdapter(t)

	resp := adapter.GetWeather(context.Background(), entity.Location{Address: "Eldoret, Kenya"})
	require.True(t, resp.Success)
	assert.Equal(t, "Eldoret, Kenya", resp.Data.Location)
	assert.Len(t, resp.Data.Forecast, 7)
	assert.NotEmpty(t, resp.Data.FarmingTips)
}

func TestAdapter_CancelledContextBecomesFailureEnvelope(t *testing.T) {
	adapter := NewAdapter(Options{
		AuthLatency: time.Second,
		TokenSecret: "test-secret",
		Clock:       testClock,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp := adapter.Login(ctx, service.Credentials{Email: "a@b.com", Password: "x"})
	assert.False(t, resp.Success)
	assert.Equal(t, service.ReasonCancelled, resp.Error)
}

func TestTokenSigner_RejectsTamperedToken(t *testing.T) {
	adapter := newTestAdapter(t)

	login := adapter.Login(context.Background(), service.Credentials{Email: "a@b.com", Password: "x"})
	require.True(t, login.Success)

	_, err := adapter.VerifyToken(login.Data.Token + "x")
	assert.Error(t, err)
}
