package impl

import (
	"context"
	"errors"
	"testing"

	"shamba/internal/domain/entity"
	domainerrors "shamba/internal/domain/errors"
	"shamba/internal/infra/qrcode"
	"shamba/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartWith(session usecase.SessionUsecase) usecase.CartUsecase {
	return NewCartService(CartServiceParams{
		Backend: testBackend(),
		Session: session,
		QRCode:  qrcode.NewQRCodeService(256, "M"),
		Logger:  testLogger(),
	})
}

func testProduct(id string, price float64) entity.Product {
	return entity.Product{
		ID:       id,
		Name:     "Product " + id,
		Category: entity.CategorySeeds,
		Price:    price,
		Currency: "KES",
		InStock:  true,
	}
}

func TestCartService_AddItem_MergesDuplicateProducts(t *testing.T) {
	cart := newCartWith(newSessionOver(newMemoryStore()))
	product := testProduct("p1", 100)

	require.NoError(t, cart.AddItem(product, 2))
	require.NoError(t, cart.AddItem(product, 3))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, cart.ItemCount())
}

func TestCartService_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	cart := newCartWith(newSessionOver(newMemoryStore()))

	err := cart.AddItem(testProduct("p1", 100), 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

	err = cart.AddItem(testProduct("p1", 100), -1)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

	assert.Empty(t, cart.Items())
}

func TestCartService_TotalAndCountInvariants(t *testing.T) {
	cart := newCartWith(newSessionOver(newMemoryStore()))

	require.NoError(t, cart.AddItem(testProduct("p1", 100), 2))
	require.NoError(t, cart.AddItem(testProduct("p2", 50.5), 3))

	assert.Equal(t, 5, cart.ItemCount())
	assert.InDelta(t, 351.5, cart.TotalAmount(), 1e-9)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	cart := newCartWith(newSessionOver(newMemoryStore()))
	require.NoError(t, cart.AddItem(testProduct("p1", 100), 2))

	cart.UpdateQuantity("p1", 7)
	assert.Equal(t, 7, cart.ItemCount())

	// Unknown ids are ignored.
	cart.UpdateQuantity("missing", 3)
	assert.Equal(t, 7, cart.ItemCount())

	// Zero removes the line.
	cart.UpdateQuantity("p1", 0)
	assert.Empty(t, cart.Items())
}

func TestCartService_RemoveItemAndClear(t *testing.T) {
	cart := newCartWith(newSessionOver(newMemoryStore()))
	require.NoError(t, cart.AddItem(testProduct("p1", 100), 1))
	require.NoError(t, cart.AddItem(testProduct("p2", 200), 1))

	cart.RemoveItem("p1")
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, "p2", cart.Items()[0].Product.ID)

	cart.RemoveItem("p1") // already gone, no-op

	cart.Clear()
	assert.Empty(t, cart.Items())
	assert.Equal(t, 0, cart.ItemCount())
	assert.Zero(t, cart.TotalAmount())
}

func TestCartService_Items_ReturnsSnapshot(t *testing.T) {
	cart := newCartWith(newSessionOver(newMemoryStore()))
	require.NoError(t, cart.AddItem(testProduct("p1", 100), 1))

	items := cart.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, cart.ItemCount())
}

func TestCartService_Checkout_PlacesOrderAndClearsCart(t *testing.T) {
	session := newSessionOver(newMemoryStore())
	ctx := context.Background()
	_, err := session.Login(ctx, usecase.LoginInput{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)

	cart := newCartWith(session)
	require.NoError(t, cart.AddItem(testProduct("p1", 100), 2))

	out, err := cart.Checkout(ctx, usecase.CheckoutInput{DeliveryAddress: "Nairobi", PaymentMethod: "M-Pesa"})

	require.NoError(t, err)
	require.NotNil(t, out.Order)
	assert.Equal(t, float64(200), out.Order.TotalAmount)
	assert.Equal(t, entity.OrderStatusPending, out.Order.Status)
	assert.NotEmpty(t, out.PaymentQR)
	assert.Empty(t, cart.Items())
}

func TestCartService_Checkout_RequiresAuthentication(t *testing.T) {
	cart := newCartWith(newSessionOver(newMemoryStore()))
	require.NoError(t, cart.AddItem(testProduct("p1", 100), 1))

	_, err := cart.Checkout(context.Background(), usecase.CheckoutInput{DeliveryAddress: "Nairobi", PaymentMethod: "M-Pesa"})

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	assert.Equal(t, 1, cart.ItemCount(), "cart must survive a rejected checkout")
}

func TestCartService_Checkout_RejectsEmptyCart(t *testing.T) {
	session := newSessionOver(newMemoryStore())
	ctx := context.Background()
	_, err := session.Login(ctx, usecase.LoginInput{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)

	cart := newCartWith(session)

	_, err = cart.Checkout(ctx, usecase.CheckoutInput{DeliveryAddress: "Nairobi", PaymentMethod: "M-Pesa"})

	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
}
