package backend

import (
	"context"
	"slices"

	"shamba/internal/domain/entity"
	"shamba/internal/domain/service"

	"github.com/google/uuid"
)

// GetProducts returns the catalog, optionally filtered by category. An empty
// category means "all".
func (a *Adapter) GetProducts(ctx context.Context, category entity.Category) service.Response[[]entity.Product] {
	if err := a.delay(ctx, a.fetchLatency); err != nil {
		return service.Fail[[]entity.Product](service.ReasonCancelled)
	}

	if category == "" {
		return service.Ok(slices.Clone(catalogFixtures), "")
	}
	if !category.IsValid() {
		return service.Fail[[]entity.Product]("Unknown product category.")
	}

	filtered := make([]entity.Product, 0, len(catalogFixtures))
	for _, p := range catalogFixtures {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}

	return service.Ok(filtered, "")
}

// GetProductsByIDs returns the catalog entries matching the given IDs,
// preserving catalog order. Unknown IDs are skipped.
func (a *Adapter) GetProductsByIDs(ctx context.Context, ids []string) service.Response[[]entity.Product] {
	if err := a.delay(ctx, a.fetchLatency); err != nil {
		return service.Fail[[]entity.Product](service.ReasonCancelled)
	}

	matched := make([]entity.Product, 0, len(ids))
	for _, p := range catalogFixtures {
		if slices.Contains(ids, p.ID) {
			matched = append(matched, p)
		}
	}

	return service.Ok(matched, "")
}

// CreateOrder snapshots the given cart lines into a pending order and records
// it for the user.
func (a *Adapter) CreateOrder(ctx context.Context, userID string, items []entity.CartItem, deliveryAddress, paymentMethod string) service.Response[entity.Order] {
	if err := a.delay(ctx, a.authLatency); err != nil {
		return service.Fail[entity.Order](service.ReasonCancelled)
	}

	if len(items) == 0 {
		return service.Fail[entity.Order]("Cannot place an empty order.")
	}

	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}

	order := entity.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           slices.Clone(items),
		TotalAmount:     total,
		Status:          entity.OrderStatusPending,
		CreatedAt:       a.clock(),
		DeliveryAddress: deliveryAddress,
		PaymentMethod:   paymentMethod,
	}

	a.mu.Lock()
	a.orders[userID] = append(a.orders[userID], order)
	a.mu.Unlock()

	return service.Ok(order, "Order placed successfully")
}

// GetOrders returns the seeded order history plus any orders the user placed
// this session, newest first.
func (a *Adapter) GetOrders(ctx context.Context, userID string) service.Response[[]entity.Order] {
	if err := a.delay(ctx, a.fetchLatency); err != nil {
		return service.Fail[[]entity.Order](service.ReasonCancelled)
	}

	a.mu.RLock()
	placed := slices.Clone(a.orders[userID])
	a.mu.RUnlock()

	orders := append(placed, seededOrders(userID, a.clock())...)
	slices.SortFunc(orders, func(x, y entity.Order) int {
		return y.CreatedAt.Compare(x.CreatedAt)
	})

	return service.Ok(orders, "")
}
