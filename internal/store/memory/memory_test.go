package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibecommerce/vibecart/internal/models"
	"github.com/vibecommerce/vibecart/internal/store"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	require.NoError(t, s.SeedProducts(context.Background(), models.DefaultCatalog()))
	return s
}

func firstProduct(t *testing.T, s *Store) models.Product {
	t.Helper()
	products, err := s.ListProducts(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)
	return products[0]
}

func TestSeedProducts(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 8)
	assert.Equal(t, "Wireless Headphones", products[0].Name)
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
	}

	// Re-seeding a non-empty catalog is a no-op.
	require.NoError(t, s.SeedProducts(ctx, []models.Product{{Name: "Extra", Price: 1}}))
	products, err = s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 8)
}

func TestGetProduct(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	want := firstProduct(t, s)
	got, err := s.GetProduct(ctx, want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = s.GetProduct(ctx, "no-such-id")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAddItemMergesDuplicates(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	product := firstProduct(t, s)

	first, err := s.AddItem(ctx, product, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Qty)
	assert.Equal(t, product.Name, first.Name)
	assert.Equal(t, product.Price, first.Price)

	second, err := s.AddItem(ctx, product, 1)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Qty)

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Qty)
}

func TestUpdateItemQty(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	item, err := s.AddItem(ctx, firstProduct(t, s), 1)
	require.NoError(t, err)

	updated, err := s.UpdateItemQty(ctx, item.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Qty)

	_, err = s.UpdateItemQty(ctx, "no-such-id", 2)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRemoveItem(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	item, err := s.AddItem(ctx, firstProduct(t, s), 1)
	require.NoError(t, err)

	removed, err := s.RemoveItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, removed.ID)

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = s.RemoveItem(ctx, item.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPlaceOrderClearsCart(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	product := firstProduct(t, s)

	_, err := s.AddItem(ctx, product, 2)
	require.NoError(t, err)

	order := models.Order{
		OrderID:       models.NewOrderNumber(),
		CustomerName:  "Jane",
		CustomerEmail: "jane@x.com",
		Items:         []models.OrderLine{{ProductID: product.ID, Name: product.Name, Price: product.Price, Qty: 2}},
		Total:         models.Round2(product.Price * 2),
	}

	placed, err := s.PlaceOrder(ctx, order)
	require.NoError(t, err)
	assert.NotEmpty(t, placed.ID)
	assert.False(t, placed.Timestamp.IsZero())

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListOrdersNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()

	older := models.Order{OrderID: "ORD-1-AAAAAAAAA", Timestamp: time.Now().Add(-time.Hour)}
	newer := models.Order{OrderID: "ORD-2-BBBBBBBBB", Timestamp: time.Now()}

	_, err := s.PlaceOrder(ctx, older)
	require.NoError(t, err)
	_, err = s.PlaceOrder(ctx, newer)
	require.NoError(t, err)

	orders, err := s.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-2-BBBBBBBBB", orders[0].OrderID)
	assert.Equal(t, "ORD-1-AAAAAAAAA", orders[1].OrderID)
}
