// Package store defines the storage interfaces for the catalog, cart and
// order collections, with interchangeable memory and MySQL backends.
package store

import (
	"context"
	"errors"

	"github.com/vibecommerce/vibecart/internal/models"
)

// ErrNotFound is returned when an id does not resolve to a stored record.
var ErrNotFound = errors.New("not found")

// CatalogStore holds the product catalog. It is read-only after seeding.
type CatalogStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (models.Product, error)

	// SeedProducts inserts the given products only when the catalog is empty.
	SeedProducts(ctx context.Context, products []models.Product) error
}

// CartStore holds cart line-items. The cart is a single process-wide shared
// resource; there is no per-user partitioning.
type CartStore interface {
	// AddItem merges the product into the cart: if a line-item for the
	// product already exists its qty is incremented by qty, otherwise a new
	// line-item is created snapshotting the product's name and price.
	AddItem(ctx context.Context, product models.Product, qty int) (models.CartItem, error)

	// ListItems returns all line-items in insertion order.
	ListItems(ctx context.Context) ([]models.CartItem, error)

	// UpdateItemQty replaces the quantity of a line-item in place.
	UpdateItemQty(ctx context.Context, id string, qty int) (models.CartItem, error)

	// RemoveItem deletes a line-item and returns the deleted record.
	RemoveItem(ctx context.Context, id string) (models.CartItem, error)

	ClearCart(ctx context.Context) error
}

// OrderStore holds completed orders, append-only.
type OrderStore interface {
	// PlaceOrder persists the order and clears the cart as one atomic step.
	PlaceOrder(ctx context.Context, order models.Order) (models.Order, error)

	// ListOrders returns all orders, newest first.
	ListOrders(ctx context.Context) ([]models.Order, error)
}

// Store bundles the three collections behind one backend.
type Store interface {
	CatalogStore
	CartStore
	OrderStore

	// Ping reports backend health.
	Ping(ctx context.Context) error

	Close() error
}
