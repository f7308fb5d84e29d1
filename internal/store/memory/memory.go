// Package memory provides an in-memory store implementation. It is safe for
// concurrent use and is primarily intended for tests and local development.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vibecommerce/vibecart/internal/models"
	"github.com/vibecommerce/vibecart/internal/store"
)

type Store struct {
	mu           sync.RWMutex
	products     map[string]models.Product
	productOrder []string
	cartItems    map[string]models.CartItem
	cartOrder    []string
	orders       []models.Order
}

var _ store.Store = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		products:  make(map[string]models.Product),
		cartItems: make(map[string]models.CartItem),
	}
}

// CatalogStore implementation ------------------------------------------------

func (s *Store) ListProducts(_ context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		out = append(out, s.products[id])
	}
	return out, nil
}

func (s *Store) GetProduct(_ context.Context, id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return models.Product{}, store.ErrNotFound
	}
	return p, nil
}

func (s *Store) SeedProducts(_ context.Context, products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.products) > 0 {
		return nil
	}
	now := time.Now().UTC()
	for _, p := range products {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		p.CreatedAt = now
		s.products[p.ID] = p
		s.productOrder = append(s.productOrder, p.ID)
	}
	return nil
}

// CartStore implementation ---------------------------------------------------

func (s *Store) AddItem(_ context.Context, product models.Product, qty int) (models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.cartOrder {
		item := s.cartItems[id]
		if item.ProductID == product.ID {
			item.Qty += qty
			s.cartItems[id] = item
			return item, nil
		}
	}

	item := models.CartItem{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Qty:       qty,
		CreatedAt: time.Now().UTC(),
	}
	s.cartItems[item.ID] = item
	s.cartOrder = append(s.cartOrder, item.ID)
	return item, nil
}

func (s *Store) ListItems(_ context.Context) ([]models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CartItem, 0, len(s.cartOrder))
	for _, id := range s.cartOrder {
		out = append(out, s.cartItems[id])
	}
	return out, nil
}

func (s *Store) UpdateItemQty(_ context.Context, id string, qty int) (models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cartItems[id]
	if !ok {
		return models.CartItem{}, store.ErrNotFound
	}
	item.Qty = qty
	s.cartItems[id] = item
	return item, nil
}

func (s *Store) RemoveItem(_ context.Context, id string) (models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cartItems[id]
	if !ok {
		return models.CartItem{}, store.ErrNotFound
	}
	delete(s.cartItems, id)
	for i, existing := range s.cartOrder {
		if existing == id {
			s.cartOrder = append(s.cartOrder[:i], s.cartOrder[i+1:]...)
			break
		}
	}
	return item, nil
}

func (s *Store) ClearCart(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearCartLocked()
	return nil
}

func (s *Store) clearCartLocked() {
	s.cartItems = make(map[string]models.CartItem)
	s.cartOrder = nil
}

// OrderStore implementation --------------------------------------------------

func (s *Store) PlaceOrder(_ context.Context, order models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Timestamp.IsZero() {
		order.Timestamp = time.Now().UTC()
	}
	s.orders = append(s.orders, order)

	// Order creation and cart clearing happen under one lock hold, so a
	// reader can never observe the order without the cart being drained.
	s.clearCartLocked()
	return order, nil
}

func (s *Store) ListOrders(_ context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (s *Store) Ping(_ context.Context) error { return nil }

func (s *Store) Close() error { return nil }
