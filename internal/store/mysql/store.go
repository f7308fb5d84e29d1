// Package mysql implements the storage interfaces on top of MySQL.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vibecommerce/vibecart/internal/database"
	"github.com/vibecommerce/vibecart/internal/models"
	"github.com/vibecommerce/vibecart/internal/store"
)

type Store struct {
	db *database.DB
}

var _ store.Store = (*Store)(nil)

// New creates a Store using the provided database handle.
func New(db *database.DB) *Store {
	return &Store{db: db}
}

// CatalogStore implementation ------------------------------------------------

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, price, description, image, stock, created_at
		FROM products
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Image, &p.Stock, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *Store) GetProduct(ctx context.Context, id string) (models.Product, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, price, description, image, stock, created_at
		FROM products
		WHERE id = ?
	`, id)

	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Image, &p.Stock, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, store.ErrNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (s *Store) SeedProducts(ctx context.Context, products []models.Product) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range products {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO products (id, name, price, description, image, stock)
			VALUES (?, ?, ?, ?, ?, ?)
		`, p.ID, p.Name, p.Price, p.Description, p.Image, p.Stock)
		if err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}
	return nil
}

// CartStore implementation ---------------------------------------------------

// AddItem relies on the unique key on product_id: re-adding a product turns
// into an atomic qty increment instead of a read-modify-write.
func (s *Store) AddItem(ctx context.Context, product models.Product, qty int) (models.CartItem, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cart_items (id, product_id, name, price, qty)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE qty = qty + VALUES(qty)
	`, uuid.NewString(), product.ID, product.Name, product.Price, qty)
	if err != nil {
		return models.CartItem{}, fmt.Errorf("add cart item: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, product_id, name, price, qty, created_at
		FROM cart_items
		WHERE product_id = ?
	`, product.ID)

	var item models.CartItem
	if err := row.Scan(&item.ID, &item.ProductID, &item.Name, &item.Price, &item.Qty, &item.CreatedAt); err != nil {
		return models.CartItem{}, fmt.Errorf("read cart item back: %w", err)
	}
	return item, nil
}

func (s *Store) ListItems(ctx context.Context) ([]models.CartItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, product_id, name, price, qty, created_at
		FROM cart_items
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Name, &item.Price, &item.Qty, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *Store) UpdateItemQty(ctx context.Context, id string, qty int) (models.CartItem, error) {
	item, err := s.getItem(ctx, id)
	if err != nil {
		return models.CartItem{}, err
	}

	// UPDATE alone cannot distinguish "missing row" from "qty unchanged"
	// via RowsAffected, hence the read above.
	if _, err := s.db.ExecContext(ctx, `UPDATE cart_items SET qty = ? WHERE id = ?`, qty, id); err != nil {
		return models.CartItem{}, fmt.Errorf("update cart item: %w", err)
	}
	item.Qty = qty
	return item, nil
}

func (s *Store) RemoveItem(ctx context.Context, id string) (models.CartItem, error) {
	item, err := s.getItem(ctx, id)
	if err != nil {
		return models.CartItem{}, err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = ?`, id); err != nil {
		return models.CartItem{}, fmt.Errorf("delete cart item: %w", err)
	}
	return item, nil
}

func (s *Store) ClearCart(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cart_items`); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (s *Store) getItem(ctx context.Context, id string) (models.CartItem, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, product_id, name, price, qty, created_at
		FROM cart_items
		WHERE id = ?
	`, id)

	var item models.CartItem
	err := row.Scan(&item.ID, &item.ProductID, &item.Name, &item.Price, &item.Qty, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CartItem{}, store.ErrNotFound
	}
	if err != nil {
		return models.CartItem{}, fmt.Errorf("get cart item: %w", err)
	}
	return item, nil
}

// OrderStore implementation --------------------------------------------------

// PlaceOrder inserts the order and clears the cart in a single transaction,
// so a crash cannot keep the order while leaving the cart populated.
func (s *Store) PlaceOrder(ctx context.Context, order models.Order) (models.Order, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Timestamp.IsZero() {
		order.Timestamp = time.Now().UTC()
	}

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return models.Order{}, fmt.Errorf("marshal order items: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Order{}, fmt.Errorf("begin checkout: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, order_id, customer_name, customer_email, items, total, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, order.ID, order.OrderID, order.CustomerName, order.CustomerEmail, itemsJSON, order.Total, order.Timestamp)
	if err != nil {
		return models.Order{}, fmt.Errorf("insert order: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items`); err != nil {
		return models.Order{}, fmt.Errorf("clear cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Order{}, fmt.Errorf("commit checkout: %w", err)
	}
	return order, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, order_id, customer_name, customer_email, items, total, created_at
		FROM orders
		ORDER BY created_at DESC, order_id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var (
			o        models.Order
			itemsRaw []byte
		)
		if err := rows.Scan(&o.ID, &o.OrderID, &o.CustomerName, &o.CustomerEmail, &itemsRaw, &o.Total, &o.Timestamp); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if err := json.Unmarshal(itemsRaw, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.HealthCheck(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
