package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. Products are seeded once at startup and are
// read-only from the API's perspective.
type Product struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Price       float64   `json:"price" db:"price"`
	Description string    `json:"description" db:"description"`
	Image       string    `json:"image" db:"image"`
	Stock       int       `json:"stock" db:"stock"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CartItem is a cart line-item. Name and price are snapshotted from the
// product at add-time and are not refreshed if the product changes.
type CartItem struct {
	ID        string    `json:"id" db:"id"`
	ProductID string    `json:"productId" db:"product_id"`
	Name      string    `json:"name" db:"name"`
	Price     float64   `json:"price" db:"price"`
	Qty       int       `json:"qty" db:"qty"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Cart is the GET /api/cart response shape.
type Cart struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// OrderLine is one immutable item inside an order snapshot.
type OrderLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// Order is a completed checkout, persisted append-only as an audit trail.
type Order struct {
	ID            string      `json:"id" db:"id"`
	OrderID       string      `json:"orderId" db:"order_id"`
	CustomerName  string      `json:"customerName" db:"customer_name"`
	CustomerEmail string      `json:"customerEmail" db:"customer_email"`
	Items         []OrderLine `json:"items" db:"items"`
	Total         float64     `json:"total" db:"total"`
	Timestamp     time.Time   `json:"timestamp" db:"created_at"`
}

// Receipt is the payload returned immediately after a successful checkout.
type Receipt struct {
	OrderID       string      `json:"orderId"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	Items         []OrderLine `json:"items"`
	Total         float64     `json:"total"`
	Timestamp     time.Time   `json:"timestamp"`
}

// Round2 rounds a monetary amount to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// LinesTotal computes the order total as sum(price*qty), rounded to 2 decimals.
func LinesTotal(items []OrderLine) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Qty)
	}
	return Round2(total)
}

// CartTotal computes the cart total over line-items, rounded to 2 decimals.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Qty)
	}
	return Round2(total)
}

// NewOrderNumber generates a human-readable order id of the form
// ORD-<unix-millis>-<9-char token>. The token comes from a UUID, so two
// checkouts within the same millisecond still get distinct ids.
func NewOrderNumber() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), token)
}

// Receipt builds the checkout response from a persisted order.
func (o Order) Receipt() Receipt {
	return Receipt{
		OrderID:       o.OrderID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Items:         o.Items,
		Total:         o.Total,
		Timestamp:     o.Timestamp,
	}
}
