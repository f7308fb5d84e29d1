package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibecommerce/vibecart/internal/models"
)

type checkoutRequest struct {
	CartItems     []models.OrderLine `json:"cartItems"`
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail"`
}

// checkout turns the submitted cart into an order and drains the cart store.
// The total is computed from the client-supplied items, matching the
// storefront's trust model; see DESIGN.md for the tradeoff.
func (s *Server) checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout payload"})
		return
	}

	if len(req.CartItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}
	if req.CustomerName == "" || req.CustomerEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer name and email required"})
		return
	}

	order := models.Order{
		OrderID:       models.NewOrderNumber(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Items:         req.CartItems,
		Total:         models.LinesTotal(req.CartItems),
	}

	placed, err := s.store.PlaceOrder(c.Request.Context(), order)
	if err != nil {
		s.storeError(c, err, "")
		return
	}

	s.log.Info().
		Str("orderId", placed.OrderID).
		Float64("total", placed.Total).
		Int("items", len(placed.Items)).
		Msg("order placed")

	c.JSON(http.StatusOK, placed.Receipt())
}
