package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibecommerce/vibecart/internal/models"
)

type addToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Qty       int    `json:"qty" binding:"required,min=1"`
}

type updateCartItemRequest struct {
	Qty int `json:"qty" binding:"required,min=1"`
}

func (s *Server) addToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId and qty are required"})
		return
	}

	product, err := s.store.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		s.storeError(c, err, "Product not found")
		return
	}

	item, err := s.store.AddItem(c.Request.Context(), product, req.Qty)
	if err != nil {
		s.storeError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (s *Server) getCart(c *gin.Context) {
	items, err := s.store.ListItems(c.Request.Context())
	if err != nil {
		s.storeError(c, err, "")
		return
	}
	if items == nil {
		items = []models.CartItem{}
	}

	c.JSON(http.StatusOK, models.Cart{
		Items: items,
		Total: models.CartTotal(items),
	})
}

func (s *Server) updateCartItem(c *gin.Context) {
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid quantity required"})
		return
	}

	item, err := s.store.UpdateItemQty(c.Request.Context(), c.Param("id"), req.Qty)
	if err != nil {
		s.storeError(c, err, "Cart item not found")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) removeFromCart(c *gin.Context) {
	item, err := s.store.RemoveItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.storeError(c, err, "Cart item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"item":    item,
	})
}
