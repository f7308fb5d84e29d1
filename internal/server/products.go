package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibecommerce/vibecart/internal/models"
)

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.store.ListProducts(c.Request.Context())
	if err != nil {
		s.storeError(c, err, "")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) getProduct(c *gin.Context) {
	product, err := s.store.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.storeError(c, err, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}
