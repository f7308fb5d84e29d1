package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibecommerce/vibecart/internal/models"
)

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.store.ListOrders(c.Request.Context())
	if err != nil {
		s.storeError(c, err, "")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}
