package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vibecommerce/vibecart/internal/config"
	"github.com/vibecommerce/vibecart/internal/store"
	"github.com/vibecommerce/vibecart/internal/web"
)

type Server struct {
	router *gin.Engine
	store  store.Store
	log    zerolog.Logger
}

// NewServer creates a new server instance
func NewServer(cfg *config.ServerConfig, st store.Store, log zerolog.Logger) *Server {
	router := gin.New()
	router.Use(RequestLogger(log), gin.Recovery(), CORS(cfg.AllowedOrigins))

	server := &Server{
		router: router,
		store:  st,
		log:    log,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/products", s.listProducts)
		api.GET("/products/:id", s.getProduct)
		api.POST("/cart", s.addToCart)
		api.GET("/cart", s.getCart)
		api.PUT("/cart/:id", s.updateCartItem)
		api.DELETE("/cart/:id", s.removeFromCart)
		api.POST("/checkout", s.checkout)
		api.GET("/orders", s.listOrders)
	}

	s.router.GET("/health", s.healthCheck)

	// Embedded single-page client
	web.Register(s.router)
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "store connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "vibecart",
		"version": "0.1.0",
	})
}

// storeError maps a store failure onto the API error taxonomy: unresolvable
// ids become 404, everything else is a 500 with the raw message surfaced.
func (s *Server) storeError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	s.log.Error().Err(err).Str("path", c.FullPath()).Msg("store operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// Handler exposes the underlying handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	s.log.Info().Str("addr", addr).Msg("starting http server")
	return s.router.Run(addr)
}
