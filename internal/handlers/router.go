package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marketloop/commerce-backend/internal/auth"
)

// NewRouter builds the API router with the principal-resolving middleware
// and every resource's routes registered.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(auth.Middleware(cfg.JWTSecret))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterUserRoutes(r, cfg)
	RegisterProductRoutes(r, cfg)
	RegisterCategoryRoutes(r, cfg)
	RegisterReviewRoutes(r, cfg)
	RegisterCartRoutes(r, cfg)
	RegisterOrderRoutes(r, cfg)

	return r
}
