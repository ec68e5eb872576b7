package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marketloop/commerce-backend/internal/apperr"
	"github.com/marketloop/commerce-backend/internal/auth"
	"github.com/marketloop/commerce-backend/internal/validation"
)

// RegisterCartRoutes registers the cart mutation contract.
func RegisterCartRoutes(r *gin.Engine, cfg Config) {
	v := validation.New()

	r.GET("/cart", func(c *gin.Context) {
		cart, err := cfg.Carts.GetOrCreate(c.Request.Context(), auth.PrincipalFrom(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	})

	r.POST("/cart/items", func(c *gin.Context) {
		var req validation.AddToCartRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			respondError(c, err)
			return
		}
		cart, err := cfg.Carts.AddItem(c.Request.Context(), auth.PrincipalFrom(c), req.ProductID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	})

	r.PUT("/cart/items/:productId", func(c *gin.Context) {
		var req validation.UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("Quantity must be a positive number"))
			return
		}
		cart, err := cfg.Carts.UpdateItem(c.Request.Context(), auth.PrincipalFrom(c), c.Param("productId"), req.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	})

	r.DELETE("/cart/items/:productId", func(c *gin.Context) {
		cart, err := cfg.Carts.RemoveItem(c.Request.Context(), auth.PrincipalFrom(c), c.Param("productId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	})

	r.DELETE("/cart", func(c *gin.Context) {
		cleared, err := cfg.Carts.Clear(c.Request.Context(), auth.PrincipalFrom(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cleared": cleared})
	})
}
