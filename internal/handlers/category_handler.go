package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marketloop/commerce-backend/internal/auth"
	"github.com/marketloop/commerce-backend/internal/validation"
)

// RegisterCategoryRoutes registers category reads and admin mutations.
func RegisterCategoryRoutes(r *gin.Engine, cfg Config) {
	v := validation.New()

	r.GET("/categories", func(c *gin.Context) {
		list, err := cfg.Categories.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.POST("/categories", func(c *gin.Context) {
		var req validation.CategoryRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			respondError(c, err)
			return
		}
		category, err := cfg.Categories.Create(c.Request.Context(), auth.PrincipalFrom(c), req.Name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, category)
	})

	r.PUT("/categories/:id", func(c *gin.Context) {
		var req validation.CategoryRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			respondError(c, err)
			return
		}
		category, err := cfg.Categories.Update(c.Request.Context(), auth.PrincipalFrom(c), c.Param("id"), req.Name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	})

	r.DELETE("/categories/:id", func(c *gin.Context) {
		deleted, err := cfg.Categories.Delete(c.Request.Context(), auth.PrincipalFrom(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	})
}
