package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marketloop/commerce-backend/internal/auth"
	"github.com/marketloop/commerce-backend/internal/validation"
)

// RegisterReviewRoutes registers review reads and author-only mutations.
func RegisterReviewRoutes(r *gin.Engine, cfg Config) {
	v := validation.New()

	r.GET("/products/:slug/reviews", func(c *gin.Context) {
		// The path parameter is a product id here, not a slug; gin requires
		// a single wildcard name per segment position.
		list, err := cfg.Reviews.ListForProduct(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.POST("/reviews", func(c *gin.Context) {
		var req validation.AddReviewRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			respondError(c, err)
			return
		}
		review, err := cfg.Reviews.Add(c.Request.Context(), auth.PrincipalFrom(c), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, review)
	})

	r.PUT("/reviews/:id", func(c *gin.Context) {
		var req validation.UpdateReviewRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			respondError(c, err)
			return
		}
		review, err := cfg.Reviews.Update(c.Request.Context(), auth.PrincipalFrom(c), c.Param("id"), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, review)
	})

	r.DELETE("/reviews/:id", func(c *gin.Context) {
		deleted, err := cfg.Reviews.Delete(c.Request.Context(), auth.PrincipalFrom(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	})
}
