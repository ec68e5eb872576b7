package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/marketloop/commerce-backend/internal/auth"
	"github.com/marketloop/commerce-backend/internal/products"
	"github.com/marketloop/commerce-backend/internal/validation"
)

// RegisterProductRoutes registers catalog reads and admin mutations.
func RegisterProductRoutes(r *gin.Engine, cfg Config) {
	v := validation.New()

	r.GET("/products", func(c *gin.Context) {
		filter := products.Filter{
			Search:     c.Query("search"),
			CategoryID: c.Query("category"),
			MinPrice:   queryFloat(c, "minPrice"),
			MaxPrice:   queryFloat(c, "maxPrice"),
			Offset:     queryInt(c, "offset"),
			Limit:      queryInt(c, "limit"),
		}
		list, err := cfg.Products.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/products/:slug", func(c *gin.Context) {
		product, err := cfg.Products.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	})

	r.POST("/products", func(c *gin.Context) {
		var req validation.CreateProductRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			respondError(c, err)
			return
		}
		product, err := cfg.Products.Create(c.Request.Context(), auth.PrincipalFrom(c), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	})

	r.PUT("/products/:id", func(c *gin.Context) {
		var req validation.UpdateProductRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			respondError(c, err)
			return
		}
		product, err := cfg.Products.Update(c.Request.Context(), auth.PrincipalFrom(c), c.Param("id"), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	})

	r.DELETE("/products/:id", func(c *gin.Context) {
		deleted, err := cfg.Products.Delete(c.Request.Context(), auth.PrincipalFrom(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	})
}

func queryFloat(c *gin.Context, name string) float64 {
	f, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		return 0
	}
	return f
}

func queryInt(c *gin.Context, name string) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return n
}
