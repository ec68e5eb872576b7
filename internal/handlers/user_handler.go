package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marketloop/commerce-backend/internal/auth"
	"github.com/marketloop/commerce-backend/internal/validation"
)

// RegisterUserRoutes registers signup, login and the current-account read.
func RegisterUserRoutes(r *gin.Engine, cfg Config) {
	v := validation.New()

	r.POST("/auth/signup", func(c *gin.Context) {
		var req validation.SignupRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			respondError(c, err)
			return
		}
		result, err := cfg.Users.Signup(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, result)
	})

	r.POST("/auth/login", func(c *gin.Context) {
		var req validation.LoginRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			respondError(c, err)
			return
		}
		result, err := cfg.Users.Login(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	})

	r.GET("/me", func(c *gin.Context) {
		user, err := cfg.Users.Me(c.Request.Context(), auth.PrincipalFrom(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	})
}
