package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marketloop/commerce-backend/internal/apperr"
)

// respondError maps the error taxonomy onto HTTP at the single boundary.
// Internal detail is logged server-side and never rendered to the caller.
func respondError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(statusOf(kind), gin.H{
		"error": gin.H{
			"kind":    string(kind),
			"message": apperr.MessageOf(err),
		},
	})
}

func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindAuthentication:
		return http.StatusUnauthorized
	case apperr.KindUnauthorized:
		return http.StatusForbidden
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
