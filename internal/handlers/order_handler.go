package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marketloop/commerce-backend/internal/apperr"
	"github.com/marketloop/commerce-backend/internal/auth"
	"github.com/marketloop/commerce-backend/internal/idempotency"
	"github.com/marketloop/commerce-backend/internal/validation"
)

// RegisterOrderRoutes registers the order workflow endpoints.
func RegisterOrderRoutes(r *gin.Engine, cfg Config) {
	r.POST("/orders", func(c *gin.Context) {
		ctx := c.Request.Context()
		p := auth.PrincipalFrom(c)

		var req validation.PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("Invalid request body"))
			return
		}

		// Optional duplicate-suppression keyed by the client header. The
		// workflow itself stays oblivious to it.
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey != "" && cfg.Idempotency != nil {
			created, err := cfg.Idempotency.CreateIfNotExists(ctx, idempKey, "")
			if err != nil {
				respondError(c, apperr.Internal(err))
				return
			}
			if !created {
				replayIdempotent(c, cfg, idempKey)
				return
			}
		}

		order, err := cfg.Orders.Place(ctx, p, req)
		if err != nil {
			if idempKey != "" && cfg.Idempotency != nil {
				if markErr := cfg.Idempotency.MarkFailed(ctx, idempKey, err.Error()); markErr != nil {
					log.Printf("mark idempotency failed key=%s: %v", idempKey, markErr)
				}
			}
			respondError(c, err)
			return
		}

		if idempKey != "" && cfg.Idempotency != nil {
			body, _ := json.Marshal(order)
			if markErr := cfg.Idempotency.MarkDone(ctx, idempKey, string(body), http.StatusCreated); markErr != nil {
				log.Printf("mark idempotency done key=%s: %v", idempKey, markErr)
			}
		}
		if cfg.Metrics != nil {
			if err := cfg.Metrics.OrderPlaced(ctx, order.Total, len(order.Items)); err != nil {
				log.Printf("record order metrics order=%s: %v", order.OrderID, err)
			}
		}

		c.Header("Location", fmt.Sprintf("/orders/%s", order.OrderID))
		c.JSON(http.StatusCreated, order)
	})

	r.GET("/orders", func(c *gin.Context) {
		list, err := cfg.Orders.ListForUser(c.Request.Context(), auth.PrincipalFrom(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/orders/:id", func(c *gin.Context) {
		order, err := cfg.Orders.Get(c.Request.Context(), auth.PrincipalFrom(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	})

	r.PUT("/orders/:id/status", func(c *gin.Context) {
		var req validation.UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("Invalid request body"))
			return
		}
		order, err := cfg.Orders.UpdateStatus(c.Request.Context(), auth.PrincipalFrom(c), c.Param("id"), req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	})

	r.POST("/orders/:id/cancel", func(c *gin.Context) {
		cancelled, err := cfg.Orders.Cancel(c.Request.Context(), auth.PrincipalFrom(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cancelled": cancelled})
	})
}

// replayIdempotent serves a request whose key already has a record: the
// stored response when the first attempt finished, a 202 while it is still
// running, and a retryable failure otherwise.
func replayIdempotent(c *gin.Context, cfg Config, key string) {
	rec, err := cfg.Idempotency.Get(c.Request.Context(), key)
	if err != nil {
		respondError(c, apperr.Internal(err))
		return
	}
	if rec == nil {
		respondError(c, apperr.Internal(fmt.Errorf("idempotency record missing for key %s", key)))
		return
	}
	switch rec.Status {
	case idempotency.StatusDone:
		if rec.ResponseBody != "" {
			c.Data(rec.ResponseStatus, "application/json", []byte(rec.ResponseBody))
			return
		}
		c.JSON(http.StatusOK, gin.H{"order_id": rec.OrderID})
	case idempotency.StatusInProgress:
		c.JSON(http.StatusAccepted, gin.H{"message": "request already in progress"})
	case idempotency.StatusFailed:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"kind":    string(apperr.KindInternal),
				"message": "Previous attempt failed, retry with a new key",
			},
		})
	default:
		respondError(c, apperr.Internal(fmt.Errorf("unknown idempotency status %q", rec.Status)))
	}
}
