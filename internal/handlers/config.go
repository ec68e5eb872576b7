package handlers

import (
	"github.com/marketloop/commerce-backend/internal/carts"
	"github.com/marketloop/commerce-backend/internal/categories"
	"github.com/marketloop/commerce-backend/internal/idempotency"
	"github.com/marketloop/commerce-backend/internal/metrics"
	"github.com/marketloop/commerce-backend/internal/orders"
	"github.com/marketloop/commerce-backend/internal/products"
	"github.com/marketloop/commerce-backend/internal/reviews"
	"github.com/marketloop/commerce-backend/internal/users"
)

// Config groups dependencies for the API handlers.
type Config struct {
	JWTSecret string

	Users      *users.Service
	Products   *products.Service
	Categories *categories.Service
	Reviews    *reviews.Service
	Carts      *carts.Service
	Orders     *orders.Workflow

	// Optional: nil disables the feature.
	Idempotency *idempotency.Store
	Metrics     *metrics.Recorder
}
