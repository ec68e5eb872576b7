package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/joho/godotenv"

	"github.com/marketloop/commerce-backend/internal/aws"
	"github.com/marketloop/commerce-backend/internal/carts"
	"github.com/marketloop/commerce-backend/internal/categories"
	"github.com/marketloop/commerce-backend/internal/handlers"
	"github.com/marketloop/commerce-backend/internal/idempotency"
	"github.com/marketloop/commerce-backend/internal/metrics"
	"github.com/marketloop/commerce-backend/internal/orders"
	"github.com/marketloop/commerce-backend/internal/products"
	"github.com/marketloop/commerce-backend/internal/reviews"
	"github.com/marketloop/commerce-backend/internal/users"
)

func main() {
	// .env is for local development only; missing file is fine.
	_ = godotenv.Load()

	clients, err := aws.NewClients(context.Background())
	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	userStore := users.NewStore(clients.DynamoDB, getEnv("USERS_TABLE", "users"))
	productStore := products.NewStore(clients.DynamoDB, getEnv("PRODUCTS_TABLE", "products"))
	categoryStore := categories.NewStore(clients.DynamoDB, getEnv("CATEGORIES_TABLE", "categories"))
	reviewStore := reviews.NewStore(clients.DynamoDB, getEnv("REVIEWS_TABLE", "reviews"))
	cartStore := carts.NewStore(clients.DynamoDB, getEnv("CARTS_TABLE", "carts"))
	orderStore := orders.NewStore(clients.DynamoDB, getEnv("ORDERS_TABLE", "orders"))

	cfg := handlers.Config{
		JWTSecret:  jwtSecret,
		Users:      users.NewService(userStore, jwtSecret),
		Products:   products.NewService(productStore),
		Categories: categories.NewService(categoryStore),
		Reviews:    reviews.NewService(reviewStore, productStore),
		Carts:      carts.NewService(cartStore, productStore),
	}

	var publisher orders.EventPublisher
	if queueURL := os.Getenv("ORDERS_QUEUE_URL"); queueURL != "" {
		publisher = aws.NewPublisher(clients.SQS, queueURL)
	}
	cfg.Orders = orders.NewWorkflow(orderStore, cartStore, productStore, publisher)

	if idempTable := os.Getenv("IDEMPOTENCY_TABLE"); idempTable != "" {
		cfg.Idempotency = idempotency.NewStore(clients.DynamoDB, idempTable, 48*time.Hour)
	}
	if ns := os.Getenv("METRICS_NAMESPACE"); ns != "" {
		cfg.Metrics = metrics.NewRecorder(clients.CloudWatch, ns)
	}

	r := handlers.NewRouter(cfg)

	// If RUN_LOCAL is set, run a plain HTTP server for development.
	if os.Getenv("RUN_LOCAL") == "true" {
		addr := ":" + getEnv("PORT", "8080")
		log.Printf("running local server on %s", addr)
		if err := r.Run(addr); err != nil {
			log.Fatalf("failed to run local server: %v", err)
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)
	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
