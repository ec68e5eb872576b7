package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"

	"github.com/marketloop/commerce-backend/internal/aws"
	"github.com/marketloop/commerce-backend/internal/orders"
)

func main() {
	_ = godotenv.Load()

	clients, err := aws.NewClients(context.Background())
	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	ordersTable := os.Getenv("ORDERS_TABLE")
	if ordersTable == "" {
		ordersTable = "orders"
	}
	p := NewProcessor(orders.NewStore(clients.DynamoDB, ordersTable))

	// If RUN_LOCAL=true, simulate a single SQS event for local testing.
	if os.Getenv("RUN_LOCAL") == "true" {
		testBody := os.Getenv("LOCAL_SQS_BODY")
		if testBody == "" {
			testBody = `{"order_id":"local-order-1","user_id":"local-user-1","total":9.99}`
		}
		event := events.SQSEvent{
			Records: []events.SQSMessage{
				{Body: testBody},
			},
		}
		if err := p.Handle(context.Background(), event); err != nil {
			log.Fatalf("local handler error: %v", err)
		}
		return
	}

	lambda.Start(p.Handle)
}
