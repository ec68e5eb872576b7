package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/events"

	"github.com/marketloop/commerce-backend/internal/orders"
)

// OrderSource is the slice of the order store the worker needs.
type OrderSource interface {
	Get(ctx context.Context, orderID string) (*orders.Order, error)
	UpdateStatusExpected(ctx context.Context, orderID, expected, next string) error
}

// Processor consumes order-placed messages and kicks off fulfilment by
// moving orders from placed to processing.
type Processor struct {
	store OrderSource
}

func NewProcessor(store OrderSource) *Processor {
	return &Processor{store: store}
}

// Handle receives an SQS batch event and processes each message.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) error {
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			// Return error: Lambda will retry. If failed too many times, message goes to DLQ.
			log.Printf("worker error: %v", err)
			return err
		}
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, rec events.SQSMessage) error {
	var msg OrderPlacedMessage
	if err := json.Unmarshal([]byte(rec.Body), &msg); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}

	log.Printf("[worker] received order=%s user=%s total=%.2f", msg.OrderID, msg.UserID, msg.Total)

	order, err := p.store.Get(ctx, msg.OrderID)
	if err != nil {
		return fmt.Errorf("failed to fetch order: %w", err)
	}
	if order == nil {
		// Should never happen once the order write settled; DLQ if it does
		return fmt.Errorf("order not found: %s", msg.OrderID)
	}

	// Move placed -> processing. The conditional write makes duplicate
	// deliveries and competing workers harmless.
	err = p.store.UpdateStatusExpected(ctx, msg.OrderID, orders.StatusPlaced, orders.StatusProcessing)
	if err == orders.ErrStatusMismatch {
		o2, err := p.store.Get(ctx, msg.OrderID)
		if err != nil {
			return fmt.Errorf("failed to re-fetch order: %w", err)
		}
		switch o2.Status {
		case orders.StatusProcessing, orders.StatusShipped, orders.StatusDelivered:
			log.Printf("[worker] order=%s already in fulfilment (status=%s)", msg.OrderID, o2.Status)
			return nil
		case orders.StatusCancelled:
			log.Printf("[worker] order=%s was cancelled before fulfilment started", msg.OrderID)
			return nil
		default:
			return fmt.Errorf("unexpected status for order=%s: %s", msg.OrderID, o2.Status)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to update status to processing: %w", err)
	}

	log.Printf("[worker] started fulfilment for order=%s", msg.OrderID)
	return nil
}
