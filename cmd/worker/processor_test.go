package main

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketloop/commerce-backend/internal/orders"
)

type fakeOrderSource struct {
	byID map[string]*orders.Order
}

func newFakeOrderSource() *fakeOrderSource {
	return &fakeOrderSource{byID: map[string]*orders.Order{}}
}

func (f *fakeOrderSource) Get(ctx context.Context, orderID string) (*orders.Order, error) {
	o, ok := f.byID[orderID]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderSource) UpdateStatusExpected(ctx context.Context, orderID, expected, next string) error {
	o, ok := f.byID[orderID]
	if !ok || o.Status != expected {
		return orders.ErrStatusMismatch
	}
	o.Status = next
	return nil
}

func placedEvent(orderID string) events.SQSEvent {
	body, _ := json.Marshal(OrderPlacedMessage{OrderID: orderID, UserID: "u1", Total: 42})
	return events.SQSEvent{Records: []events.SQSMessage{{Body: string(body)}}}
}

func TestProcess_StartsFulfilment(t *testing.T) {
	src := newFakeOrderSource()
	src.byID["o1"] = &orders.Order{OrderID: "o1", UserID: "u1", Status: orders.StatusPlaced}
	p := NewProcessor(src)

	require.NoError(t, p.Handle(context.Background(), placedEvent("o1")))
	assert.Equal(t, orders.StatusProcessing, src.byID["o1"].Status)
}

func TestProcess_DuplicateDeliveryIsHarmless(t *testing.T) {
	src := newFakeOrderSource()
	src.byID["o1"] = &orders.Order{OrderID: "o1", UserID: "u1", Status: orders.StatusPlaced}
	p := NewProcessor(src)
	ctx := context.Background()

	require.NoError(t, p.Handle(ctx, placedEvent("o1")))
	require.NoError(t, p.Handle(ctx, placedEvent("o1")), "redelivery must be swallowed")
	assert.Equal(t, orders.StatusProcessing, src.byID["o1"].Status)
}

func TestProcess_CancelledBeforeFulfilment(t *testing.T) {
	src := newFakeOrderSource()
	src.byID["o1"] = &orders.Order{OrderID: "o1", UserID: "u1", Status: orders.StatusCancelled}
	p := NewProcessor(src)

	require.NoError(t, p.Handle(context.Background(), placedEvent("o1")), "cancelled orders are skipped, not retried")
	assert.Equal(t, orders.StatusCancelled, src.byID["o1"].Status)
}

func TestProcess_MissingOrderFails(t *testing.T) {
	src := newFakeOrderSource()
	p := NewProcessor(src)

	err := p.Handle(context.Background(), placedEvent("ghost"))
	require.Error(t, err, "missing order must surface so the message gets retried")
}

func TestProcess_MalformedBodyFails(t *testing.T) {
	p := NewProcessor(newFakeOrderSource())

	ev := events.SQSEvent{Records: []events.SQSMessage{{Body: "{not json"}}}
	err := p.Handle(context.Background(), ev)
	require.Error(t, err)
	assert.Contains(t, fmt.Sprint(err), "invalid message body")
}
