package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() (*Store, *mockDynamo) {
	mock := newMockDynamo()
	s := NewStore(mock, "orders")
	s.nowFunc = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return s, mock
}

func TestStore_CreateAndGet(t *testing.T) {
	s, _ := testStore()
	ctx := context.Background()

	order := &Order{
		OrderID: "o1",
		UserID:  "u1",
		Items:   []LineItem{{ProductID: "p1", Name: "Mouse", Price: 25.50, Quantity: 2}},
		Total:   51,
		Status:  StatusPlaced,
		Payment: Payment{Method: MethodCard, Status: PaymentPaid, TransactionID: "TXN-1-1"},
	}
	require.NoError(t, s.Create(ctx, order))
	assert.False(t, order.PlacedAt.IsZero(), "Create must stamp placed_at")

	got, err := s.Get(ctx, "o1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, 51.0, got.Total)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Mouse", got.Items[0].Name)
	assert.Equal(t, "TXN-1-1", got.Payment.TransactionID)
}

func TestStore_GetMissing(t *testing.T) {
	s, _ := testStore()

	got, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got, "missing order is (nil, nil), not an error")
}

func TestStore_ListByUser(t *testing.T) {
	s, _ := testStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &Order{OrderID: "o1", UserID: "u1", Status: StatusPlaced}))
	require.NoError(t, s.Create(ctx, &Order{OrderID: "o2", UserID: "u1", Status: StatusPlaced}))
	require.NoError(t, s.Create(ctx, &Order{OrderID: "o3", UserID: "u2", Status: StatusPlaced}))

	list, err := s.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestStore_UpdateStatus(t *testing.T) {
	s, _ := testStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &Order{OrderID: "o1", UserID: "u1", Status: StatusPlaced}))
	require.NoError(t, s.UpdateStatus(ctx, "o1", StatusShipped))

	got, err := s.Get(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, got.Status)
}

func TestStore_UpdateStatusExpected(t *testing.T) {
	s, _ := testStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &Order{OrderID: "o1", UserID: "u1", Status: StatusPlaced}))

	require.NoError(t, s.UpdateStatusExpected(ctx, "o1", StatusPlaced, StatusProcessing))

	// Second transition from the stale expected status must report mismatch.
	err := s.UpdateStatusExpected(ctx, "o1", StatusPlaced, StatusProcessing)
	assert.ErrorIs(t, err, ErrStatusMismatch)

	got, err := s.Get(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, got.Status)
}
