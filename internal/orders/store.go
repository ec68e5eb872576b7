package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/marketloop/commerce-backend/internal/aws"
)

// ErrStatusMismatch reports a conditional status update whose expected
// current status did not hold.
var ErrStatusMismatch = errors.New("status mismatch/conditional failed")

// Store encapsulates operations on the orders table. Orders are listed per
// user through the user_id-index GSI, sorted by placed_at.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewStore creates a new orders Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// Create persists a new order document.
func (s *Store) Create(ctx context.Context, o *Order) error {
	now := s.nowFunc()
	if o.PlacedAt.IsZero() {
		o.PlacedAt = now
	}
	o.UpdatedAt = now

	item, err := attributevalue.MarshalMap(o)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put order: %w", err)
	}
	return nil
}

// Get fetches an order by order_id. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, orderID string) (*Order, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var o Order
	if err := attributevalue.UnmarshalMap(out.Item, &o); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return &o, nil
}

// ListByUser returns every order owned by userID, newest placement first.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	out, err := s.client.Query(ctx, &dyn.QueryInput{
		TableName:              &s.tableName,
		IndexName:              strPtr("user_id-index"),
		KeyConditionExpression: strPtr("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: boolPtr(false), // placed_at descending
	})
	if err != nil {
		return nil, fmt.Errorf("query orders by user: %w", err)
	}
	list := make([]Order, 0, len(out.Items))
	for _, item := range out.Items {
		var o Order
		if err := attributevalue.UnmarshalMap(item, &o); err != nil {
			return nil, fmt.Errorf("unmarshal order: %w", err)
		}
		list = append(list, o)
	}
	return list, nil
}

// UpdateStatus overwrites the order status unconditionally. This is the
// admin path; the transition graph is intentionally not enforced here.
func (s *Store) UpdateStatus(ctx context.Context, orderID, newStatus string) error {
	now := s.nowFunc()
	_, err := s.client.UpdateItem(ctx, &dyn.UpdateItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		UpdateExpression:         strPtr("SET #s = :new, updated_at = :ua"),
		ExpressionAttributeNames: map[string]string{"#s": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":new": &types.AttributeValueMemberS{Value: newStatus},
			":ua":  &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

// UpdateStatusExpected conditionally moves expected -> newStatus. Returns
// ErrStatusMismatch if the order is no longer in the expected status; used
// by the fulfilment worker so competing consumers stay idempotent.
func (s *Store) UpdateStatusExpected(ctx context.Context, orderID, expected, newStatus string) error {
	now := s.nowFunc()
	_, err := s.client.UpdateItem(ctx, &dyn.UpdateItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		UpdateExpression:         strPtr("SET #s = :new, updated_at = :ua"),
		ExpressionAttributeNames: map[string]string{"#s": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":new":      &types.AttributeValueMemberS{Value: newStatus},
			":ua":       &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
			":expected": &types.AttributeValueMemberS{Value: expected},
		},
		ConditionExpression: strPtr("#s = :expected"),
	})
	if err != nil {
		var cc *types.ConditionalCheckFailedException
		if errors.As(err, &cc) {
			return ErrStatusMismatch
		}
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
