package carts

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/marketloop/commerce-backend/internal/aws"
)

// Store encapsulates operations on the carts table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewStore creates a new carts Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// Get fetches the cart owned by userID. Returns (nil, nil) if the user has
// no cart yet.
func (s *Store) Get(ctx context.Context, userID string) (*Cart, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var c Cart
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	return &c, nil
}

// Put upserts the whole cart document, stamping timestamps. The table is
// keyed by user_id so this is the idempotent one-cart-per-user write.
func (s *Store) Put(ctx context.Context, c *Cart) error {
	now := s.nowFunc()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put cart: %w", err)
	}
	return nil
}
