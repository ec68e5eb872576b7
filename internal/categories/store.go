package categories

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/marketloop/commerce-backend/internal/aws"
)

// Store encapsulates operations on the categories table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewStore creates a new categories Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// Get fetches a category by category_id. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, categoryID string) (*Category, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"category_id": &types.AttributeValueMemberS{Value: categoryID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var c Category
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, fmt.Errorf("unmarshal category: %w", err)
	}
	return &c, nil
}

// GetByName looks a category up by exact name for the uniqueness check.
// Returns (nil, nil) when no category carries the name.
func (s *Store) GetByName(ctx context.Context, name string) (*Category, error) {
	out, err := s.client.Scan(ctx, &dyn.ScanInput{
		TableName:                &s.tableName,
		FilterExpression:         strPtr("#n = :name"),
		ExpressionAttributeNames: map[string]string{"#n": "name"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("scan categories by name: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, nil
	}
	var c Category
	if err := attributevalue.UnmarshalMap(out.Items[0], &c); err != nil {
		return nil, fmt.Errorf("unmarshal category: %w", err)
	}
	return &c, nil
}

// ListActive scans every active category.
func (s *Store) ListActive(ctx context.Context) ([]Category, error) {
	out, err := s.client.Scan(ctx, &dyn.ScanInput{
		TableName:        &s.tableName,
		FilterExpression: strPtr("is_active = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}
	list := make([]Category, 0, len(out.Items))
	for _, item := range out.Items {
		var c Category
		if err := attributevalue.UnmarshalMap(item, &c); err != nil {
			return nil, fmt.Errorf("unmarshal category: %w", err)
		}
		list = append(list, c)
	}
	return list, nil
}

// Put persists the full category document, stamping timestamps.
func (s *Store) Put(ctx context.Context, c *Category) error {
	now := s.nowFunc()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal category: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put category: %w", err)
	}
	return nil
}

func strPtr(s string) *string { return &s }
