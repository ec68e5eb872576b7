package products

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/marketloop/commerce-backend/internal/aws"
)

// Store encapsulates operations on the products table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewStore creates a new products Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// Get fetches a product by product_id. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, productID string) (*Product, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: productID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var p Product
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	return &p, nil
}

// GetBySlug fetches an active product by slug. Returns (nil, nil) if not found.
func (s *Store) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	out, err := s.client.Query(ctx, &dyn.QueryInput{
		TableName:              &s.tableName,
		IndexName:              strPtr("slug-index"),
		KeyConditionExpression: strPtr("slug = :slug"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":slug": &types.AttributeValueMemberS{Value: slug},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("query product by slug: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, nil
	}
	var p Product
	if err := attributevalue.UnmarshalMap(out.Items[0], &p); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	return &p, nil
}

// GetByName looks a product up by exact name, used for the uniqueness check
// on create. Returns (nil, nil) if no product carries the name.
func (s *Store) GetByName(ctx context.Context, name string) (*Product, error) {
	out, err := s.client.Scan(ctx, &dyn.ScanInput{
		TableName:                &s.tableName,
		FilterExpression:         strPtr("#n = :name"),
		ExpressionAttributeNames: map[string]string{"#n": "name"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("scan products by name: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, nil
	}
	var p Product
	if err := attributevalue.UnmarshalMap(out.Items[0], &p); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	return &p, nil
}

// Put persists the full product document, stamping timestamps.
func (s *Store) Put(ctx context.Context, p *Product) error {
	now := s.nowFunc()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put product: %w", err)
	}
	return nil
}

// ListActive scans every active product. Filtering and paging happen in the
// service; the catalog is small enough for a full scan.
func (s *Store) ListActive(ctx context.Context) ([]Product, error) {
	out, err := s.client.Scan(ctx, &dyn.ScanInput{
		TableName:        &s.tableName,
		FilterExpression: strPtr("is_active = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	list := make([]Product, 0, len(out.Items))
	for _, item := range out.Items {
		var p Product
		if err := attributevalue.UnmarshalMap(item, &p); err != nil {
			return nil, fmt.Errorf("unmarshal product: %w", err)
		}
		list = append(list, p)
	}
	return list, nil
}

// SetAverageRating overwrites the derived rating after a review mutation.
func (s *Store) SetAverageRating(ctx context.Context, productID string, avg float64) error {
	now := s.nowFunc()
	_, err := s.client.UpdateItem(ctx, &dyn.UpdateItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: productID},
		},
		UpdateExpression: strPtr("SET average_rating = :avg, updated_at = :ua"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":avg": &types.AttributeValueMemberN{Value: fmt.Sprintf("%g", avg)},
			":ua":  &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		return fmt.Errorf("update average rating: %w", err)
	}
	return nil
}

func strPtr(s string) *string { return &s }
