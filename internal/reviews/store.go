package reviews

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/marketloop/commerce-backend/internal/aws"
)

// Store encapsulates operations on the reviews table. Per-product listing
// goes through the product_id-index GSI.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewStore creates a new reviews Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// Get fetches a review by review_id. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, reviewID string) (*Review, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"review_id": &types.AttributeValueMemberS{Value: reviewID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var r Review
	if err := attributevalue.UnmarshalMap(out.Item, &r); err != nil {
		return nil, fmt.Errorf("unmarshal review: %w", err)
	}
	return &r, nil
}

// ListByProduct returns every review for productID.
func (s *Store) ListByProduct(ctx context.Context, productID string) ([]Review, error) {
	out, err := s.client.Query(ctx, &dyn.QueryInput{
		TableName:              &s.tableName,
		IndexName:              strPtr("product_id-index"),
		KeyConditionExpression: strPtr("product_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: productID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("query reviews by product: %w", err)
	}
	list := make([]Review, 0, len(out.Items))
	for _, item := range out.Items {
		var r Review
		if err := attributevalue.UnmarshalMap(item, &r); err != nil {
			return nil, fmt.Errorf("unmarshal review: %w", err)
		}
		list = append(list, r)
	}
	return list, nil
}

// GetByProductAndUser enforces the one-review-per-user rule. Returns
// (nil, nil) when the user has not reviewed the product.
func (s *Store) GetByProductAndUser(ctx context.Context, productID, userID string) (*Review, error) {
	out, err := s.client.Query(ctx, &dyn.QueryInput{
		TableName:              &s.tableName,
		IndexName:              strPtr("product_id-index"),
		KeyConditionExpression: strPtr("product_id = :pid"),
		FilterExpression:       strPtr("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: productID},
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("query review by product and user: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, nil
	}
	var r Review
	if err := attributevalue.UnmarshalMap(out.Items[0], &r); err != nil {
		return nil, fmt.Errorf("unmarshal review: %w", err)
	}
	return &r, nil
}

// Put persists the full review document, stamping timestamps.
func (s *Store) Put(ctx context.Context, r *Review) error {
	now := s.nowFunc()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	item, err := attributevalue.MarshalMap(r)
	if err != nil {
		return fmt.Errorf("marshal review: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put review: %w", err)
	}
	return nil
}

// Delete removes a review document. Reviews are the one entity that is
// hard-deleted.
func (s *Store) Delete(ctx context.Context, reviewID string) error {
	_, err := s.client.DeleteItem(ctx, &dyn.DeleteItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"review_id": &types.AttributeValueMemberS{Value: reviewID},
		},
	})
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

func strPtr(s string) *string { return &s }
