package orders

import (
	"context"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// mockDynamo is a minimal in-memory single-table DynamoDB, keyed by order_id.
// It implements just enough of the wire contract for the Store under test:
// plain puts and gets, conditional status updates, and the user_id query.
type mockDynamo struct {
	items map[string]map[string]types.AttributeValue
}

func newMockDynamo() *mockDynamo {
	return &mockDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(key map[string]types.AttributeValue) string {
	return key["order_id"].(*types.AttributeValueMemberS).Value
}

func (m *mockDynamo) PutItem(ctx context.Context, in *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	k := in.Item["order_id"].(*types.AttributeValueMemberS).Value
	m.items[k] = in.Item
	return &dyn.PutItemOutput{}, nil
}

func (m *mockDynamo) GetItem(ctx context.Context, in *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	item, ok := m.items[keyOf(in.Key)]
	if !ok {
		return &dyn.GetItemOutput{}, nil
	}
	return &dyn.GetItemOutput{Item: item}, nil
}

func (m *mockDynamo) UpdateItem(ctx context.Context, in *dyn.UpdateItemInput, optFns ...func(*dyn.Options)) (*dyn.UpdateItemOutput, error) {
	item, ok := m.items[keyOf(in.Key)]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{}
	}
	if in.ConditionExpression != nil {
		expected := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberS).Value
		current := item["status"].(*types.AttributeValueMemberS).Value
		if current != expected {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	item["status"] = in.ExpressionAttributeValues[":new"]
	item["updated_at"] = in.ExpressionAttributeValues[":ua"]
	return &dyn.UpdateItemOutput{}, nil
}

func (m *mockDynamo) DeleteItem(ctx context.Context, in *dyn.DeleteItemInput, optFns ...func(*dyn.Options)) (*dyn.DeleteItemOutput, error) {
	delete(m.items, keyOf(in.Key))
	return &dyn.DeleteItemOutput{}, nil
}

func (m *mockDynamo) Query(ctx context.Context, in *dyn.QueryInput, optFns ...func(*dyn.Options)) (*dyn.QueryOutput, error) {
	uid := in.ExpressionAttributeValues[":uid"].(*types.AttributeValueMemberS).Value
	out := &dyn.QueryOutput{}
	for _, item := range m.items {
		if item["user_id"].(*types.AttributeValueMemberS).Value == uid {
			out.Items = append(out.Items, item)
		}
	}
	return out, nil
}

func (m *mockDynamo) Scan(ctx context.Context, in *dyn.ScanInput, optFns ...func(*dyn.Options)) (*dyn.ScanOutput, error) {
	out := &dyn.ScanOutput{}
	for _, item := range m.items {
		out.Items = append(out.Items, item)
	}
	return out, nil
}
