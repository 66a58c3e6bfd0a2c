package store

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDynamoDBClient implements DynamoDBAPI for testing.
type mockDynamoDBClient struct {
	ScanFunc func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

func (m *mockDynamoDBClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return m.ScanFunc(ctx, params, optFns...)
}

func TestNewDynamoStore_RequiresTable(t *testing.T) {
	_, err := NewDynamoStore(&mockDynamoDBClient{}, "")
	assert.ErrorIs(t, err, ErrTableRequired)
}

func TestDynamoStore_List_ConvertsItems(t *testing.T) {
	mock := &mockDynamoDBClient{
		ScanFunc: func(_ context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			assert.Equal(t, "inventory", aws.ToString(params.TableName))
			assert.Equal(t, int32(50), aws.ToInt32(params.Limit))
			assert.Nil(t, params.ExclusiveStartKey)
			return &dynamodb.ScanOutput{
				Items: []map[string]types.AttributeValue{{
					"id":        &types.AttributeValueMemberS{Value: "vol-1"},
					"size":      &types.AttributeValueMemberN{Value: "100"},
					"encrypted": &types.AttributeValueMemberBOOL{Value: true},
					"ips":       &types.AttributeValueMemberSS{Value: []string{"10.0.0.1"}},
					"metrics": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
						"readOps": &types.AttributeValueMemberN{Value: "3"},
					}},
					"zones": &types.AttributeValueMemberL{Value: []types.AttributeValue{
						&types.AttributeValueMemberS{Value: "us-east-1a"},
					}},
					"gone": &types.AttributeValueMemberNULL{Value: true},
				}},
			}, nil
		},
	}
	s, err := NewDynamoStore(mock, "inventory")
	require.NoError(t, err)

	page, err := s.List(context.Background(), Query{Limit: 50})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.True(t, page.Done())

	item := page.Items[0]
	assert.Equal(t, map[string]any{"S": "vol-1"}, item["id"])
	assert.Equal(t, map[string]any{"N": "100"}, item["size"])
	assert.Equal(t, map[string]any{"BOOL": true}, item["encrypted"])
	assert.Equal(t, map[string]any{"SS": []any{"10.0.0.1"}}, item["ips"])
	assert.Equal(t, map[string]any{"M": map[string]any{"readOps": map[string]any{"N": "3"}}}, item["metrics"])
	assert.Equal(t, map[string]any{"L": []any{map[string]any{"S": "us-east-1a"}}}, item["zones"])
	assert.Equal(t, map[string]any{"NULL": true}, item["gone"])
}

func TestDynamoStore_List_CursorRoundTrip(t *testing.T) {
	lastKey := map[string]types.AttributeValue{
		"id":                   &types.AttributeValueMemberS{Value: "i-10"},
		"resourceTypeRegionId": &types.AttributeValueMemberS{Value: "EC2Instance#us-east-1#i-10"},
	}
	calls := 0
	mock := &mockDynamoDBClient{
		ScanFunc: func(_ context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			calls++
			if calls == 1 {
				return &dynamodb.ScanOutput{LastEvaluatedKey: lastKey}, nil
			}
			assert.Equal(t, lastKey, params.ExclusiveStartKey)
			return &dynamodb.ScanOutput{}, nil
		},
	}
	s, err := NewDynamoStore(mock, "inventory")
	require.NoError(t, err)

	first, err := s.List(context.Background(), Query{})
	require.NoError(t, err)
	require.False(t, first.Done())

	second, err := s.List(context.Background(), Query{Cursor: first.Next})
	require.NoError(t, err)
	assert.True(t, second.Done())
	assert.Equal(t, 2, calls)
}

func TestDynamoStore_List_InvalidCursor(t *testing.T) {
	mock := &mockDynamoDBClient{
		ScanFunc: func(context.Context, *dynamodb.ScanInput, ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			t.Fatal("scan must not be called with a bad cursor")
			return nil, nil
		},
	}
	s, err := NewDynamoStore(mock, "inventory")
	require.NoError(t, err)

	for _, c := range []Cursor{"%%%", "bm90IGpzb24", "e30"} {
		_, err = s.List(context.Background(), Query{Cursor: c})
		assert.ErrorIs(t, err, ErrInvalidCursor, string(c))
	}
}

func TestDynamoStore_List_FilterExpression(t *testing.T) {
	mock := &mockDynamoDBClient{
		ScanFunc: func(_ context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			assert.Equal(t, "#f0 = :v0 AND NOT begins_with(#f1, :v1) AND attribute_exists(#f2)", aws.ToString(params.FilterExpression))
			assert.Equal(t, map[string]string{"#f0": "region", "#f1": "resourceType", "#f2": "accountId"}, params.ExpressionAttributeNames)
			assert.Equal(t, map[string]types.AttributeValue{
				":v0": &types.AttributeValueMemberS{Value: "us-east-1"},
				":v1": &types.AttributeValueMemberS{Value: "METRIC"},
			}, params.ExpressionAttributeValues)
			return &dynamodb.ScanOutput{}, nil
		},
	}
	s, err := NewDynamoStore(mock, "inventory")
	require.NoError(t, err)

	_, err = s.List(context.Background(), Query{Filters: []Condition{
		Equals("region", "us-east-1"),
		BeginsWith("resourceType", "METRIC").Negate(),
		Exists("accountId"),
	}})
	require.NoError(t, err)
}

func TestDynamoStore_List_Error(t *testing.T) {
	boom := errors.New("throttled")
	mock := &mockDynamoDBClient{
		ScanFunc: func(context.Context, *dynamodb.ScanInput, ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			return nil, boom
		},
	}
	s, err := NewDynamoStore(mock, "inventory")
	require.NoError(t, err)

	_, err = s.List(context.Background(), Query{})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "scan inventory")
}

func TestFilterExpression_NotExists(t *testing.T) {
	expr, names, values := filterExpression([]Condition{Exists("isMetric").Negate()})
	assert.Equal(t, "attribute_not_exists(#f0)", expr)
	assert.Equal(t, map[string]string{"#f0": "isMetric"}, names)
	assert.Empty(t, values)
}
