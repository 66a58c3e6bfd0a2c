package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/yairfalse/onevision/pkg/wire"
)

// DynamoDBAPI defines the DynamoDB operations used by the store.
type DynamoDBAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoStore scans a DynamoDB table.
type DynamoStore struct {
	client DynamoDBAPI
	table  string
}

// NewDynamoStore creates a store over table.
func NewDynamoStore(client DynamoDBAPI, table string) (*DynamoStore, error) {
	if table == "" {
		return nil, ErrTableRequired
	}
	return &DynamoStore{client: client, table: table}, nil
}

// Table returns the scanned table name.
func (s *DynamoStore) Table() string {
	return s.table
}

// List issues one Scan. Items come back in wire-tagged form.
func (s *DynamoStore) List(ctx context.Context, q Query) (Page, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(s.table)}
	if q.Limit > 0 {
		input.Limit = aws.Int32(q.Limit)
	}
	if q.Cursor != "" {
		key, err := decodeCursor(q.Cursor)
		if err != nil {
			return Page{}, err
		}
		input.ExclusiveStartKey = key
	}
	if len(q.Filters) > 0 {
		expr, names, values := filterExpression(q.Filters)
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeNames = names
		if len(values) > 0 {
			input.ExpressionAttributeValues = values
		}
	}

	output, err := s.client.Scan(ctx, input)
	if err != nil {
		return Page{}, fmt.Errorf("scan %s: %w", s.table, err)
	}

	page := Page{Items: make([]RawRecord, 0, len(output.Items))}
	for _, item := range output.Items {
		page.Items = append(page.Items, fromItem(item))
	}
	if len(output.LastEvaluatedKey) > 0 {
		next, err := encodeCursor(output.LastEvaluatedKey)
		if err != nil {
			return Page{}, err
		}
		page.Next = next
	}
	return page, nil
}

func filterExpression(conds []Condition) (string, map[string]string, map[string]types.AttributeValue) {
	names := make(map[string]string, len(conds))
	values := make(map[string]types.AttributeValue, len(conds))
	clauses := make([]string, 0, len(conds))

	for i, c := range conds {
		name := "#f" + strconv.Itoa(i)
		value := ":v" + strconv.Itoa(i)
		names[name] = c.Field

		var clause string
		switch c.Op {
		case OpExists:
			if c.Not {
				clauses = append(clauses, "attribute_not_exists("+name+")")
				continue
			}
			clause = "attribute_exists(" + name + ")"
		case OpBeginsWith:
			clause = "begins_with(" + name + ", " + value + ")"
			values[value] = &types.AttributeValueMemberS{Value: c.Value}
		default:
			clause = name + " = " + value
			values[value] = &types.AttributeValueMemberS{Value: c.Value}
		}
		if c.Not {
			clause = "NOT " + clause
		}
		clauses = append(clauses, clause)
	}
	return strings.Join(clauses, " AND "), names, values
}

func fromItem(item map[string]types.AttributeValue) RawRecord {
	out := make(RawRecord, len(item))
	for k, v := range item {
		out[k] = fromAttributeValue(v)
	}
	return out
}

// fromAttributeValue converts an SDK value to the generic tagged form the
// wire package decodes.
func fromAttributeValue(av types.AttributeValue) any {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return map[string]any{wire.TagString: v.Value}
	case *types.AttributeValueMemberN:
		return map[string]any{wire.TagNumber: v.Value}
	case *types.AttributeValueMemberBOOL:
		return map[string]any{wire.TagBool: v.Value}
	case *types.AttributeValueMemberNULL:
		return map[string]any{wire.TagNull: v.Value}
	case *types.AttributeValueMemberM:
		m := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			m[k] = fromAttributeValue(item)
		}
		return map[string]any{wire.TagMap: m}
	case *types.AttributeValueMemberL:
		l := make([]any, len(v.Value))
		for i, item := range v.Value {
			l[i] = fromAttributeValue(item)
		}
		return map[string]any{wire.TagList: l}
	case *types.AttributeValueMemberSS:
		return map[string]any{wire.TagStringSet: stringsToAny(v.Value)}
	case *types.AttributeValueMemberNS:
		return map[string]any{wire.TagNumberSet: stringsToAny(v.Value)}
	case *types.AttributeValueMemberB:
		return map[string]any{"B": base64.StdEncoding.EncodeToString(v.Value)}
	}
	return nil
}

// toAttributeValue is the inverse of fromAttributeValue, used for cursor keys.
func toAttributeValue(v any) (types.AttributeValue, error) {
	m, ok := v.(map[string]any)
	if !ok || len(m) != 1 {
		return nil, fmt.Errorf("%w: key value is not tagged", ErrInvalidCursor)
	}
	for tag, payload := range m {
		switch tag {
		case wire.TagString:
			if s, ok := payload.(string); ok {
				return &types.AttributeValueMemberS{Value: s}, nil
			}
		case wire.TagNumber:
			if s, ok := payload.(string); ok {
				return &types.AttributeValueMemberN{Value: s}, nil
			}
		case wire.TagBool:
			if b, ok := payload.(bool); ok {
				return &types.AttributeValueMemberBOOL{Value: b}, nil
			}
		case "B":
			if s, ok := payload.(string); ok {
				data, err := base64.StdEncoding.DecodeString(s)
				if err == nil {
					return &types.AttributeValueMemberB{Value: data}, nil
				}
			}
		}
		return nil, fmt.Errorf("%w: unsupported key type %q", ErrInvalidCursor, tag)
	}
	return nil, ErrInvalidCursor
}

func encodeCursor(key map[string]types.AttributeValue) (Cursor, error) {
	data, err := json.Marshal(fromItem(key))
	if err != nil {
		return "", fmt.Errorf("encode cursor: %w", err)
	}
	return Cursor(base64.RawURLEncoding.EncodeToString(data)), nil
}

func decodeCursor(c Cursor) (map[string]types.AttributeValue, error) {
	data, err := base64.RawURLEncoding.DecodeString(string(c))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	if len(raw) == 0 {
		return nil, ErrInvalidCursor
	}
	key := make(map[string]types.AttributeValue, len(raw))
	for k, v := range raw {
		av, err := toAttributeValue(v)
		if err != nil {
			return nil, err
		}
		key[k] = av
	}
	return key, nil
}

func stringsToAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
