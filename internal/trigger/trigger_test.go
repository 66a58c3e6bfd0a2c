package trigger

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yairfalse/onevision/internal/identity"
)

type mockLambdaClient struct {
	InvokeFunc func(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

func (m *mockLambdaClient) Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	return m.InvokeFunc(ctx, params, optFns...)
}

func TestTrigger_Run(t *testing.T) {
	var got *lambda.InvokeInput
	mock := &mockLambdaClient{
		InvokeFunc: func(_ context.Context, params *lambda.InvokeInput, _ ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
			got = params
			return &lambda.InvokeOutput{StatusCode: 202}, nil
		},
	}

	tr, err := New(mock, "inventory-collector", identity.Static("alice"), zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, tr.Run(context.Background()))

	require.NotNil(t, got)
	assert.Equal(t, "inventory-collector", aws.ToString(got.FunctionName))
	assert.Equal(t, lambdatypes.InvocationTypeEvent, got.InvocationType)

	var p Payload
	require.NoError(t, json.Unmarshal(got.Payload, &p))
	assert.Equal(t, Payload{Source: "onevision", RequestedBy: "alice"}, p)
}

func TestTrigger_InvokeError(t *testing.T) {
	mock := &mockLambdaClient{
		InvokeFunc: func(_ context.Context, _ *lambda.InvokeInput, _ ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
			return nil, errors.New("access denied")
		},
	}

	tr, err := New(mock, "collector", identity.Static("bob"), zerolog.Nop())
	require.NoError(t, err)

	err = tr.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invoke collector")
}

func TestTrigger_FunctionError(t *testing.T) {
	mock := &mockLambdaClient{
		InvokeFunc: func(_ context.Context, _ *lambda.InvokeInput, _ ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
			return &lambda.InvokeOutput{StatusCode: 200, FunctionError: aws.String("Unhandled")}, nil
		},
	}

	tr, err := New(mock, "collector", identity.Static("bob"), zerolog.Nop())
	require.NoError(t, err)
	assert.ErrorContains(t, tr.Run(context.Background()), "Unhandled")
}

func TestNew_RequiresFunction(t *testing.T) {
	_, err := New(&mockLambdaClient{}, "", nil, zerolog.Nop())
	assert.ErrorIs(t, err, ErrFunctionRequired)
}
