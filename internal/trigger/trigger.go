// Package trigger starts the inventory collector out of band.
package trigger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/rs/zerolog"

	"github.com/yairfalse/onevision/internal/identity"
)

// ErrFunctionRequired is returned when no collector function is configured.
var ErrFunctionRequired = errors.New("collector function name required")

// LambdaAPI is the subset of the Lambda client the trigger needs.
type LambdaAPI interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// Payload is the event sent to the collector.
type Payload struct {
	Source      string `json:"source"`
	RequestedBy string `json:"requestedBy"`
}

// Trigger invokes the collector function asynchronously.
type Trigger struct {
	client   LambdaAPI
	function string
	identity identity.Provider
	log      zerolog.Logger
}

// New creates a Trigger for function.
func New(client LambdaAPI, function string, id identity.Provider, log zerolog.Logger) (*Trigger, error) {
	if function == "" {
		return nil, ErrFunctionRequired
	}
	if id == nil {
		id = identity.EnvProvider{}
	}
	return &Trigger{client: client, function: function, identity: id, log: log}, nil
}

// Run fires one collection. It returns once Lambda has queued the event;
// the collector's results show up in the store later, and callers that
// want them must invalidate their cache.
func (t *Trigger) Run(ctx context.Context) error {
	payload, err := json.Marshal(Payload{
		Source:      "onevision",
		RequestedBy: t.identity.Identity(ctx),
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	out, err := t.client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(t.function),
		InvocationType: lambdatypes.InvocationTypeEvent,
		Payload:        payload,
	})
	if err != nil {
		return fmt.Errorf("invoke %s: %w", t.function, err)
	}
	if out.FunctionError != nil {
		return fmt.Errorf("invoke %s: function error %s", t.function, aws.ToString(out.FunctionError))
	}

	t.log.Info().
		Str("function", t.function).
		Int32("status", out.StatusCode).
		Msg("collector triggered")
	return nil
}
