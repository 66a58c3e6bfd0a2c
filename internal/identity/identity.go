// Package identity reports who is operating onevision.
package identity

import (
	"context"
	"os"
)

// Provider returns the current identity.
type Provider interface {
	Identity(ctx context.Context) string
}

// Anonymous is reported when no identity is available.
const Anonymous = "anonymous"

// EnvProvider reads ONEVISION_USER, falling back to USER.
type EnvProvider struct {
	// Lookup defaults to os.LookupEnv.
	Lookup func(key string) (string, bool)
}

// Identity returns the first non-empty variable, or Anonymous.
func (p EnvProvider) Identity(_ context.Context) string {
	lookup := p.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, key := range []string{"ONEVISION_USER", "USER"} {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
	}
	return Anonymous
}

// Static always returns the same identity.
type Static string

// Identity returns s.
func (s Static) Identity(context.Context) string { return string(s) }
