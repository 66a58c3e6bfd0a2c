package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCondition_Match(t *testing.T) {
	raw := RawRecord{
		"resourceType": map[string]any{"S": "METRIC_SUMMARY"},
		"region":       "us-east-1",
		"deleted":      map[string]any{"NULL": true},
	}

	tests := []struct {
		name string
		cond Condition
		want bool
	}{
		{"equals tagged", Equals("resourceType", "METRIC_SUMMARY"), true},
		{"equals plain", Equals("region", "us-east-1"), true},
		{"equals mismatch", Equals("region", "eu-west-1"), false},
		{"equals missing field", Equals("accountId", ""), false},
		{"begins with", BeginsWith("resourceType", "METRIC"), true},
		{"begins with negated", BeginsWith("resourceType", "METRIC").Negate(), false},
		{"exists", Exists("region"), true},
		{"null does not exist", Exists("deleted"), false},
		{"missing does not exist", Exists("accountId"), false},
		{"not exists", Exists("accountId").Negate(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cond.Match(raw))
		})
	}
}

func TestMatchAll(t *testing.T) {
	raw := RawRecord{"resourceType": "VPC", "region": "us-east-1"}
	assert.True(t, MatchAll(raw, nil))
	assert.True(t, MatchAll(raw, []Condition{Equals("resourceType", "VPC"), Equals("region", "us-east-1")}))
	assert.False(t, MatchAll(raw, []Condition{Equals("resourceType", "VPC"), Equals("region", "eu-west-1")}))
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "equals", OpEquals.String())
	assert.Equal(t, "begins_with", OpBeginsWith.String())
	assert.Equal(t, "exists", OpExists.String())
	assert.Equal(t, "unknown", Op(42).String())
}
