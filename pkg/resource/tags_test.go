package resource

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []Tag
	}{
		{"nil", nil, nil},
		{"empty string", "", nil},
		{"bad json", "{not json", nil},
		{
			name: "list with key variants",
			in: []any{
				map[string]any{"Key": "env", "Value": "prod"},
				map[string]any{"key": "team", "value": "core"},
				map[string]any{"KEY": "cost", "VALUE": "42"},
				map[string]any{"Name": "owner", "value": "ops"},
			},
			want: []Tag{{"env", "prod"}, {"team", "core"}, {"cost", "42"}, {"owner", "ops"}},
		},
		{
			name: "entries without a key are dropped",
			in:   []any{map[string]any{"Value": "orphan"}, "junk", map[string]any{"Key": "a", "Value": "1"}},
			want: []Tag{{"a", "1"}},
		},
		{
			name: "duplicates preserved",
			in:   []any{map[string]any{"Key": "a", "Value": "1"}, map[string]any{"Key": "a", "Value": "2"}},
			want: []Tag{{"a", "1"}, {"a", "2"}},
		},
		{
			name: "plain object sorted",
			in:   map[string]any{"b": "2", "a": "1"},
			want: []Tag{{"a", "1"}, {"b", "2"}},
		},
		{
			name: "json string",
			in:   `[{"Key":"Name","Value":"web"}]`,
			want: []Tag{{"Name", "web"}},
		},
		{
			name: "wire encoded",
			in: map[string]any{"L": []any{
				map[string]any{"M": map[string]any{"Key": map[string]any{"S": "env"}, "Value": map[string]any{"S": "dev"}}},
			}},
			want: []Tag{{"env", "dev"}},
		},
		{
			name: "double encoded string parsed once",
			in:   `"[{\"Key\":\"a\",\"Value\":\"1\"}]"`,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.in))
		})
	}
}

func TestNormalizeTags_RoundTrip(t *testing.T) {
	tags := []Tag{{"Name", "web"}, {"env", "prod"}, {"env", "dup"}}
	data, err := json.Marshal(tags)
	require.NoError(t, err)

	assert.Equal(t, tags, NormalizeTags(string(data)))

	var decoded []any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, tags, NormalizeTags(decoded))
}

func TestNameTag(t *testing.T) {
	name, ok := NameTag([]Tag{{"env", "prod"}, {"NAME", "web"}, {"name", "other"}})
	assert.True(t, ok)
	assert.Equal(t, "web", name)

	_, ok = NameTag([]Tag{{"env", "prod"}})
	assert.False(t, ok)
}

func TestTagValue(t *testing.T) {
	v, ok := TagValue([]Tag{{"env", "prod"}}, "env")
	assert.True(t, ok)
	assert.Equal(t, "prod", v)

	_, ok = TagValue([]Tag{{"env", "prod"}}, "Env")
	assert.False(t, ok)
}
