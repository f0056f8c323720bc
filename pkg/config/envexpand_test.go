package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("EXPAND_TEST_KEY", "secret123")
	t.Setenv("EXPAND_TEST_HOST", "example.com")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple substitution",
			input: "api_key: {{.EXPAND_TEST_KEY}}",
			want:  "api_key: secret123",
		},
		{
			name:  "multiple substitutions in one line",
			input: "url: https://{{.EXPAND_TEST_HOST}}/{{.EXPAND_TEST_KEY}}",
			want:  "url: https://example.com/secret123",
		},
		{
			name:  "missing variable expands to empty",
			input: "value: {{.EXPAND_TEST_MISSING}}",
			want:  "value: ",
		},
		{
			name:  "literal dollar syntax is left alone",
			input: "pattern: ^secret.*$ and ${EXPAND_TEST_KEY}",
			want:  "pattern: ^secret.*$ and ${EXPAND_TEST_KEY}",
		},
		{
			name:  "no template syntax passes through",
			input: "plain: value",
			want:  "plain: value",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.input))))
		})
	}
}
