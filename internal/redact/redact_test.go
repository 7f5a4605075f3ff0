package redact_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/phrazzld/jobtrack-api/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestRedactString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "plain message",
			expected: "plain message",
		},
		{
			name:     "password parameter",
			input:    "login with password=hunter22 please",
			expected: "login with [REDACTED_CREDENTIAL] please",
		},
		{
			name:     "API key",
			input:    "api_key=abcdef1234567890 leaked",
			expected: "[REDACTED_KEY] leaked",
		},
		{
			name:     "JWT token",
			input:    "Bearer eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.abc123",
			expected: "Bearer [REDACTED_JWT]",
		},
		{
			name:     "email address",
			input:    "contact me at jane.doe@example.com",
			expected: "contact me at [REDACTED_EMAIL]",
		},
		{
			name:     "file path",
			input:    "config at /etc/app/config.yaml failed",
			expected: "config at [REDACTED_PATH] failed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, redact.String(tc.input))
		})
	}
}

func TestRedactError(t *testing.T) {
	assert.Equal(t, "", redact.Error(nil))

	err := fmt.Errorf("store failed: %w", errors.New("open /var/lib/jobs: denied"))
	assert.Equal(t, "store failed: open [REDACTED_PATH]: denied", redact.Error(err))
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "short", input: "hello", expected: "hello"},
		{name: "whitespace collapsed", input: "  hello\n\n  world\t", expected: "hello world"},
		{
			name:     "truncated",
			input:    strings.Repeat("a", 50),
			expected: strings.Repeat("a", redact.PreviewLength) + "...",
		},
		{
			name:     "multibyte truncation",
			input:    strings.Repeat("é", 45),
			expected: strings.Repeat("é", redact.PreviewLength) + "...",
		},
		{
			name:     "redacted before truncation",
			input:    "my password=hunter22 is secret",
			expected: "my [REDACTED_CREDENTIAL] is secret",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, redact.Preview(tc.input))
		})
	}
}
