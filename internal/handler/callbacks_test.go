package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "test_data",
			expected: "test_data",
		},
		{
			name:     "string with whitespace",
			input:    "  test_data  ",
			expected: "test_data",
		},
		{
			name:     "string with newline",
			input:    "test\ndata",
			expected: "testdata",
		},
		{
			name:     "form feed prefix",
			input:    "\fdel|42",
			expected: "del|42",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "test\x00data\x01",
			expected: "testdata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseCallback(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expectedUnique  string
		expectedPayload string
	}{
		{name: "button without payload", input: "\fbank", expectedUnique: "bank"},
		{name: "button with payload", input: "\fdel|0190a1b2-c3d4", expectedUnique: "del", expectedPayload: "0190a1b2-c3d4"},
		{name: "sort mode", input: "\fsort|foreign", expectedUnique: "sort", expectedPayload: "foreign"},
		{name: "raw data", input: "page|2", expectedUnique: "page", expectedPayload: "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unique, payload := parseCallback(tt.input)
			assert.Equal(t, tt.expectedUnique, unique)
			assert.Equal(t, tt.expectedPayload, payload)
		})
	}
}
