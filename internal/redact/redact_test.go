package redact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      string
	}{
		{description: "empty", input: "", expect: "[EMPTY]"},
		{description: "short", input: "abc", expect: "[REDACTED]"},
		{description: "long", input: "eyJhbGciOi.payload.sig1234", expect: "[REDACTED…1234]"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Token(testCase.input), testCase.description)
	}
}

func TestEmail(t *testing.T) {
	var testCases = []struct {
		input  string
		expect string
	}{
		{input: "foobar@example.com", expect: "fo***@example.com"},
		{input: "ab@ex.com", expect: "***@ex.com"},
		{input: "no-at", expect: "***"},
		{input: "a@b@c", expect: "***"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Email(testCase.input), testCase.input)
	}
}
