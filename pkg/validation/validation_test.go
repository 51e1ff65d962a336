package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "casebridge/pkg/domain-errors"
)

type sample struct {
	IncrementID string `validate:"required,notblank,max=32"`
	Email       string `validate:"omitempty,email"`
	BaseURL     string `validate:"omitempty,url"`
	Store       string `validate:"omitempty,oneof=memory postgres redis"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      sample
		wantMsg string
	}{
		{"valid", sample{IncrementID: "1000123"}, ""},
		{"missing required", sample{}, "increment_id is required"},
		{"blank", sample{IncrementID: "   "}, "increment_id must not be blank"},
		{"too long", sample{IncrementID: "123456789012345678901234567890123"}, "increment_id must be at most 32"},
		{"bad email", sample{IncrementID: "1", Email: "nope"}, "email must be a valid email"},
		{"bad url", sample{IncrementID: "1", BaseURL: "::"}, "base_url must be a valid url"},
		{"bad enum", sample{IncrementID: "1", Store: "mysql"}, "store must be one of [memory postgres redis]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestErrorMessageForeignError(t *testing.T) {
	assert.Equal(t, "invalid request body", ErrorMessage(errors.New("other")))
}

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"IncrementID":   "increment_id",
		"APIKey":        "api_key",
		"BaseURL":       "base_url",
		"CustomerEmail": "customer_email",
		"city":          "city",
	}
	for in, want := range cases {
		assert.Equal(t, want, snakeCase(in), in)
	}
}
