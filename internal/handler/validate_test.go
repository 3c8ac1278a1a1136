package handler

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMobileRule(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("mobile", validMobile))

	type payload struct {
		Phone string `validate:"mobile"`
	}

	valid := []string{
		"+919812345678",
		"9812345678",
		"+1 (415) 555-0132",
		"020-1234-567",
	}
	for _, phone := range valid {
		assert.NoError(t, v.Struct(payload{Phone: phone}), phone)
	}

	invalid := []string{
		"",
		"12345",
		"not-a-number",
		"+9198123456789012345",
		"98 12 ++ 34",
	}
	for _, phone := range invalid {
		assert.Error(t, v.Struct(payload{Phone: phone}), phone)
	}
}
