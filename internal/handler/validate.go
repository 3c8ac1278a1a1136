package handler

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var mobilePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// RegisterValidations installs the custom binding rules used by the request
// models. Must run once before the router starts serving.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("mobile", validMobile)
}

// validMobile accepts phone numbers with an optional leading plus and 7 to
// 15 digits, ignoring spaces, dashes and parentheses.
func validMobile(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	cleaned := make([]rune, 0, len(raw))
	for _, r := range raw {
		switch r {
		case ' ', '-', '(', ')':
		default:
			cleaned = append(cleaned, r)
		}
	}
	return mobilePattern.MatchString(string(cleaned))
}
