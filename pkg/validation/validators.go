package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// E164-like phone with optional separators: optional +, 7-15 digits
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	phoneStrip = regexp.MustCompile(`[\s().-]`)
)

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", ValidPhone)
}

// ValidPhone accepts 7-15 digits, optionally prefixed with +, ignoring
// spaces, dots, dashes and parentheses.
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(phoneStrip.ReplaceAllString(val, ""))
}
