package validation

import (
	"regexp"

	"contact-relay-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Optional +, then digits with common separators. Short local numbers are accepted.
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{2,19}$`)
)

// New returns a validator with the contact form's custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("business_type", BusinessType)
	_ = v.RegisterValidation("project_type", ProjectType)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // use required if needed
	}
	return phoneRegex.MatchString(val)
}

// BusinessType accepts only the enumerated business types
func BusinessType(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return domain.IsBusinessType(val)
}

// ProjectType accepts only the enumerated project types
func ProjectType(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return domain.IsProjectType(val)
}
