package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown next to form inputs
var FieldLabels = map[string]string{
	"Name":                  "Name",
	"Email":                 "Email",
	"Phone":                 "Phone Number",
	"BusinessType":          "Business Type",
	"ProjectType":           "Project Type",
	"Message":               "Message",
	"ConsultationRequested": "Free Consultation",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: This field is required", label)
	case "contains":
		if e.Param() == "@" {
			return fmt.Sprintf("%s: Please enter a valid email address", label)
		}
		return fmt.Sprintf("%s: Must contain %q", label, e.Param())
	case "valid_phone":
		return fmt.Sprintf("%s: Please enter a valid phone number", label)
	case "business_type", "project_type":
		return fmt.Sprintf("%s: Please choose one of the listed options", label)
	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: Invalid value (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	// Return field name with spaces between camelCase words
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
