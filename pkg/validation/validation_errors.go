package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	// Profile
	"Name":               "Name",
	"Email":              "Email",
	"ContactNo":          "Contact number",
	"ProfileDescription": "Profile description",
	"Portfolio":          "Portfolio URL",
	"Website":            "Website URL",

	// Nested records
	"WorkExperience": "Work experience",
	"Education":      "Education",
	"Applications":   "Application document",

	// Work experience
	"Position":    "Position",
	"Company":     "Company",
	"Description": "Description",
	"StartDate":   "Start date",
	"EndDate":     "End date",

	// Education
	"University": "University",
	"Course":     "Course",
	"Domain":     "Domain",

	// Application document
	"DocumentType": "Document type",
	"FileName":     "File name",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
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
	label := fieldPath(e)
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)

	case "len":
		return fmt.Sprintf("%s: must contain exactly %s item(s)", label, param)

	case "gt":
		return fmt.Sprintf("%s: must be greater than %s", label, param)

	case "email":
		return fmt.Sprintf("%s: invalid email format", label)

	case "url":
		return fmt.Sprintf("%s: invalid URL format", label)

	case "valid_phone":
		return fmt.Sprintf("%s: invalid phone number (7-15 digits, optional +)", label)

	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

// fieldPath labels nested fields as "Work experience > Start date".
// The root struct name is dropped.
func fieldPath(e validator.FieldError) string {
	parts := strings.Split(e.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if i := strings.IndexByte(p, '['); i >= 0 {
			p = p[:i]
		}
		labels = append(labels, getFieldLabel(p))
	}
	return strings.Join(labels, " > ")
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
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
