package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	Name    string     `validate:"required"`
	Phone   string     `validate:"omitempty,valid_phone"`
	Website string     `validate:"omitempty,url"`
	Job     *nestedJob `validate:"required"`
}

type nestedJob struct {
	StartDate string `validate:"required"`
}

func TestValidPhone(t *testing.T) {
	v := New()

	for _, ok := range []string{"+6281234567", "0812 3456 789", "(021) 555-0199", ""} {
		assert.NoError(t, v.Var(ok, "valid_phone"), ok)
	}
	for _, bad := range []string{"123", "phone", "+62-81234567890123456"} {
		assert.Error(t, v.Var(bad, "valid_phone"), bad)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := New()
	err := v.Struct(contactForm{Phone: "12", Website: "not a url", Job: &nestedJob{}})
	require.Error(t, err)

	msgs := FormatValidationErrors(err)
	assert.Contains(t, msgs, "Name: is required")
	assert.Contains(t, msgs, "Phone: invalid phone number (7-15 digits, optional +)")
	assert.Contains(t, msgs, "Website URL: invalid URL format")
	assert.Contains(t, msgs, "Job > Start date: is required")
}

func TestFormatNonValidationError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, FormatValidationErrors(errors.New("boom")))
}

func TestFormatCamelCase(t *testing.T) {
	assert.Equal(t, "Contact No", formatCamelCase("ContactNo"))
}
