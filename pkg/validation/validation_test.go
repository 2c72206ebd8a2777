package validation_test

import (
	"errors"
	"testing"

	"contact-relay-backend/internal/domain"
	"contact-relay-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func validPayload() domain.SubmissionPayload {
	return domain.SubmissionPayload{
		Name:         "Jane",
		Email:        "jane@x.com",
		Phone:        "555",
		BusinessType: "Cafe",
		ProjectType:  "web-design",
		Message:      "Need a site",
	}
}

func TestSubmissionPayloadValidation(t *testing.T) {
	v := validation.New()

	t.Run("Should accept a complete payload", func(t *testing.T) {
		p := validPayload()
		assert.NoError(t, v.Struct(&p))
	})

	t.Run("Should accept international phone formats", func(t *testing.T) {
		p := validPayload()
		p.Phone = "+91 (40) 1234-5678"
		assert.NoError(t, v.Struct(&p))
	})

	t.Run("Should report every missing field", func(t *testing.T) {
		err := v.Struct(&domain.SubmissionPayload{})
		assert.Error(t, err)
		msgs := validation.FormatValidationErrors(err)
		assert.Len(t, msgs, 6)
		assert.Contains(t, msgs, "Business Type: This field is required")
	})

	t.Run("Should require @ in email", func(t *testing.T) {
		p := validPayload()
		p.Email = "jane.x.com"
		msgs := validation.FormatValidationErrors(v.Struct(&p))
		assert.Equal(t, []string{"Email: Please enter a valid email address"}, msgs)
	})

	t.Run("Should reject values outside the enumerations", func(t *testing.T) {
		p := validPayload()
		p.BusinessType = "Spaceport"
		p.ProjectType = "rocketry"
		msgs := validation.FormatValidationErrors(v.Struct(&p))
		assert.ElementsMatch(t, []string{
			"Business Type: Please choose one of the listed options",
			"Project Type: Please choose one of the listed options",
		}, msgs)
	})

	t.Run("Should reject malformed phone numbers", func(t *testing.T) {
		p := validPayload()
		p.Phone = "call me"
		msgs := validation.FormatValidationErrors(v.Struct(&p))
		assert.Equal(t, []string{"Phone Number: Please enter a valid phone number"}, msgs)
	})

	t.Run("Should pass through non-validation errors", func(t *testing.T) {
		msgs := validation.FormatValidationErrors(errors.New("boom"))
		assert.Equal(t, []string{"boom"}, msgs)
	})
}
