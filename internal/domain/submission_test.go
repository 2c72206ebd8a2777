package domain_test

import (
	"encoding/json"
	"testing"

	"contact-relay-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWirePayload(t *testing.T) {
	p := domain.SubmissionPayload{
		Name:                  "Jane",
		Email:                 "jane@x.com",
		Phone:                 "555",
		BusinessType:          "Cafe",
		ProjectType:           "web-design",
		Message:               "Need a site",
		ConsultationRequested: true,
	}

	t.Run("Should encode consultation as a string in field order", func(t *testing.T) {
		data, err := json.Marshal(p.Wire())
		require.NoError(t, err)
		assert.Equal(t,
			`{"name":"Jane","email":"jane@x.com","phone":"555","businessType":"Cafe","projectType":"web-design","message":"Need a site","consultation":"true"}`,
			string(data))
	})

	t.Run("Should parse back to the same payload", func(t *testing.T) {
		assert.Equal(t, p, p.Wire().Payload())
	})

	t.Run("Should read unknown consultation values as false", func(t *testing.T) {
		w := p.Wire()
		w.Consultation = "maybe"
		assert.False(t, w.Payload().ConsultationRequested)
	})
}

func TestOptions(t *testing.T) {
	assert.True(t, domain.IsBusinessType("Cafe"))
	assert.False(t, domain.IsBusinessType("cafe"))
	assert.True(t, domain.IsProjectType("web-design"))
	assert.False(t, domain.IsProjectType(""))
}
