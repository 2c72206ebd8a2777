package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEndpoint(t *testing.T) {
	t.Run("Should extract origin and script ID", func(t *testing.T) {
		ep, err := ParseEndpoint("https://script.google.com/macros/s/AKfycbx3RL/exec")
		require.NoError(t, err)
		assert.Equal(t, "https://script.google.com", ep.Origin.String())
		assert.Equal(t, "AKfycbx3RL", ep.ScriptID)
		assert.Equal(t, "/macros/s/AKfycbx3RL/exec", ep.ExecPath())
		assert.Equal(t, "https://script.google.com/macros/s/AKfycbx3RL/exec", ep.ExecURL())
	})

	t.Run("Should accept URLs without the exec suffix", func(t *testing.T) {
		ep, err := ParseEndpoint("http://127.0.0.1:8081/macros/s/abc")
		require.NoError(t, err)
		assert.Equal(t, "abc", ep.ScriptID)
		assert.Equal(t, "http://127.0.0.1:8081/macros/s/abc/exec", ep.ExecURL())
	})

	t.Run("Should fail when empty", func(t *testing.T) {
		_, err := ParseEndpoint("")
		assert.ErrorIs(t, err, ErrEndpointMissing)
	})

	t.Run("Should fail for relative or non-http URLs", func(t *testing.T) {
		for _, raw := range []string{"/macros/s/abc/exec", "ftp://script.google.com/macros/s/abc/exec", "::bad"} {
			_, err := ParseEndpoint(raw)
			assert.ErrorIs(t, err, ErrEndpointInvalid, raw)
		}
	})

	t.Run("Should fail when the script ID is absent", func(t *testing.T) {
		_, err := ParseEndpoint("https://script.google.com/exec")
		assert.ErrorIs(t, err, ErrScriptIDMissing)
	})
}
