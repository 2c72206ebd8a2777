package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"contact-relay-backend/internal/contactform"
	"contact-relay-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newSubmitCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

var janeArgs = []string{
	"--name", "Jane",
	"--email", "jane@x.com",
	"--phone", "555",
	"--business-type", "Cafe",
	"--project-type", "web-design",
	"--message", "Need a site",
}

func TestSubmitCommand(t *testing.T) {
	t.Run("Should not bound attempts by default", func(t *testing.T) {
		flag := newSubmitCmd().Flags().Lookup("timeout")
		require.NotNil(t, flag)
		assert.Equal(t, "0s", flag.DefValue)
	})

	t.Run("Should print the success status", func(t *testing.T) {
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, _ := io.ReadAll(r.Body)
			got = string(data)
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"result":"success","message":"Form data successfully recorded"}`)
		}))
		defer srv.Close()

		args := append([]string{"--endpoint", srv.URL + "/macros/s/abc/exec", "--consultation"}, janeArgs...)
		stdout, _, err := execute(t, args...)

		require.NoError(t, err)
		assert.Equal(t, contactform.SuccessMessage+"\n", stdout)
		assert.Contains(t, got, `"consultation":"true"`)
	})

	t.Run("Should list invalid fields without sending", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer srv.Close()

		_, stderr, err := execute(t, "--endpoint", srv.URL, "--name", "Jane", "--email", "not-an-email")

		assert.ErrorIs(t, err, contactform.ErrInvalid)
		assert.Contains(t, stderr, "Email: Please enter a valid email address")
		assert.Zero(t, calls)
	})

	t.Run("Should report a missing endpoint as a configuration problem", func(t *testing.T) {
		t.Setenv("GOOGLE_SHEETS_API_URL", "")
		t.Setenv("VITE_GOOGLE_SHEETS_API_URL", "")

		_, stderr, err := execute(t, janeArgs...)

		assert.ErrorIs(t, err, usecase.ErrEndpointNotConfigured)
		assert.Contains(t, stderr, "not configured")
	})

	t.Run("Should fall back to the relay", func(t *testing.T) {
		direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer direct.Close()
		relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"result":"success","message":"ok"}`)
		}))
		defer relay.Close()

		args := append([]string{"--endpoint", direct.URL, "--relay-url", relay.URL + "/api/sheets"}, janeArgs...)
		stdout, _, err := execute(t, args...)

		require.NoError(t, err)
		assert.Equal(t, contactform.SuccessMessage+"\n", stdout)
	})
}
