package sheets

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientPost(t *testing.T) {
	t.Run("Should send JSON and return the reply", func(t *testing.T) {
		var gotBody, gotType string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, _ := io.ReadAll(r.Body)
			gotBody = string(data)
			gotType = r.Header.Get("Content-Type")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"result":"success","message":"ok"}`))
		}))
		defer srv.Close()

		reply, err := NewClient(0).Post(context.Background(), srv.URL, []byte(`{"name":"Jane"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, reply.Status)
		assert.Equal(t, `{"name":"Jane"}`, gotBody)
		assert.Equal(t, "application/json", gotType)
		assert.JSONEq(t, `{"result":"success","message":"ok"}`, string(reply.Body))
	})

	t.Run("Should report non-2xx as KindHTTP", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"Proxy error"}`))
		}))
		defer srv.Close()

		_, err := NewClient(0).Post(context.Background(), srv.URL, []byte(`{}`))
		var tErr *TransportError
		require.True(t, errors.As(err, &tErr))
		assert.Equal(t, KindHTTP, tErr.Kind)
		assert.Equal(t, http.StatusInternalServerError, tErr.Status)
		assert.Contains(t, tErr.Body, "Proxy error")
	})

	t.Run("Should report connection failures as KindNetwork", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := NewClient(0).Post(context.Background(), url, []byte(`{}`))
		var tErr *TransportError
		require.True(t, errors.As(err, &tErr))
		assert.Equal(t, KindNetwork, tErr.Kind)
	})

	t.Run("Send should not treat non-2xx as an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("bad gateway"))
		}))
		defer srv.Close()

		reply, err := NewClient(0).Send(context.Background(), srv.URL, []byte(`{}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, reply.Status)
		assert.Equal(t, "bad gateway", string(reply.Body))
	})
}

func TestInterpret(t *testing.T) {
	t.Run("Should read a success reply", func(t *testing.T) {
		out, err := Interpret([]byte(`{"result":"success","message":"Form data successfully recorded"}`))
		require.NoError(t, err)
		assert.True(t, out.JSON)
		assert.False(t, out.IsLogicalFailure())
		assert.Equal(t, "Form data successfully recorded", out.Message)
	})

	t.Run("Should flag a logical failure", func(t *testing.T) {
		out, err := Interpret([]byte(`{"result":"error","message":"SyntaxError: Unexpected token"}`))
		require.NoError(t, err)
		assert.True(t, out.IsLogicalFailure())
	})

	t.Run("Should keep non-JSON text verbatim", func(t *testing.T) {
		out, err := Interpret([]byte("<html>Recorded</html>"))
		require.NoError(t, err)
		assert.False(t, out.JSON)
		assert.Equal(t, "<html>Recorded</html>", out.Message)
	})

	t.Run("Should reject JSON that is not an object", func(t *testing.T) {
		_, err := Interpret([]byte(`["success"]`))
		var tErr *TransportError
		require.True(t, errors.As(err, &tErr))
		assert.Equal(t, KindParse, tErr.Kind)
	})
}
