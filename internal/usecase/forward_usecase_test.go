package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"contact-relay-backend/internal/usecase"
	"contact-relay-backend/pkg/sheets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, target string, body []byte) (*sheets.Reply, error) {
	args := m.Called(ctx, target, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sheets.Reply), args.Error(1)
}

func TestForward(t *testing.T) {
	ctx := context.Background()
	body := []byte(`{"name":"Jane"}`)

	t.Run("Should mirror a JSON reply", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", ctx, directURL, body).
			Return(&sheets.Reply{Status: http.StatusOK, Body: []byte(`{"result":"success"}`)}, nil).Once()

		res, err := usecase.NewForwardUsecase(directURL, sender).Forward(ctx, body)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Status)
		assert.True(t, res.JSON)
		assert.JSONEq(t, `{"result":"success"}`, string(res.Body))
	})

	t.Run("Should mirror non-2xx text replies", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", ctx, directURL, body).
			Return(&sheets.Reply{Status: http.StatusNotFound, Body: []byte("Script not found")}, nil).Once()

		res, err := usecase.NewForwardUsecase(directURL, sender).Forward(ctx, body)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, res.Status)
		assert.False(t, res.JSON)
	})

	t.Run("Should wrap transport failures", func(t *testing.T) {
		sender := new(MockSender)
		tErr := &sheets.TransportError{Kind: sheets.KindNetwork, Err: errors.New("no such host")}
		sender.On("Send", ctx, directURL, body).Return(nil, tErr).Once()

		_, err := usecase.NewForwardUsecase(directURL, sender).Forward(ctx, body)

		assert.ErrorIs(t, err, tErr)
	})
}
