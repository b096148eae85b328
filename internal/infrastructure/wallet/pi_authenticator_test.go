package wallet

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"choco_checkout/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPiAuthenticator_Authenticate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/me", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"uid":"u-42","username":"cocoa_fan"}`))
	}))
	defer srv.Close()

	a := NewPiAuthenticator(config.PiConfig{BaseURL: srv.URL, Timeout: time.Second})

	t.Run("valid token", func(t *testing.T) {
		s, err := a.Authenticate(context.Background(), "good-token")
		require.NoError(t, err)
		assert.Equal(t, "u-42", s.UID)
		assert.Equal(t, "cocoa_fan", s.Username)
	})

	t.Run("rejected token", func(t *testing.T) {
		_, err := a.Authenticate(context.Background(), "bad-token")
		assert.ErrorIs(t, err, ErrInvalidAccessToken)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := a.Authenticate(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrMissingAccessToken)
	})
}

func TestPiAuthenticator_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	a := NewPiAuthenticator(config.PiConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := a.Authenticate(ctx, "token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
