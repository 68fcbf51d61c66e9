package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	xerrors "authbase-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestVerifyResolvesUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		assert.Equal(t, "service-key", r.Header.Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"user-1","email":"user@example.com"}`))
	}))
	defer srv.Close()

	v := NewHTTPVerifier(srv.URL, "service-key", nil, zap.NewNop())

	id, err := v.Verify(context.Background(), "token-abc")
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.ID)
	assert.Equal(t, "user@example.com", id.Email)
}

func TestVerifyRejectsBadToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	v := NewHTTPVerifier(srv.URL, "", nil, zap.NewNop())

	_, err := v.Verify(context.Background(), "expired")
	assert.ErrorIs(t, err, xerrors.ErrUnauthorized)
}

func TestVerifyRejectsEmptyIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	v := NewHTTPVerifier(srv.URL, "", nil, zap.NewNop())

	_, err := v.Verify(context.Background(), "anon")
	assert.ErrorIs(t, err, xerrors.ErrUnauthorized)
}

func TestVerifyProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	v := NewHTTPVerifier(srv.URL, "", nil, zap.NewNop())

	_, err := v.Verify(context.Background(), "token")
	require.Error(t, err)
	assert.NotErrorIs(t, err, xerrors.ErrUnauthorized)
}
