package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	xerrors "authbase-service/internal/pkg/errors"
	"authbase-service/internal/pkg/identity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	identity *identity.Identity
	err      error
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (*identity.Identity, error) {
	return f.identity, f.err
}

func newAuthRouter(v identity.Verifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := NewAuthMiddleware(v)
	r.GET("/protected", m.Auth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": MustGetUserID(c)})
	})
	r.GET("/open", m.OptionalAuth(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func TestAuthSetsPrincipal(t *testing.T) {
	r := newAuthRouter(&fakeVerifier{identity: &identity.Identity{ID: "user-1", Email: "u@example.com"}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"user-1"`)
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	r := newAuthRouter(&fakeVerifier{identity: &identity.Identity{ID: "user-1"}})

	tests := []struct {
		name   string
		header string
	}{
		{name: "absent", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "no token", header: "Bearer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthRejectsBadToken(t *testing.T) {
	r := newAuthRouter(&fakeVerifier{err: xerrors.ErrUnauthorized})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer expired")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthProviderDown(t *testing.T) {
	r := newAuthRouter(&fakeVerifier{err: context.DeadlineExceeded})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestOptionalAuthAllowsAnonymous(t *testing.T) {
	r := newAuthRouter(&fakeVerifier{err: xerrors.ErrUnauthorized})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)
}

func TestOptionalAuthResolvesWhenPossible(t *testing.T) {
	r := newAuthRouter(&fakeVerifier{identity: &identity.Identity{ID: "visitor-7"}})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"visitor-7"`)
}
