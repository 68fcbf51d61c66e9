// internal/pkg/identity/http_verifier.go
package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	xerrors "authbase-service/internal/pkg/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	identityKeyPrefix = "identity:"
	identityCacheTTL  = 60 * time.Second
)

// HTTPVerifier resolves bearer tokens against the identity provider's
// user-info endpoint. Successful lookups are cached briefly in Redis so a
// burst of requests with the same token costs one provider round trip.
type HTTPVerifier struct {
	baseURL string
	apiKey  string
	client  *http.Client
	cache   *redis.Client
	logger  *zap.Logger
}

func NewHTTPVerifier(baseURL, apiKey string, cache *redis.Client, logger *zap.Logger) *HTTPVerifier {
	return &HTTPVerifier{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
		logger:  logger,
	}
}

func (v *HTTPVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	key := cacheKey(token)

	if v.cache != nil {
		data, err := v.cache.Get(ctx, key).Bytes()
		if err == nil {
			var id Identity
			if err := json.Unmarshal(data, &id); err == nil {
				return &id, nil
			}
		} else if err != redis.Nil {
			v.logger.Warn("identity cache read failed", zap.Error(err))
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build identity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if v.apiKey != "" {
		req.Header.Set("apikey", v.apiKey)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, xerrors.ErrUnauthorized
	default:
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var id Identity
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		return nil, fmt.Errorf("failed to decode identity response: %w", err)
	}
	if id.ID == "" {
		return nil, xerrors.ErrUnauthorized
	}

	if v.cache != nil {
		if data, err := json.Marshal(&id); err == nil {
			if err := v.cache.Set(ctx, key, data, identityCacheTTL).Err(); err != nil {
				v.logger.Warn("identity cache write failed", zap.Error(err))
			}
		}
	}

	return &id, nil
}

func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return identityKeyPrefix + hex.EncodeToString(sum[:])
}
