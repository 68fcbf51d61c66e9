// internal/pkg/identity/verifier.go
package identity

import "context"

// Identity is the authenticated principal as reported by the external
// identity provider. Token issuance and verification live entirely in the
// provider; this service only asks it who a bearer token belongs to.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
