package primary

import (
	"context"
	"time"
)

// TokenSigner mints short-lived service tokens for calls to external
// backends that require bearer authentication.
type TokenSigner interface {
	Mint(ctx context.Context, subject string, ttl time.Duration) (string, error)
}
