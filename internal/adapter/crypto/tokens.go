package crypto

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/codecapsules.net/internal/config"
	"gitlab.com/codecapsules.net/internal/core/ports/primary"
)

var _ primary.TokenSigner = (*ServiceTokenSigner)(nil)

// ServiceTokenSigner mints HMAC-signed bearer tokens for calls to the
// execution backend.
type ServiceTokenSigner struct {
	secret string
	issuer string
}

// NewServiceTokenSigner creates a signer from the JWT configuration.
func NewServiceTokenSigner(cfg *config.JwtConfig) *ServiceTokenSigner {
	return &ServiceTokenSigner{
		secret: cfg.Secret,
		issuer: cfg.Issuer,
	}
}

// Mint signs a short-lived HS256 token for the given subject.
func (s *ServiceTokenSigner) Mint(ctx context.Context, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": s.issuer,
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign service token: %w", err)
	}
	return signed, nil
}
