package ports

import (
	"context"

	"github.com/vallespasiegos/catalog-system/internal/core/domain"
)

// AuthResult bundles a freshly minted token with the public view of its user.
type AuthResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type AuthService interface {
	Register(ctx context.Context, username, password string) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Verify(token string) (*domain.Claims, error)
}

// TokenVerifier is the subset of AuthService needed by transport layers that
// only check identity (HTTP middleware, websocket handshake).
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}
