package ports

import (
	"context"

	"github.com/vallespasiegos/catalog-system/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
