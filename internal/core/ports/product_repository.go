package ports

import (
	"context"

	"github.com/vallespasiegos/catalog-system/internal/core/domain"
)

// ProductPatch carries a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Imagen      *string
}

// ProductRepository defines the interface for catalog persistence.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
