package ports

import (
	"context"

	"github.com/vallespasiegos/catalog-system/internal/core/domain"
)

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Imagen      string
}

type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Imagen      *string
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
