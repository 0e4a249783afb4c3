package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vallespasiegos/catalog-system/internal/core/domain"
	"github.com/vallespasiegos/catalog-system/internal/core/ports"
)

// ListCache abstracts the catalog list cache (Redis). Implementations must
// treat misses and backend errors the same way: report not-found and let the
// caller fall through to the repository.
type ListCache interface {
	Get(ctx context.Context) ([]domain.Product, bool)
	Set(ctx context.Context, products []domain.Product)
	Invalidate(ctx context.Context)
}

// ProductService implements catalog reads and admin-gated writes. Concurrent
// writes are last-write-wins; there is no optimistic concurrency check.
type ProductService struct {
	repo   ports.ProductRepository
	cache  ListCache
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache ListCache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, logger: logger}
}

// List returns all products, newest first.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		if products, ok := s.cache.Get(ctx); ok {
			return products, nil
		}
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, products)
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.NewValidationError("name is required")
	}
	if input.Price < 0 {
		return nil, domain.NewValidationError("price must be a number greater than or equal to 0")
	}

	product := &domain.Product{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Imagen:      strings.TrimSpace(input.Imagen),
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create product")
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

// Update applies only the provided fields, re-validating name and price when
// present.
func (s *ProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	patch := ports.ProductPatch{}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.NewValidationError("name cannot be empty")
		}
		patch.Name = &name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, domain.NewValidationError("price must be a number greater than or equal to 0")
		}
		patch.Price = input.Price
	}
	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		patch.Description = &desc
	}
	if input.Imagen != nil {
		img := strings.TrimSpace(*input.Imagen)
		patch.Imagen = &img
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
