package services

import (
	"context"
	"errors"

	"checkout-service/internal/domain"
	"checkout-service/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type ProductService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) GetByID(ctx context.Context, id uint64) (*domain.Product, error) {
	p, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// List pages through the catalog newest first and reports the total count
// for pagination metadata.
func (s *ProductService) List(ctx context.Context, limit, offset int) ([]domain.Product, int64, error) {
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	products, err := s.products.List(limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.products.Count()
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
