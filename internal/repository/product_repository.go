package repository

import (
	"checkout-service/internal/domain"
)

type ProductRepository interface {
	// FindByID returns nil, nil when no such product exists.
	FindByID(id uint64) (*domain.Product, error)
	List(limit, offset int) ([]domain.Product, error)
	Count() (int64, error)
}
