package services

import (
	"context"
	"errors"

	"checkout-service/internal/domain"
	"checkout-service/internal/repository"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderService is the read path over committed orders.
type OrderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// ListByUser returns the user's orders most recent first. No orders is not
// an error; history starts empty.
func (s *OrderService) ListByUser(ctx context.Context, userID uint64) ([]domain.OrderSummary, error) {
	orders, err := s.orders.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.OrderSummary, 0, len(orders))
	for i := range orders {
		summaries = append(summaries, orders[i].Summary())
	}
	return summaries, nil
}

func (s *OrderService) GetByID(ctx context.Context, id uint64) (*domain.Order, error) {
	o, err := s.orders.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}
