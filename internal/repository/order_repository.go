package repository

import (
	"checkout-service/internal/domain"
)

type OrderRepository interface {
	// CreateOrderTransaction commits the whole checkout atomically: the
	// order row, one order item per line, a stock decrement per line, and
	// the cart-items delete. Any step failing rolls back every write.
	// On success the order's ID and CreatedAt are populated.
	CreateOrderTransaction(order *domain.Order, items []domain.OrderItem, cartID uint64) error
	FindByUserID(userID uint64) ([]domain.Order, error)
	FindByID(id uint64) (*domain.Order, error)
}
