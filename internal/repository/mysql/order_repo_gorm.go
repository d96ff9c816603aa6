package mysql

import (
	"errors"

	"checkout-service/internal/domain"
	"checkout-service/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

// CreateOrderTransaction runs the whole checkout as one transaction:
// order insert, then per line an order-item insert plus a stock decrement,
// then the cart-items delete. The first error aborts and rolls back every
// write, so a failed checkout leaves the cart, stock and orders untouched.
// The stock decrement is unconditional; overselling under concurrent
// checkouts is bounded only by the store's isolation level.
func (r *orderRepo) CreateOrderTransaction(order *domain.Order, items []domain.OrderItem, cartID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if order.ID == 0 {
			return errors.New("order insert did not assign an id")
		}

		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
			res := tx.Model(&domain.Product{}).
				Where("id = ?", items[i].ProductID).
				UpdateColumn("stock", gorm.Expr("stock - ?", items[i].Quantity))
			if res.Error != nil {
				return res.Error
			}
		}

		// Cart row stays; only its items go.
		return tx.Where("cart_id = ?", cartID).Delete(&domain.CartItem{}).Error
	})
}

func (r *orderRepo) FindByUserID(userID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindByID(id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.Preload("Items").First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}
