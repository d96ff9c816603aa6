package mysql

import (
	"errors"

	"checkout-service/internal/domain"
	"checkout-service/internal/repository"

	"gorm.io/gorm"
)

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) FindByUserID(userID uint64) (*domain.Cart, error) {
	var c domain.Cart
	if err := r.db.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *cartRepo) Create(cart *domain.Cart) error {
	return r.db.Create(cart).Error
}

func (r *cartRepo) FindItem(cartID, productID uint64) (*domain.CartItem, error) {
	var it domain.CartItem
	err := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&it).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

// SaveItem inserts when the item has no ID yet and updates otherwise.
func (r *cartRepo) SaveItem(item *domain.CartItem) error {
	return r.db.Save(item).Error
}

func (r *cartRepo) DeleteItem(cartID, productID uint64) (bool, error) {
	res := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).Delete(&domain.CartItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *cartRepo) Detail(cartID uint64) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	err := r.db.Table("cart_items ci").
		Select("ci.id AS cart_item_id, p.id AS product_id, p.name, p.price, p.image_url, ci.quantity").
		Joins("JOIN products p ON p.id = ci.product_id").
		Where("ci.cart_id = ?", cartID).
		Order("ci.id").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}
