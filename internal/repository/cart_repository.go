package repository

import (
	"checkout-service/internal/domain"
)

type CartRepository interface {
	// FindByUserID returns nil, nil when the user has no cart yet.
	FindByUserID(userID uint64) (*domain.Cart, error)
	Create(cart *domain.Cart) error
	// FindItem returns nil, nil when the product is not in the cart.
	FindItem(cartID, productID uint64) (*domain.CartItem, error)
	SaveItem(item *domain.CartItem) error
	DeleteItem(cartID, productID uint64) (bool, error)
	// Detail lists the cart's items joined with product name, price and
	// image, ordered by cart item id.
	Detail(cartID uint64) ([]domain.CartLine, error)
}
