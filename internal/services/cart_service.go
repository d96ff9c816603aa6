package services

import (
	"context"
	"errors"

	"checkout-service/internal/domain"
	"checkout-service/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("item not found in cart")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// CartView is the display shape of a cart: its lines joined with product
// data plus a server-computed total.
type CartView struct {
	CartID uint64            `json:"cartId"`
	Items  []domain.CartLine `json:"items"`
	Total  string            `json:"total"`
}

type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{carts: carts, products: products, logger: logger}
}

// AddItem creates the user's cart on first use, then inserts the line or
// accumulates quantity onto the existing (cart, product) line.
func (s *CartService) AddItem(ctx context.Context, userID, productID uint64, quantity int) (*domain.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.products.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	cart, err := s.carts.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &domain.Cart{UserID: userID}
		if err := s.carts.Create(cart); err != nil {
			return nil, err
		}
		s.logger.Info("created cart", zap.Uint64("userId", userID), zap.Uint64("cartId", cart.ID))
	}

	item, err := s.carts.FindItem(cart.ID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		item = &domain.CartItem{CartID: cart.ID, ProductID: productID, Quantity: quantity}
	} else {
		item.Quantity += quantity
	}

	if err := s.carts.SaveItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetCart returns an empty view when the user has no cart yet.
func (s *CartService) GetCart(ctx context.Context, userID uint64) (*CartView, error) {
	cart, err := s.carts.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &CartView{Items: []domain.CartLine{}, Total: "0.00"}, nil
	}

	lines, err := s.carts.Detail(cart.ID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return &CartView{CartID: cart.ID, Items: lines, Total: total.StringFixed(2)}, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID uint64, quantity int) (*domain.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.carts.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	item, err := s.carts.FindItem(cart.ID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	item.Quantity = quantity
	if err := s.carts.SaveItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID uint64) error {
	cart, err := s.carts.FindByUserID(userID)
	if err != nil {
		return err
	}
	if cart == nil {
		return ErrCartNotFound
	}

	removed, err := s.carts.DeleteItem(cart.ID, productID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrItemNotFound
	}
	return nil
}
