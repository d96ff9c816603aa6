package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is created lazily on a user's first add-to-cart and is never deleted;
// checkout empties its items but keeps the row for reuse.
type Cart struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `json:"userId" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// CartItem is unique per (cart, product); repeated adds accumulate Quantity
// instead of inserting duplicate rows.
type CartItem struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	CartID    uint64    `json:"cartId" gorm:"not null;uniqueIndex:idx_cart_product"`
	ProductID uint64    `json:"productId" gorm:"not null;uniqueIndex:idx_cart_product"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// CartLine is a cart item joined with its product row for display and for
// checkout pricing.
type CartLine struct {
	CartItemID uint64          `json:"cartItemId"`
	ProductID  uint64          `json:"productId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	ImageURL   string          `json:"imageUrl"`
	Quantity   int             `json:"quantity"`
}
