package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending OrderStatus = "pending"
	StatusPaid    OrderStatus = "paid"
	StatusShipped OrderStatus = "shipped"
)

type Order struct {
	ID          uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      uint64          `json:"userId" gorm:"not null;index"`
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"type:decimal(12,2);not null"`
	Status      OrderStatus     `json:"status" gorm:"type:enum('pending','paid','shipped');default:'pending'"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	Items       []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderItem snapshots a cart line at checkout time. PriceAtPurchase is the
// catalog price read inside the checkout transaction, so later catalog price
// changes never affect a committed order.
type OrderItem struct {
	ID              uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID         uint64          `json:"orderId" gorm:"not null;index"`
	ProductID       uint64          `json:"productId" gorm:"not null"`
	Quantity        int             `json:"quantity" gorm:"not null"`
	PriceAtPurchase decimal.Decimal `json:"priceAtPurchase" gorm:"type:decimal(10,2);not null"`
}

// OrderSummary is what callers get back after checkout and in history
// listings. TotalAmount is serialized as a fixed two-decimal string.
type OrderSummary struct {
	OrderID     uint64      `json:"orderId"`
	TotalAmount string      `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt,omitempty"`
}

func (o *Order) Summary() OrderSummary {
	return OrderSummary{
		OrderID:     o.ID,
		TotalAmount: o.TotalAmount.StringFixed(2),
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
}
