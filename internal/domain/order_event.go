package domain

import "time"

type OrderPlacedEvent struct {
	MessageID   string    `json:"messageId"`
	OrderID     uint64    `json:"orderId"`
	UserID      uint64    `json:"userId"`
	TotalAmount string    `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}
