package services

import (
	"checkout-service/internal/domain"

	"github.com/shopspring/decimal"
)

func testCartLine(itemID, productID uint64, name, price string, qty int) domain.CartLine {
	return domain.CartLine{
		CartItemID: itemID,
		ProductID:  productID,
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Quantity:   qty,
	}
}

func testProduct(id uint64, name, price string, stock int) *domain.Product {
	return &domain.Product{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
}

const (
	testUserID = uint64(7)
	testCartID = uint64(3)
	testEmail  = "buyer@example.com"
)
