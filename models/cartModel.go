package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        uint       `gorm:"primaryKey"`
	UserID    uint       `gorm:"not null;uniqueIndex"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	ID        uint    `gorm:"primaryKey"`
	CartID    uint    `gorm:"not null;uniqueIndex:idx_cart_product"`
	ProductID uint    `gorm:"not null;uniqueIndex:idx_cart_product"`
	Product   Product `gorm:"constraint:OnDelete:CASCADE"`
	Quantity  int     `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AddCartItemData struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type CartDto struct {
	ID     uint          `json:"id"`
	UserID uint          `json:"userId"`
	Items  []CartItemDto `json:"items"`
}

// CartItemDto prices come from the live product row, not a snapshot.
type CartItemDto struct {
	ID          uint            `json:"id"`
	ProductID   uint            `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

func (c Cart) ToDto() CartDto {
	dto := CartDto{ID: c.ID, UserID: c.UserID, Items: make([]CartItemDto, 0, len(c.Items))}
	for _, item := range c.Items {
		dto.Items = append(dto.Items, CartItemDto{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Price:       item.Product.Price,
		})
	}
	return dto
}
