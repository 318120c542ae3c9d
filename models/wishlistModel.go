package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Wishlist struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"not null;uniqueIndex"`
	Items     []WishlistItem `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

type WishlistItem struct {
	ID         uint    `gorm:"primaryKey"`
	WishlistID uint    `gorm:"not null;uniqueIndex:idx_wishlist_product"`
	ProductID  uint    `gorm:"not null;uniqueIndex:idx_wishlist_product"`
	Product    Product `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
}

// AddWishlistItemData accepts a quantity for client compatibility; it is not stored.
type AddWishlistItemData struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"omitempty,min=1"`
}

type WishlistDto struct {
	ID     uint              `json:"id"`
	UserID uint              `json:"userId"`
	Items  []WishlistItemDto `json:"items"`
}

type WishlistItemDto struct {
	ID          uint            `json:"id"`
	ProductID   uint            `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	ImageUrl    string          `json:"imageUrl"`
}

func (w Wishlist) ToDto() WishlistDto {
	dto := WishlistDto{ID: w.ID, UserID: w.UserID, Items: make([]WishlistItemDto, 0, len(w.Items))}
	for _, item := range w.Items {
		dto.Items = append(dto.Items, WishlistItemDto{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Price:       item.Product.Price,
			ImageUrl:    item.Product.ImageUrl,
		})
	}
	return dto
}
