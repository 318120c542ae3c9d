package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

func init() {
	// Money renders as a JSON number, matching existing clients.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID            uint            `gorm:"primaryKey"`
	Name          string          `gorm:"size:100;not null;index"`
	Description   string          `gorm:"not null"`
	Brand         string          `gorm:"size:100;not null"`
	ImageUrl      string          `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	DiscountPrice decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Stock         int             `gorm:"not null"`
	Colors        datatypes.JSON
	CategoryID    uint     `gorm:"not null;index"`
	Category      Category `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ProductData struct {
	Name          string          `json:"name" binding:"required,max=100"`
	Description   string          `json:"description" binding:"required"`
	Brand         string          `json:"brand" binding:"required"`
	Price         decimal.Decimal `json:"price"`
	DiscountPrice decimal.Decimal `json:"discountPrice"`
	Stock         int             `json:"stock" binding:"min=0"`
	CategoryID    uint            `json:"categoryId" binding:"required"`
	ImageUrl      string          `json:"imageUrl" binding:"omitempty,uri"`
	Colors        datatypes.JSON  `json:"colors"`
}

type ProductQuery struct {
	Name       string `form:"name"`
	CategoryID uint   `form:"categoryId"`
	Page       int    `form:"page"`
	PageSize   int    `form:"pageSize"`
}

type ProductDto struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Brand         string          `json:"brand"`
	Price         decimal.Decimal `json:"price"`
	DiscountPrice decimal.Decimal `json:"discountPrice"`
	Stock         int             `json:"stock"`
	ImageUrl      string          `json:"imageUrl"`
	Colors        datatypes.JSON  `json:"colors"`
	CategoryID    uint            `json:"categoryId"`
	CategoryName  string          `json:"categoryName"`
}

func (p Product) ToDto() ProductDto {
	return ProductDto{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Brand:         p.Brand,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		Stock:         p.Stock,
		ImageUrl:      p.ImageUrl,
		Colors:        p.Colors,
		CategoryID:    p.CategoryID,
		CategoryName:  p.Category.Name,
	}
}

type UploadResponse struct {
	Url string `json:"url"`
}
