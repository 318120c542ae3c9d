package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderStatusPending = "Pending"

type Order struct {
	ID               uint            `gorm:"primaryKey"`
	UserID           uint            `gorm:"not null;index"`
	Status           string          `gorm:"size:20;not null;default:Pending"`
	OrderDate        time.Time       `gorm:"not null"`
	ShippingAddress  string          `gorm:"not null"`
	PaymentReference string          `gorm:"not null"`
	PaymentIntentID  string          `gorm:"not null"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	OrderItems       []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem.Price is the unit price captured when the order was placed.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uint            `gorm:"not null;index"`
	ProductID uint            `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

type CreateOrderData struct {
	UserID           uint                  `json:"userId" binding:"required"`
	Items            []CreateOrderItemData `json:"items" binding:"required,min=1,dive"`
	ShippingAddress  string                `json:"shippingAddress" binding:"required,min=5"`
	PaymentReference string                `json:"paymentReference" binding:"required"`
	PaymentIntentID  string                `json:"paymentIntentId" binding:"required"`
}

type CreateOrderItemData struct {
	ProductID uint            `json:"productId" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	Price     decimal.Decimal `json:"price"`
}

type OrderDto struct {
	ID               uint            `json:"id"`
	UserID           uint            `json:"userId"`
	Status           string          `json:"status"`
	OrderDate        time.Time       `json:"orderDate"`
	ShippingAddress  string          `json:"shippingAddress"`
	PaymentReference string          `json:"paymentReference"`
	PaymentIntentID  string          `json:"paymentIntentId"`
	OrderItems       []OrderItemDto  `json:"orderItems"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
}

// OrderItemDto.ProductName is left blank; clients fetch product details separately.
type OrderItemDto struct {
	ID          uint            `json:"id"`
	ProductID   uint            `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

func (o Order) ToDto() OrderDto {
	dto := OrderDto{
		ID:               o.ID,
		UserID:           o.UserID,
		Status:           o.Status,
		OrderDate:        o.OrderDate,
		ShippingAddress:  o.ShippingAddress,
		PaymentReference: o.PaymentReference,
		PaymentIntentID:  o.PaymentIntentID,
		OrderItems:       make([]OrderItemDto, 0, len(o.OrderItems)),
		TotalAmount:      o.TotalAmount,
	}
	for _, item := range o.OrderItems {
		dto.OrderItems = append(dto.OrderItems, OrderItemDto{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return dto
}
