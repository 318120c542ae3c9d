package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Kariqs/storefront-api/auth"
	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const minShippingAddressLength = 5

type OrderService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db, now: time.Now}
}

func validateOrder(data models.CreateOrderData) error {
	verr := utils.NewValidationError("invalid order")

	if len(data.Items) == 0 {
		verr.Add("items", "At least one item is required in the order")
	}
	for i, item := range data.Items {
		prefix := "items[" + strconv.Itoa(i) + "]."
		if item.ProductID == 0 {
			verr.Add(prefix+"productId", "ProductId is required")
		}
		if item.Quantity < 1 {
			verr.Add(prefix+"quantity", "Quantity must be at least 1")
		}
		// Checked at the stored precision of two decimals.
		if !item.Price.Round(2).IsPositive() {
			verr.Add(prefix+"price", "Price must be greater than 0")
		}
	}
	if len(strings.TrimSpace(data.ShippingAddress)) < minShippingAddressLength {
		verr.Add("shippingAddress", "Shipping address must be at least 5 characters long")
	}
	if strings.TrimSpace(data.PaymentReference) == "" {
		verr.Add("paymentReference", "Payment reference is required")
	}
	if strings.TrimSpace(data.PaymentIntentID) == "" {
		verr.Add("paymentIntentId", "Payment Intent ID is required")
	}
	return verr.OrNil()
}

// OrderTotal sums price x quantity using the client-supplied unit prices.
func OrderTotal(items []models.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// PlaceOrder persists an order and its items in one transaction. The caller
// must be the user the order is placed for.
func (s *OrderService) PlaceOrder(ctx context.Context, caller auth.Identity, data models.CreateOrderData) (models.OrderDto, error) {
	if caller.ID != data.UserID {
		return models.OrderDto{}, utils.Forbidden("Cannot place orders for other users")
	}
	if err := validateOrder(data); err != nil {
		return models.OrderDto{}, err
	}

	order := models.Order{
		UserID:           data.UserID,
		Status:           models.OrderStatusPending,
		OrderDate:        s.now().UTC(),
		ShippingAddress:  strings.TrimSpace(data.ShippingAddress),
		PaymentReference: data.PaymentReference,
		PaymentIntentID:  data.PaymentIntentID,
		OrderItems:       make([]models.OrderItem, 0, len(data.Items)),
	}
	for _, item := range data.Items {
		order.OrderItems = append(order.OrderItems, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price.Round(2),
		})
	}
	order.TotalAmount = OrderTotal(order.OrderItems)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return models.OrderDto{}, fmt.Errorf("begin order transaction: %w", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := tx.Omit("OrderItems").Create(&order).Error; err != nil {
		tx.Rollback()
		return models.OrderDto{}, fmt.Errorf("create order: %w", err)
	}

	for i := range order.OrderItems {
		order.OrderItems[i].OrderID = order.ID
	}
	if err := tx.Create(&order.OrderItems).Error; err != nil {
		tx.Rollback()
		return models.OrderDto{}, fmt.Errorf("create order items: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return models.OrderDto{}, fmt.Errorf("commit order: %w", err)
	}
	return order.ToDto(), nil
}

func orderItemsByID(db *gorm.DB) *gorm.DB {
	return db.Order("order_items.id")
}

// GetOrderByID checks existence first, then ownership.
func (s *OrderService) GetOrderByID(ctx context.Context, caller auth.Identity, id uint) (models.OrderDto, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("OrderItems", orderItemsByID).First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.OrderDto{}, utils.NotFound("order not found")
	}
	if err != nil {
		return models.OrderDto{}, fmt.Errorf("fetch order %d: %w", id, err)
	}

	if err := auth.Authorize(caller, order.UserID); err != nil {
		return models.OrderDto{}, err
	}
	return order.ToDto(), nil
}

func (s *OrderService) GetOrdersByUser(ctx context.Context, userID uint) ([]models.OrderDto, error) {
	return s.list(s.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.OrderDto, error) {
	return s.list(s.db.WithContext(ctx))
}

func (s *OrderService) list(query *gorm.DB) ([]models.OrderDto, error) {
	var orders []models.Order
	if err := query.Preload("OrderItems", orderItemsByID).Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	out := make([]models.OrderDto, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ToDto())
	}
	return out, nil
}
