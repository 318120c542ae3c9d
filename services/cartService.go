package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartService struct {
	db       *gorm.DB
	products *ProductService
}

func NewCartService(db *gorm.DB, products *ProductService) *CartService {
	return &CartService{db: db, products: products}
}

// GetCart returns the user's cart with live product names and prices.
// A user without a cart gets an empty one with id 0.
func (s *CartService) GetCart(ctx context.Context, userID uint) (models.CartDto, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id") }).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartDto{UserID: userID, Items: []models.CartItemDto{}}, nil
	}
	if err != nil {
		return models.CartDto{}, fmt.Errorf("fetch cart for user %d: %w", userID, err)
	}
	return cart.ToDto(), nil
}

// AddItem inserts the product into the cart or raises its quantity by data.Quantity.
func (s *CartService) AddItem(ctx context.Context, userID uint, data models.AddCartItemData) (models.CartDto, error) {
	if data.Quantity < 1 {
		verr := utils.NewValidationError("invalid cart item")
		verr.Add("quantity", "Quantity must be at least 1")
		return models.CartDto{}, verr
	}

	exists, err := s.products.Exists(ctx, data.ProductID)
	if err != nil {
		return models.CartDto{}, err
	}
	if !exists {
		return models.CartDto{}, utils.NotFound("product not found")
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := ensureCart(tx, userID)
		if err != nil {
			return err
		}

		item := models.CartItem{CartID: cart.ID, ProductID: data.ProductID, Quantity: data.Quantity}
		return tx.Omit("Product").Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("cart_items.quantity + ?", data.Quantity),
			}),
		}).Create(&item).Error
	})
	if err != nil {
		return models.CartDto{}, fmt.Errorf("add product %d to cart of user %d: %w", data.ProductID, userID, err)
	}
	return s.GetCart(ctx, userID)
}

// ensureCart fetches the user's cart, creating it when missing. The unique
// index on user_id makes concurrent first writes converge on one row.
func ensureCart(tx *gorm.DB, userID uint) (models.Cart, error) {
	created := models.Cart{UserID: userID}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&created).Error
	if err != nil {
		return models.Cart{}, err
	}

	var cart models.Cart
	if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (s *CartService) findCart(ctx context.Context, userID uint) (models.Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Cart{}, utils.NotFound("cart not found")
	}
	if err != nil {
		return models.Cart{}, fmt.Errorf("fetch cart for user %d: %w", userID, err)
	}
	return cart, nil
}

// RemoveItem deletes one line from the user's own cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	cart, err := s.findCart(ctx, userID)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cart.ID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return fmt.Errorf("remove cart item %d: %w", itemID, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFound("cart item not found")
	}
	return nil
}

func (s *CartService) ClearCart(ctx context.Context, userID uint) error {
	cart, err := s.findCart(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("clear cart %d: %w", cart.ID, err)
	}
	return nil
}
