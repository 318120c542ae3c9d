package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kariqs/storefront-api/auth"
	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WishlistService struct {
	db       *gorm.DB
	products *ProductService
}

func NewWishlistService(db *gorm.DB, products *ProductService) *WishlistService {
	return &WishlistService{db: db, products: products}
}

func (s *WishlistService) GetByUserID(ctx context.Context, userID uint) (models.WishlistDto, error) {
	var wishlist models.Wishlist
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("wishlist_items.id") }).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&wishlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.WishlistDto{}, utils.NotFound("wishlist not found")
	}
	if err != nil {
		return models.WishlistDto{}, fmt.Errorf("fetch wishlist for user %d: %w", userID, err)
	}
	return wishlist.ToDto(), nil
}

// AddItem puts productID on the user's wishlist. Adding it again is a no-op.
func (s *WishlistService) AddItem(ctx context.Context, userID, productID uint) error {
	exists, err := s.products.Exists(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return utils.NotFound("product not found")
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wishlist, err := ensureWishlist(tx, userID)
		if err != nil {
			return err
		}

		item := models.WishlistItem{WishlistID: wishlist.ID, ProductID: productID}
		return tx.Omit("Product").Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "wishlist_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).Create(&item).Error
	})
	if err != nil {
		return fmt.Errorf("add product %d to wishlist of user %d: %w", productID, userID, err)
	}
	return nil
}

func ensureWishlist(tx *gorm.DB, userID uint) (models.Wishlist, error) {
	created := models.Wishlist{UserID: userID}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&created).Error
	if err != nil {
		return models.Wishlist{}, err
	}

	var wishlist models.Wishlist
	if err := tx.Where("user_id = ?", userID).First(&wishlist).Error; err != nil {
		return models.Wishlist{}, err
	}
	return wishlist, nil
}

// OwnerOfItem follows item -> wishlist -> user.
func (s *WishlistService) OwnerOfItem(ctx context.Context, itemID uint) (uint, error) {
	var owner struct{ UserID uint }
	err := s.db.WithContext(ctx).
		Table("wishlist_items").
		Select("wishlists.user_id").
		Joins("JOIN wishlists ON wishlists.id = wishlist_items.wishlist_id").
		Where("wishlist_items.id = ?", itemID).
		Take(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, utils.NotFound("wishlist item not found")
	}
	if err != nil {
		return 0, fmt.Errorf("resolve owner of wishlist item %d: %w", itemID, err)
	}
	return owner.UserID, nil
}

// RemoveItem deletes a wishlist item after confirming it exists and the caller may touch it.
func (s *WishlistService) RemoveItem(ctx context.Context, caller auth.Identity, itemID uint) error {
	ownerID, err := s.OwnerOfItem(ctx, itemID)
	if err != nil {
		return err
	}
	if err := auth.Authorize(caller, ownerID); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(&models.WishlistItem{}, itemID).Error; err != nil {
		return fmt.Errorf("remove wishlist item %d: %w", itemID, err)
	}
	return nil
}
