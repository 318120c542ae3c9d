package initializers

import (
	"log"

	"github.com/Kariqs/storefront-api/models"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Wishlist{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}
	log.Println("Database synced successfully.")
	return nil
}
