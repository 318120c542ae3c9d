// Package testutils builds throwaway databases and fixtures shared by package tests.
package testutils

import (
	"testing"

	"github.com/Kariqs/storefront-api/auth"
	"github.com/Kariqs/storefront-api/initializers"
	"github.com/Kariqs/storefront-api/models"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	JWTKey    = "storefront-test-signing-key-0123456789abcdef"
	JWTIssuer = "storefront-tests"
	Password  = "secret1"
)

// NewTestDB opens a migrated in-memory sqlite database that lives as long as the test.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, initializers.SyncDatabase(db))
	return db
}

func NewTokenService(t testing.TB) *auth.TokenService {
	t.Helper()
	tokens, err := auth.NewTokenService(JWTKey, JWTIssuer)
	require.NoError(t, err)
	return tokens
}

// CreateUser inserts a user with an empty cart and wishlist; the password is Password.
func CreateUser(t testing.TB, db *gorm.DB, name, email, role string) models.User {
	t.Helper()
	hash, err := auth.HashPassword(Password)
	require.NoError(t, err)

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Cart:         &models.Cart{},
		Wishlist:     &models.Wishlist{},
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func CreateCategory(t testing.TB, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func CreateProduct(t testing.TB, db *gorm.DB, categoryID uint, name, price string) models.Product {
	t.Helper()
	product := models.Product{
		Name:       name,
		Brand:      "Acme",
		Price:      decimal.RequireFromString(price),
		Stock:      10,
		CategoryID: categoryID,
	}
	require.NoError(t, db.Omit("Category").Create(&product).Error)
	return product
}

// Identity returns the identity a token issued for user would resolve to.
func Identity(user models.User) auth.Identity {
	return auth.Identity{ID: user.ID, Email: user.Email, Role: user.Role}
}

func Token(t testing.TB, tokens *auth.TokenService, user models.User) string {
	t.Helper()
	token, err := tokens.Issue(user)
	require.NoError(t, err)
	return token
}
