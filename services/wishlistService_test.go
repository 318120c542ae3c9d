package services

import (
	"context"
	"sync"
	"testing"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/testutils"
	"github.com/Kariqs/storefront-api/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistAddIsIdempotent(t *testing.T) {
	db := testutils.NewTestDB(t)
	alice := testutils.CreateUser(t, db, "Alice", "alice@x.com", models.RoleCustomer)
	category := testutils.CreateCategory(t, db, "Books")
	product := testutils.CreateProduct(t, db, category.ID, "Go in Practice", "30.00")
	svc := NewWishlistService(db, NewProductService(db))
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, alice.ID, product.ID))
	require.NoError(t, svc.AddItem(ctx, alice.ID, product.ID))

	wishlist, err := svc.GetByUserID(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, wishlist.Items, 1)
	assert.Equal(t, "Go in Practice", wishlist.Items[0].ProductName)

	assert.ErrorIs(t, svc.AddItem(ctx, alice.ID, product.ID+100), utils.ErrNotFound)
}

func TestWishlistMissing(t *testing.T) {
	db := testutils.NewTestDB(t)
	svc := NewWishlistService(db, NewProductService(db))

	_, err := svc.GetByUserID(context.Background(), 999)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestWishlistRemoveItem(t *testing.T) {
	db := testutils.NewTestDB(t)
	alice := testutils.CreateUser(t, db, "Alice", "alice@x.com", models.RoleCustomer)
	bob := testutils.CreateUser(t, db, "Bob", "bob@x.com", models.RoleCustomer)
	admin := testutils.CreateUser(t, db, "Admin", "admin@x.com", models.RoleAdmin)
	category := testutils.CreateCategory(t, db, "Books")
	first := testutils.CreateProduct(t, db, category.ID, "First", "10.00")
	second := testutils.CreateProduct(t, db, category.ID, "Second", "12.00")
	svc := NewWishlistService(db, NewProductService(db))
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, alice.ID, first.ID))
	require.NoError(t, svc.AddItem(ctx, alice.ID, second.ID))
	wishlist, err := svc.GetByUserID(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, wishlist.Items, 2)

	owner, err := svc.OwnerOfItem(ctx, wishlist.Items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, owner)

	assert.ErrorIs(t, svc.RemoveItem(ctx, testutils.Identity(bob), 999), utils.ErrNotFound)
	assert.ErrorIs(t, svc.RemoveItem(ctx, testutils.Identity(bob), wishlist.Items[0].ID), utils.ErrForbidden)

	require.NoError(t, svc.RemoveItem(ctx, testutils.Identity(alice), wishlist.Items[0].ID))
	require.NoError(t, svc.RemoveItem(ctx, testutils.Identity(admin), wishlist.Items[1].ID))

	wishlist, err = svc.GetByUserID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, wishlist.Items)
}

func TestConcurrentWishlistAddConvergesOnOneRow(t *testing.T) {
	db := testutils.NewTestDB(t)
	alice := testutils.CreateUser(t, db, "Alice", "alice@x.com", models.RoleCustomer)
	category := testutils.CreateCategory(t, db, "Books")
	product := testutils.CreateProduct(t, db, category.ID, "Go in Practice", "30.00")
	svc := NewWishlistService(db, NewProductService(db))
	require.NoError(t, db.Where("user_id = ?", alice.ID).Delete(&models.Wishlist{}).Error)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.AddItem(context.Background(), alice.ID, product.ID))
		}()
	}
	wg.Wait()

	var wishlists, rows int64
	require.NoError(t, db.Model(&models.Wishlist{}).Where("user_id = ?", alice.ID).Count(&wishlists).Error)
	require.NoError(t, db.Model(&models.WishlistItem{}).Count(&rows).Error)
	assert.Equal(t, int64(1), wishlists)
	assert.Equal(t, int64(1), rows)
}
