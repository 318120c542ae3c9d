package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Storefront API.

AUTH
- POST "/api/auth/register" - Create a customer account
- POST "/api/auth/login" - Sign in and receive a bearer token

CATALOG
- GET "/api/categories" - List categories
- GET "/api/products" - List products (name, categoryId, page, pageSize)
- GET "/api/products/:id" - Get product by ID

CART (customers)
- GET "/api/cart" - Get the caller's cart
- POST "/api/cart" - Add an item
- DELETE "/api/cart/items/:id" - Remove an item
- DELETE "/api/cart/clear" - Empty the cart

WISHLIST
- GET "/api/wishlist/:userId" - Get a wishlist
- POST "/api/wishlist/items" - Add a product
- DELETE "/api/wishlist/items/:id" - Remove a product

ORDERS
- POST "/api/orders" - Place an order
- GET "/api/orders/:id" - Get order by ID
- GET "/api/orders/user/:userId" - Get orders for a user`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

func GetHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
