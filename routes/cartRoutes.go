package routes

import (
	"github.com/Kariqs/storefront-api/controllers"
	"github.com/Kariqs/storefront-api/middlewares"
	"github.com/Kariqs/storefront-api/models"
	"github.com/gin-gonic/gin"
)

func CartRoutes(api *gin.RouterGroup, authenticator middlewares.Authenticator, c *controllers.CartController) {
	cart := api.Group("/cart", middlewares.RequireAuth(authenticator), middlewares.RequireRole(models.RoleCustomer))
	{
		cart.GET("", c.GetCart)
		cart.POST("", c.AddCartItem)
		cart.DELETE("/items/:id", c.RemoveCartItem)
		cart.DELETE("/clear", c.ClearCart)
	}
}

func WishlistRoutes(api *gin.RouterGroup, authenticator middlewares.Authenticator, c *controllers.WishlistController) {
	wishlist := api.Group("/wishlist", middlewares.RequireAuth(authenticator))
	{
		wishlist.GET("/:userId", middlewares.RequireSelfOrAdmin("userId"), c.GetWishlist)
		wishlist.POST("/items", c.AddWishlistItem)
		wishlist.DELETE("/items/:id", c.RemoveWishlistItem)
	}
}
