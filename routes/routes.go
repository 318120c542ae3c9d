package routes

import (
	"github.com/Kariqs/storefront-api/auth"
	"github.com/Kariqs/storefront-api/controllers"
	"github.com/Kariqs/storefront-api/services"
	"github.com/Kariqs/storefront-api/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dependencies are the shared resources every request handler draws on.
type Dependencies struct {
	DB     *gorm.DB
	Tokens *auth.TokenService
	Images storage.ImageStore
}

// Register mounts every route of the API on server.
func Register(server *gin.Engine, deps Dependencies) {
	users := services.NewUserService(deps.DB)
	categories := services.NewCategoryService(deps.DB)
	products := services.NewProductService(deps.DB)
	carts := services.NewCartService(deps.DB, products)
	wishlists := services.NewWishlistService(deps.DB, products)
	orders := services.NewOrderService(deps.DB)

	DefaultRoutes(server)

	api := server.Group("/api")
	api.GET("/health", controllers.GetHealth)

	AuthRoutes(api, controllers.NewAuthController(users, deps.Tokens))
	UserRoutes(api, deps.Tokens, controllers.NewUserController(users))
	CategoryRoutes(api, deps.Tokens, controllers.NewCategoryController(categories))
	ProductRoutes(api, deps.Tokens, controllers.NewProductController(products, deps.Images))
	CartRoutes(api, deps.Tokens, controllers.NewCartController(carts))
	WishlistRoutes(api, deps.Tokens, controllers.NewWishlistController(wishlists))
	OrderRoutes(api, deps.Tokens, controllers.NewOrderController(orders))
}
