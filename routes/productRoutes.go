package routes

import (
	"github.com/Kariqs/storefront-api/controllers"
	"github.com/Kariqs/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CategoryRoutes(api *gin.RouterGroup, authenticator middlewares.Authenticator, c *controllers.CategoryController) {
	categories := api.Group("/categories")
	categories.GET("", c.GetCategories)
	categories.GET("/:id", c.GetCategory)

	admin := categories.Group("", middlewares.RequireAuth(authenticator), middlewares.RequireAdmin())
	admin.POST("", c.CreateCategory)
	admin.PUT("/:id", c.UpdateCategory)
	admin.DELETE("/:id", c.DeleteCategory)
}

func ProductRoutes(api *gin.RouterGroup, authenticator middlewares.Authenticator, c *controllers.ProductController) {
	products := api.Group("/products")
	products.GET("", c.GetProducts)
	products.GET("/:id", c.GetProduct)

	admin := products.Group("", middlewares.RequireAuth(authenticator), middlewares.RequireAdmin())
	admin.POST("", c.CreateProduct)
	admin.POST("/upload", c.UploadImage)
	admin.PUT("/:id", c.UpdateProduct)
	admin.DELETE("/:id", c.DeleteProduct)
}
