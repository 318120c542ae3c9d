package routes

import (
	"github.com/Kariqs/storefront-api/controllers"
	"github.com/Kariqs/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(api *gin.RouterGroup, authenticator middlewares.Authenticator, c *controllers.OrderController) {
	orders := api.Group("/orders", middlewares.RequireAuth(authenticator))
	{
		orders.POST("", c.CreateOrder)
		orders.GET("", middlewares.RequireAdmin(), c.GetOrders)
		orders.GET("/:id", c.GetOrder)
		orders.GET("/user/:userId", middlewares.RequireSelfOrAdmin("userId"), c.GetUserOrders)
	}
}
