package routes

import (
	"github.com/Kariqs/storefront-api/controllers"
	"github.com/Kariqs/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(api *gin.RouterGroup, c *controllers.AuthController) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", c.Register)
		auth.POST("/login", c.Login)
	}
}

func UserRoutes(api *gin.RouterGroup, authenticator middlewares.Authenticator, c *controllers.UserController) {
	users := api.Group("/users", middlewares.RequireAuth(authenticator))
	{
		users.GET("", middlewares.RequireAdmin(), c.GetUsers)
		users.POST("", middlewares.RequireAdmin(), c.CreateUser)
		users.GET("/me", c.GetMe)
		users.GET("/:id", c.GetUser)
		users.PUT("/:id", middlewares.RequireSelfOrAdmin("id"), c.UpdateUser)
		users.DELETE("/:id", middlewares.RequireAdmin(), c.DeleteUser)
	}
}
