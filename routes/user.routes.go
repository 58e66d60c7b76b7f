package routes

import (
	"dietai/internal/controllers"
	"dietai/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController, jwtSecret string) {
	userRoutesPublic := router.Group("/users")
	{
		userRoutesPublic.POST("/register", userController.Register)
		userRoutesPublic.POST("/login", userController.Login)
	}
	userRoutesPrivate := router.Group("/users")
	userRoutesPrivate.Use(middleware.AuthMiddleware(jwtSecret))
	{
		userRoutesPrivate.GET("/me", userController.GetCurrentUser)
		userRoutesPrivate.DELETE("/me", userController.DeleteCurrentUser)
	}
}
