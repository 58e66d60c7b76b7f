package routes

import (
	"dietai/internal/controllers"
	"dietai/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserProfileRoutes(router *gin.Engine, userProfileController *controllers.UserProfileController, jwtSecret string) {
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware(jwtSecret))
	{
		profileRoutes.GET("", userProfileController.GetUserProfile)
		profileRoutes.PUT("", userProfileController.UpdateUserProfile)
		profileRoutes.PATCH("", userProfileController.PatchUserProfile)
		profileRoutes.DELETE("", userProfileController.DeleteUserProfile)
	}
}
