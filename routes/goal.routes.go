package routes

import (
	"dietai/internal/controllers"
	"dietai/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterGoalRoutes(router *gin.Engine, goalController *controllers.GoalController, jwtSecret string) {
	goalRoutes := router.Group("/goals")
	goalRoutes.Use(middleware.AuthMiddleware(jwtSecret))
	{
		goalRoutes.GET("", goalController.GetGoals)
		goalRoutes.PUT("", goalController.UpdateGoals)
	}
}
