package routes

import (
	"dietai/internal/controllers"
	"dietai/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFoodLogRoutes(router *gin.Engine, foodLogController *controllers.FoodLogController, jwtSecret string) {
	foodLogRoutes := router.Group("/food-log")
	foodLogRoutes.Use(middleware.AuthMiddleware(jwtSecret))
	{
		foodLogRoutes.GET("", foodLogController.GetFoodLog)
		foodLogRoutes.POST("", foodLogController.AddFood)
		foodLogRoutes.GET("/summary", foodLogController.GetSummary)
		foodLogRoutes.DELETE("/:id", foodLogController.RemoveFood)
	}
}
