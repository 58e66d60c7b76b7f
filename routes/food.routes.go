package routes

import (
	"dietai/internal/controllers"
	"dietai/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFoodRoutes(router *gin.Engine, foodController *controllers.FoodController, jwtSecret string) {
	foodRoutes := router.Group("/foods")
	foodRoutes.Use(middleware.AuthMiddleware(jwtSecret))
	{
		foodRoutes.GET("/search", foodController.SearchFoods)
		foodRoutes.GET("/:fdcId", foodController.GetFood)
	}
}
