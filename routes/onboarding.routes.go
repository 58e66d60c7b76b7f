package routes

import (
	"dietai/internal/controllers"
	"dietai/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterOnboardingRoutes(router *gin.Engine, onboardingController *controllers.OnboardingController, jwtSecret string) {
	onboardingRoutes := router.Group("/onboarding")
	onboardingRoutes.Use(middleware.AuthMiddleware(jwtSecret))
	{
		onboardingRoutes.GET("", onboardingController.GetOnboarding)
		onboardingRoutes.DELETE("", onboardingController.Reset)
		onboardingRoutes.POST("/answer", onboardingController.SubmitAnswer)
		onboardingRoutes.POST("/back", onboardingController.GoBack)
		onboardingRoutes.PUT("/step", onboardingController.SetStep)
		onboardingRoutes.GET("/metrics", onboardingController.GetMetrics)
		onboardingRoutes.POST("/complete", onboardingController.Complete)
	}
}
