package routes

import (
	"dietai/internal/controllers"
	"dietai/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterChatRoutes(router *gin.Engine, chatController *controllers.ChatController, jwtSecret string) {
	chatRoutes := router.Group("/chat")
	chatRoutes.Use(middleware.AuthMiddleware(jwtSecret))
	{
		chatRoutes.POST("", chatController.SendMessage)
		chatRoutes.GET("/history", chatController.GetHistory)
	}
}
