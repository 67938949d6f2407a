package route

import (
	"github.com/gin-gonic/gin"
	"github.com/skyvoyage/booking-api/internal/adapter/api/controller"
	"github.com/skyvoyage/booking-api/pkg/auth"
)

// SetupChatbotRoutes configura a rota do assistente virtual
func SetupChatbotRoutes(router *gin.RouterGroup, chatbotController *controller.ChatbotController, jwtService *auth.JWTService) {
	chatbotRouter := router.Group("/chatbot")
	chatbotRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		chatbotRouter.POST("", chatbotController.Chat)
	}
}
