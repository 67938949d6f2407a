package route

import (
	"github.com/gin-gonic/gin"
	"github.com/skyvoyage/booking-api/internal/adapter/api/controller"
	"github.com/skyvoyage/booking-api/internal/domain/user"
	"github.com/skyvoyage/booking-api/pkg/auth"
)

// SetupChatRoutes configura as rotas do painel de atendimento. Todas exigem
// o papel agent.
func SetupChatRoutes(router *gin.RouterGroup, chatController *controller.ChatController, jwtService *auth.JWTService) {
	chatRouter := router.Group("/chat")
	chatRouter.Use(auth.JWTAuthMiddleware(jwtService), auth.RoleAuthMiddleware(string(user.RoleAgent)))
	{
		chatRouter.GET("/sessions", chatController.Sessions)
		chatRouter.GET("/sessions/:id/messages", chatController.Messages)
		chatRouter.GET("/sessions/:id/customer", chatController.Customer)
		chatRouter.GET("/sessions/:id/bookings", chatController.Bookings)
		chatRouter.GET("/sessions/:id/status", chatController.Status)
	}
}
