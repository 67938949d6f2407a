package route

import (
	"github.com/gin-gonic/gin"
	"github.com/skyvoyage/booking-api/internal/adapter/api/controller"
	"github.com/skyvoyage/booking-api/pkg/auth"
)

// SetupAuthRoutes configura as rotas para autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController, jwtService *auth.JWTService) {
	authRouter := router.Group("/auth")
	{
		authRouter.POST("/signup", authController.Signup)
		authRouter.POST("/login", authController.Login)

		// Logout e dados do usuário exigem autenticação
		authRouter.POST("/logout", auth.JWTAuthMiddleware(jwtService), authController.Logout)
		authRouter.GET("/me", auth.JWTAuthMiddleware(jwtService), authController.Me)
	}
}
