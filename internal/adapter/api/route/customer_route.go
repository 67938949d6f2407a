package route

import (
	"github.com/gin-gonic/gin"
	"github.com/skyvoyage/booking-api/internal/adapter/api/controller"
	"github.com/skyvoyage/booking-api/pkg/auth"
)

// SetupCustomerRoutes configura as rotas para perfis de cliente
func SetupCustomerRoutes(router *gin.RouterGroup, customerController *controller.CustomerController, jwtService *auth.JWTService) {
	customerRouter := router.Group("/customers")
	customerRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		customerRouter.POST("", customerController.Create)
		customerRouter.PUT("", customerController.Update)
		customerRouter.GET("/profile/me", customerController.Profile)
		customerRouter.GET("/:identifier", customerController.Get)
	}
}
