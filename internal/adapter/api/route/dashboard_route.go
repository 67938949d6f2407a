package route

import (
	"github.com/gin-gonic/gin"
	"github.com/skyvoyage/booking-api/internal/adapter/api/controller"
	"github.com/skyvoyage/booking-api/pkg/auth"
)

// SetupDashboardRoutes configura as rotas do painel e do histórico
func SetupDashboardRoutes(router *gin.RouterGroup, dashboardController *controller.DashboardController,
	historyController *controller.HistoryController, jwtService *auth.JWTService) {
	router.GET("/dashboard", auth.JWTAuthMiddleware(jwtService), dashboardController.Get)
	router.GET("/history", auth.JWTAuthMiddleware(jwtService), historyController.List)
}
