package route

import (
	"github.com/gin-gonic/gin"
	"github.com/skyvoyage/booking-api/internal/adapter/api/controller"
	"github.com/skyvoyage/booking-api/pkg/auth"
)

// SetupFlightRoutes configura as rotas de consulta de voos, tempo e
// aeroportos
func SetupFlightRoutes(router *gin.RouterGroup, flightController *controller.FlightController, jwtService *auth.JWTService) {
	flightRouter := router.Group("/flights")
	flightRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		flightRouter.GET("/available", flightController.Available)
		flightRouter.GET("/weather", flightController.Weather)
		flightRouter.GET("/airports", flightController.Airports)
	}
}
