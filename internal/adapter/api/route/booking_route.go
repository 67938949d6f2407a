package route

import (
	"github.com/gin-gonic/gin"
	"github.com/skyvoyage/booking-api/internal/adapter/api/controller"
	"github.com/skyvoyage/booking-api/internal/domain/user"
	"github.com/skyvoyage/booking-api/pkg/auth"
)

// SetupBookingRoutes configura as rotas para reservas
func SetupBookingRoutes(router *gin.RouterGroup, bookingController *controller.BookingController, jwtService *auth.JWTService) {
	bookingRouter := router.Group("/bookings")
	bookingRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		bookingRouter.POST("", bookingController.Create)
		// Consulta por código de cliente é restrita a agentes; o portal do
		// cliente usa a rota de sessão /chat/sessions/:id/bookings
		bookingRouter.GET("/customer/:customerId",
			auth.RoleAuthMiddleware(string(user.RoleAgent)), bookingController.List)
		bookingRouter.DELETE("/:id", bookingController.Cancel)
		bookingRouter.POST("/:id/checkin", bookingController.CheckIn)
		bookingRouter.GET("/:id/boarding-pass", bookingController.BoardingPass)
		bookingRouter.GET("/flight/:flightNumber/seats", bookingController.Seats)
	}
}
