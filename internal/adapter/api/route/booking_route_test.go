package route

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skyvoyage/booking-api/internal/activity"
	"github.com/skyvoyage/booking-api/internal/adapter/api/controller"
	"github.com/skyvoyage/booking-api/internal/domain/booking"
	"github.com/skyvoyage/booking-api/internal/domain/history"
	"github.com/skyvoyage/booking-api/internal/domain/user"
	"github.com/skyvoyage/booking-api/pkg/auth"
	"github.com/skyvoyage/booking-api/pkg/logger"
)

type noopBookingRepository struct{}

func (noopBookingRepository) Create(ctx context.Context, b *booking.Booking) error { return nil }
func (noopBookingRepository) FindByID(ctx context.Context, id string) (*booking.Booking, error) {
	return nil, nil
}
func (noopBookingRepository) FindByCustomer(ctx context.Context, customerID string) ([]*booking.Booking, error) {
	return nil, nil
}
func (noopBookingRepository) FindRecent(ctx context.Context, customerID string, limit int) ([]*booking.Booking, error) {
	return nil, nil
}
func (noopBookingRepository) FindSeatsByFlight(ctx context.Context, flightNumber string) ([]string, error) {
	return nil, nil
}
func (noopBookingRepository) SeatTaken(ctx context.Context, flightNumber, seatNumber string) (bool, error) {
	return false, nil
}
func (noopBookingRepository) UpdateStatus(ctx context.Context, id string, status booking.Status) error {
	return nil
}
func (noopBookingRepository) Delete(ctx context.Context, id string) (int64, error) { return 0, nil }
func (noopBookingRepository) Count(ctx context.Context, customerID string) (int, error) {
	return 0, nil
}
func (noopBookingRepository) CountUpcoming(ctx context.Context, customerID string, from time.Time) (int, error) {
	return 0, nil
}
func (noopBookingRepository) CountByClass(ctx context.Context, customerID string) ([]booking.ClassCount, error) {
	return nil, nil
}

type noopHistoryRepository struct{}

func (noopHistoryRepository) Create(ctx context.Context, e *history.Entry) error { return nil }
func (noopHistoryRepository) FindByUser(ctx context.Context, userID string) ([]*history.Entry, error) {
	return nil, nil
}
func (noopHistoryRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	return 0, nil
}
func (noopHistoryRepository) CountByActivity(ctx context.Context, term string) (int, error) {
	return 0, nil
}

func newBookingRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")

	jwtService, err := auth.NewJWTService()
	if err != nil {
		t.Fatalf("erro ao criar serviço JWT: %v", err)
	}

	log := logger.NewLogger()
	recorder := activity.NewRecorder(noopHistoryRepository{}, nil, log)
	ctrl := controller.NewBookingController(noopBookingRepository{}, recorder)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/")
	SetupBookingRoutes(api, ctrl, jwtService)
	return router, jwtService
}

func tokenForRole(t *testing.T, jwtService *auth.JWTService, role user.Role) string {
	t.Helper()

	u, err := user.NewUser("viajante", "viajante@example.com", "senha-segura")
	if err != nil {
		t.Fatalf("erro ao criar usuário: %v", err)
	}
	u.Role = role

	token, err := jwtService.GenerateToken(u)
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}
	return token
}

func TestListByCustomerRequiresAgentRole(t *testing.T) {
	router, jwtService := newBookingRouter(t)

	tests := []struct {
		name       string
		role       user.Role
		wantStatus int
	}{
		{name: "cliente não enumera reservas de outros códigos", role: user.RoleCustomer, wantStatus: http.StatusForbidden},
		{name: "agente consulta reservas por código de cliente", role: user.RoleAgent, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/bookings/customer/654321", nil)
			req.Header.Set("Authorization", "Bearer "+tokenForRole(t, jwtService, tt.role))
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status esperado %d, obtido %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestListByCustomerRequiresAuthentication(t *testing.T) {
	router, _ := newBookingRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/customer/654321", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status esperado 401, obtido %d", w.Code)
	}
}
