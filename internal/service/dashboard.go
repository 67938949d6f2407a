package service

import (
	"context"
	"fmt"
	"time"

	"github.com/skyvoyage/booking-api/internal/domain/booking"
	"github.com/skyvoyage/booking-api/internal/domain/customer"
	"github.com/skyvoyage/booking-api/internal/domain/history"
	"github.com/skyvoyage/booking-api/internal/domain/user"
	"github.com/skyvoyage/booking-api/pkg/logger"
)

// revenuePerBooking é o valor fixo usado no cálculo de receita do painel
const revenuePerBooking = 200

const recentBookingsLimit = 5

// ClassDistribution agrupa as reservas por classe no formato esperado pelos
// gráficos do painel
type ClassDistribution struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// DashboardData é o snapshot agregado enviado aos painéis. Para agentes os
// números são globais; para clientes, restritos às próprias reservas.
type DashboardData struct {
	TotalBookings     int                `json:"total_bookings"`
	UpcomingFlights   int                `json:"upcoming_flights"`
	Revenue           int                `json:"revenue"`
	Activities        int                `json:"activities"`
	Cancellations     int                `json:"cancellations"`
	ActiveUsers       int                `json:"active_users"`
	RecentBookings    []*booking.Booking `json:"recent_bookings"`
	ClassDistribution ClassDistribution  `json:"class_distribution"`
}

// DashboardService monta o snapshot agregado dos painéis
type DashboardService struct {
	bookings  booking.Repository
	customers customer.Repository
	users     user.Repository
	history   history.Repository
	logger    logger.Logger
}

// NewDashboardService cria uma nova instância de DashboardService
func NewDashboardService(bookings booking.Repository, customers customer.Repository,
	users user.Repository, hist history.Repository, log logger.Logger) *DashboardService {
	return &DashboardService{
		bookings:  bookings,
		customers: customers,
		users:     users,
		history:   hist,
		logger:    log,
	}
}

// Snapshot monta o painel do usuário. Agentes recebem os agregados globais;
// clientes recebem apenas os próprios números, resolvidos pelo perfil de
// cliente vinculado ao email do usuário. Usuário sem perfil de cliente
// recebe um painel zerado.
func (s *DashboardService) Snapshot(ctx context.Context, userID string, isAgent bool) (interface{}, error) {
	customerID := ""
	if !isAgent {
		id, err := s.resolveCustomerID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if id == "" {
			return &DashboardData{
				RecentBookings:    []*booking.Booking{},
				ClassDistribution: ClassDistribution{Labels: []string{}, Data: []int{}},
			}, nil
		}
		customerID = id
	}

	total, err := s.bookings.Count(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar reservas: %w", err)
	}

	upcoming, err := s.bookings.CountUpcoming(ctx, customerID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("erro ao contar voos futuros: %w", err)
	}

	recent, err := s.bookings.FindRecent(ctx, customerID, recentBookingsLimit)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar reservas recentes: %w", err)
	}

	byClass, err := s.bookings.CountByClass(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar reservas por classe: %w", err)
	}

	activities := 0
	cancellations := 0
	activeUsers := 0
	if isAgent {
		activities, err = s.history.CountByActivity(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("erro ao contar atividades: %w", err)
		}

		// O recorder escreve "Reserva cancelada: <id>"
		cancellations, err = s.history.CountByActivity(ctx, "Reserva cancelada")
		if err != nil {
			return nil, fmt.Errorf("erro ao contar cancelamentos: %w", err)
		}

		activeUsers, err = s.users.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("erro ao contar usuários: %w", err)
		}
	} else {
		activities, err = s.history.CountByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("erro ao contar atividades: %w", err)
		}
	}

	dist := ClassDistribution{Labels: []string{}, Data: []int{}}
	for _, cc := range byClass {
		dist.Labels = append(dist.Labels, cc.Class)
		dist.Data = append(dist.Data, cc.Count)
	}

	if recent == nil {
		recent = []*booking.Booking{}
	}

	return &DashboardData{
		TotalBookings:     total,
		UpcomingFlights:   upcoming,
		Revenue:           total * revenuePerBooking,
		Activities:        activities,
		Cancellations:     cancellations,
		ActiveUsers:       activeUsers,
		RecentBookings:    recent,
		ClassDistribution: dist,
	}, nil
}

// resolveCustomerID encontra o código de cliente vinculado ao usuário. Um
// usuário sem perfil de cliente resulta em código vazio, não em erro.
func (s *DashboardService) resolveCustomerID(ctx context.Context, userID string) (string, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("erro ao buscar usuário do painel: %w", err)
	}

	c, err := s.customers.FindByEmail(ctx, u.Email)
	if err != nil {
		s.logger.Debug("usuário sem perfil de cliente", "user_id", userID)
		return "", nil
	}

	return c.CustomerID, nil
}
