package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skyvoyage/booking-api/internal/domain/booking"
	"github.com/skyvoyage/booking-api/internal/domain/customer"
	"github.com/skyvoyage/booking-api/internal/domain/history"
	"github.com/skyvoyage/booking-api/internal/domain/user"
	"github.com/skyvoyage/booking-api/pkg/logger"
)

type fakeBookingRepository struct {
	bookings []*booking.Booking
}

func (r *fakeBookingRepository) matching(customerID string) []*booking.Booking {
	if customerID == "" {
		return r.bookings
	}
	var out []*booking.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out
}

func (r *fakeBookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	r.bookings = append(r.bookings, b)
	return nil
}

func (r *fakeBookingRepository) FindByID(ctx context.Context, id string) (*booking.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepository) FindByCustomer(ctx context.Context, customerID string) ([]*booking.Booking, error) {
	return r.matching(customerID), nil
}

func (r *fakeBookingRepository) FindRecent(ctx context.Context, customerID string, limit int) ([]*booking.Booking, error) {
	matches := r.matching(customerID)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (r *fakeBookingRepository) FindSeatsByFlight(ctx context.Context, flightNumber string) ([]string, error) {
	return nil, nil
}

func (r *fakeBookingRepository) SeatTaken(ctx context.Context, flightNumber, seatNumber string) (bool, error) {
	return false, nil
}

func (r *fakeBookingRepository) UpdateStatus(ctx context.Context, id string, status booking.Status) error {
	return nil
}

func (r *fakeBookingRepository) Delete(ctx context.Context, id string) (int64, error) {
	return 0, nil
}

func (r *fakeBookingRepository) Count(ctx context.Context, customerID string) (int, error) {
	return len(r.matching(customerID)), nil
}

func (r *fakeBookingRepository) CountUpcoming(ctx context.Context, customerID string, from time.Time) (int, error) {
	count := 0
	for _, b := range r.matching(customerID) {
		if b.DepartureDate.After(from) {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepository) CountByClass(ctx context.Context, customerID string) ([]booking.ClassCount, error) {
	byClass := make(map[string]int)
	for _, b := range r.matching(customerID) {
		byClass[b.Class]++
	}
	var out []booking.ClassCount
	for class, count := range byClass {
		out = append(out, booking.ClassCount{Class: class, Count: count})
	}
	return out, nil
}

type fakeCustomerRepository struct {
	byEmail map[string]*customer.Customer
}

func (r *fakeCustomerRepository) Create(ctx context.Context, c *customer.Customer) error { return nil }

func (r *fakeCustomerRepository) FindByCustomerID(ctx context.Context, customerID string) (*customer.Customer, error) {
	return nil, errors.New("não implementado")
}

func (r *fakeCustomerRepository) FindByDocument(ctx context.Context, documentNumber string) (*customer.Customer, error) {
	return nil, errors.New("não implementado")
}

func (r *fakeCustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	c, ok := r.byEmail[email]
	if !ok {
		return nil, errors.New("cliente não encontrado")
	}
	return c, nil
}

func (r *fakeCustomerRepository) Update(ctx context.Context, c *customer.Customer) error { return nil }

type fakeUserRepository struct {
	byID map[string]*user.User
}

func (r *fakeUserRepository) Create(ctx context.Context, u *user.User) error { return nil }

func (r *fakeUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, errors.New("usuário não encontrado")
	}
	return u, nil
}

func (r *fakeUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, errors.New("não implementado")
}

func (r *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, errors.New("não implementado")
}

func (r *fakeUserRepository) Count(ctx context.Context) (int, error) { return len(r.byID), nil }

type fakeHistoryRepository struct {
	perUser       map[string]int
	total         int
	cancellations int
}

func (r *fakeHistoryRepository) Create(ctx context.Context, e *history.Entry) error { return nil }

func (r *fakeHistoryRepository) FindByUser(ctx context.Context, userID string) ([]*history.Entry, error) {
	return nil, nil
}

func (r *fakeHistoryRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	return r.perUser[userID], nil
}

func (r *fakeHistoryRepository) CountByActivity(ctx context.Context, term string) (int, error) {
	if term == "" {
		return r.total, nil
	}
	return r.cancellations, nil
}

func newBooking(t *testing.T, customerID, class string, departure time.Time) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(customerID, "SV123", "GRU", "GIG", departure, departure.Add(2*time.Hour), "12A", class)
	if err != nil {
		t.Fatalf("erro ao criar reserva: %v", err)
	}
	return b
}

func newTestService(t *testing.T) (*DashboardService, *fakeBookingRepository) {
	t.Helper()

	future := time.Now().Add(72 * time.Hour)
	past := time.Now().Add(-72 * time.Hour)

	bookings := &fakeBookingRepository{bookings: []*booking.Booking{
		newBooking(t, "111111", "Economy", future),
		newBooking(t, "111111", "Business", past),
		newBooking(t, "222222", "Economy", future),
	}}

	customers := &fakeCustomerRepository{byEmail: map[string]*customer.Customer{
		"alice@example.com": {CustomerID: "111111", Email: "alice@example.com"},
	}}

	users := &fakeUserRepository{byID: map[string]*user.User{
		"u1": {ID: "u1", Username: "alice", Email: "alice@example.com", Role: user.RoleCustomer},
		"u2": {ID: "u2", Username: "bob", Email: "bob@example.com", Role: user.RoleCustomer},
	}}

	hist := &fakeHistoryRepository{perUser: map[string]int{"u1": 4}, total: 9, cancellations: 2}

	return NewDashboardService(bookings, customers, users, hist, logger.NewLogger()), bookings
}

func TestSnapshotForCustomer(t *testing.T) {
	svc, _ := newTestService(t)

	snapshot, err := svc.Snapshot(context.Background(), "u1", false)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	data, ok := snapshot.(*DashboardData)
	if !ok {
		t.Fatalf("tipo inesperado: %T", snapshot)
	}

	if data.TotalBookings != 2 {
		t.Errorf("esperadas 2 reservas do cliente, obtidas %d", data.TotalBookings)
	}
	if data.UpcomingFlights != 1 {
		t.Errorf("esperado 1 voo futuro, obtidos %d", data.UpcomingFlights)
	}
	if data.Revenue != 2*revenuePerBooking {
		t.Errorf("receita esperada %d, obtida %d", 2*revenuePerBooking, data.Revenue)
	}
	if data.Activities != 4 {
		t.Errorf("esperadas 4 atividades, obtidas %d", data.Activities)
	}
	if len(data.ClassDistribution.Labels) != 2 {
		t.Errorf("esperadas 2 classes, obtidas %v", data.ClassDistribution.Labels)
	}
}

func TestSnapshotForAgentIsGlobal(t *testing.T) {
	svc, _ := newTestService(t)

	snapshot, err := svc.Snapshot(context.Background(), "agent-1", true)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	data := snapshot.(*DashboardData)
	if data.TotalBookings != 3 {
		t.Errorf("agente deveria ver todas as reservas, obtidas %d", data.TotalBookings)
	}
	if data.Activities != 9 {
		t.Errorf("agente deveria ver todas as atividades, obtidas %d", data.Activities)
	}
	if data.Cancellations != 2 {
		t.Errorf("esperados 2 cancelamentos, obtidos %d", data.Cancellations)
	}
	if data.ActiveUsers != 2 {
		t.Errorf("esperados 2 usuários ativos, obtidos %d", data.ActiveUsers)
	}
}

func TestSnapshotForUserWithoutCustomerProfile(t *testing.T) {
	svc, _ := newTestService(t)

	snapshot, err := svc.Snapshot(context.Background(), "u2", false)
	if err != nil {
		t.Fatalf("usuário sem perfil não deveria gerar erro: %v", err)
	}

	data := snapshot.(*DashboardData)
	if data.TotalBookings != 0 || data.Revenue != 0 {
		t.Errorf("painel deveria estar zerado, obtido %+v", data)
	}
	if data.RecentBookings == nil {
		t.Error("lista de reservas recentes não deveria ser nula")
	}
}
