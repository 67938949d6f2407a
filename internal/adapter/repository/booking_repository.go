package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyvoyage/booking-api/internal/domain/booking"
)

// Erros específicos do repositório de reservas
var (
	ErrBookingNotFound = errors.New("reserva não encontrada")
)

// BookingRepository implementa a interface booking.Repository usando PostgreSQL
type BookingRepository struct {
	db *pgxpool.Pool
}

// NewBookingRepository cria uma nova instância de BookingRepository
func NewBookingRepository(db *pgxpool.Pool) booking.Repository {
	return &BookingRepository{
		db: db,
	}
}

const bookingColumns = `
	id, customer_id, flight_number, departure, arrival,
	departure_date, arrival_date, seat_number, class, status
`

// Create implementa booking.Repository.Create
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		b.ID,
		b.CustomerID,
		b.FlightNumber,
		b.Departure,
		b.Arrival,
		b.DepartureDate,
		b.ArrivalDate,
		b.SeatNumber,
		b.Class,
		string(b.Status),
	)

	if err != nil {
		return fmt.Errorf("falha ao inserir reserva: %w", err)
	}

	return nil
}

// FindByID implementa booking.Repository.FindByID
func (r *BookingRepository) FindByID(ctx context.Context, id string) (*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return scanBooking(r.db.QueryRow(ctx, query, id))
}

// FindByCustomer implementa booking.Repository.FindByCustomer
func (r *BookingRepository) FindByCustomer(ctx context.Context, customerID string) ([]*booking.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE customer_id = $1
		ORDER BY departure_date DESC
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar reservas: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// FindRecent implementa booking.Repository.FindRecent. Com customerID vazio
// a busca é global.
func (r *BookingRepository) FindRecent(ctx context.Context, customerID string, limit int) ([]*booking.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ($1 = '' OR customer_id = $1)
		ORDER BY departure_date DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar reservas recentes: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// FindSeatsByFlight implementa booking.Repository.FindSeatsByFlight
func (r *BookingRepository) FindSeatsByFlight(ctx context.Context, flightNumber string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		"SELECT seat_number FROM bookings WHERE flight_number = $1", flightNumber)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar assentos: %w", err)
	}
	defer rows.Close()

	var seats []string
	for rows.Next() {
		var seat string
		if err := rows.Scan(&seat); err != nil {
			return nil, fmt.Errorf("falha ao ler assento: %w", err)
		}
		seats = append(seats, seat)
	}

	return seats, rows.Err()
}

// SeatTaken implementa booking.Repository.SeatTaken
func (r *BookingRepository) SeatTaken(ctx context.Context, flightNumber, seatNumber string) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM bookings WHERE flight_number = $1 AND seat_number = $2)",
		flightNumber, seatNumber).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("falha ao verificar assento: %w", err)
	}
	return taken, nil
}

// UpdateStatus implementa booking.Repository.UpdateStatus
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status booking.Status) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE bookings SET status = $1 WHERE id = $2", string(status), id)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status da reserva: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete implementa booking.Repository.Delete
func (r *BookingRepository) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM bookings WHERE id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("falha ao remover reserva: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Count implementa booking.Repository.Count. Com customerID vazio a
// contagem é global.
func (r *BookingRepository) Count(ctx context.Context, customerID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM bookings WHERE ($1 = '' OR customer_id = $1)",
		customerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar reservas: %w", err)
	}
	return count, nil
}

// CountUpcoming implementa booking.Repository.CountUpcoming
func (r *BookingRepository) CountUpcoming(ctx context.Context, customerID string, from time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM bookings WHERE ($1 = '' OR customer_id = $1) AND departure_date >= $2",
		customerID, from).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar reservas futuras: %w", err)
	}
	return count, nil
}

// CountByClass implementa booking.Repository.CountByClass
func (r *BookingRepository) CountByClass(ctx context.Context, customerID string) ([]booking.ClassCount, error) {
	query := `
		SELECT class, COUNT(*)
		FROM bookings
		WHERE customer_id = $1
		GROUP BY class
		ORDER BY class
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("falha ao agrupar reservas por classe: %w", err)
	}
	defer rows.Close()

	var counts []booking.ClassCount
	for rows.Next() {
		var cc booking.ClassCount
		if err := rows.Scan(&cc.Class, &cc.Count); err != nil {
			return nil, fmt.Errorf("falha ao ler agrupamento: %w", err)
		}
		counts = append(counts, cc)
	}

	return counts, rows.Err()
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	b := &booking.Booking{}
	var status string

	err := row.Scan(
		&b.ID,
		&b.CustomerID,
		&b.FlightNumber,
		&b.Departure,
		&b.Arrival,
		&b.DepartureDate,
		&b.ArrivalDate,
		&b.SeatNumber,
		&b.Class,
		&status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("falha ao buscar reserva: %w", err)
	}

	b.Status = booking.Status(status)
	return b, nil
}

func scanBookings(rows pgx.Rows) ([]*booking.Booking, error) {
	var bookings []*booking.Booking
	for rows.Next() {
		b := &booking.Booking{}
		var status string
		if err := rows.Scan(
			&b.ID,
			&b.CustomerID,
			&b.FlightNumber,
			&b.Departure,
			&b.Arrival,
			&b.DepartureDate,
			&b.ArrivalDate,
			&b.SeatNumber,
			&b.Class,
			&status,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler reserva: %w", err)
		}
		b.Status = booking.Status(status)
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}
