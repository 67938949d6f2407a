package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomerID   = errors.New("código do cliente não pode ser vazio")
	ErrEmptyFlightNumber = errors.New("número do voo não pode ser vazio")
	ErrEmptySeatNumber   = errors.New("assento não pode ser vazio")
	ErrEmptyClass        = errors.New("classe não pode ser vazia")
)

// Status representa o estado de uma reserva
type Status string

const (
	StatusBooked    Status = "Booked"
	StatusCheckedIn Status = "Checked-In"
	StatusCompleted Status = "Completed"
)

// Booking representa uma reserva de voo
type Booking struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"` // Código público de 6 dígitos do cliente
	FlightNumber  string    `json:"flight_number"`
	Departure     string    `json:"departure"`
	Arrival       string    `json:"arrival"`
	DepartureDate time.Time `json:"departure_date"`
	ArrivalDate   time.Time `json:"arrival_date"`
	SeatNumber    string    `json:"seat_number"`
	Class         string    `json:"class"`
	Status        Status    `json:"status"`
}

// NewBooking cria uma nova reserva com status inicial Booked
func NewBooking(customerID, flightNumber, departure, arrival string, departureDate, arrivalDate time.Time, seatNumber, class string) (*Booking, error) {
	if customerID == "" {
		return nil, ErrEmptyCustomerID
	}

	if flightNumber == "" {
		return nil, ErrEmptyFlightNumber
	}

	if seatNumber == "" {
		return nil, ErrEmptySeatNumber
	}

	if class == "" {
		return nil, ErrEmptyClass
	}

	return &Booking{
		ID:            uuid.New().String(),
		CustomerID:    customerID,
		FlightNumber:  flightNumber,
		Departure:     departure,
		Arrival:       arrival,
		DepartureDate: departureDate,
		ArrivalDate:   arrivalDate,
		SeatNumber:    seatNumber,
		Class:         class,
		Status:        StatusBooked,
	}, nil
}

// CheckIn marca a reserva como embarcada
func (b *Booking) CheckIn() {
	b.Status = StatusCheckedIn
}

// IsCheckedIn verifica se o check-in da reserva já foi realizado
func (b *Booking) IsCheckedIn() bool {
	return b.Status == StatusCheckedIn
}

// IsCheckinAvailable verifica se o check-in pode ser feito: apenas reservas
// com status Booked e partida nas próximas 48 horas
func (b *Booking) IsCheckinAvailable(now time.Time) bool {
	if b.Status != StatusBooked {
		return false
	}
	untilDeparture := b.DepartureDate.Sub(now)
	return untilDeparture > 0 && untilDeparture <= 48*time.Hour
}
