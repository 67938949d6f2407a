package dto

import (
	"time"

	"github.com/skyvoyage/booking-api/internal/domain/booking"
)

// BookingRequest representa os dados para criação de uma reserva
type BookingRequest struct {
	CustomerID    string `json:"customer_id" binding:"required"`
	FlightNumber  string `json:"flight_number" binding:"required"`
	Departure     string `json:"departure" binding:"required"`
	Arrival       string `json:"arrival" binding:"required"`
	DepartureDate string `json:"departure_date" binding:"required"`
	ArrivalDate   string `json:"arrival_date" binding:"required"`
	SeatNumber    string `json:"seat_number" binding:"required"`
	Class         string `json:"class" binding:"required"`
}

// BookingResponse representa a resposta com dados de uma reserva
type BookingResponse struct {
	ID               string    `json:"id"`
	CustomerID       string    `json:"customer_id"`
	FlightNumber     string    `json:"flight_number"`
	Departure        string    `json:"departure"`
	Arrival          string    `json:"arrival"`
	DepartureDate    time.Time `json:"departure_date"`
	ArrivalDate      time.Time `json:"arrival_date"`
	SeatNumber       string    `json:"seat_number"`
	Class            string    `json:"class"`
	Status           string    `json:"status"`
	CheckinAvailable bool      `json:"checkin_available"`
}

// BoardingPassResponse representa o cartão de embarque de uma reserva com
// check-in realizado
type BoardingPassResponse struct {
	BookingID     string    `json:"booking_id"`
	PassengerID   string    `json:"passenger_id"`
	FlightNumber  string    `json:"flight_number"`
	Departure     string    `json:"departure"`
	Arrival       string    `json:"arrival"`
	DepartureDate time.Time `json:"departure_date"`
	SeatNumber    string    `json:"seat_number"`
	Class         string    `json:"class"`
}

// SeatsResponse representa os assentos já ocupados de um voo
type SeatsResponse struct {
	FlightNumber string   `json:"flight_number"`
	TakenSeats   []string `json:"taken_seats"`
}

// ToBookingResponse converte uma reserva do domínio para DTO de resposta
func ToBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		CustomerID:       b.CustomerID,
		FlightNumber:     b.FlightNumber,
		Departure:        b.Departure,
		Arrival:          b.Arrival,
		DepartureDate:    b.DepartureDate,
		ArrivalDate:      b.ArrivalDate,
		SeatNumber:       b.SeatNumber,
		Class:            b.Class,
		Status:           string(b.Status),
		CheckinAvailable: b.IsCheckinAvailable(time.Now()),
	}
}

// ToBookingListResponse converte uma lista de reservas do domínio para DTOs
func ToBookingListResponse(bookings []*booking.Booking) []BookingResponse {
	data := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		data[i] = ToBookingResponse(b)
	}
	return data
}

// ToBoardingPassResponse monta o cartão de embarque a partir da reserva
func ToBoardingPassResponse(b *booking.Booking) BoardingPassResponse {
	return BoardingPassResponse{
		BookingID:     b.ID,
		PassengerID:   b.CustomerID,
		FlightNumber:  b.FlightNumber,
		Departure:     b.Departure,
		Arrival:       b.Arrival,
		DepartureDate: b.DepartureDate,
		SeatNumber:    b.SeatNumber,
		Class:         b.Class,
	}
}
