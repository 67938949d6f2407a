package booking

import (
	"context"
	"time"
)

// ClassCount representa a quantidade de reservas agrupadas por classe
type ClassCount struct {
	Class string `json:"class"`
	Count int    `json:"count"`
}

// Repository define a interface para operações de repositório de reservas
type Repository interface {
	// Create cria uma nova reserva
	Create(ctx context.Context, b *Booking) error

	// FindByID busca uma reserva pelo ID
	FindByID(ctx context.Context, id string) (*Booking, error)

	// FindByCustomer lista as reservas de um cliente ordenadas por data de
	// partida decrescente
	FindByCustomer(ctx context.Context, customerID string) ([]*Booking, error)

	// FindRecent lista as reservas mais recentes por data de partida
	FindRecent(ctx context.Context, customerID string, limit int) ([]*Booking, error)

	// FindSeatsByFlight lista os assentos já reservados de um voo
	FindSeatsByFlight(ctx context.Context, flightNumber string) ([]string, error)

	// SeatTaken verifica se um assento já está reservado no voo
	SeatTaken(ctx context.Context, flightNumber, seatNumber string) (bool, error)

	// UpdateStatus atualiza o status de uma reserva
	UpdateStatus(ctx context.Context, id string, status Status) error

	// Delete remove uma reserva e informa quantas linhas foram afetadas
	Delete(ctx context.Context, id string) (int64, error)

	// Count conta todas as reservas, ou apenas as de um cliente
	Count(ctx context.Context, customerID string) (int, error)

	// CountUpcoming conta reservas com partida a partir do instante informado
	CountUpcoming(ctx context.Context, customerID string, from time.Time) (int, error)

	// CountByClass agrupa as reservas de um cliente por classe
	CountByClass(ctx context.Context, customerID string) ([]ClassCount, error)
}
