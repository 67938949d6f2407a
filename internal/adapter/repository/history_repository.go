package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyvoyage/booking-api/internal/domain/history"
)

// HistoryRepository implementa a interface history.Repository usando PostgreSQL
type HistoryRepository struct {
	db *pgxpool.Pool
}

// NewHistoryRepository cria uma nova instância de HistoryRepository
func NewHistoryRepository(db *pgxpool.Pool) history.Repository {
	return &HistoryRepository{
		db: db,
	}
}

// Create implementa history.Repository.Create
func (r *HistoryRepository) Create(ctx context.Context, e *history.Entry) error {
	query := `
		INSERT INTO history (id, user_id, activity, timestamp)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, e.ID, e.UserID, e.Activity, e.Timestamp)
	if err != nil {
		return fmt.Errorf("falha ao registrar atividade: %w", err)
	}

	return nil
}

// FindByUser implementa history.Repository.FindByUser
func (r *HistoryRepository) FindByUser(ctx context.Context, userID string) ([]*history.Entry, error) {
	query := `
		SELECT id, user_id, activity, timestamp
		FROM history
		WHERE user_id = $1
		ORDER BY timestamp DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar atividades: %w", err)
	}
	defer rows.Close()

	var entries []*history.Entry
	for rows.Next() {
		e := &history.Entry{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.Activity, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("falha ao ler atividade: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// CountByUser implementa history.Repository.CountByUser
func (r *HistoryRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM history WHERE user_id = $1", userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar atividades: %w", err)
	}
	return count, nil
}

// CountByActivity implementa history.Repository.CountByActivity
func (r *HistoryRepository) CountByActivity(ctx context.Context, term string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM history WHERE activity ILIKE '%' || $1 || '%'", term).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar atividades por termo: %w", err)
	}
	return count, nil
}
