package history

import (
	"time"

	"github.com/google/uuid"
)

// Entry representa um registro de atividade do sistema
type Entry struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id,omitempty"` // Usuário que realizou a atividade, quando conhecido
	Activity  string    `json:"activity"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEntry cria um novo registro de atividade
func NewEntry(activity string, userID *string) *Entry {
	return &Entry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Activity:  activity,
		Timestamp: time.Now(),
	}
}
