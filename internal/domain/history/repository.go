package history

import (
	"context"
)

// Repository define a interface para operações de repositório do histórico
// de atividades
type Repository interface {
	// Create registra uma nova atividade
	Create(ctx context.Context, e *Entry) error

	// FindByUser lista as atividades de um usuário, mais recentes primeiro
	FindByUser(ctx context.Context, userID string) ([]*Entry, error)

	// CountByUser conta as atividades de um usuário
	CountByUser(ctx context.Context, userID string) (int, error)

	// CountByActivity conta as atividades cujo texto contém o termo informado
	CountByActivity(ctx context.Context, term string) (int, error)
}
