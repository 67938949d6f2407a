package chat

import (
	"context"
)

// SessionRepository define a interface para operações de repositório de
// sessões de chat. As operações de escrita dependem apenas da atomicidade de
// comandos individuais do banco; não há isolamento transacional entre elas.
type SessionRepository interface {
	// ReopenForCustomer volta para "waiting" a sessão aberta (waiting ou
	// active) do cliente, se existir, e a retorna. Retorna (nil, nil)
	// quando o cliente não possui sessão aberta.
	ReopenForCustomer(ctx context.Context, customerID string) (*Session, error)

	// Create cria uma nova sessão
	Create(ctx context.Context, s *Session) error

	// FindByID busca uma sessão pelo ID, com o cliente resolvido.
	// Retorna (nil, nil) quando a sessão não existe.
	FindByID(ctx context.Context, id string) (*Session, error)

	// FindOpen lista as sessões abertas (waiting ou active) com o cliente
	// resolvido, ordenadas por criação ascendente
	FindOpen(ctx context.Context) ([]*Session, error)

	// Assign marca a sessão como ativa e registra o agente, sobrescrevendo
	// qualquer atribuição anterior. Retorna (nil, nil) quando a sessão não
	// existe; a operação é um no-op nesse caso.
	Assign(ctx context.Context, sessionID, agentID string) (*Session, error)
}

// MessageRepository define a interface para operações de repositório de
// mensagens de chat
type MessageRepository interface {
	// Create persiste uma nova mensagem
	Create(ctx context.Context, m *Message) error

	// FindBySession lista as mensagens de uma sessão em ordem ascendente
	// de timestamp, para replay do histórico
	FindBySession(ctx context.Context, sessionID string) ([]*Message, error)
}
