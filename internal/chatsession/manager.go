package chatsession

import (
	"context"
	"fmt"

	"github.com/skyvoyage/booking-api/internal/domain/chat"
	"github.com/skyvoyage/booking-api/pkg/logger"
)

// Notifier é a porta de saída do gerenciador para o relay em tempo real.
// O gerenciador não conhece salas nem conexões; apenas anuncia eventos.
type Notifier interface {
	// NewSession anuncia uma sessão para a sala de agentes
	NewSession(s *chat.Session)

	// AgentJoined anuncia para a sala da sessão que um agente entrou
	AgentJoined(sessionID, agentID string)
}

// Manager media o ciclo de vida das sessões de chat entre clientes e
// agentes: criação/reuso, atribuição de agente e as notificações derivadas.
type Manager struct {
	sessions chat.SessionRepository
	notifier Notifier
	logger   logger.Logger
}

// NewManager cria uma nova instância de Manager
func NewManager(sessions chat.SessionRepository, notifier Notifier, log logger.Logger) *Manager {
	return &Manager{
		sessions: sessions,
		notifier: notifier,
		logger:   log,
	}
}

// StartChat encontra a sessão aberta do cliente e a devolve para o estado
// "waiting", ou cria uma nova quando não existe. A sala de agentes é
// notificada a cada chamada: notificações duplicadas são toleráveis,
// notificações perdidas não são.
//
// A sequência UPDATE-depois-INSERT não é isolada de chamadas concorrentes
// do mesmo cliente; sob concorrência real duas sessões abertas podem ser
// criadas. Limitação conhecida, tolerada em vez de corrigida.
func (m *Manager) StartChat(ctx context.Context, customerID string) (*chat.Session, error) {
	sess, err := m.sessions.ReopenForCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao reabrir sessão do cliente: %w", err)
	}

	if sess == nil {
		sess, err = chat.NewSession(customerID)
		if err != nil {
			return nil, err
		}
		if err := m.sessions.Create(ctx, sess); err != nil {
			return nil, fmt.Errorf("erro ao criar sessão: %w", err)
		}
	}

	// Resolver o cliente para que a notificação carregue o nome de exibição
	populated, err := m.sessions.FindByID(ctx, sess.ID)
	if err != nil {
		m.logger.Error("erro ao resolver cliente da sessão", "session_id", sess.ID, "error", err)
	}
	if populated != nil {
		sess = populated
	}

	m.notifier.NewSession(sess)

	return sess, nil
}

// JoinSession marca a sessão como ativa e registra o agente que entrou,
// sobrescrevendo qualquer atribuição anterior (o último a entrar vence).
// Uma sessão inexistente resulta em (nil, nil): o chamador deve tolerar o
// resultado nulo sem derrubar o relay.
func (m *Manager) JoinSession(ctx context.Context, sessionID, agentID string) (*chat.Session, error) {
	sess, err := m.sessions.Assign(ctx, sessionID, agentID)
	if err != nil {
		return nil, fmt.Errorf("erro ao atribuir agente à sessão: %w", err)
	}

	if sess == nil {
		m.logger.Warn("tentativa de entrar em sessão inexistente", "session_id", sessionID, "agent_id", agentID)
		return nil, nil
	}

	m.notifier.AgentJoined(sess.ID, agentID)

	return sess, nil
}
