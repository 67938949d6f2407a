package chatsession

import (
	"context"
	"errors"
	"testing"

	"github.com/skyvoyage/booking-api/internal/domain/chat"
	"github.com/skyvoyage/booking-api/pkg/logger"
)

type fakeSessionRepository struct {
	sessions map[string]*chat.Session

	reopenErr error
	createErr error
	assignErr error
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: make(map[string]*chat.Session)}
}

func (r *fakeSessionRepository) ReopenForCustomer(ctx context.Context, customerID string) (*chat.Session, error) {
	if r.reopenErr != nil {
		return nil, r.reopenErr
	}
	for _, s := range r.sessions {
		if s.CustomerID == customerID && s.IsOpen() {
			s.Status = chat.StatusWaiting
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepository) Create(ctx context.Context, s *chat.Session) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.sessions[s.ID] = s
	return nil
}

func (r *fakeSessionRepository) FindByID(ctx context.Context, id string) (*chat.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *fakeSessionRepository) FindOpen(ctx context.Context) ([]*chat.Session, error) {
	var open []*chat.Session
	for _, s := range r.sessions {
		if s.IsOpen() {
			open = append(open, s)
		}
	}
	return open, nil
}

func (r *fakeSessionRepository) Assign(ctx context.Context, sessionID, agentID string) (*chat.Session, error) {
	if r.assignErr != nil {
		return nil, r.assignErr
	}
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	s.Status = chat.StatusActive
	s.AgentID = &agentID
	return s, nil
}

type fakeNotifier struct {
	newSessions  []*chat.Session
	agentJoins   []string
	joinedAgents []string
}

func (n *fakeNotifier) NewSession(s *chat.Session) {
	n.newSessions = append(n.newSessions, s)
}

func (n *fakeNotifier) AgentJoined(sessionID, agentID string) {
	n.agentJoins = append(n.agentJoins, sessionID)
	n.joinedAgents = append(n.joinedAgents, agentID)
}

func TestStartChatCreatesSession(t *testing.T) {
	repo := newFakeSessionRepository()
	notifier := &fakeNotifier{}
	manager := NewManager(repo, notifier, logger.NewLogger())

	sess, err := manager.StartChat(context.Background(), "customer-1")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if sess == nil {
		t.Fatal("sessão não deveria ser nula")
	}
	if sess.Status != chat.StatusWaiting {
		t.Errorf("status esperado waiting, obtido %s", sess.Status)
	}
	if len(repo.sessions) != 1 {
		t.Errorf("esperada 1 sessão criada, obtidas %d", len(repo.sessions))
	}
	if len(notifier.newSessions) != 1 {
		t.Errorf("esperada 1 notificação de nova sessão, obtidas %d", len(notifier.newSessions))
	}
}

func TestStartChatReusesOpenSession(t *testing.T) {
	repo := newFakeSessionRepository()
	notifier := &fakeNotifier{}
	manager := NewManager(repo, notifier, logger.NewLogger())

	first, err := manager.StartChat(context.Background(), "customer-1")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	// Simula uma sessão já atribuída a um agente
	agent := "agent-1"
	repo.sessions[first.ID].Status = chat.StatusActive
	repo.sessions[first.ID].AgentID = &agent

	second, err := manager.StartChat(context.Background(), "customer-1")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("esperada a mesma sessão %s, obtida %s", first.ID, second.ID)
	}
	if second.Status != chat.StatusWaiting {
		t.Errorf("status deveria voltar para waiting, obtido %s", second.Status)
	}
	if len(repo.sessions) != 1 {
		t.Errorf("não deveria criar uma segunda sessão, obtidas %d", len(repo.sessions))
	}
}

func TestStartChatNotifiesAgentsOnEveryCall(t *testing.T) {
	repo := newFakeSessionRepository()
	notifier := &fakeNotifier{}
	manager := NewManager(repo, notifier, logger.NewLogger())

	for i := 0; i < 3; i++ {
		if _, err := manager.StartChat(context.Background(), "customer-1"); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
	}

	if len(notifier.newSessions) != 3 {
		t.Errorf("esperadas 3 notificações, obtidas %d", len(notifier.newSessions))
	}
}

func TestStartChatPropagatesRepositoryError(t *testing.T) {
	repo := newFakeSessionRepository()
	repo.reopenErr = errors.New("banco indisponível")
	manager := NewManager(repo, &fakeNotifier{}, logger.NewLogger())

	if _, err := manager.StartChat(context.Background(), "customer-1"); err == nil {
		t.Fatal("erro esperado quando o repositório falha")
	}
}

func TestJoinSessionAssignsAgent(t *testing.T) {
	repo := newFakeSessionRepository()
	notifier := &fakeNotifier{}
	manager := NewManager(repo, notifier, logger.NewLogger())

	sess, err := manager.StartChat(context.Background(), "customer-1")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	joined, err := manager.JoinSession(context.Background(), sess.ID, "agent-1")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if joined.Status != chat.StatusActive {
		t.Errorf("status esperado active, obtido %s", joined.Status)
	}
	if joined.AgentID == nil || *joined.AgentID != "agent-1" {
		t.Errorf("agente esperado agent-1, obtido %v", joined.AgentID)
	}
	if len(notifier.agentJoins) != 1 || notifier.agentJoins[0] != sess.ID {
		t.Errorf("notificação de entrada esperada para a sessão %s", sess.ID)
	}
}

func TestJoinSessionOverwritesPreviousAgent(t *testing.T) {
	repo := newFakeSessionRepository()
	manager := NewManager(repo, &fakeNotifier{}, logger.NewLogger())

	sess, err := manager.StartChat(context.Background(), "customer-1")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if _, err := manager.JoinSession(context.Background(), sess.ID, "agent-1"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	joined, err := manager.JoinSession(context.Background(), sess.ID, "agent-2")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if joined.AgentID == nil || *joined.AgentID != "agent-2" {
		t.Errorf("o último agente a entrar deveria vencer, obtido %v", joined.AgentID)
	}
}

func TestJoinSessionUnknownSessionReturnsNil(t *testing.T) {
	repo := newFakeSessionRepository()
	notifier := &fakeNotifier{}
	manager := NewManager(repo, notifier, logger.NewLogger())

	joined, err := manager.JoinSession(context.Background(), "inexistente", "agent-1")
	if err != nil {
		t.Fatalf("sessão inexistente não deveria gerar erro: %v", err)
	}
	if joined != nil {
		t.Errorf("sessão esperada nula, obtida %+v", joined)
	}
	if len(notifier.agentJoins) != 0 {
		t.Error("não deveria notificar entrada em sessão inexistente")
	}
}
