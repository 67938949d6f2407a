package realtime

import (
	"context"
	"errors"
	"testing"

	"github.com/skyvoyage/booking-api/internal/domain/chat"
	"github.com/skyvoyage/booking-api/internal/domain/user"
	"github.com/skyvoyage/booking-api/pkg/logger"
)

type fakeMessageRepository struct {
	messages  []*chat.Message
	createErr error
}

func (r *fakeMessageRepository) Create(ctx context.Context, m *chat.Message) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.messages = append(r.messages, m)
	return nil
}

func (r *fakeMessageRepository) FindBySession(ctx context.Context, sessionID string) ([]*chat.Message, error) {
	var out []*chat.Message
	for _, m := range r.messages {
		if m.ChatSessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestSendMessagePersistsThenBroadcasts(t *testing.T) {
	hub := NewHub(logger.NewLogger())
	repo := &fakeMessageRepository{}
	relay := NewRelay(repo, hub, logger.NewLogger())

	customer := NewClient("u1", "alice", user.RoleCustomer)
	agent := NewClient("u2", "bob", user.RoleAgent)
	hub.Register(customer)
	hub.Register(agent)
	hub.Join("sess-1", customer)
	hub.Join("sess-1", agent)

	relay.SendMessage(context.Background(), "sess-1", "u1", chat.SenderCustomer, "olá")

	if len(repo.messages) != 1 {
		t.Fatalf("esperada 1 mensagem persistida, obtidas %d", len(repo.messages))
	}
	if repo.messages[0].SenderRole != chat.SenderCustomer {
		t.Errorf("papel esperado customer, obtido %s", repo.messages[0].SenderRole)
	}

	for _, c := range []*Client{customer, agent} {
		events := drainEvents(c)
		if len(events) != 1 || events[0].Event != EventChatMessage {
			t.Errorf("conexão %s deveria receber chat:message, obtido %v", c.UserID, events)
		}
	}
}

func TestSendMessageSuppressesBroadcastOnPersistenceFailure(t *testing.T) {
	hub := NewHub(logger.NewLogger())
	repo := &fakeMessageRepository{createErr: errors.New("banco indisponível")}
	relay := NewRelay(repo, hub, logger.NewLogger())

	c := NewClient("u1", "alice", user.RoleCustomer)
	hub.Register(c)
	hub.Join("sess-1", c)

	relay.SendMessage(context.Background(), "sess-1", "u1", chat.SenderCustomer, "olá")

	if got := len(drainEvents(c)); got != 0 {
		t.Errorf("sem persistência não há broadcast, obtidos %d eventos", got)
	}
}

func TestSendMessageDiscardsEmptyText(t *testing.T) {
	hub := NewHub(logger.NewLogger())
	repo := &fakeMessageRepository{}
	relay := NewRelay(repo, hub, logger.NewLogger())

	c := NewClient("u1", "alice", user.RoleCustomer)
	hub.Register(c)
	hub.Join("sess-1", c)

	relay.SendMessage(context.Background(), "sess-1", "u1", chat.SenderCustomer, "")

	if len(repo.messages) != 0 {
		t.Errorf("mensagem vazia não deveria ser persistida, obtidas %d", len(repo.messages))
	}
	if got := len(drainEvents(c)); got != 0 {
		t.Errorf("mensagem vazia não deveria ser transmitida, obtidos %d eventos", got)
	}
}
