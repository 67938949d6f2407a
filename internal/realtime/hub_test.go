package realtime

import (
	"testing"

	"github.com/skyvoyage/booking-api/internal/domain/user"
	"github.com/skyvoyage/booking-api/pkg/logger"
)

func drainEvents(c *Client) []Event {
	var events []Event
	for {
		select {
		case ev := <-c.send:
			events = append(events, ev)
		default:
			return events
		}
	}
}

func TestBroadcastReachesAllRoomMembersIncludingSender(t *testing.T) {
	hub := NewHub(logger.NewLogger())

	sender := NewClient("u1", "alice", user.RoleCustomer)
	other := NewClient("u2", "bob", user.RoleAgent)
	outsider := NewClient("u3", "carol", user.RoleCustomer)

	hub.Register(sender)
	hub.Register(other)
	hub.Register(outsider)

	hub.Join("room-1", sender)
	hub.Join("room-1", other)
	hub.Join("room-2", outsider)

	hub.Broadcast("room-1", Event{Event: EventChatMessage})

	if got := len(drainEvents(sender)); got != 1 {
		t.Errorf("remetente deveria receber o próprio evento, obtidos %d", got)
	}
	if got := len(drainEvents(other)); got != 1 {
		t.Errorf("participante deveria receber 1 evento, obtidos %d", got)
	}
	if got := len(drainEvents(outsider)); got != 0 {
		t.Errorf("conexão de outra sala não deveria receber eventos, obtidos %d", got)
	}
}

func TestBroadcastPreservesSubmissionOrder(t *testing.T) {
	hub := NewHub(logger.NewLogger())

	c := NewClient("u1", "alice", user.RoleCustomer)
	hub.Register(c)
	hub.Join("room-1", c)

	names := []string{"a", "b", "c", "d"}
	for _, name := range names {
		hub.Broadcast("room-1", Event{Event: name})
	}

	events := drainEvents(c)
	if len(events) != len(names) {
		t.Fatalf("esperados %d eventos, obtidos %d", len(names), len(events))
	}
	for i, name := range names {
		if events[i].Event != name {
			t.Errorf("posição %d: esperado %s, obtido %s", i, name, events[i].Event)
		}
	}
}

func TestBroadcastDropsWhenBufferFull(t *testing.T) {
	hub := NewHub(logger.NewLogger())

	c := NewClient("u1", "alice", user.RoleCustomer)
	hub.Register(c)
	hub.Join("room-1", c)

	for i := 0; i < sendBufferSize+10; i++ {
		hub.Broadcast("room-1", Event{Event: EventChatMessage})
	}

	if got := len(drainEvents(c)); got != sendBufferSize {
		t.Errorf("fila cheia deveria descartar o excedente, obtidos %d", got)
	}
}

func TestUnregisterRemovesFromAllRooms(t *testing.T) {
	hub := NewHub(logger.NewLogger())

	c := NewClient("u1", "alice", user.RoleAgent)
	hub.Register(c)
	hub.Join(AgentsRoom, c)
	hub.Join("room-1", c)

	hub.Unregister(c)

	if rooms := hub.Rooms(c); len(rooms) != 0 {
		t.Errorf("conexão removida não deveria participar de salas, obtidas %v", rooms)
	}

	// A fila foi fechada no Unregister
	if _, open := <-c.send; open {
		t.Error("fila de envio deveria estar fechada")
	}

	// Broadcast depois da remoção não alcança a conexão
	hub.Broadcast("room-1", Event{Event: EventChatMessage})
}

func TestJoinAfterUnregisterIsNoOp(t *testing.T) {
	hub := NewHub(logger.NewLogger())

	c := NewClient("u1", "alice", user.RoleCustomer)
	hub.Register(c)
	hub.Unregister(c)

	hub.Join("room-1", c)

	if rooms := hub.Rooms(c); len(rooms) != 0 {
		t.Errorf("conexão encerrada não deveria entrar em salas, obtidas %v", rooms)
	}
}

func TestRoomCountsByRole(t *testing.T) {
	hub := NewHub(logger.NewLogger())

	customer := NewClient("u1", "alice", user.RoleCustomer)
	agent1 := NewClient("u2", "bob", user.RoleAgent)
	agent2 := NewClient("u3", "carol", user.RoleAgent)

	for _, c := range []*Client{customer, agent1, agent2} {
		hub.Register(c)
		hub.Join("room-1", c)
	}

	customers, agents := hub.RoomCounts("room-1")
	if customers != 1 || agents != 2 {
		t.Errorf("esperados 1 cliente e 2 agentes, obtidos %d e %d", customers, agents)
	}
}

func TestSendToUnregisteredClientDoesNotPanic(t *testing.T) {
	hub := NewHub(logger.NewLogger())

	c := NewClient("u1", "alice", user.RoleCustomer)
	hub.Register(c)
	hub.Unregister(c)

	// A fila já foi fechada; enviar deve ser um no-op seguro
	hub.Send(c, Event{Event: EventDashboardData})
}

func TestNewSessionNotifiesAgentsRoom(t *testing.T) {
	hub := NewHub(logger.NewLogger())

	agent := NewClient("u1", "bob", user.RoleAgent)
	hub.Register(agent)
	hub.Join(AgentsRoom, agent)

	hub.NewSession(nil)

	events := drainEvents(agent)
	if len(events) != 1 || events[0].Event != EventNewSession {
		t.Errorf("agente deveria receber agent:newSession, obtido %v", events)
	}
}

func TestDataChangedReachesEveryConnection(t *testing.T) {
	hub := NewHub(logger.NewLogger())

	inRoom := NewClient("u1", "alice", user.RoleCustomer)
	noRoom := NewClient("u2", "bob", user.RoleCustomer)
	hub.Register(inRoom)
	hub.Register(noRoom)
	hub.Join("room-1", inRoom)

	hub.DataChanged()

	for _, c := range []*Client{inRoom, noRoom} {
		events := drainEvents(c)
		if len(events) != 1 || events[0].Event != EventDataChanged {
			t.Errorf("conexão %s deveria receber dataChanged, obtido %v", c.UserID, events)
		}
	}
}
