package realtime

import (
	"sync"

	"github.com/google/uuid"
	"github.com/skyvoyage/booking-api/internal/domain/chat"
	"github.com/skyvoyage/booking-api/internal/domain/user"
	"github.com/skyvoyage/booking-api/pkg/logger"
)

// AgentsRoom é a sala estática que reúne todas as conexões de agentes
const AgentsRoom = "agents"

// sendBufferSize é a capacidade da fila de envio de cada conexão
const sendBufferSize = 256

// Client representa uma conexão realtime autenticada. O transporte fica do
// lado de fora: o hub só conhece a fila de envio.
type Client struct {
	ID       string
	UserID   string
	Username string
	Role     user.Role

	send chan Event
}

// NewClient cria um novo cliente para um usuário autenticado
func NewClient(userID, username string, role user.Role) *Client {
	return &Client{
		ID:       uuid.New().String(),
		UserID:   userID,
		Username: username,
		Role:     role,
		send:     make(chan Event, sendBufferSize),
	}
}

// IsAgent verifica se a conexão pertence a um agente
func (c *Client) IsAgent() bool {
	return c.Role == user.RoleAgent
}

// Hub é o registro explícito de salas: um mapa de sala para o conjunto de
// conexões participantes, alterado somente por Join/Leave/Unregister. Ele é
// independente do transporte, então o roteamento é testável sem sockets.
//
// Broadcast segura o lock enquanto enfileira, portanto dentro de uma mesma
// sala a ordem de entrega é a ordem de submissão. Entre salas diferentes
// não há garantia de ordem.
type Hub struct {
	mu      sync.Mutex
	rooms   map[string]map[*Client]struct{}
	clients map[*Client]struct{}
	logger  logger.Logger
}

// NewHub cria uma nova instância de Hub
func NewHub(log logger.Logger) *Hub {
	return &Hub{
		rooms:   make(map[string]map[*Client]struct{}),
		clients: make(map[*Client]struct{}),
		logger:  log,
	}
}

// Register adiciona uma conexão ao hub
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[c] = struct{}{}
}

// Unregister remove a conexão do hub e de todas as salas
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}

	delete(h.clients, c)
	for room, members := range h.rooms {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}

	close(c.send)
}

// Join adiciona a conexão a uma sala
func (h *Hub) Join(room string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		// Conexão já encerrada; nada a fazer
		return
	}

	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[room] = members
	}
	members[c] = struct{}{}
}

// Leave remove a conexão de uma sala
func (h *Hub) Leave(room string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if members, ok := h.rooms[room]; ok {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

// Rooms lista as salas das quais a conexão participa
func (h *Hub) Rooms(c *Client) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	var rooms []string
	for room, members := range h.rooms {
		if _, ok := members[c]; ok {
			rooms = append(rooms, room)
		}
	}
	return rooms
}

// Broadcast entrega o evento a todos os participantes atuais da sala,
// inclusive ao remetente quando ele participa dela. A entrega é
// melhor-esforço: uma fila de envio cheia descarta o evento para aquela
// conexão, nunca bloqueia o hub.
func (h *Hub) Broadcast(room string, ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.rooms[room] {
		h.enqueue(c, ev, room)
	}
}

// BroadcastAll entrega o evento a todas as conexões registradas,
// participantes de salas ou não
func (h *Hub) BroadcastAll(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		h.enqueue(c, ev, "*")
	}
}

// Send entrega o evento a uma única conexão. Conexões já removidas do hub
// são ignoradas; a fila já foi fechada.
func (h *Hub) Send(c *Client, ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}
	h.enqueue(c, ev, "*")
}

// RoomCounts conta os participantes de uma sala por papel
func (h *Hub) RoomCounts(room string) (customers, agents int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.rooms[room] {
		if c.IsAgent() {
			agents++
		} else {
			customers++
		}
	}
	return customers, agents
}

func (h *Hub) enqueue(c *Client, ev Event, room string) {
	select {
	case c.send <- ev:
	default:
		h.logger.Warn("fila de envio cheia, evento descartado",
			"client_id", c.ID, "room", room, "event", ev.Event)
	}
}

// NewSession implementa chatsession.Notifier: anuncia a sessão (com o
// cliente resolvido) para a sala de agentes
func (h *Hub) NewSession(s *chat.Session) {
	h.Broadcast(AgentsRoom, Event{Event: EventNewSession, Data: s})
}

// AgentJoined implementa chatsession.Notifier: anuncia para a sala da
// sessão que um agente assumiu o atendimento
func (h *Hub) AgentJoined(sessionID, agentID string) {
	h.Broadcast(sessionID, Event{Event: EventAgentJoined, Data: agentJoinedPayload{AgentID: agentID}})
}

// DataChanged anuncia para todas as conexões que dados agregados mudaram e
// os painéis devem ser atualizados
func (h *Hub) DataChanged() {
	h.BroadcastAll(Event{Event: EventDataChanged})
}
