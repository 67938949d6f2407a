package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/skyvoyage/booking-api/internal/chatsession"
	"github.com/skyvoyage/booking-api/internal/domain/chat"
	"github.com/skyvoyage/booking-api/internal/domain/user"
	"github.com/skyvoyage/booking-api/pkg/auth"
	"github.com/skyvoyage/booking-api/pkg/logger"
)

const (
	// writeWait é o prazo máximo para escrever uma mensagem no socket
	writeWait = 10 * time.Second

	// pongWait é o prazo máximo sem pong antes de encerrar a conexão
	pongWait = 60 * time.Second

	// pingPeriod deve ser menor que pongWait
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// A autorização real acontece depois do upgrade, via token de sessão
	CheckOrigin: func(r *http.Request) bool { return true },
}

// DashboardProvider fornece o snapshot agregado enviado na conexão
type DashboardProvider interface {
	Snapshot(ctx context.Context, userID string, isAgent bool) (interface{}, error)
}

// Handler faz o upgrade das conexões websocket, autentica o usuário pelo
// token de sessão e despacha os eventos recebidos para o gerenciador de
// sessões e para o relay de mensagens.
type Handler struct {
	hub       *Hub
	manager   *chatsession.Manager
	relay     *Relay
	presence  *Presence
	jwt       *auth.JWTService
	users     user.Repository
	dashboard DashboardProvider
	logger    logger.Logger
}

// NewHandler cria uma nova instância de Handler
func NewHandler(hub *Hub, manager *chatsession.Manager, relay *Relay, presence *Presence,
	jwt *auth.JWTService, users user.Repository, dashboard DashboardProvider, log logger.Logger) *Handler {
	return &Handler{
		hub:       hub,
		manager:   manager,
		relay:     relay,
		presence:  presence,
		jwt:       jwt,
		users:     users,
		dashboard: dashboard,
		logger:    log,
	}
}

// Serve trata a rota GET /ws
func (h *Handler) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("erro no upgrade websocket", "error", err)
		return
	}

	u := h.authenticate(c.Request)
	if u == nil {
		// Conexão sem credencial válida fica inerte: nunca entra em salas
		// nem recebe eventos, mas não é derrubada de imediato
		go h.drain(conn)
		return
	}

	client := NewClient(u.ID, u.Username, u.Role)
	h.hub.Register(client)

	if client.IsAgent() {
		h.hub.Join(AgentsRoom, client)
		h.presence.UserOnline(c.Request.Context(), AgentsRoom, client)
	}

	h.logger.Info("conexão realtime estabelecida",
		"client_id", client.ID, "user_id", u.ID, "role", u.Role)

	go h.writePump(conn, client)
	go h.readPump(conn, client)

	h.pushDashboard(client)
}

// authenticate resolve o usuário da conexão a partir do token de sessão. O
// token só identifica; o usuário precisa existir na base.
func (h *Handler) authenticate(r *http.Request) *user.User {
	token, err := auth.TokenFromRequest(r)
	if err != nil {
		return nil
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		h.logger.Warn("token de sessão inválido na conexão realtime", "error", err)
		return nil
	}

	u, err := h.users.FindByID(r.Context(), claims.UserID)
	if err != nil {
		h.logger.Warn("usuário do token não encontrado", "user_id", claims.UserID, "error", err)
		return nil
	}

	return u
}

// drain mantém a conexão não autenticada aberta, descartando tudo que chega
func (h *Handler) drain(conn *websocket.Conn) {
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// readPump lê os eventos do socket e os despacha. Quando a leitura falha a
// conexão é removida do hub e das presenças.
func (h *Handler) readPump(conn *websocket.Conn, client *Client) {
	defer func() {
		h.disconnect(conn, client)
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("conexão realtime encerrada com erro", "client_id", client.ID, "error", err)
			}
			return
		}

		var ev inboundEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			h.logger.Warn("evento realtime ilegível", "client_id", client.ID, "error", err)
			continue
		}

		h.handleEvent(client, ev)
	}
}

// writePump serializa os eventos da fila do cliente para o socket e mantém
// o keepalive por ping
func (h *Handler) writePump(conn *websocket.Conn, client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case ev, ok := <-client.send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Handler) disconnect(conn *websocket.Conn, client *Client) {
	ctx := context.Background()
	for _, room := range h.hub.Rooms(client) {
		h.presence.UserOffline(ctx, room, client)
	}
	h.hub.Unregister(client)
	conn.Close()
	h.logger.Info("conexão realtime encerrada", "client_id", client.ID, "user_id", client.UserID)
}

// handleEvent despacha um evento recebido conforme o nome. Eventos
// desconhecidos são ignorados com log; nunca derrubam a conexão.
func (h *Handler) handleEvent(client *Client, ev inboundEvent) {
	ctx := context.Background()

	switch ev.Event {
	case EventStartChat:
		h.handleStartChat(ctx, client)

	case EventJoinSession:
		var payload joinSessionPayload
		if err := json.Unmarshal(ev.Data, &payload); err != nil || payload.SessionID == "" {
			h.logger.Warn("payload inválido em agent:joinSession", "client_id", client.ID)
			return
		}
		h.handleJoinSession(ctx, client, payload.SessionID)

	case EventChatMessage:
		var payload chatMessagePayload
		if err := json.Unmarshal(ev.Data, &payload); err != nil || payload.SessionID == "" {
			h.logger.Warn("payload inválido em chat:message", "client_id", client.ID)
			return
		}
		role := chat.SenderCustomer
		if client.IsAgent() {
			role = chat.SenderAgent
		}
		h.relay.SendMessage(ctx, payload.SessionID, client.UserID, role, payload.Message)

	default:
		h.logger.Warn("evento realtime desconhecido", "client_id", client.ID, "event", ev.Event)
	}
}

// handleStartChat abre (ou reusa) a sessão do cliente, entra na sala dela e
// confirma com chat:sessionCreated. A sala de agentes é notificada pelo
// gerenciador.
func (h *Handler) handleStartChat(ctx context.Context, client *Client) {
	sess, err := h.manager.StartChat(ctx, client.UserID)
	if err != nil {
		h.logger.Error("erro ao iniciar sessão de chat", "user_id", client.UserID, "error", err)
		return
	}

	h.hub.Join(sess.ID, client)
	h.presence.UserOnline(ctx, sess.ID, client)

	h.send(client, Event{
		Event: EventSessionCreated,
		Data:  sessionCreatedPayload{SessionID: sess.ID},
	})
}

// handleJoinSession coloca o agente na sala antes de confirmar a atribuição,
// para que o próprio anúncio agent:joined também chegue a ele
func (h *Handler) handleJoinSession(ctx context.Context, client *Client, sessionID string) {
	if !client.IsAgent() {
		h.logger.Warn("cliente tentou agent:joinSession", "client_id", client.ID, "user_id", client.UserID)
		return
	}

	h.hub.Join(sessionID, client)
	h.presence.UserOnline(ctx, sessionID, client)

	sess, err := h.manager.JoinSession(ctx, sessionID, client.UserID)
	if err != nil {
		h.logger.Error("erro ao entrar na sessão", "session_id", sessionID, "error", err)
		h.hub.Leave(sessionID, client)
		h.presence.UserOffline(ctx, sessionID, client)
		return
	}
	if sess == nil {
		h.hub.Leave(sessionID, client)
		h.presence.UserOffline(ctx, sessionID, client)
	}
}

// pushDashboard envia o snapshot agregado logo após a conexão
func (h *Handler) pushDashboard(client *Client) {
	if h.dashboard == nil {
		return
	}

	data, err := h.dashboard.Snapshot(context.Background(), client.UserID, client.IsAgent())
	if err != nil {
		h.logger.Error("erro ao montar snapshot do painel", "user_id", client.UserID, "error", err)
		return
	}

	h.send(client, Event{Event: EventDashboardData, Data: data})
}

func (h *Handler) send(client *Client, ev Event) {
	h.hub.Send(client, ev)
}
