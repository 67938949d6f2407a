package realtime

import "encoding/json"

// Nomes dos eventos trocados no canal realtime
const (
	// cliente → servidor
	EventStartChat   = "customer:startChat"
	EventJoinSession = "agent:joinSession"

	// servidor → cliente
	EventSessionCreated = "chat:sessionCreated"
	EventNewSession     = "agent:newSession"
	EventAgentJoined    = "agent:joined"
	EventDashboardData  = "dashboardData"
	EventDataChanged    = "dataChanged"

	// bidirecional
	EventChatMessage = "chat:message"
)

// Event é o envelope JSON enviado ao cliente
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// inboundEvent é o envelope recebido do cliente; o payload só é
// interpretado pelo handler do evento correspondente
type inboundEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// joinSessionPayload é o payload de agent:joinSession
type joinSessionPayload struct {
	SessionID string `json:"sessionId"`
}

// chatMessagePayload é o payload de entrada de chat:message
type chatMessagePayload struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// outboundMessage é o payload de saída de chat:message
type outboundMessage struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// agentJoinedPayload é o payload de agent:joined
type agentJoinedPayload struct {
	AgentID string `json:"agentId"`
}

// sessionCreatedPayload é o payload de chat:sessionCreated
type sessionCreatedPayload struct {
	SessionID string `json:"sessionId"`
}
