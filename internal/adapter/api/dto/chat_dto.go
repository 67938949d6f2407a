package dto

import (
	"time"

	"github.com/skyvoyage/booking-api/internal/domain/chat"
)

// ChatSessionResponse representa uma sessão de chat no painel do agente
type ChatSessionResponse struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	AgentID      string    `json:"agent_id,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// ChatMessageResponse representa uma mensagem do histórico de uma sessão
type ChatMessageResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	SenderRole string    `json:"sender_role"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

// ToChatSessionResponse converte uma sessão do domínio para DTO de resposta
func ToChatSessionResponse(s *chat.Session) ChatSessionResponse {
	resp := ChatSessionResponse{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		Status:     string(s.Status),
		CreatedAt:  s.CreatedAt,
	}

	if s.AgentID != nil {
		resp.AgentID = *s.AgentID
	}

	if s.Customer != nil {
		resp.CustomerName = s.Customer.Username
	}

	return resp
}

// ToChatSessionListResponse converte uma lista de sessões do domínio para DTOs
func ToChatSessionListResponse(sessions []*chat.Session) []ChatSessionResponse {
	data := make([]ChatSessionResponse, len(sessions))
	for i, s := range sessions {
		data[i] = ToChatSessionResponse(s)
	}
	return data
}

// ToChatMessageResponse converte uma mensagem do domínio para DTO de resposta
func ToChatMessageResponse(m *chat.Message) ChatMessageResponse {
	return ChatMessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		SenderRole: string(m.SenderRole),
		Message:    m.Message,
		Timestamp:  m.Timestamp,
	}
}

// ToChatMessageListResponse converte o histórico de mensagens para DTOs
func ToChatMessageListResponse(messages []*chat.Message) []ChatMessageResponse {
	data := make([]ChatMessageResponse, len(messages))
	for i, m := range messages {
		data[i] = ToChatMessageResponse(m)
	}
	return data
}
