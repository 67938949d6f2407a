package chat

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/skyvoyage/booking-api/internal/domain/user"
)

var (
	ErrEmptyCustomerID = errors.New("cliente da sessão não pode ser vazio")
	ErrEmptySessionID  = errors.New("sessão da mensagem não pode ser vazia")
	ErrEmptyMessage    = errors.New("mensagem não pode ser vazia")
)

// SessionStatus representa o estado de uma sessão de chat
type SessionStatus string

const (
	StatusWaiting SessionStatus = "waiting" // Aguardando um agente
	StatusActive  SessionStatus = "active"  // Agente atribuído
	StatusClosed  SessionStatus = "closed"  // Encerrada
)

// SenderRole identifica o papel do autor de uma mensagem. O papel é decidido
// uma única vez, no momento da criação da mensagem, a partir da conexão
// autenticada que a enviou.
type SenderRole string

const (
	SenderCustomer SenderRole = "customer"
	SenderAgent    SenderRole = "agent"
)

// Session representa uma sessão de chat entre um cliente e um agente.
// Invariante: no máximo uma sessão não encerrada por cliente.
type Session struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	AgentID    *string       `json:"agent_id,omitempty"`
	Status     SessionStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`

	// Customer carrega o usuário dono da sessão quando resolvido pela consulta
	Customer *user.User `json:"customer,omitempty"`
}

// NewSession cria uma nova sessão aguardando atendimento
func NewSession(customerID string) (*Session, error) {
	if customerID == "" {
		return nil, ErrEmptyCustomerID
	}

	return &Session{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Status:     StatusWaiting,
		CreatedAt:  time.Now(),
	}, nil
}

// IsOpen verifica se a sessão ainda não foi encerrada
func (s *Session) IsOpen() bool {
	return s.Status == StatusWaiting || s.Status == StatusActive
}

// Message representa uma mensagem de chat. Mensagens são imutáveis: apenas
// criadas e lidas, nunca atualizadas.
type Message struct {
	ID            string     `json:"id"`
	ChatSessionID string     `json:"chat_session_id"`
	SenderID      string     `json:"sender_id"`
	SenderRole    SenderRole `json:"sender_role"`
	Message       string     `json:"message"`
	Timestamp     time.Time  `json:"timestamp"`
}

// NewMessage cria uma nova mensagem de chat
func NewMessage(sessionID, senderID string, role SenderRole, text string) (*Message, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}

	if text == "" {
		return nil, ErrEmptyMessage
	}

	return &Message{
		ID:            uuid.New().String(),
		ChatSessionID: sessionID,
		SenderID:      senderID,
		SenderRole:    role,
		Message:       text,
		Timestamp:     time.Now(),
	}, nil
}
