package realtime

import (
	"context"

	"github.com/skyvoyage/booking-api/internal/domain/chat"
	"github.com/skyvoyage/booking-api/pkg/logger"
)

// Relay roteia mensagens entre os participantes de uma sessão de chat. A
// mensagem é persistida antes do broadcast: sem registro durável não há
// entrega (fail-closed). Falhas de persistência são registradas em log e
// não retornam erro ao remetente.
type Relay struct {
	messages chat.MessageRepository
	hub      *Hub
	logger   logger.Logger
}

// NewRelay cria uma nova instância de Relay
func NewRelay(messages chat.MessageRepository, hub *Hub, log logger.Logger) *Relay {
	return &Relay{
		messages: messages,
		hub:      hub,
		logger:   log,
	}
}

// SendMessage persiste a mensagem e a transmite para todos os participantes
// atuais da sala da sessão, inclusive a conexão do próprio remetente. O
// papel do autor é decidido aqui, uma única vez, a partir da conexão
// autenticada.
func (r *Relay) SendMessage(ctx context.Context, sessionID, senderID string, role chat.SenderRole, text string) {
	msg, err := chat.NewMessage(sessionID, senderID, role, text)
	if err != nil {
		r.logger.Warn("mensagem de chat inválida descartada",
			"session_id", sessionID, "sender_id", senderID, "error", err)
		return
	}

	if err := r.messages.Create(ctx, msg); err != nil {
		// Sem registro durável o broadcast é suprimido
		r.logger.Error("erro ao persistir mensagem de chat",
			"session_id", sessionID, "sender_id", senderID, "error", err)
		return
	}

	r.hub.Broadcast(sessionID, Event{
		Event: EventChatMessage,
		Data:  outboundMessage{Sender: senderID, Message: msg.Message},
	})
}
