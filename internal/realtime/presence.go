package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/skyvoyage/booking-api/internal/domain/user"
	"github.com/skyvoyage/booking-api/pkg/logger"
)

// presenceTTL limita a vida das chaves de presença para que conexões
// derrubadas sem despedida não fiquem online para sempre
const presenceTTL = 24 * time.Hour

// PresenceUser é o registro de um participante online em uma sala
type PresenceUser struct {
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	Role     user.Role `json:"role"`
}

// RoomStatus resume o estado de conexão de uma sala para o painel do agente
type RoomStatus struct {
	CustomerConnected bool `json:"customer_connected"`
	AgentConnected    bool `json:"agent_connected"`
	TotalCustomer     int  `json:"total_customer"`
	TotalAgent        int  `json:"total_agent"`
}

// Presence espelha a participação das salas em Redis, para consulta pelo
// painel do agente. Toda operação é melhor-esforço: Redis indisponível
// nunca bloqueia nem derruba o relay.
type Presence struct {
	rdb    *redis.Client
	logger logger.Logger
}

// NewPresence cria uma nova instância de Presence. Com rdb nulo todas as
// operações viram no-ops.
func NewPresence(rdb *redis.Client, log logger.Logger) *Presence {
	return &Presence{
		rdb:    rdb,
		logger: log,
	}
}

func roomKey(room string) string {
	return fmt.Sprintf("chat:room:%s:online", room)
}

// UserOnline registra o participante na sala
func (p *Presence) UserOnline(ctx context.Context, room string, c *Client) {
	if p.rdb == nil {
		return
	}

	data, err := json.Marshal(PresenceUser{
		UserID:   c.UserID,
		Username: c.Username,
		Role:     c.Role,
	})
	if err != nil {
		return
	}

	key := roomKey(room)
	if err := p.rdb.HSet(ctx, key, c.UserID, data).Err(); err != nil {
		p.logger.Warn("erro ao registrar presença", "room", room, "error", err)
		return
	}

	p.rdb.Expire(ctx, key, presenceTTL)
}

// UserOffline remove o participante da sala
func (p *Presence) UserOffline(ctx context.Context, room string, c *Client) {
	if p.rdb == nil {
		return
	}

	if err := p.rdb.HDel(ctx, roomKey(room), c.UserID).Err(); err != nil {
		p.logger.Warn("erro ao remover presença", "room", room, "error", err)
	}
}

// Status consulta o estado de conexão de uma sala
func (p *Presence) Status(ctx context.Context, room string) (*RoomStatus, error) {
	status := &RoomStatus{}

	if p.rdb == nil {
		return status, nil
	}

	entries, err := p.rdb.HGetAll(ctx, roomKey(room)).Result()
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar presença: %w", err)
	}

	for _, raw := range entries {
		var pu PresenceUser
		if err := json.Unmarshal([]byte(raw), &pu); err != nil {
			p.logger.Warn("registro de presença ilegível", "room", room, "error", err)
			continue
		}

		if pu.Role == user.RoleAgent {
			status.TotalAgent++
		} else {
			status.TotalCustomer++
		}
	}

	status.CustomerConnected = status.TotalCustomer > 0
	status.AgentConnected = status.TotalAgent > 0
	return status, nil
}
