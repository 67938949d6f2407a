package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyvoyage/booking-api/internal/domain/chat"
	"github.com/skyvoyage/booking-api/internal/domain/user"
)

// ChatSessionRepository implementa chat.SessionRepository usando PostgreSQL
type ChatSessionRepository struct {
	db *pgxpool.Pool
}

// NewChatSessionRepository cria uma nova instância de ChatSessionRepository
func NewChatSessionRepository(db *pgxpool.Pool) chat.SessionRepository {
	return &ChatSessionRepository{
		db: db,
	}
}

// ReopenForCustomer implementa chat.SessionRepository.ReopenForCustomer.
// A operação é um único UPDATE atômico; a janela entre este UPDATE e o
// INSERT feito pelo chamador quando nada é encontrado não é isolada de
// chamadores concorrentes.
func (r *ChatSessionRepository) ReopenForCustomer(ctx context.Context, customerID string) (*chat.Session, error) {
	query := `
		UPDATE chat_sessions SET status = 'waiting'
		WHERE id = (
			SELECT id FROM chat_sessions
			WHERE customer_id = $1 AND status IN ('waiting', 'active')
			ORDER BY created_at
			LIMIT 1
		)
		RETURNING id, customer_id, agent_id, status, created_at
	`

	s, err := scanSession(r.db.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("falha ao reabrir sessão: %w", err)
	}

	return s, nil
}

// Create implementa chat.SessionRepository.Create
func (r *ChatSessionRepository) Create(ctx context.Context, s *chat.Session) error {
	query := `
		INSERT INTO chat_sessions (id, customer_id, agent_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		s.ID,
		s.CustomerID,
		s.AgentID,
		string(s.Status),
		s.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("falha ao criar sessão: %w", err)
	}

	return nil
}

// FindByID implementa chat.SessionRepository.FindByID
func (r *ChatSessionRepository) FindByID(ctx context.Context, id string) (*chat.Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		// Identificador malformado equivale a sessão inexistente
		return nil, nil
	}

	query := `
		SELECT s.id, s.customer_id, s.agent_id, s.status, s.created_at,
		       u.id, u.username, u.email, u.role, u.created_at
		FROM chat_sessions s
		JOIN users u ON u.id = s.customer_id
		WHERE s.id = $1
	`

	s, err := scanSessionWithCustomer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("falha ao buscar sessão: %w", err)
	}

	return s, nil
}

// FindOpen implementa chat.SessionRepository.FindOpen
func (r *ChatSessionRepository) FindOpen(ctx context.Context) ([]*chat.Session, error) {
	query := `
		SELECT s.id, s.customer_id, s.agent_id, s.status, s.created_at,
		       u.id, u.username, u.email, u.role, u.created_at
		FROM chat_sessions s
		JOIN users u ON u.id = s.customer_id
		WHERE s.status IN ('waiting', 'active')
		ORDER BY s.created_at ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar sessões abertas: %w", err)
	}
	defer rows.Close()

	var sessions []*chat.Session
	for rows.Next() {
		s, err := scanSessionWithCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler sessão: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// Assign implementa chat.SessionRepository.Assign. O último agente a entrar
// vence: não há trava de exclusão mútua sobre a atribuição.
func (r *ChatSessionRepository) Assign(ctx context.Context, sessionID, agentID string) (*chat.Session, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, nil
	}

	query := `
		UPDATE chat_sessions SET status = 'active', agent_id = $2
		WHERE id = $1
		RETURNING id, customer_id, agent_id, status, created_at
	`

	s, err := scanSession(r.db.QueryRow(ctx, query, sessionID, agentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("falha ao atribuir agente: %w", err)
	}

	return s, nil
}

// ChatMessageRepository implementa chat.MessageRepository usando PostgreSQL
type ChatMessageRepository struct {
	db *pgxpool.Pool
}

// NewChatMessageRepository cria uma nova instância de ChatMessageRepository
func NewChatMessageRepository(db *pgxpool.Pool) chat.MessageRepository {
	return &ChatMessageRepository{
		db: db,
	}
}

// Create implementa chat.MessageRepository.Create
func (r *ChatMessageRepository) Create(ctx context.Context, m *chat.Message) error {
	query := `
		INSERT INTO chat_messages (id, chat_session_id, sender_id, sender_role, message, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		m.ID,
		m.ChatSessionID,
		m.SenderID,
		string(m.SenderRole),
		m.Message,
		m.Timestamp,
	)

	if err != nil {
		return fmt.Errorf("falha ao persistir mensagem: %w", err)
	}

	return nil
}

// FindBySession implementa chat.MessageRepository.FindBySession
func (r *ChatMessageRepository) FindBySession(ctx context.Context, sessionID string) ([]*chat.Message, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, nil
	}

	query := `
		SELECT id, chat_session_id, sender_id, sender_role, message, timestamp
		FROM chat_messages
		WHERE chat_session_id = $1
		ORDER BY timestamp ASC
	`

	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar mensagens: %w", err)
	}
	defer rows.Close()

	var messages []*chat.Message
	for rows.Next() {
		m := &chat.Message{}
		var role string
		if err := rows.Scan(&m.ID, &m.ChatSessionID, &m.SenderID, &role, &m.Message, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("falha ao ler mensagem: %w", err)
		}
		m.SenderRole = chat.SenderRole(role)
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

func scanSession(row pgx.Row) (*chat.Session, error) {
	s := &chat.Session{}
	var status string

	err := row.Scan(&s.ID, &s.CustomerID, &s.AgentID, &status, &s.CreatedAt)
	if err != nil {
		return nil, err
	}

	s.Status = chat.SessionStatus(status)
	return s, nil
}

func scanSessionWithCustomer(row pgx.Row) (*chat.Session, error) {
	s := &chat.Session{}
	u := &user.User{}
	var status, role string

	err := row.Scan(
		&s.ID, &s.CustomerID, &s.AgentID, &status, &s.CreatedAt,
		&u.ID, &u.Username, &u.Email, &role, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Status = chat.SessionStatus(status)
	u.Role = user.Role(role)
	s.Customer = u
	return s, nil
}
