package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyUsername = errors.New("nome de usuário não pode ser vazio")
	ErrEmptyEmail    = errors.New("email não pode ser vazio")
	ErrEmptyPassword = errors.New("senha não pode ser vazia")
)

// Role representa o papel do usuário no sistema
type Role string

const (
	RoleCustomer Role = "customer" // Cliente da companhia
	RoleAgent    Role = "agent"    // Agente de atendimento
)

// User representa um usuário autenticável do sistema
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // O hash da senha nunca é serializado
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser cria um novo usuário com papel de cliente
func NewUser(username, email, password string) (*User, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}

	if email == "" {
		return nil, ErrEmptyEmail
	}

	if password == "" {
		return nil, ErrEmptyPassword
	}

	u := &User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		Role:      RoleCustomer,
		CreatedAt: time.Now(),
	}

	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// SetPassword configura a senha do usuário com hash bcrypt
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida confere com o hash armazenado
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsAgent verifica se o usuário é um agente de atendimento
func (u *User) IsAgent() bool {
	return u.Role == RoleAgent
}
