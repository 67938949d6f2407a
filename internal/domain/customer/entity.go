package customer

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyFirstName = errors.New("nome não pode ser vazio")
	ErrEmptyLastName  = errors.New("sobrenome não pode ser vazio")
	ErrEmptyDocument  = errors.New("número de documento não pode ser vazio")
	ErrEmptyEmail     = errors.New("email não pode ser vazio")
)

// Customer representa o perfil de viajante de um cliente
type Customer struct {
	ID             string     `json:"id"`
	CustomerID     string     `json:"customer_id"` // Código público de 6 dígitos
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Gender         string     `json:"gender"`
	DateOfBirth    time.Time  `json:"date_of_birth"`
	DocumentNumber string     `json:"document_number"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Address        string     `json:"address"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	Pin            string     `json:"pin"`
	Country        string     `json:"country"`
	PassportNumber string     `json:"passport_number,omitempty"`
	PassportExpiry *time.Time `json:"passport_expiry,omitempty"`
}

// NewCustomer cria um novo perfil de cliente com código público gerado
func NewCustomer(firstName, lastName, documentNumber, email string) (*Customer, error) {
	if firstName == "" {
		return nil, ErrEmptyFirstName
	}

	if lastName == "" {
		return nil, ErrEmptyLastName
	}

	if documentNumber == "" {
		return nil, ErrEmptyDocument
	}

	if email == "" {
		return nil, ErrEmptyEmail
	}

	return &Customer{
		ID:             uuid.New().String(),
		CustomerID:     GenerateCustomerID(),
		FirstName:      firstName,
		LastName:       lastName,
		DocumentNumber: documentNumber,
		Email:          email,
	}, nil
}

// FullName retorna o nome completo do cliente
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// GenerateCustomerID gera um código público de 6 dígitos
func GenerateCustomerID() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}
