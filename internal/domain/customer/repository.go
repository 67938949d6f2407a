package customer

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo perfil de cliente
	Create(ctx context.Context, c *Customer) error

	// FindByCustomerID busca um cliente pelo código público de 6 dígitos
	FindByCustomerID(ctx context.Context, customerID string) (*Customer, error)

	// FindByDocument busca um cliente pelo número de documento
	FindByDocument(ctx context.Context, documentNumber string) (*Customer, error)

	// FindByEmail busca um cliente pelo email
	FindByEmail(ctx context.Context, email string) (*Customer, error)

	// Update atualiza os dados cadastrais do cliente identificado pelo email
	Update(ctx context.Context, c *Customer) error
}
