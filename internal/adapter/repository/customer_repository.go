package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyvoyage/booking-api/internal/domain/customer"
)

// Erros específicos do repositório de clientes
var (
	ErrCustomerNotFound  = errors.New("cliente não encontrado")
	ErrCustomerDuplicate = errors.New("já existe um cliente com este documento")
)

// CustomerRepository implementa a interface customer.Repository usando PostgreSQL
type CustomerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(db *pgxpool.Pool) customer.Repository {
	return &CustomerRepository{
		db: db,
	}
}

const customerColumns = `
	id, customer_id, first_name, last_name, gender, date_of_birth,
	document_number, email, phone, address, city, state, pin, country,
	passport_number, passport_expiry
`

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	var passportNumber interface{}
	if c.PassportNumber != "" {
		passportNumber = c.PassportNumber
	}

	_, err := r.db.Exec(ctx, query,
		c.ID,
		c.CustomerID,
		c.FirstName,
		c.LastName,
		c.Gender,
		c.DateOfBirth,
		c.DocumentNumber,
		c.Email,
		c.Phone,
		c.Address,
		c.City,
		c.State,
		c.Pin,
		c.Country,
		passportNumber,
		c.PassportExpiry,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return ErrCustomerDuplicate
		}
		return fmt.Errorf("falha ao inserir cliente: %w", err)
	}

	return nil
}

// FindByCustomerID implementa customer.Repository.FindByCustomerID
func (r *CustomerRepository) FindByCustomerID(ctx context.Context, customerID string) (*customer.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, customerID))
}

// FindByDocument implementa customer.Repository.FindByDocument
func (r *CustomerRepository) FindByDocument(ctx context.Context, documentNumber string) (*customer.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE document_number = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, documentNumber))
}

// FindByEmail implementa customer.Repository.FindByEmail
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

// Update implementa customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	query := `
		UPDATE customers SET
			first_name = $1, last_name = $2, gender = $3, date_of_birth = $4,
			phone = $5, address = $6, city = $7, state = $8, pin = $9,
			country = $10, passport_number = $11, passport_expiry = $12
		WHERE email = $13
	`

	tag, err := r.db.Exec(ctx, query,
		c.FirstName,
		c.LastName,
		c.Gender,
		c.DateOfBirth,
		c.Phone,
		c.Address,
		c.City,
		c.State,
		c.Pin,
		c.Country,
		c.PassportNumber,
		c.PassportExpiry,
		c.Email,
	)

	if err != nil {
		return fmt.Errorf("falha ao atualizar cliente: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

func (r *CustomerRepository) scanOne(row pgx.Row) (*customer.Customer, error) {
	c := &customer.Customer{}
	var passportNumber *string

	err := row.Scan(
		&c.ID,
		&c.CustomerID,
		&c.FirstName,
		&c.LastName,
		&c.Gender,
		&c.DateOfBirth,
		&c.DocumentNumber,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.City,
		&c.State,
		&c.Pin,
		&c.Country,
		&passportNumber,
		&c.PassportExpiry,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("falha ao buscar cliente: %w", err)
	}

	if passportNumber != nil {
		c.PassportNumber = *passportNumber
	}

	return c, nil
}
