package dto

import (
	"time"

	"github.com/skyvoyage/booking-api/internal/domain/customer"
)

// CustomerRequest representa os dados de um perfil de cliente para criação
// ou atualização
type CustomerRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Gender         string `json:"gender"`
	DateOfBirth    string `json:"date_of_birth"`
	DocumentNumber string `json:"document_number" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	Pin            string `json:"pin"`
	Country        string `json:"country"`
	PassportNumber string `json:"passport_number"`
	PassportExpiry string `json:"passport_expiry"`
}

// CustomerResponse representa a resposta com o perfil de um cliente
type CustomerResponse struct {
	ID             string     `json:"id"`
	CustomerID     string     `json:"customer_id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	FullName       string     `json:"full_name"`
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

// ToCustomerResponse converte um cliente do domínio para DTO de resposta
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		CustomerID:     c.CustomerID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		FullName:       c.FullName(),
		Gender:         c.Gender,
		DateOfBirth:    c.DateOfBirth,
		DocumentNumber: c.DocumentNumber,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		City:           c.City,
		State:          c.State,
		Pin:            c.Pin,
		Country:        c.Country,
		PassportNumber: c.PassportNumber,
		PassportExpiry: c.PassportExpiry,
	}
}
