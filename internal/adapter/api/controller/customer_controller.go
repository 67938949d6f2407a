package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skyvoyage/booking-api/internal/activity"
	"github.com/skyvoyage/booking-api/internal/adapter/api/dto"
	"github.com/skyvoyage/booking-api/internal/adapter/repository"
	"github.com/skyvoyage/booking-api/internal/domain/customer"
)

// CustomerController gerencia as requisições relacionadas a perfis de
// cliente
type CustomerController struct {
	customerRepository customer.Repository
	recorder           *activity.Recorder
}

// NewCustomerController cria uma nova instância de CustomerController
func NewCustomerController(customerRepository customer.Repository, recorder *activity.Recorder) *CustomerController {
	return &CustomerController{
		customerRepository: customerRepository,
		recorder:           recorder,
	}
}

// Create cria um novo perfil de cliente
// @Summary Cria um perfil de cliente
// @Description Registra os dados de viajante e gera o código público de 6 dígitos
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var request dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	cust, err := customer.NewCustomer(request.FirstName, request.LastName, request.DocumentNumber, request.Email)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := applyCustomerRequest(cust, request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.customerRepository.Create(ctx, cust); err != nil {
		if errors.Is(err, repository.ErrCustomerDuplicate) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Cliente já cadastrado", "Documento ou email já cadastrado"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar cliente", err.Error()))
		return
	}

	userID := ctx.GetString("user_id")
	c.recorder.Record(ctx, fmt.Sprintf("Perfil de cliente criado: %s", cust.CustomerID), &userID)

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(cust))
}

// Get busca um cliente pelo identificador
// @Summary Busca um cliente
// @Description Busca pelo código de 6 dígitos, pelo documento ou pelo email, nessa ordem
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param identifier path string true "Código, documento ou email"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{identifier} [get]
func (c *CustomerController) Get(ctx *gin.Context) {
	identifier := ctx.Param("identifier")

	cust, err := c.findByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(cust))
}

// Profile retorna o perfil de cliente do usuário autenticado
// @Summary Perfil do usuário logado
// @Description Retorna o perfil de cliente vinculado ao email do usuário autenticado
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/profile/me [get]
func (c *CustomerController) Profile(ctx *gin.Context) {
	email := ctx.GetString("user_email")

	cust, err := c.customerRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Perfil de cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar perfil", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(cust))
}

// Update atualiza o perfil de cliente do usuário autenticado
// @Summary Atualiza o perfil do cliente
// @Description Atualiza os dados cadastrais do perfil vinculado ao email do usuário
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [put]
func (c *CustomerController) Update(ctx *gin.Context) {
	var request dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	email := ctx.GetString("user_email")

	cust, err := c.customerRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Perfil de cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar perfil", err.Error()))
		return
	}

	cust.FirstName = request.FirstName
	cust.LastName = request.LastName
	cust.DocumentNumber = request.DocumentNumber
	if err := applyCustomerRequest(cust, request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.customerRepository.Update(ctx, cust); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar perfil", err.Error()))
		return
	}

	userID := ctx.GetString("user_id")
	c.recorder.Record(ctx, "Perfil de cliente atualizado", &userID)

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(cust))
}

// findByIdentifier tenta o código público, depois o documento e por fim o
// email
func (c *CustomerController) findByIdentifier(ctx *gin.Context, identifier string) (*customer.Customer, error) {
	cust, err := c.customerRepository.FindByCustomerID(ctx, identifier)
	if err == nil {
		return cust, nil
	}
	if !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, err
	}

	cust, err = c.customerRepository.FindByDocument(ctx, identifier)
	if err == nil {
		return cust, nil
	}
	if !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, err
	}

	return c.customerRepository.FindByEmail(ctx, identifier)
}

// applyCustomerRequest copia os campos opcionais da requisição para a
// entidade, interpretando as datas no formato YYYY-MM-DD
func applyCustomerRequest(cust *customer.Customer, request dto.CustomerRequest) error {
	cust.Gender = request.Gender
	cust.Email = request.Email
	cust.Phone = request.Phone
	cust.Address = request.Address
	cust.City = request.City
	cust.State = request.State
	cust.Pin = request.Pin
	cust.Country = request.Country
	cust.PassportNumber = request.PassportNumber

	if request.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", request.DateOfBirth)
		if err != nil {
			return fmt.Errorf("data de nascimento inválida: %w", err)
		}
		cust.DateOfBirth = dob
	}

	if request.PassportExpiry != "" {
		exp, err := time.Parse("2006-01-02", request.PassportExpiry)
		if err != nil {
			return fmt.Errorf("validade do passaporte inválida: %w", err)
		}
		cust.PassportExpiry = &exp
	} else {
		cust.PassportExpiry = nil
	}

	return nil
}
