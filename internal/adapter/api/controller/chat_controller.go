package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyvoyage/booking-api/internal/adapter/api/dto"
	"github.com/skyvoyage/booking-api/internal/adapter/repository"
	"github.com/skyvoyage/booking-api/internal/domain/booking"
	"github.com/skyvoyage/booking-api/internal/domain/chat"
	"github.com/skyvoyage/booking-api/internal/domain/customer"
	"github.com/skyvoyage/booking-api/internal/realtime"
)

// ChatController gerencia o painel de atendimento dos agentes. Todas as
// rotas deste controlador exigem o papel agent.
type ChatController struct {
	sessionRepository  chat.SessionRepository
	messageRepository  chat.MessageRepository
	customerRepository customer.Repository
	bookingRepository  booking.Repository
	hub                *realtime.Hub
	presence           *realtime.Presence
}

// NewChatController cria uma nova instância de ChatController
func NewChatController(sessions chat.SessionRepository, messages chat.MessageRepository,
	customers customer.Repository, bookings booking.Repository,
	hub *realtime.Hub, presence *realtime.Presence) *ChatController {
	return &ChatController{
		sessionRepository:  sessions,
		messageRepository:  messages,
		customerRepository: customers,
		bookingRepository:  bookings,
		hub:                hub,
		presence:           presence,
	}
}

// Sessions lista as sessões de chat abertas
// @Summary Sessões abertas
// @Description Lista as sessões waiting e active, mais antigas primeiro
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ChatSessionResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat/sessions [get]
func (c *ChatController) Sessions(ctx *gin.Context) {
	sessions, err := c.sessionRepository.FindOpen(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar sessões", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChatSessionListResponse(sessions))
}

// Messages lista o histórico de mensagens de uma sessão
// @Summary Histórico da sessão
// @Description Lista as mensagens da sessão em ordem cronológica
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da sessão"
// @Success 200 {array} dto.ChatMessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat/sessions/{id}/messages [get]
func (c *ChatController) Messages(ctx *gin.Context) {
	sess, ok := c.findSession(ctx)
	if !ok {
		return
	}

	messages, err := c.messageRepository.FindBySession(ctx, sess.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar mensagens", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChatMessageListResponse(messages))
}

// Customer retorna o perfil de cliente do dono da sessão
// @Summary Cliente da sessão
// @Description Retorna o perfil de viajante vinculado ao email do usuário dono da sessão
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da sessão"
// @Success 200 {object} dto.CustomerResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat/sessions/{id}/customer [get]
func (c *ChatController) Customer(ctx *gin.Context) {
	sess, ok := c.findSession(ctx)
	if !ok {
		return
	}

	if sess.Customer == nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente da sessão não encontrado", ""))
		return
	}

	cust, err := c.customerRepository.FindByEmail(ctx, sess.Customer.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Perfil de cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(cust))
}

// Bookings lista as reservas do dono da sessão
// @Summary Reservas do cliente da sessão
// @Description Lista as reservas do perfil de cliente vinculado ao dono da sessão
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da sessão"
// @Success 200 {array} dto.BookingResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat/sessions/{id}/bookings [get]
func (c *ChatController) Bookings(ctx *gin.Context) {
	sess, ok := c.findSession(ctx)
	if !ok {
		return
	}

	if sess.Customer == nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente da sessão não encontrado", ""))
		return
	}

	cust, err := c.customerRepository.FindByEmail(ctx, sess.Customer.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusOK, []dto.BookingResponse{})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}

	bookings, err := c.bookingRepository.FindByCustomer(ctx, cust.CustomerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar reservas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBookingListResponse(bookings))
}

// Status retorna o estado de conexão da sala da sessão
// @Summary Estado da sala
// @Description Combina a contagem local do hub com a presença registrada em Redis
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da sessão"
// @Success 200 {object} realtime.RoomStatus
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /chat/sessions/{id}/status [get]
func (c *ChatController) Status(ctx *gin.Context) {
	sess, ok := c.findSession(ctx)
	if !ok {
		return
	}

	status, err := c.presence.Status(ctx, sess.ID)
	if err != nil {
		status = &realtime.RoomStatus{}
	}

	// A contagem local do hub cobre o caso de Redis ausente ou defasado
	customers, agents := c.hub.RoomCounts(sess.ID)
	if customers > status.TotalCustomer {
		status.TotalCustomer = customers
	}
	if agents > status.TotalAgent {
		status.TotalAgent = agents
	}
	status.CustomerConnected = status.TotalCustomer > 0
	status.AgentConnected = status.TotalAgent > 0

	ctx.JSON(http.StatusOK, status)
}

// findSession resolve a sessão da rota ou responde 404
func (c *ChatController) findSession(ctx *gin.Context) (*chat.Session, bool) {
	sess, err := c.sessionRepository.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar sessão", err.Error()))
		return nil, false
	}
	if sess == nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Sessão não encontrada", ""))
		return nil, false
	}
	return sess, true
}
