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
	"github.com/skyvoyage/booking-api/internal/domain/booking"
)

// BookingController gerencia as requisições relacionadas a reservas
type BookingController struct {
	bookingRepository booking.Repository
	recorder          *activity.Recorder
}

// NewBookingController cria uma nova instância de BookingController
func NewBookingController(bookingRepository booking.Repository, recorder *activity.Recorder) *BookingController {
	return &BookingController{
		bookingRepository: bookingRepository,
		recorder:          recorder,
	}
}

// Create cria uma nova reserva
// @Summary Cria uma reserva
// @Description Reserva um assento em um voo. Assento já ocupado no mesmo voo resulta em 400.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param booking body dto.BookingRequest true "Dados da reserva"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bookings [post]
func (c *BookingController) Create(ctx *gin.Context) {
	var request dto.BookingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	departureDate, err := time.Parse("2006-01-02", request.DepartureDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Data de partida inválida", err.Error()))
		return
	}

	arrivalDate, err := time.Parse("2006-01-02", request.ArrivalDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Data de chegada inválida", err.Error()))
		return
	}

	taken, err := c.bookingRepository.SeatTaken(ctx, request.FlightNumber, request.SeatNumber)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao verificar assento", err.Error()))
		return
	}
	if taken {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Assento indisponível", "O assento escolhido já está reservado neste voo"))
		return
	}

	b, err := booking.NewBooking(request.CustomerID, request.FlightNumber, request.Departure, request.Arrival,
		departureDate, arrivalDate, request.SeatNumber, request.Class)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.bookingRepository.Create(ctx, b); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar reserva", err.Error()))
		return
	}

	userID := ctx.GetString("user_id")
	c.recorder.Record(ctx, fmt.Sprintf("Reserva criada no voo %s, assento %s", b.FlightNumber, b.SeatNumber), &userID)

	ctx.JSON(http.StatusCreated, dto.ToBookingResponse(b))
}

// List lista as reservas de um cliente
// @Summary Lista reservas de um cliente
// @Description Lista as reservas do código de cliente informado, mais recentes primeiro
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param customerId path string true "Código de 6 dígitos do cliente"
// @Success 200 {array} dto.BookingResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bookings/customer/{customerId} [get]
func (c *BookingController) List(ctx *gin.Context) {
	customerID := ctx.Param("customerId")

	bookings, err := c.bookingRepository.FindByCustomer(ctx, customerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar reservas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBookingListResponse(bookings))
}

// Cancel remove uma reserva
// @Summary Cancela uma reserva
// @Description Remove a reserva informada. Reserva inexistente resulta em 404.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da reserva"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bookings/{id} [delete]
func (c *BookingController) Cancel(ctx *gin.Context) {
	id := ctx.Param("id")

	rows, err := c.bookingRepository.Delete(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao cancelar reserva", err.Error()))
		return
	}
	if rows == 0 {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Reserva não encontrada", ""))
		return
	}

	userID := ctx.GetString("user_id")
	c.recorder.Record(ctx, fmt.Sprintf("Reserva cancelada: %s", id), &userID)

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Reserva cancelada", nil))
}

// CheckIn realiza o check-in de uma reserva
// @Summary Faz o check-in
// @Description Marca a reserva como Checked-In. Disponível apenas nas 48 horas antes da partida.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da reserva"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bookings/{id}/checkin [post]
func (c *BookingController) CheckIn(ctx *gin.Context) {
	id := ctx.Param("id")

	b, err := c.bookingRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Reserva não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar reserva", err.Error()))
		return
	}

	if !b.IsCheckinAvailable(time.Now()) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Check-in indisponível",
			"O check-in só pode ser feito nas 48 horas antes da partida de uma reserva confirmada"))
		return
	}

	b.CheckIn()
	if err := c.bookingRepository.UpdateStatus(ctx, b.ID, b.Status); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar reserva", err.Error()))
		return
	}

	userID := ctx.GetString("user_id")
	c.recorder.Record(ctx, fmt.Sprintf("Check-in realizado na reserva %s", b.ID), &userID)

	ctx.JSON(http.StatusOK, dto.ToBookingResponse(b))
}

// BoardingPass retorna o cartão de embarque de uma reserva
// @Summary Cartão de embarque
// @Description Retorna o cartão de embarque. Disponível apenas após o check-in.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da reserva"
// @Success 200 {object} dto.BoardingPassResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bookings/{id}/boarding-pass [get]
func (c *BookingController) BoardingPass(ctx *gin.Context) {
	id := ctx.Param("id")

	b, err := c.bookingRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Reserva não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar reserva", err.Error()))
		return
	}

	if !b.IsCheckedIn() {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cartão de embarque indisponível",
			"O cartão de embarque só existe após o check-in"))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBoardingPassResponse(b))
}

// Seats lista os assentos ocupados de um voo
// @Summary Assentos ocupados
// @Description Lista os assentos já reservados no voo informado
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param flightNumber path string true "Número do voo"
// @Success 200 {object} dto.SeatsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bookings/flight/{flightNumber}/seats [get]
func (c *BookingController) Seats(ctx *gin.Context) {
	flightNumber := ctx.Param("flightNumber")

	seats, err := c.bookingRepository.FindSeatsByFlight(ctx, flightNumber)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar assentos", err.Error()))
		return
	}

	if seats == nil {
		seats = []string{}
	}

	ctx.JSON(http.StatusOK, dto.SeatsResponse{
		FlightNumber: flightNumber,
		TakenSeats:   seats,
	})
}
