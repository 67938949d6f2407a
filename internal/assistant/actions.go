package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"github.com/skyvoyage/booking-api/internal/domain/booking"
)

// Action executa uma ferramenta solicitada pelo modelo e devolve o resultado
// serializado em JSON, que volta ao modelo como tool message
type Action interface {
	// Definition descreve a ferramenta para o modelo
	Definition() openai.Tool

	// Execute aplica a ação com os argumentos fornecidos pelo modelo
	Execute(ctx context.Context, arguments string) (string, error)
}

// bookFlightArgs são os argumentos esperados da ferramenta book_flight
type bookFlightArgs struct {
	CustomerID   string `json:"customerId"`
	FlightNumber string `json:"flightNumber"`
	Date         string `json:"date"`
	SeatNumber   string `json:"seatNumber"`
	Class        string `json:"class"`
}

// bookFlightAction cria uma reserva em nome do cliente. Os aeroportos de
// origem e destino não fazem parte dos argumentos da ferramenta; a reserva
// é criada com esses campos marcados como não informados.
type bookFlightAction struct {
	bookings booking.Repository
}

func (a *bookFlightAction) Definition() openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        "book_flight",
			Description: "Reserva um voo para um cliente. Use quando o cliente pedir para reservar, marcar ou comprar um voo.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"customerId": {
						Type:        jsonschema.String,
						Description: "Código de 6 dígitos do cliente",
					},
					"flightNumber": {
						Type:        jsonschema.String,
						Description: "Número do voo, por exemplo SV123",
					},
					"date": {
						Type:        jsonschema.String,
						Description: "Data do voo no formato YYYY-MM-DD",
					},
					"seatNumber": {
						Type:        jsonschema.String,
						Description: "Assento desejado, por exemplo 12A",
					},
					"class": {
						Type:        jsonschema.String,
						Description: "Classe da reserva",
						Enum:        []string{"Economy", "Business", "First"},
					},
				},
				Required: []string{"customerId", "flightNumber", "date", "seatNumber", "class"},
			},
		},
	}
}

// Execute nunca devolve a falha da ação como erro Go: qualquer problema
// (argumentos, validação, persistência) vira um resultado {success:false}
// que volta ao modelo, para que a resposta ao cliente seja conversacional
func (a *bookFlightAction) Execute(ctx context.Context, arguments string) (string, error) {
	var args bookFlightArgs
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return toolFailure("argumentos inválidos: " + err.Error())
	}

	date, err := time.Parse("2006-01-02", args.Date)
	if err != nil {
		return toolFailure("data inválida, use o formato YYYY-MM-DD")
	}

	b, err := booking.NewBooking(args.CustomerID, args.FlightNumber, "N/A", "N/A", date, date, args.SeatNumber, args.Class)
	if err != nil {
		return toolFailure(err.Error())
	}

	if err := a.bookings.Create(ctx, b); err != nil {
		return toolFailure("erro ao criar reserva: " + err.Error())
	}

	return toolResult(map[string]interface{}{
		"success":   true,
		"bookingId": b.ID,
		"status":    b.Status,
		"message":   "Reserva criada com sucesso.",
	})
}

// cancelFlightArgs são os argumentos esperados da ferramenta cancel_flight
type cancelFlightArgs struct {
	BookingID string `json:"bookingId"`
}

// cancelFlightAction remove uma reserva existente. Uma reserva inexistente
// não é erro da ação: o resultado informa a falha ao modelo, que a relata
// ao cliente.
type cancelFlightAction struct {
	bookings booking.Repository
}

func (a *cancelFlightAction) Definition() openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        "cancel_flight",
			Description: "Cancela uma reserva existente a partir do identificador da reserva.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"bookingId": {
						Type:        jsonschema.String,
						Description: "Identificador da reserva a cancelar",
					},
				},
				Required: []string{"bookingId"},
			},
		},
	}
}

// Execute segue a mesma regra de book_flight: falhas viram {success:false}
// no resultado da ferramenta, nunca erro Go
func (a *cancelFlightAction) Execute(ctx context.Context, arguments string) (string, error) {
	var args cancelFlightArgs
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return toolFailure("argumentos inválidos: " + err.Error())
	}

	rows, err := a.bookings.Delete(ctx, args.BookingID)
	if err != nil {
		return toolFailure("erro ao cancelar reserva: " + err.Error())
	}

	if rows == 0 {
		return toolFailure("reserva não encontrada")
	}

	return toolResult(map[string]interface{}{
		"success": true,
		"message": "Reserva cancelada com sucesso.",
	})
}

func toolResult(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar resultado da ferramenta: %w", err)
	}
	return string(data), nil
}

func toolFailure(reason string) (string, error) {
	return toolResult(map[string]interface{}{
		"success": false,
		"error":   reason,
	})
}

// newActions monta o registro fechado de ferramentas. Somente nomes
// presentes aqui podem ser executados; qualquer outro nome vindo do modelo
// é rejeitado com erro.
func newActions(bookings booking.Repository) map[string]Action {
	return map[string]Action{
		"book_flight":   &bookFlightAction{bookings: bookings},
		"cancel_flight": &cancelFlightAction{bookings: bookings},
	}
}
