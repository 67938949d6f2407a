package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"
	"github.com/skyvoyage/booking-api/internal/adapter/api/dto"
	"github.com/skyvoyage/booking-api/internal/assistant"
	"github.com/skyvoyage/booking-api/internal/domain/booking"
	"github.com/skyvoyage/booking-api/pkg/logger"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: s.reply}},
		},
	}, nil
}

type noopBookingRepository struct{}

func (noopBookingRepository) Create(ctx context.Context, b *booking.Booking) error { return nil }
func (noopBookingRepository) FindByID(ctx context.Context, id string) (*booking.Booking, error) {
	return nil, nil
}
func (noopBookingRepository) FindByCustomer(ctx context.Context, customerID string) ([]*booking.Booking, error) {
	return nil, nil
}
func (noopBookingRepository) FindRecent(ctx context.Context, customerID string, limit int) ([]*booking.Booking, error) {
	return nil, nil
}
func (noopBookingRepository) FindSeatsByFlight(ctx context.Context, flightNumber string) ([]string, error) {
	return nil, nil
}
func (noopBookingRepository) SeatTaken(ctx context.Context, flightNumber, seatNumber string) (bool, error) {
	return false, nil
}
func (noopBookingRepository) UpdateStatus(ctx context.Context, id string, status booking.Status) error {
	return nil
}
func (noopBookingRepository) Delete(ctx context.Context, id string) (int64, error) { return 0, nil }
func (noopBookingRepository) Count(ctx context.Context, customerID string) (int, error) {
	return 0, nil
}
func (noopBookingRepository) CountUpcoming(ctx context.Context, customerID string, from time.Time) (int, error) {
	return 0, nil
}
func (noopBookingRepository) CountByClass(ctx context.Context, customerID string) ([]booking.ClassCount, error) {
	return nil, nil
}

func newChatbotRouter(stub *stubCompleter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewLogger()

	a := assistant.NewAssistantWithClient(stub, "test-model", noopBookingRepository{}, log)
	ctrl := NewChatbotController(a, log)

	router := gin.New()
	router.POST("/chatbot", ctrl.Chat)
	return router
}

func TestChatbotReturnsReply(t *testing.T) {
	router := newChatbotRouter(&stubCompleter{reply: "Posso ajudar com sua reserva!"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chatbot", strings.NewReader(`{"message": "oi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status esperado 200, obtido %d", w.Code)
	}

	var resp dto.ChatbotResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("resposta ilegível: %v", err)
	}
	if resp.Reply != "Posso ajudar com sua reserva!" {
		t.Errorf("resposta inesperada: %s", resp.Reply)
	}
}

func TestChatbotApologizesOnFailure(t *testing.T) {
	router := newChatbotRouter(&stubCompleter{err: errors.New("timeout")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chatbot", strings.NewReader(`{"message": "oi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status esperado 500, obtido %d", w.Code)
	}

	var resp dto.ChatbotResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("resposta ilegível: %v", err)
	}
	if resp.Reply != chatbotApology {
		t.Errorf("o cliente deveria receber a desculpa fixa, obtido %s", resp.Reply)
	}
}

func TestChatbotRejectsEmptyBody(t *testing.T) {
	router := newChatbotRouter(&stubCompleter{reply: "nunca chega aqui"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chatbot", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status esperado 400, obtido %d", w.Code)
	}
}
