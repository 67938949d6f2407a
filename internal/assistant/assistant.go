package assistant

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
	"github.com/skyvoyage/booking-api/internal/domain/booking"
	"github.com/skyvoyage/booking-api/pkg/logger"
)

var (
	ErrEmptyPrompt = errors.New("mensagem para o assistente não pode ser vazia")
	ErrNoReply     = errors.New("o modelo não retornou resposta")
)

const systemPrompt = `Você é o assistente virtual da SkyVoyage, uma companhia aérea. ` +
	`Ajude os clientes com reservas de voo, cancelamentos, check-in e dúvidas gerais sobre viagens. ` +
	`Use as ferramentas disponíveis quando o cliente pedir para reservar ou cancelar um voo. ` +
	`Antes de reservar, confirme que você tem o código do cliente, o número do voo, a data, o assento e a classe. ` +
	`Responda sempre de forma curta e cordial, no idioma do cliente.`

// ChatCompleter é o subconjunto do cliente OpenAI usado pelo assistente,
// extraído como interface para permitir testes sem rede
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Assistant é a ponte entre o chat do cliente e o modelo de linguagem. O
// modelo só age sobre o sistema através do registro fechado de ações; uma
// ferramenta desconhecida é rejeitada, nunca improvisada.
type Assistant struct {
	client  ChatCompleter
	model   string
	actions map[string]Action
	logger  logger.Logger
}

// NewAssistant cria uma nova instância de Assistant a partir das variáveis
// de ambiente OPENAI_API_KEY, OPENAI_BASE_URL e OPENAI_MODEL
func NewAssistant(bookings booking.Repository, log logger.Logger) *Assistant {
	cfg := openai.DefaultConfig(os.Getenv("OPENAI_API_KEY"))
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}

	return &Assistant{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		actions: newActions(bookings),
		logger:  log,
	}
}

// NewAssistantWithClient cria um Assistant com um cliente já construído
func NewAssistantWithClient(client ChatCompleter, model string, bookings booking.Repository, log logger.Logger) *Assistant {
	return &Assistant{
		client:  client,
		model:   model,
		actions: newActions(bookings),
		logger:  log,
	}
}

func (a *Assistant) tools() []openai.Tool {
	tools := make([]openai.Tool, 0, len(a.actions))
	for _, action := range a.actions {
		tools = append(tools, action.Definition())
	}
	return tools
}

// Reply envia a mensagem do cliente ao modelo e devolve a resposta em
// texto. Quando o modelo solicita uma ferramenta, apenas a primeira
// chamada é executada; o resultado volta ao modelo em uma segunda rodada
// para gerar a resposta final.
func (a *Assistant) Reply(ctx context.Context, userMessage string) (string, error) {
	if userMessage == "" {
		return "", ErrEmptyPrompt
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: userMessage},
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: messages,
		Tools:    a.tools(),
	})
	if err != nil {
		return "", fmt.Errorf("erro na chamada ao modelo: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoReply
	}

	reply := resp.Choices[0].Message
	if len(reply.ToolCalls) == 0 {
		return reply.Content, nil
	}

	// Uma ação por rodada; chamadas adicionais na mesma resposta são ignoradas
	call := reply.ToolCalls[0]
	if len(reply.ToolCalls) > 1 {
		a.logger.Warn("modelo solicitou múltiplas ferramentas, apenas a primeira será executada",
			"tool", call.Function.Name, "ignored", len(reply.ToolCalls)-1)
	}

	action, ok := a.actions[call.Function.Name]
	if !ok {
		return "", fmt.Errorf("ferramenta desconhecida solicitada pelo modelo: %s", call.Function.Name)
	}

	result, err := action.Execute(ctx, call.Function.Arguments)
	if err != nil {
		return "", err
	}

	a.logger.Info("ação do assistente executada", "tool", call.Function.Name)

	messages = append(messages, reply, openai.ChatCompletionMessage{
		Role:       openai.ChatMessageRoleTool,
		Content:    result,
		ToolCallID: call.ID,
	})

	followup, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("erro na chamada final ao modelo: %w", err)
	}

	if len(followup.Choices) == 0 {
		return "", ErrNoReply
	}

	return followup.Choices[0].Message.Content, nil
}
