package flightdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/skyvoyage/booking-api/pkg/logger"
)

const aviationstackURL = "http://api.aviationstack.com/v1/flights"

// Flight é um voo em tempo real retornado pelo provedor externo
type Flight struct {
	FlightDate   string `json:"flight_date"`
	FlightStatus string `json:"flight_status"`
	Departure    struct {
		Airport   string `json:"airport"`
		IATA      string `json:"iata"`
		Scheduled string `json:"scheduled"`
	} `json:"departure"`
	Arrival struct {
		Airport   string `json:"airport"`
		IATA      string `json:"iata"`
		Scheduled string `json:"scheduled"`
	} `json:"arrival"`
	Airline struct {
		Name string `json:"name"`
		IATA string `json:"iata"`
	} `json:"airline"`
	FlightInfo struct {
		Number string `json:"number"`
		IATA   string `json:"iata"`
	} `json:"flight"`
}

type aviationstackResponse struct {
	Data []Flight `json:"data"`
}

// FlightClient consulta voos em tempo real na API do aviationstack. A
// chave vem de AVIATIONSTACK_API_KEY; sem chave ou com o provedor fora do
// ar a consulta degrada para uma lista vazia.
type FlightClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	logger     logger.Logger
}

// NewFlightClient cria uma nova instância de FlightClient
func NewFlightClient(log logger.Logger) *FlightClient {
	return &FlightClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     os.Getenv("AVIATIONSTACK_API_KEY"),
		baseURL:    aviationstackURL,
		logger:     log,
	}
}

// FetchFlights busca voos entre dois aeroportos (códigos IATA). Falhas do
// provedor externo não são propagadas: o resultado degrada para vazio.
func (c *FlightClient) FetchFlights(ctx context.Context, from, to string) ([]Flight, error) {
	if c.apiKey == "" {
		c.logger.Warn("AVIATIONSTACK_API_KEY não configurada, retornando lista vazia")
		return []Flight{}, nil
	}

	params := url.Values{}
	params.Set("access_key", c.apiKey)
	params.Set("dep_iata", from)
	params.Set("arr_iata", to)
	params.Set("limit", "10")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar requisição de voos: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("erro ao consultar provedor de voos", "error", err)
		return []Flight{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("provedor de voos respondeu com erro", "status", resp.StatusCode)
		return []Flight{}, nil
	}

	var payload aviationstackResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("resposta ilegível do provedor de voos", "error", err)
		return []Flight{}, nil
	}

	if payload.Data == nil {
		return []Flight{}, nil
	}
	return payload.Data, nil
}
