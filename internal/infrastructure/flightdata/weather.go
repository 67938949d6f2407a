package flightdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/skyvoyage/booking-api/pkg/logger"
)

const openMeteoURL = "https://api.open-meteo.com/v1/forecast"

// Weather é a condição atual do tempo em um ponto geográfico
type Weather struct {
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"windspeed"`
	WeatherCode int     `json:"weathercode"`
	Time        string  `json:"time"`
}

type openMeteoResponse struct {
	CurrentWeather Weather `json:"current_weather"`
}

// WeatherClient consulta a condição do tempo na API pública do Open-Meteo
type WeatherClient struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Logger
}

// NewWeatherClient cria uma nova instância de WeatherClient
func NewWeatherClient(log logger.Logger) *WeatherClient {
	return &WeatherClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    openMeteoURL,
		logger:     log,
	}
}

// CurrentWeather busca a condição atual do tempo nas coordenadas informadas
func (c *WeatherClient) CurrentWeather(ctx context.Context, latitude, longitude float64) (*Weather, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', 4, 64))
	params.Set("current_weather", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar requisição de tempo: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar provedor de tempo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provedor de tempo respondeu com status %d", resp.StatusCode)
	}

	var payload openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("resposta ilegível do provedor de tempo: %w", err)
	}

	return &payload.CurrentWeather, nil
}
