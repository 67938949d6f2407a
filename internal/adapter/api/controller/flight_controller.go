package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skyvoyage/booking-api/internal/adapter/api/dto"
	"github.com/skyvoyage/booking-api/internal/infrastructure/flightdata"
)

// FlightController gerencia as consultas de voos, tempo e aeroportos
type FlightController struct {
	flights  *flightdata.FlightClient
	weather  *flightdata.WeatherClient
	airports *flightdata.AirportCatalog
}

// NewFlightController cria uma nova instância de FlightController
func NewFlightController(flights *flightdata.FlightClient, weather *flightdata.WeatherClient,
	airports *flightdata.AirportCatalog) *FlightController {
	return &FlightController{
		flights:  flights,
		weather:  weather,
		airports: airports,
	}
}

// Available lista os voos disponíveis entre dois aeroportos
// @Summary Voos disponíveis
// @Description Consulta o provedor externo por voos entre os aeroportos informados. Nenhum voo resulta em 404.
// @Tags flights
// @Produce json
// @Security BearerAuth
// @Param from query string true "Código IATA de origem"
// @Param to query string true "Código IATA de destino"
// @Success 200 {object} dto.FlightSearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /flights/available [get]
func (c *FlightController) Available(ctx *gin.Context) {
	from := ctx.Query("from")
	to := ctx.Query("to")
	if from == "" || to == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", "Os parâmetros from e to são obrigatórios"))
		return
	}

	flights, err := c.flights.FetchFlights(ctx, from, to)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao consultar voos", err.Error()))
		return
	}

	if len(flights) == 0 {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Nenhum voo encontrado",
			"Não há voos disponíveis entre os aeroportos informados"))
		return
	}

	ctx.JSON(http.StatusOK, dto.FlightSearchResponse{
		From:    from,
		To:      to,
		Flights: flights,
	})
}

// Weather retorna a condição do tempo em um aeroporto ou em coordenadas
// @Summary Condição do tempo
// @Description Consulta o tempo por código IATA do catálogo ou por coordenadas lat/lon
// @Tags flights
// @Produce json
// @Security BearerAuth
// @Param iata query string false "Código IATA do aeroporto"
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Success 200 {object} dto.WeatherResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /flights/weather [get]
func (c *FlightController) Weather(ctx *gin.Context) {
	var latitude, longitude float64
	airportName := ""

	if iata := ctx.Query("iata"); iata != "" {
		airport, err := c.airports.FindByIATA(iata)
		if err != nil {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Aeroporto não encontrado", err.Error()))
			return
		}
		latitude = airport.Latitude
		longitude = airport.Longitude
		airportName = airport.Name
	} else {
		var err error
		latitude, err = strconv.ParseFloat(ctx.Query("lat"), 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", "Informe iata ou lat/lon"))
			return
		}
		longitude, err = strconv.ParseFloat(ctx.Query("lon"), 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", "Informe iata ou lat/lon"))
			return
		}
	}

	weather, err := c.weather.CurrentWeather(ctx, latitude, longitude)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "Erro ao consultar o tempo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.WeatherResponse{
		Airport: airportName,
		Weather: weather,
	})
}

// Airports lista o catálogo de aeroportos
// @Summary Catálogo de aeroportos
// @Description Lista os aeroportos ativos do catálogo local, ordenados por nome
// @Tags flights
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AirportListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /flights/airports [get]
func (c *FlightController) Airports(ctx *gin.Context) {
	airports, err := c.airports.Airports()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao carregar catálogo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.AirportListResponse{
		Airports: airports,
		Total:    len(airports),
	})
}
