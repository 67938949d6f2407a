package dto

import (
	"github.com/skyvoyage/booking-api/internal/infrastructure/flightdata"
)

// FlightSearchResponse representa os voos disponíveis entre dois aeroportos
type FlightSearchResponse struct {
	From    string              `json:"from"`
	To      string              `json:"to"`
	Flights []flightdata.Flight `json:"flights"`
}

// WeatherResponse representa a condição do tempo no aeroporto consultado
type WeatherResponse struct {
	Airport string              `json:"airport,omitempty"`
	Weather *flightdata.Weather `json:"weather"`
}

// AirportListResponse representa o catálogo de aeroportos
type AirportListResponse struct {
	Airports []flightdata.Airport `json:"airports"`
	Total    int                  `json:"total"`
}
