package flightdata

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
)

const defaultAirportsPath = "data/airports.json"

// Airport é um aeroporto do catálogo local usado nos formulários de busca
type Airport struct {
	IATA      string  `json:"iata"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// rawAirport é o formato bruto do arquivo de catálogo
type rawAirport struct {
	IATA      string  `json:"iata"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Type      string  `json:"type"`
	Status    int     `json:"status"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// AirportCatalog carrega o catálogo local de aeroportos. O arquivo é lido
// uma única vez e o resultado filtrado fica em cache pelo tempo de vida do
// processo.
type AirportCatalog struct {
	path string

	once     sync.Once
	airports []Airport
	loadErr  error
}

// NewAirportCatalog cria um novo catálogo a partir do arquivo informado.
// Com caminho vazio usa data/airports.json.
func NewAirportCatalog(path string) *AirportCatalog {
	if path == "" {
		path = defaultAirportsPath
	}
	return &AirportCatalog{path: path}
}

// Airports devolve os aeroportos ativos do catálogo ordenados por nome.
// Entradas sem código IATA ou sem nome, de outro tipo de instalação ou
// desativadas são descartadas.
func (c *AirportCatalog) Airports() ([]Airport, error) {
	c.once.Do(c.load)
	return c.airports, c.loadErr
}

// FindByIATA busca um aeroporto do catálogo pelo código IATA
func (c *AirportCatalog) FindByIATA(code string) (*Airport, error) {
	airports, err := c.Airports()
	if err != nil {
		return nil, err
	}

	for i := range airports {
		if airports[i].IATA == code {
			return &airports[i], nil
		}
	}
	return nil, fmt.Errorf("aeroporto não encontrado no catálogo: %s", code)
}

func (c *AirportCatalog) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		c.loadErr = fmt.Errorf("erro ao ler catálogo de aeroportos: %w", err)
		return
	}

	var raw []rawAirport
	if err := json.Unmarshal(data, &raw); err != nil {
		c.loadErr = fmt.Errorf("catálogo de aeroportos ilegível: %w", err)
		return
	}

	airports := make([]Airport, 0, len(raw))
	for _, a := range raw {
		if a.Type != "airport" || a.Status != 1 || a.IATA == "" || a.Name == "" {
			continue
		}
		airports = append(airports, Airport{
			IATA:      a.IATA,
			Name:      a.Name,
			City:      a.City,
			Country:   a.Country,
			Latitude:  a.Latitude,
			Longitude: a.Longitude,
		})
	}

	sort.Slice(airports, func(i, j int) bool {
		return airports[i].Name < airports[j].Name
	})

	c.airports = airports
}
