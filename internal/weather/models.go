package weather

import (
	"encoding/json"

	"api-consumer/internal/types"
)

// Report is an immutable current-weather record for one city.
type Report struct {
	city        string
	description string
	temperature types.Temperature
}

func NewReport(city, description string, celsius float64) Report {
	return Report{
		city:        city,
		description: description,
		temperature: types.NewTemperatureFromCelsius(celsius),
	}
}

func (r Report) City() string                   { return r.city }
func (r Report) Description() string            { return r.description }
func (r Report) Temperature() types.Temperature { return r.temperature }

// ReportJSON is the wire form of a Report.
type ReportJSON struct {
	City                  string  `json:"city" example:"London"`
	Description           string  `json:"description" example:"clear sky"`
	TemperatureCelsius    float64 `json:"temperature_celsius" example:"15.5"`
	TemperatureFahrenheit float64 `json:"temperature_fahrenheit" example:"59.9"`
}

func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(ReportJSON{
		City:                  r.city,
		Description:           r.description,
		TemperatureCelsius:    r.temperature.Celsius,
		TemperatureFahrenheit: r.temperature.Fahrenheit,
	})
}
