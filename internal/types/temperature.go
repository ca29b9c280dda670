package types

import "strconv"

type Temperature struct {
	Celsius    float64
	Fahrenheit float64
}

func NewTemperatureFromCelsius(celsius float64) Temperature {
	var fahrenheit = celsius*9/5 + 32
	return Temperature{
		Celsius:    celsius,
		Fahrenheit: fahrenheit,
	}
}

// FormatCelsius renders the Celsius value with the fewest digits that
// represent it exactly, e.g. "15.5" or "-3".
func (t Temperature) FormatCelsius() string {
	return strconv.FormatFloat(t.Celsius, 'f', -1, 64)
}
