package weather

import "fmt"

// Sink receives the user-facing lines of a weather check.
type Sink interface {
	Info(line string)
	Error(line string)
}

// SuccessLines renders the two lines printed for a report.
func SuccessLines(r Report) []string {
	return []string{
		fmt.Sprintf("Weather in %s: %s", r.City(), r.Description()),
		fmt.Sprintf("Temperature: %s°C", r.Temperature().FormatCelsius()),
	}
}

// FailureLine renders the single line printed when the provider fails.
func FailureLine(city string) string {
	return fmt.Sprintf("Could not retrieve weather data for %s.", city)
}
