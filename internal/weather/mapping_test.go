package weather

import (
	"encoding/json"
	"errors"
	"testing"

	"api-consumer/internal/pipeline"
)

func londonPayload() map[string]any {
	return map[string]any{
		"weather": []any{
			map[string]any{"id": json.Number("800"), "main": "Clear", "description": "clear sky"},
		},
		"main": map[string]any{"temp": json.Number("15.5"), "humidity": json.Number("72")},
		"name": "London",
	}
}

func TestMapReport(t *testing.T) {
	report, err := MapReport("London", londonPayload())
	if err != nil {
		t.Fatalf("MapReport() error = %v", err)
	}

	if report.City() != "London" {
		t.Errorf("City() = %q, want London", report.City())
	}
	if report.Description() != "clear sky" {
		t.Errorf("Description() = %q, want %q", report.Description(), "clear sky")
	}
	if report.Temperature().Celsius != 15.5 {
		t.Errorf("Temperature().Celsius = %v, want 15.5", report.Temperature().Celsius)
	}
}

func TestMapReport_UsesFirstCondition(t *testing.T) {
	payload := londonPayload()
	payload["weather"] = []any{
		map[string]any{"description": "light rain"},
		map[string]any{"description": "mist"},
	}

	report, err := MapReport("London", payload)
	if err != nil {
		t.Fatalf("MapReport() error = %v", err)
	}
	if report.Description() != "light rain" {
		t.Errorf("Description() = %q, want %q", report.Description(), "light rain")
	}
}

func TestMapReport_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(map[string]any) any
		wantPath string
	}{
		{
			name:     "payload is a list",
			mutate:   func(p map[string]any) any { return []any{p} },
			wantPath: "",
		},
		{
			name: "empty weather list",
			mutate: func(p map[string]any) any {
				p["weather"] = []any{}
				return p
			},
			wantPath: "weather",
		},
		{
			name: "missing weather list",
			mutate: func(p map[string]any) any {
				delete(p, "weather")
				return p
			},
			wantPath: "weather",
		},
		{
			name: "missing description",
			mutate: func(p map[string]any) any {
				p["weather"] = []any{map[string]any{"main": "Clear"}}
				return p
			},
			wantPath: "weather[0].description",
		},
		{
			name: "missing main",
			mutate: func(p map[string]any) any {
				delete(p, "main")
				return p
			},
			wantPath: "main",
		},
		{
			name: "missing temp",
			mutate: func(p map[string]any) any {
				p["main"] = map[string]any{"humidity": json.Number("72")}
				return p
			},
			wantPath: "main.temp",
		},
		{
			name: "temp is a string",
			mutate: func(p map[string]any) any {
				p["main"] = map[string]any{"temp": "warm"}
				return p
			},
			wantPath: "main.temp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MapReport("London", tt.mutate(londonPayload()))

			var me *pipeline.MappingError
			if !errors.As(err, &me) {
				t.Fatalf("expected *pipeline.MappingError, got %v", err)
			}
			if me.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", me.Path, tt.wantPath)
			}
		})
	}
}

func TestReport_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewReport("Oslo", "snow", -5))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"city":"Oslo","description":"snow","temperature_celsius":-5,"temperature_fahrenheit":23}`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}
}
