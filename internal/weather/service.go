package weather

import (
	"context"
	"fmt"
	"log/slog"

	"api-consumer/internal/apiclient"
	"api-consumer/internal/config"
	"api-consumer/internal/pipeline"
	"api-consumer/internal/providers/openweathermap"
)

// WeatherProvider fetches raw current conditions for a city.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city string) (*apiclient.RawResponse, error)
}

type Service interface {
	// Current runs the weather pipeline and returns the report.
	Current(ctx context.Context, city string) (*Report, error)
	// Check runs the weather pipeline and writes the outcome to out. An
	// unusable upstream response becomes a single error line, not an error.
	Check(ctx context.Context, city string, out Sink) error
}

type weatherService struct {
	provider WeatherProvider
	logger   *slog.Logger
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	if err := cfg.RequireWeatherAPIKey(); err != nil {
		return nil, err
	}
	client, err := openweathermap.NewClient(apiclient.NewClient(), cfg.Weather.Endpoint, cfg.Weather.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather client: %w", err)
	}
	return NewWeatherServiceWithProvider(client, logger), nil
}

// NewWeatherServiceWithProvider creates a weather service with a custom provider.
// This is useful for testing with mock providers.
func NewWeatherServiceWithProvider(provider WeatherProvider, logger *slog.Logger) Service {
	return &weatherService{
		provider: provider,
		logger:   logger.With("component", "weather-service"),
	}
}

func (s *weatherService) Current(ctx context.Context, city string) (*Report, error) {
	s.logger.Debug("fetching current weather", "city", city)

	fetch := func(ctx context.Context) (*apiclient.RawResponse, error) {
		return s.provider.CurrentWeather(ctx, city)
	}
	mapFn := func(payload any) (Report, error) {
		return MapReport(city, payload)
	}

	res, err := pipeline.Run(ctx, fetch, mapFn)
	if err != nil {
		if pipeline.IsUpstreamFailure(err) {
			s.logger.Warn("weather provider returned unusable response",
				"city", city,
				"status_code", res.StatusCode,
			)
		} else {
			s.logger.Error("failed to get current weather",
				"city", city,
				"error", err,
			)
		}
		return nil, fmt.Errorf("failed to get weather for %s: %w", city, err)
	}

	s.logger.Debug("successfully mapped weather report",
		"city", city,
		"description", res.Value.Description(),
		"temperature_c", res.Value.Temperature().Celsius,
	)

	return &res.Value, nil
}

func (s *weatherService) Check(ctx context.Context, city string, out Sink) error {
	report, err := s.Current(ctx, city)
	if err != nil {
		if pipeline.IsUpstreamFailure(err) {
			out.Error(FailureLine(city))
			return nil
		}
		return err
	}

	for _, line := range SuccessLines(*report) {
		out.Info(line)
	}
	return nil
}
