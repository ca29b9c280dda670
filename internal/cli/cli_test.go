package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"api-consumer/internal/apiclient"
	"api-consumer/internal/config"
	"api-consumer/internal/posts"
	"api-consumer/internal/weather"
)

type stubWeatherProvider struct {
	response *apiclient.RawResponse
	err      error
}

func (p *stubWeatherProvider) CurrentWeather(ctx context.Context, city string) (*apiclient.RawResponse, error) {
	return p.response, p.err
}

type stubPostsProvider struct {
	response *apiclient.RawResponse
	err      error
}

func (p *stubPostsProvider) Posts(ctx context.Context) (*apiclient.RawResponse, error) {
	return p.response, p.err
}

func testDeps(weatherResp *apiclient.RawResponse, postsResp *apiclient.RawResponse) Deps {
	return Deps{
		LoadConfig: func(path string) (*config.Config, error) {
			return &config.Config{}, nil
		},
		NewWeatherService: func(cfg *config.Config, logger *slog.Logger) (weather.Service, error) {
			return weather.NewWeatherServiceWithProvider(&stubWeatherProvider{response: weatherResp}, logger), nil
		},
		NewPostService: func(cfg *config.Config, logger *slog.Logger) posts.Service {
			return posts.NewPostServiceWithProvider(&stubPostsProvider{response: postsResp}, logger)
		},
	}
}

func run(t *testing.T, deps Deps, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd(deps)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestWeatherCheck_Success(t *testing.T) {
	resp := &apiclient.RawResponse{
		StatusCode: 200,
		Successful: true,
		Payload: map[string]any{
			"weather": []any{map[string]any{"description": "clear sky"}},
			"main":    map[string]any{"temp": json.Number("15.5")},
		},
	}

	stdout, stderr, err := run(t, testDeps(resp, nil), "weather:check", "London")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Weather in London: clear sky\nTemperature: 15.5°C\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
}

func TestWeatherCheck_UpstreamFailure(t *testing.T) {
	resp := &apiclient.RawResponse{StatusCode: 404, Successful: false}

	stdout, stderr, err := run(t, testDeps(resp, nil), "weather:check", "London")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	// the service's warning record precedes the console line
	if !strings.HasSuffix(stderr, "\nCould not retrieve weather data for London.\n") {
		t.Errorf("stderr = %q, want failure line last", stderr)
	}
	if !strings.Contains(stderr, "level=WARN") {
		t.Errorf("stderr = %q, want warning record at the default level", stderr)
	}
}

func TestWeatherCheck_RequiresCity(t *testing.T) {
	for _, args := range [][]string{
		{"weather:check"},
		{"weather:check", "London", "Paris"},
	} {
		_, _, err := run(t, testDeps(nil, nil), args...)
		if err == nil {
			t.Errorf("args %v: expected error", args)
		}
	}
}

func TestWeatherCheck_MissingAPIKey(t *testing.T) {
	deps := DefaultDeps()
	deps.LoadConfig = func(path string) (*config.Config, error) {
		return &config.Config{}, nil
	}

	_, stderr, err := run(t, deps, "weather:check", "London")
	if !errors.Is(err, config.ErrMissingWeatherAPIKey) {
		t.Fatalf("error = %v, want ErrMissingWeatherAPIKey", err)
	}
	if !strings.Contains(stderr, "WEATHER_API_KEY") {
		t.Errorf("stderr = %q, want hint about WEATHER_API_KEY", stderr)
	}
}

func TestWeatherCheck_ConfigError(t *testing.T) {
	deps := testDeps(nil, nil)
	deps.LoadConfig = func(path string) (*config.Config, error) {
		if path != "missing.yaml" {
			t.Errorf("config path = %q, want missing.yaml", path)
		}
		return nil, errors.New("failed to read config file")
	}

	_, _, err := run(t, deps, "--config", "missing.yaml", "weather:check", "London")
	if err == nil {
		t.Fatal("expected config error")
	}
}

func TestPostsList(t *testing.T) {
	resp := &apiclient.RawResponse{
		StatusCode: 200,
		Successful: true,
		Payload: []any{
			map[string]any{"id": json.Number("1"), "title": "A", "body": "B"},
			map[string]any{"id": json.Number("2"), "title": "C", "body": "D"},
		},
	}

	stdout, _, err := run(t, testDeps(nil, resp), "posts:list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "#1 A\n#2 C\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestPostsList_DegradesToEmpty(t *testing.T) {
	resp := &apiclient.RawResponse{StatusCode: 500, Successful: false}

	stdout, _, err := run(t, testDeps(nil, resp), "posts:list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "No posts available.\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestDebugLogging(t *testing.T) {
	resp := &apiclient.RawResponse{StatusCode: 503, Successful: false}

	_, stderr, err := run(t, testDeps(nil, resp), "--debug", "posts:list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "component=post-service") {
		t.Errorf("expected debug log output on stderr, got %q", stderr)
	}
}

func TestLogging_ErrorsReportedWithoutDebug(t *testing.T) {
	deps := testDeps(nil, nil)
	deps.NewPostService = func(cfg *config.Config, logger *slog.Logger) posts.Service {
		return posts.NewPostServiceWithProvider(&stubPostsProvider{
			err: &apiclient.TransportError{Endpoint: "https://jsonplaceholder.typicode.com/posts", Err: errors.New("connection refused")},
		}, logger)
	}
	deps.LoadConfig = func(path string) (*config.Config, error) {
		return &config.Config{Log: config.LogConfig{Level: "info", Format: "json"}}, nil
	}

	_, stderr, err := run(t, deps, "posts:list")
	if !apiclient.IsTransportError(err) {
		t.Fatalf("error = %v, want transport error", err)
	}
	if !strings.Contains(stderr, `"level":"ERROR"`) || !strings.Contains(stderr, `"msg":"failed to get posts"`) {
		t.Errorf("expected JSON error record on stderr, got %q", stderr)
	}
}

func TestLogging_ConfiguredLevel(t *testing.T) {
	cfg := &config.Config{Log: config.LogConfig{Level: "error"}}
	deps := testDeps(nil, &apiclient.RawResponse{StatusCode: 503})
	deps.LoadConfig = func(path string) (*config.Config, error) {
		return cfg, nil
	}

	_, stderr, err := run(t, deps, "posts:list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stderr != "" {
		t.Errorf("warning logged above configured error level: %q", stderr)
	}

	_, stderr, err = run(t, deps, "--debug", "posts:list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "level=DEBUG") {
		t.Errorf("--debug should log debug records, got %q", stderr)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, --debug must not change the config", cfg.Log.Level)
	}
}
