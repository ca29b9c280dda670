package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "API_CONSUMER"

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Weather WeatherConfig
	Posts   PostsConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int    `validate:"min=1,max=65535"`
	GinMode string `validate:"oneof=debug release test"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string `validate:"oneof=json text"`
}

// WeatherConfig holds the weather provider settings
type WeatherConfig struct {
	Endpoint string `validate:"required,url"`
	APIKey   string // only required by the weather pipeline, see RequireWeatherAPIKey
}

// PostsConfig holds the posts provider settings
type PostsConfig struct {
	Endpoint string `validate:"required,url"`
}

// ErrMissingWeatherAPIKey is returned when the weather pipeline runs without a key.
var ErrMissingWeatherAPIKey = errors.New("weather API key is not configured (set WEATHER_API_KEY)")

// Load reads configuration from .env, config file and environment variables
func Load() (*Config, error) {
	return load("")
}

// LoadFile reads configuration from an explicit config file instead of searching for one
func LoadFile(path string) (*Config, error) {
	return load(path)
}

func load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.api-consumer")
	}

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("weather.endpoint", "http://api.openweathermap.org/data/2.5/weather")
	v.SetDefault("weather.apikey", "")
	v.SetDefault("posts.endpoint", "https://jsonplaceholder.typicode.com/posts")

	// Read from environment variables, e.g. API_CONSUMER_SERVER_PORT
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("weather.apikey", envPrefix+"_WEATHER_APIKEY", "WEATHER_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind weather api key: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints declared in struct tags
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// RequireWeatherAPIKey fails when the weather pipeline has no key to send
func (c *Config) RequireWeatherAPIKey() error {
	if strings.TrimSpace(c.Weather.APIKey) == "" {
		return ErrMissingWeatherAPIKey
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger writing to stdout
func (c *Config) NewLogger() *slog.Logger {
	return c.NewLoggerTo(os.Stdout)
}

// NewLoggerTo creates a new slog.Logger based on the configuration, writing to w
func (c *Config) NewLoggerTo(w io.Writer) *slog.Logger {
	return c.NewLoggerAt(w, ParseLevel(c.Log.Level))
}

// NewLoggerAt is NewLoggerTo with the configured level replaced by level.
func (c *Config) NewLoggerAt(w io.Writer, level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to a slog.Level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
