package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"api-consumer/internal/config"
	"api-consumer/internal/posts"
	"api-consumer/internal/weather"
)

// Deps are the collaborators the commands are built from.
type Deps struct {
	LoadConfig        func(path string) (*config.Config, error)
	NewWeatherService func(cfg *config.Config, logger *slog.Logger) (weather.Service, error)
	NewPostService    func(cfg *config.Config, logger *slog.Logger) posts.Service
}

func DefaultDeps() Deps {
	return Deps{
		LoadConfig: func(path string) (*config.Config, error) {
			if path == "" {
				return config.Load()
			}
			return config.LoadFile(path)
		},
		NewWeatherService: weather.NewWeatherService,
		NewPostService:    posts.NewPostService,
	}
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd(DefaultDeps())
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// session is the per-invocation state shared by subcommands.
type session struct {
	configFile string
	debug      bool

	cfg    *config.Config
	logger *slog.Logger
}

func NewRootCmd(deps Deps) *cobra.Command {
	s := &session{}

	cmd := &cobra.Command{
		Use:          "consumer",
		Short:        "Fetch weather and posts from third-party APIs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := deps.LoadConfig(s.configFile)
			if err != nil {
				return err
			}
			s.cfg = cfg
			s.logger = newLogger(cfg, s.debug, cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&s.configFile, "config", "", "config file (default: ./config.yaml if present)")
	cmd.PersistentFlags().BoolVar(&s.debug, "debug", false, "log at debug level regardless of log.level")

	cmd.AddCommand(weatherCheckCmd(deps, s))
	cmd.AddCommand(postsListCmd(deps, s))
	return cmd
}

// newLogger writes to w with the configured format; --debug lowers the level.
func newLogger(cfg *config.Config, debug bool, w io.Writer) *slog.Logger {
	if debug {
		return cfg.NewLoggerAt(w, slog.LevelDebug)
	}
	return cfg.NewLoggerTo(w)
}
