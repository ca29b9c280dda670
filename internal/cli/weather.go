package cli

import (
	"github.com/spf13/cobra"
)

func weatherCheckCmd(deps Deps, s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "weather:check <city>",
		Short: "Check the weather for a given city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := deps.NewWeatherService(s.cfg, s.logger)
			if err != nil {
				return err
			}
			return svc.Check(cmd.Context(), args[0], newConsoleSink(cmd.OutOrStdout(), cmd.ErrOrStderr()))
		},
	}
}
