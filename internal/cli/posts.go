package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func postsListCmd(deps Deps, s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "posts:list",
		Short: "List posts from the posts provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := deps.NewPostService(s.cfg, s.logger)

			list, err := svc.GetPosts(cmd.Context())
			if err != nil {
				return err
			}

			out := newConsoleSink(cmd.OutOrStdout(), cmd.ErrOrStderr())
			if len(list) == 0 {
				out.Info("No posts available.")
				return nil
			}
			for _, p := range list {
				out.Info(fmt.Sprintf("#%d %s", p.ID(), p.Title()))
			}
			return nil
		},
	}
}
