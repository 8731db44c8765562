package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) newLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Resolve the manifest and write the lockfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			if dir == "" {
				var err error
				if dir, err = os.Getwd(); err != nil {
					return err
				}
			}

			lockfile, err := c.app.Lock(cmd.Context(), dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, env := range lockfile.Environments {
				_, _ = fmt.Fprintf(out, "%s: %d channel, %d dist packages\n",
					env.Platform, len(env.Channel), len(env.Dist))
			}
			return nil
		},
	}
	cmd.Flags().StringP("dir", "d", "", "Project directory containing the manifest (defaults to the working directory)")
	return cmd
}
