package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/repute/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the widgets of the settings file rendered while it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Options: globalOptions(cmd),
				Force:   force,
			})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Reload every widget past the response cache on each change")
	return cmd
}
