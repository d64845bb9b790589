package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/repute/internal/app"
)

func (c *CLI) newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <resource> [address] [key]",
		Short: "Print a resource of the reputation service as JSON",
		Long:  "Print a resource of the reputation service as JSON.\n\nResources: " + strings.Join(app.ResourceNames(), ", "),
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			opts := app.FetchOptions{
				Options:  globalOptions(cmd),
				Resource: args[0],
				Force:    force,
			}
			if len(args) > 1 {
				opts.Address = args[1]
			}
			if len(args) > 2 {
				opts.Key = args[2]
			}
			return c.app.Fetch(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Bypass the response cache for widget resources")
	return cmd
}
