package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/repute/internal/app"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <kind> <address>...",
		Short: "Render a widget for each address",
		Long: "Render a reputation, badge, profile or category widget for each address and print\n" +
			"the resulting markup. Addresses share one response cache.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			theme, _ := cmd.Flags().GetString("theme")
			badge, _ := cmd.Flags().GetString("badge")
			category, _ := cmd.Flags().GetString("category")
			class, _ := cmd.Flags().GetString("class")
			compact, _ := cmd.Flags().GetBool("compact")
			force, _ := cmd.Flags().GetBool("force")

			return c.app.Render(cmd.Context(), app.RenderOptions{
				Options:     globalOptions(cmd),
				Kind:        args[0],
				Addresses:   args[1:],
				Theme:       theme,
				BadgeKey:    badge,
				CategoryKey: category,
				ClassName:   class,
				Compact:     compact,
				Force:       force,
			})
		},
	}
	cmd.Flags().StringP("theme", "t", "", "Color scheme: light, dark or auto")
	cmd.Flags().String("badge", "", "Badge key for the badge widget (default all earned badges)")
	cmd.Flags().String("category", "", "Category key, required by the category widget")
	cmd.Flags().String("class", "", "Extra class names for each container")
	cmd.Flags().Bool("compact", false, "Use the compact reputation layout")
	cmd.Flags().BoolP("force", "f", false, "Reload every widget past the response cache")
	return cmd
}
