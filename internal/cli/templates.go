package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/stakemap/stakemap/pkg/stakemap"
	"github.com/stakemap/stakemap/pkg/templates"
)

// templatesCommand creates the templates command listing what a new map
// can start from.
func (c *CLI) templatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List sector templates, categories, and connection types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Sector templates"))
			for _, sector := range templates.All() {
				fmt.Println("  " + sector.Icon + " " + StyleValue.Render(sector.Name) +
					StyleDim.Render("  ("+sector.ID+")"))
				printDetail("  %s", sector.Description)
				if n := len(sector.ExampleStakeholders); n > 0 {
					printDetail("  seeds %d example stakeholders", n)
				}
			}

			printNewline()
			fmt.Println(StyleTitle.Render("Categories"))
			for _, cat := range stakemap.Categories {
				info := templates.Category(cat)
				label := lipgloss.NewStyle().Foreground(lipgloss.Color(info.Color)).Render(info.Label)
				fmt.Println("  " + label + StyleDim.Render("  · "+info.Description))
			}

			printNewline()
			fmt.Println(StyleTitle.Render("Connection types"))
			for _, ct := range stakemap.ConnectionTypes {
				info := templates.ConnectionType(ct)
				fmt.Println("  " + StyleValue.Render(info.Label) +
					StyleDim.Render("  ("+string(ct)+") · "+info.Description))
			}
			return nil
		},
	}
}
