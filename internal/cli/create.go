package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stakemap/stakemap/pkg/stakemap"
	"github.com/stakemap/stakemap/pkg/templates"
)

// createCommand creates the create command for starting a new map.
func (c *CLI) createCommand() *cobra.Command {
	var (
		template string
		private  bool
	)

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new stakeholder map",
		Long: `Create a new stakeholder map, blank or from a sector template.

Templates seed the map with example stakeholders for common scenarios.
Run 'stakemap templates' to see what is available.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			st, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			draft := templates.FromTemplate(template, name)
			if private {
				draft.IsPrivate = true
			}

			m, err := st.Create(cmd.Context(), draft)
			if err != nil {
				return err
			}

			printSuccess("Created map %s", StyleHighlight.Render(m.Name))
			printDetail("id: %s", m.ID)
			printMapStats(len(m.Stakeholders), len(m.Connections), m.IsPrivate)
			printNewline()
			printNextStep("Add a stakeholder",
				fmt.Sprintf("stakemap stakeholder add %s --name \"Jane Doe\" --category ally", shortID(m.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", stakemap.DefaultSector, "sector template to start from")
	cmd.Flags().BoolVar(&private, "private", false, "mark the map as private")

	return cmd
}
