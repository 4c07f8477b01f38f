package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCommand creates the list command showing every stored map.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all stakeholder maps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			maps := st.GetAll(cmd.Context())
			if len(maps) == 0 {
				printInfo("No maps yet")
				printNextStep("Create one", "stakemap create \"My first map\"")
				return nil
			}

			for _, m := range maps {
				marker := " "
				if m.IsPrivate {
					marker = iconPrivate
				}
				fmt.Println(StyleTitle.Render(m.Name) + " " + marker)
				printDetail("%s · %s · updated %s", shortID(m.ID), m.Sector,
					m.Updated.Local().Format("2006-01-02 15:04"))
				printMapStats(len(m.Stakeholders), len(m.Connections), false)
			}
			printNewline()
			printDetail("%d maps", len(maps))
			return nil
		},
	}
}
