package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand creates the browse command, an interactive map picker.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse maps interactively",
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

			model := NewMapListModel(maps)
			p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			result, err := p.Run()
			if err != nil {
				return fmt.Errorf("browse: %w", err)
			}

			final, ok := result.(MapListModel)
			if !ok || final.Selected == nil {
				return nil
			}

			printNewline()
			printMap(final.Selected.Map)
			return nil
		},
	}
}
