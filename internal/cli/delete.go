package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// deleteCommand creates the delete command. Deletion is terminal, so it
// asks for confirmation unless --force is given.
func (c *CLI) deleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <map>",
		Short: "Delete a stakeholder map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			m, err := resolveMap(cmd.Context(), st, args[0])
			if err != nil {
				return err
			}

			if !force {
				fmt.Printf("Delete map %s with %d stakeholders? There is no undo. [y/N] ",
					StyleHighlight.Render(m.Name), len(m.Stakeholders))
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					printInfo("Aborted")
					return nil
				}
			}

			removed, err := st.Delete(cmd.Context(), m.ID)
			if err != nil {
				return err
			}
			if !removed {
				printWarning("Map %s was already gone", shortID(m.ID))
				return nil
			}
			printSuccess("Deleted map %s", StyleHighlight.Render(m.Name))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
