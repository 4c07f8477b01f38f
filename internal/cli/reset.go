package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// resetCommand creates the reset command wiping all stored data.
func (c *CLI) resetCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every map and start over",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			stats := st.Info(cmd.Context())
			if stats.MapCount == 0 {
				printInfo("Nothing to delete")
				return nil
			}

			if !force {
				fmt.Printf("Delete all %d maps (%d stakeholders)? There is no undo. [y/N] ",
					stats.MapCount, stats.StakeholderCount)
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					printInfo("Aborted")
					return nil
				}
			}

			if err := st.ClearAll(cmd.Context()); err != nil {
				return err
			}
			printSuccess("Deleted %d maps", stats.MapCount)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
