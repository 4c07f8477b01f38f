package cli

import (
	"github.com/spf13/cobra"

	"github.com/stakemap/stakemap/pkg/stakemap"
	"github.com/stakemap/stakemap/pkg/templates"
)

// connectionCommand groups the connection subcommands.
func (c *CLI) connectionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connection",
		Short: "Manage connections between stakeholders",
	}

	cmd.AddCommand(c.connectionAddCommand())
	cmd.AddCommand(c.connectionRemoveCommand())

	return cmd
}

// connectionAddCommand creates the "connection add" subcommand.
func (c *CLI) connectionAddCommand() *cobra.Command {
	var (
		connType string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "add <map> <from> <to>",
		Short: "Connect two stakeholders",
		Long: `Connect two stakeholders with a directed edge.

Both endpoints can be referenced by id, id prefix, or name. The same
ordered pair can only be connected once; add the reverse direction
separately if the relationship runs both ways.`,
		Args: cobra.ExactArgs(3),
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
			from, err := resolveStakeholder(m, args[1])
			if err != nil {
				return err
			}
			to, err := resolveStakeholder(m, args[2])
			if err != nil {
				return err
			}

			conn, err := st.AddConnection(cmd.Context(), m.ID, stakemap.Connection{
				From:  from.ID,
				To:    to.ID,
				Type:  stakemap.ConnectionType(connType),
				Notes: notes,
			})
			if err != nil {
				return err
			}

			label := templates.ConnectionType(conn.Type).Label
			printSuccess("%s %s %s (%s)", from.Name, iconArrow, to.Name, label)
			printDetail("id: %s", shortID(conn.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&connType, "type", "t", "", "connection type (works-with, reports-to, influences, blocks, supports, depends-on)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")

	return cmd
}

// connectionRemoveCommand creates the "connection remove" subcommand.
func (c *CLI) connectionRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <map> <from> <to>",
		Short: "Remove the connection between two stakeholders",
		Args:  cobra.ExactArgs(3),
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
			from, err := resolveStakeholder(m, args[1])
			if err != nil {
				return err
			}
			to, err := resolveStakeholder(m, args[2])
			if err != nil {
				return err
			}

			for _, conn := range m.Connections {
				if conn.From == from.ID && conn.To == to.ID {
					if err := st.DeleteConnection(cmd.Context(), m.ID, conn.ID); err != nil {
						return err
					}
					printSuccess("Removed %s %s %s", from.Name, iconArrow, to.Name)
					return nil
				}
			}

			printWarning("No connection from %s to %s", from.Name, to.Name)
			return nil
		},
	}
}
