package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/stakemap/stakemap/pkg/stakemap"
	"github.com/stakemap/stakemap/pkg/templates"
)

// showCommand creates the show command for inspecting one map.
func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <map>",
		Short: "Show a map's stakeholders and connections",
		Long: `Show a map's stakeholders and connections.

The map can be referenced by id, by a unique id prefix, or by name.`,
		Args: cobra.ExactArgs(1),
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

			printMap(m)
			return nil
		},
	}
}

// printMap renders the full map view.
func printMap(m *stakemap.Map) {
	title := m.Name
	if m.IsPrivate {
		title += " " + iconPrivate
	}
	fmt.Println(StyleTitle.Render(title))
	printNewline()

	printKeyValue("id", m.ID)
	printKeyValue("sector", m.Sector)
	printKeyValue("created", m.Created.Local().Format("2006-01-02 15:04"))
	printKeyValue("updated", m.Updated.Local().Format("2006-01-02 15:04"))
	printNewline()

	if len(m.Stakeholders) == 0 {
		printInfo("No stakeholders yet")
	}
	for _, sh := range m.Stakeholders {
		info := templates.Category(sh.Category)
		badge := lipgloss.NewStyle().Foreground(lipgloss.Color(info.Color)).Render(info.Label)

		name := sh.Name
		if sh.IsPrivate {
			name += " " + iconPrivate
		}
		fmt.Println(StyleValue.Render(name) + "  " + badge + StyleDim.Render("  influence: "+string(sh.Influence)))
		if sh.Role != "" || sh.Organization != "" {
			printDetail("%s", stakeholderByline(sh))
		}
		if sh.Notes != "" {
			printDetail("%s", sh.Notes)
		}
		printDetail("id: %s · position: (%.0f, %.0f)", shortID(sh.ID), sh.Position.X, sh.Position.Y)
	}

	resolved := m.ResolvedConnections()
	if len(resolved) > 0 {
		printNewline()
		fmt.Println(StyleHighlight.Render("Connections"))
		for _, conn := range resolved {
			from := m.Stakeholder(conn.From)
			to := m.Stakeholder(conn.To)
			label := templates.ConnectionType(conn.Type).Label
			fmt.Printf("  %s %s %s %s\n",
				StyleValue.Render(from.Name),
				StyleDim.Render(iconArrow),
				StyleDim.Render(label),
				StyleValue.Render(to.Name))
		}
	}

	printNewline()
	printMapStats(len(m.Stakeholders), len(m.Connections), m.IsPrivate)
}

func stakeholderByline(sh stakemap.Stakeholder) string {
	switch {
	case sh.Role != "" && sh.Organization != "":
		return sh.Role + " at " + sh.Organization
	case sh.Role != "":
		return sh.Role
	default:
		return sh.Organization
	}
}
