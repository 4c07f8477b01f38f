package cli

import (
	"github.com/spf13/cobra"

	"github.com/stakemap/stakemap/pkg/stakemap"
)

// stakeholderCommand groups the stakeholder subcommands.
func (c *CLI) stakeholderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stakeholder",
		Short: "Manage stakeholders within a map",
	}

	cmd.AddCommand(c.stakeholderAddCommand())
	cmd.AddCommand(c.stakeholderUpdateCommand())
	cmd.AddCommand(c.stakeholderRemoveCommand())

	return cmd
}

// stakeholderFlags holds the shared field flags for add and update.
type stakeholderFlags struct {
	name      string
	role      string
	org       string
	category  string
	influence string
	notes     string
	tips      string
	avatar    string
	private   bool
	x, y      float64
}

func (f *stakeholderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "stakeholder name")
	cmd.Flags().StringVar(&f.role, "role", "", "role or job title")
	cmd.Flags().StringVar(&f.org, "org", "", "organization")
	cmd.Flags().StringVar(&f.category, "category", "", "category (ally, advocate, decisionmaker, obstacle, dependency, opportunity)")
	cmd.Flags().StringVar(&f.influence, "influence", "", "influence level (high, medium, low)")
	cmd.Flags().StringVar(&f.notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&f.tips, "tips", "", "interaction tips")
	cmd.Flags().StringVar(&f.avatar, "avatar", "", "avatar image URL")
	cmd.Flags().BoolVar(&f.private, "private", false, "redact notes and tips on export")
	cmd.Flags().Float64Var(&f.x, "x", 0, "canvas x position (default: auto spiral)")
	cmd.Flags().Float64Var(&f.y, "y", 0, "canvas y position (default: auto spiral)")
}

// stakeholderAddCommand creates the "stakeholder add" subcommand.
func (c *CLI) stakeholderAddCommand() *cobra.Command {
	var flags stakeholderFlags

	cmd := &cobra.Command{
		Use:   "add <map>",
		Short: "Add a stakeholder to a map",
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

			category := stakemap.Category(flags.category)
			if flags.category != "" && !category.Valid() {
				printWarning("Unrecognized category %q, it will render generically", flags.category)
			}

			draft := stakemap.Stakeholder{
				Name:            flags.name,
				Role:            flags.role,
				Organization:    flags.org,
				Category:        category,
				Influence:       stakemap.ParseInfluence(flags.influence),
				Notes:           flags.notes,
				InteractionTips: flags.tips,
				Avatar:          flags.avatar,
				IsPrivate:       flags.private,
			}
			if cmd.Flags().Changed("x") || cmd.Flags().Changed("y") {
				draft.Position = stakemap.Position{X: flags.x, Y: flags.y}
			}

			sh, err := st.AddStakeholder(cmd.Context(), m.ID, draft)
			if err != nil {
				return err
			}

			printSuccess("Added %s to %s", StyleHighlight.Render(sh.Name), m.Name)
			printDetail("id: %s · position: (%.0f, %.0f)", shortID(sh.ID), sh.Position.X, sh.Position.Y)
			return nil
		},
	}

	flags.register(cmd)
	cmd.MarkFlagRequired("name")

	return cmd
}

// stakeholderUpdateCommand creates the "stakeholder update" subcommand.
// Only flags that were actually set are applied.
func (c *CLI) stakeholderUpdateCommand() *cobra.Command {
	var flags stakeholderFlags

	cmd := &cobra.Command{
		Use:   "update <map> <stakeholder>",
		Short: "Update fields of a stakeholder",
		Args:  cobra.ExactArgs(2),
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
			sh, err := resolveStakeholder(m, args[1])
			if err != nil {
				return err
			}

			var u stakemap.StakeholderUpdate
			changed := cmd.Flags().Changed
			if changed("name") {
				u.Name = &flags.name
			}
			if changed("role") {
				u.Role = &flags.role
			}
			if changed("org") {
				u.Organization = &flags.org
			}
			if changed("category") {
				cat := stakemap.Category(flags.category)
				u.Category = &cat
			}
			if changed("influence") {
				inf := stakemap.ParseInfluence(flags.influence)
				u.Influence = &inf
			}
			if changed("notes") {
				u.Notes = &flags.notes
			}
			if changed("tips") {
				u.InteractionTips = &flags.tips
			}
			if changed("avatar") {
				u.Avatar = &flags.avatar
			}
			if changed("private") {
				u.IsPrivate = &flags.private
			}
			if changed("x") || changed("y") {
				pos := sh.Position
				if changed("x") {
					pos.X = flags.x
				}
				if changed("y") {
					pos.Y = flags.y
				}
				u.Position = &pos
			}

			updated, err := st.UpdateStakeholder(cmd.Context(), m.ID, sh.ID, u)
			if err != nil {
				return err
			}
			printSuccess("Updated %s", StyleHighlight.Render(updated.Name))
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

// stakeholderRemoveCommand creates the "stakeholder remove" subcommand.
func (c *CLI) stakeholderRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <map> <stakeholder>",
		Short: "Remove a stakeholder and its connections",
		Args:  cobra.ExactArgs(2),
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
			sh, err := resolveStakeholder(m, args[1])
			if err != nil {
				return err
			}

			dangling := 0
			for _, conn := range m.Connections {
				if conn.From == sh.ID || conn.To == sh.ID {
					dangling++
				}
			}

			if err := st.DeleteStakeholder(cmd.Context(), m.ID, sh.ID); err != nil {
				return err
			}

			printSuccess("Removed %s from %s", StyleHighlight.Render(sh.Name), m.Name)
			if dangling > 0 {
				printDetail("also removed %d connections", dangling)
			}
			return nil
		},
	}
}
