package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// infoCommand creates the info command reporting storage usage.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show storage usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.ConfigPath)
			if err != nil {
				return err
			}

			st, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			stats := st.Info(cmd.Context())
			backend := cfg.Backend
			if backend == "" {
				backend = "file"
			}

			printKeyValue("backend", backend)
			printKeyValue("maps", fmt.Sprintf("%d", stats.MapCount))
			printKeyValue("stakeholders", fmt.Sprintf("%d", stats.StakeholderCount))
			printKeyValue("connections", fmt.Sprintf("%d", stats.ConnectionCount))
			printKeyValue("bytes used", formatBytes(stats.BytesUsed))
			return nil
		},
	}
}

// formatBytes renders a byte count with a human unit.
func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
