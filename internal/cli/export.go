package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stakemap/stakemap/pkg/export"
)

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		format string
		output string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "export [map]",
		Short: "Export maps to JSON or Markdown",
		Long: `Export maps to JSON or Markdown.

Formats:
  json      full machine-readable export, reimportable
  redacted  like json, but private notes and tips are stripped
  markdown  human-readable field guide grouped by category

With --all, every map is written as one JSON bundle (the format the
import command recognizes as an envelope).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) == 1) {
				return fmt.Errorf("name exactly one map, or pass --all")
			}

			st, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			now := time.Now()

			if all {
				data, err := st.ExportAll(cmd.Context())
				if err != nil {
					return err
				}
				name := output
				if name == "" {
					name = fmt.Sprintf("stakeholder-maps-%s.json", export.DateStamp(now))
				}
				return writeExport(name, data)
			}

			m, err := resolveMap(cmd.Context(), st, args[0])
			if err != nil {
				return err
			}

			var (
				data []byte
				ext  string
			)
			switch format {
			case "", "json":
				data, err = st.ExportMap(cmd.Context(), m.ID)
				ext = "json"
			case "redacted":
				data, err = st.ExportMapRedacted(cmd.Context(), m.ID)
				ext = "json"
			case "markdown", "md":
				data, err = export.Markdown(m, now)
				ext = "md"
			default:
				return fmt.Errorf("unknown format %q (expected json, redacted, or markdown)", format)
			}
			if err != nil {
				return err
			}

			name := output
			if name == "" {
				name = export.SanitizeFilename(m.Name) + "." + ext
			}
			return writeExport(name, data)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "export format: json, redacted, or markdown")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, or - for stdout")
	cmd.Flags().BoolVar(&all, "all", false, "export every map as one bundle")

	return cmd
}

// writeExport writes data to path, or stdout when path is "-".
func writeExport(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printSuccess("Exported")
	printFile(path)
	return nil
}
