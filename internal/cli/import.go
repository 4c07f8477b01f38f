package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stakemap/stakemap/pkg/imports"
)

// importCommand creates the import command for JSON and CSV payloads.
func (c *CLI) importCommand() *cobra.Command {
	var (
		format  string
		mapName string
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import maps from a JSON or CSV file",
		Long: `Import maps from a JSON or CSV file.

JSON files may hold a single exported map or a bulk-export envelope;
both are detected automatically. CSV files hold one stakeholder per row
(columns: name, category, and optionally role, organization, influence,
notes, interaction_tips, avatar_url, is_private) and become a single new
map. Imported maps always get fresh ids, so importing the same file
twice yields two independent copies.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			st, err := c.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			kind := format
			if kind == "" {
				kind = strings.TrimPrefix(filepath.Ext(path), ".")
			}

			track := newProgress(c.Logger)
			spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Importing %s...", filepath.Base(path)))

			switch strings.ToLower(kind) {
			case "csv":
				spinner.Start()
				res, err := imports.CSV(cmd.Context(), st, data, mapName)
				if err != nil {
					spinner.StopWithError("Import failed")
					for _, rowErr := range res.Errors {
						printDetail("%s", rowErr)
					}
					return err
				}
				spinner.Stop()
				for _, rowErr := range res.Errors {
					printWarning("%s", rowErr)
				}
				printSuccess("Imported %d stakeholders into a new map", res.StakeholderCount)
				printDetail("id: %s", res.MapID)
				if n := len(res.Errors); n > 0 {
					printDetail("%d rows skipped", n)
				}
				track.done(fmt.Sprintf("CSV import of %s", filepath.Base(path)))
			case "json":
				spinner.Start()
				n, err := imports.Bundle(cmd.Context(), st, data)
				if err != nil {
					spinner.StopWithError("Import failed")
					return err
				}
				spinner.Stop()
				if n == 0 {
					printWarning("No maps imported")
					return nil
				}
				printSuccess("Imported %d maps", n)
				track.done(fmt.Sprintf("JSON import of %s", filepath.Base(path)))
			default:
				return fmt.Errorf("cannot tell the format of %s, use --format json or --format csv", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "payload format: json or csv (default: by file extension)")
	cmd.Flags().StringVarP(&mapName, "name", "n", "", "map name for CSV imports")

	return cmd
}
