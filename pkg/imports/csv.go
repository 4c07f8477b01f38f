package imports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/stakemap/stakemap/pkg/errors"
	"github.com/stakemap/stakemap/pkg/layout"
	"github.com/stakemap/stakemap/pkg/stakemap"
	"github.com/stakemap/stakemap/pkg/store"
)

// DefaultCSVMapName names the map created by a CSV import when the caller
// does not supply one. The imported suffix is still appended on top.
const DefaultCSVMapName = "Imported Map"

// CSVResult reports the outcome of a CSV import. Errors lists every
// skipped row with its 1-based row number (the header is row 1), and is
// populated even when the import as a whole succeeds.
type CSVResult struct {
	Success          bool
	MapID            string
	StakeholderCount int
	Errors           []string
}

// truthy values accepted for the privacy column.
var csvTruthy = map[string]bool{"true": true, "yes": true, "1": true, "y": true}

// CSV imports stakeholder rows from CSV data into a new map. Each row needs
// a non-empty name and a recognized category; rows failing either are
// skipped and recorded, never fatal. Accepted rows are laid out on a
// deterministic spiral and handed to the single-map import path, so the
// resulting map is re-keyed and suffixed like any other import.
func CSV(ctx context.Context, s *store.Store, data []byte, mapName string) (*CSVResult, error) {
	if mapName == "" {
		mapName = DefaultCSVMapName
	}

	rows, header, err := parseRows(data)
	if err != nil {
		return &CSVResult{}, err
	}
	if len(rows) == 0 {
		return &CSVResult{}, errors.New(errors.ErrCodeInvalidFormat, "no data found in CSV")
	}

	var (
		stakeholders []stakemap.Stakeholder
		rowErrors    []string
	)
	for i, row := range rows {
		rowNum := i + 2 // data rows start below the header

		name := strings.TrimSpace(pick(row, header, "name"))
		if name == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: missing required field 'name'", rowNum))
			continue
		}

		category := strings.ToLower(strings.TrimSpace(pick(row, header, "category")))
		if !stakemap.Category(category).Valid() {
			rowErrors = append(rowErrors, fmt.Sprintf(
				"row %d: invalid category %q, must be one of: %s",
				rowNum, category, joinCategories()))
			continue
		}

		private := csvTruthy[strings.ToLower(strings.TrimSpace(
			pick(row, header, "is_private", "isprivate")))]

		stakeholders = append(stakeholders, stakemap.Stakeholder{
			Name:            name,
			Role:            strings.TrimSpace(pick(row, header, "role")),
			Organization:    strings.TrimSpace(pick(row, header, "organization")),
			Category:        stakemap.Category(category),
			Influence:       stakemap.ParseInfluence(pick(row, header, "influence")),
			Notes:           strings.TrimSpace(pick(row, header, "notes")),
			InteractionTips: strings.TrimSpace(pick(row, header, "interaction_tips", "interactiontips")),
			Avatar:          strings.TrimSpace(pick(row, header, "avatar_url", "avatar")),
			IsPrivate:       private,
		})
	}

	if len(stakeholders) == 0 {
		return &CSVResult{Errors: rowErrors},
			errors.New(errors.ErrCodeValidation, "no valid stakeholders found")
	}

	positions := layout.BatchPositions(len(stakeholders))
	for i := range stakeholders {
		stakeholders[i].Position = positions[i]
	}

	m, err := createImported(ctx, s, payload{
		Name:         mapName,
		Sector:       stakemap.DefaultSector,
		Stakeholders: &stakeholders,
	})
	if err != nil {
		return &CSVResult{Errors: rowErrors}, err
	}

	return &CSVResult{
		Success:          true,
		MapID:            m.ID,
		StakeholderCount: len(stakeholders),
		Errors:           rowErrors,
	}, nil
}

// parseRows reads the CSV into raw records plus a header index. Header
// names are normalized to lowercase with whitespace runs collapsed to
// underscores, so "Interaction Tips" addresses the interaction_tips column.
func parseRows(data []byte) ([][]string, map[string]int, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse CSV")
	}
	if len(records) < 2 {
		return nil, nil, nil
	}

	header := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		key := strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(h))), "_")
		header[key] = i
	}

	var rows [][]string
	for _, rec := range records[1:] {
		if allEmpty(rec) {
			continue
		}
		rows = append(rows, rec)
	}
	return rows, header, nil
}

func allEmpty(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// pick returns the first named column present in the row, tolerating the
// alternate spellings seen in exported spreadsheets.
func pick(row []string, header map[string]int, names ...string) string {
	for _, name := range names {
		if i, ok := header[name]; ok && i < len(row) {
			return row[i]
		}
	}
	return ""
}

func joinCategories() string {
	names := make([]string, len(stakemap.Categories))
	for i, c := range stakemap.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
