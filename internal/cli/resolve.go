package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/stakemap/stakemap/pkg/errors"
	"github.com/stakemap/stakemap/pkg/stakemap"
	"github.com/stakemap/stakemap/pkg/store"
)

// resolveMap finds a map by full id, exact name (case-insensitive), or
// unique id prefix, in that order. Ambiguous prefixes are an error rather
// than a guess.
func resolveMap(ctx context.Context, st *store.Store, ref string) (*stakemap.Map, error) {
	maps := st.GetAll(ctx)

	for i := range maps {
		if maps[i].ID == ref {
			return &maps[i], nil
		}
	}
	for i := range maps {
		if strings.EqualFold(maps[i].Name, ref) {
			return &maps[i], nil
		}
	}

	var matches []*stakemap.Map
	for i := range maps {
		if strings.HasPrefix(maps[i].ID, ref) {
			matches = append(matches, &maps[i])
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, errors.New(errors.ErrCodeMapNotFound, "no map matches %q", ref)
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = fmt.Sprintf("%s (%s)", m.Name, shortID(m.ID))
		}
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"%q matches %d maps: %s", ref, len(matches), strings.Join(names, ", "))
	}
}

// resolveStakeholder finds a stakeholder within a map by id, exact name
// (case-insensitive), or unique id prefix.
func resolveStakeholder(m *stakemap.Map, ref string) (*stakemap.Stakeholder, error) {
	for i := range m.Stakeholders {
		if m.Stakeholders[i].ID == ref {
			return &m.Stakeholders[i], nil
		}
	}
	for i := range m.Stakeholders {
		if strings.EqualFold(m.Stakeholders[i].Name, ref) {
			return &m.Stakeholders[i], nil
		}
	}

	var matches []*stakemap.Stakeholder
	for i := range m.Stakeholders {
		if strings.HasPrefix(m.Stakeholders[i].ID, ref) {
			matches = append(matches, &m.Stakeholders[i])
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, errors.New(errors.ErrCodeStakeholderNotFound,
			"no stakeholder in %q matches %q", m.Name, ref)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"%q matches %d stakeholders in %q", ref, len(matches), m.Name)
	}
}

// shortID abbreviates an id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
