package imports

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/stakemap/stakemap/pkg/errors"
	"github.com/stakemap/stakemap/pkg/ident"
	"github.com/stakemap/stakemap/pkg/stakemap"
	"github.com/stakemap/stakemap/pkg/store"
)

// ImportedSuffix is appended to the name of every map created by an import,
// so a re-imported export is distinguishable from its source.
const ImportedSuffix = " (imported)"

// payload mirrors the wire shape of a single exported map. Ids and
// timestamps carried by the payload are discarded during import; the
// stakeholders field is a pointer so a missing list can be told apart from
// an empty one.
type payload struct {
	Name         string                  `json:"name"`
	Sector       string                  `json:"sector"`
	IsPrivate    bool                    `json:"isPrivate"`
	Stakeholders *[]stakemap.Stakeholder `json:"stakeholders"`
	Connections  []stakemap.Connection   `json:"connections"`
}

// validate checks the payload shape and returns every violation found.
// Nothing is written to the store until this list comes back empty.
func (p payload) validate() []string {
	var violations []string
	if strings.TrimSpace(p.Name) == "" {
		violations = append(violations, "missing required field 'name'")
	}
	if p.Stakeholders == nil {
		violations = append(violations, "'stakeholders' must be a list")
	}
	return violations
}

// Map imports a single map from its JSON export form. The payload is
// validated as a whole before any mutation, so a rejected import never
// leaves a partial map behind. On success the created map carries fresh
// ids throughout and its name gains the imported suffix.
func Map(ctx context.Context, s *store.Store, data []byte) (*stakemap.Map, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse map payload")
	}
	if violations := p.validate(); len(violations) > 0 {
		return nil, errors.New(errors.ErrCodeValidation,
			"invalid map payload: %s", strings.Join(violations, "; "))
	}
	return createImported(ctx, s, p)
}

// Bundle imports every map in a bulk-export envelope, one at a time. A map
// that fails validation is skipped without aborting the rest; the return
// value is the number of maps actually created. A payload that is not an
// envelope falls back to the single-map path.
func Bundle(ctx context.Context, s *store.Store, data []byte) (int, error) {
	var env struct {
		Maps []json.RawMessage `json:"maps"`
	}
	if err := json.Unmarshal(data, &env); err != nil || env.Maps == nil {
		if _, err := Map(ctx, s, data); err != nil {
			return 0, err
		}
		return 1, nil
	}

	imported := 0
	for _, raw := range env.Maps {
		if _, err := Map(ctx, s, raw); err != nil {
			continue
		}
		imported++
	}
	return imported, nil
}

// createImported re-keys the payload and hands it to the store. Every
// stakeholder and connection gets a fresh id; connection endpoints are
// remapped through the stakeholder id table, and endpoints that never
// pointed at a payload stakeholder pass through unchanged.
func createImported(ctx context.Context, s *store.Store, p payload) (*stakemap.Map, error) {
	src := *p.Stakeholders

	idMap := make(map[string]string, len(src))
	stakeholders := make([]stakemap.Stakeholder, len(src))
	for i, sh := range src {
		fresh := ident.New()
		if sh.ID != "" {
			idMap[sh.ID] = fresh
		}
		sh.ID = fresh
		stakeholders[i] = sh
	}

	connections := make([]stakemap.Connection, len(p.Connections))
	for i, conn := range p.Connections {
		conn.ID = ident.New()
		if fresh, ok := idMap[conn.From]; ok {
			conn.From = fresh
		}
		if fresh, ok := idMap[conn.To]; ok {
			conn.To = fresh
		}
		connections[i] = conn
	}

	return s.Create(ctx, stakemap.Map{
		Name:         p.Name + ImportedSuffix,
		Sector:       p.Sector,
		IsPrivate:    p.IsPrivate,
		Stakeholders: stakeholders,
		Connections:  connections,
	})
}
