// Package ident generates collision-resistant identifiers for maps,
// stakeholders and connections.
//
// Identifiers are canonical version-4 UUID strings. They carry no ordering
// or security guarantees; the only property callers may rely on is that two
// generated values are extremely unlikely to collide.
package ident

import (
	"regexp"

	"github.com/google/uuid"
)

// idShape matches the canonical v4 UUID layout: fixed hyphen positions,
// version nibble 4, variant nibble in {8, 9, a, b}.
var idShape = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// New returns a fresh identifier.
func New() string {
	return uuid.NewString()
}

// IsValid reports whether s has the canonical identifier shape.
// Imported payloads may carry arbitrary ids; IsValid is for diagnostics,
// not enforcement, since all imported ids are regenerated anyway.
func IsValid(s string) bool {
	return idShape.MatchString(s)
}
