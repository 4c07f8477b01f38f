package stakemap

import "time"

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Category classifies a stakeholder's relationship stance.
type Category string

// Stakeholder categories. Unrecognized values are preserved on the entity
// and fall back to generic display metadata; see templates.CategoryInfo.
const (
	CategoryAlly          Category = "ally"
	CategoryAdvocate      Category = "advocate"
	CategoryDecisionmaker Category = "decisionmaker"
	CategoryObstacle      Category = "obstacle"
	CategoryDependency    Category = "dependency"
	CategoryOpportunity   Category = "opportunity"
)

// Categories lists every recognized category.
var Categories = []Category{
	CategoryAlly,
	CategoryAdvocate,
	CategoryDecisionmaker,
	CategoryObstacle,
	CategoryDependency,
	CategoryOpportunity,
}

// Valid reports whether c is a recognized category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Influence indicates a stakeholder's impact.
type Influence string

// Influence levels.
const (
	InfluenceHigh   Influence = "high"
	InfluenceMedium Influence = "medium"
	InfluenceLow    Influence = "low"
)

// Valid reports whether i is a recognized influence level.
func (i Influence) Valid() bool {
	return i == InfluenceHigh || i == InfluenceMedium || i == InfluenceLow
}

// ParseInfluence normalizes s to an influence level, defaulting to medium
// for empty or unrecognized input.
func ParseInfluence(s string) Influence {
	i := Influence(s)
	if !i.Valid() {
		return InfluenceMedium
	}
	return i
}

// ConnectionType describes the relationship an edge represents.
type ConnectionType string

// Connection types.
const (
	ConnWorksWith  ConnectionType = "works-with"
	ConnReportsTo  ConnectionType = "reports-to"
	ConnInfluences ConnectionType = "influences"
	ConnBlocks     ConnectionType = "blocks"
	ConnSupports   ConnectionType = "supports"
	ConnDependsOn  ConnectionType = "depends-on"
)

// ConnectionTypes lists every recognized connection type.
var ConnectionTypes = []ConnectionType{
	ConnWorksWith,
	ConnReportsTo,
	ConnInfluences,
	ConnBlocks,
	ConnSupports,
	ConnDependsOn,
}

// Valid reports whether t is a recognized connection type.
func (t ConnectionType) Valid() bool {
	for _, known := range ConnectionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Defaults applied when a field is left unset at creation time.
const (
	DefaultMapName = "Untitled map"
	DefaultSector  = "custom"
)

// =============================================================================
// Map - One Stakeholder Workspace
// =============================================================================

// Map is a named workspace holding stakeholders and the connections between
// them. A map exclusively owns its stakeholders and connections; there are
// no cross-map references.
//
// The id is immutable and unique across the whole collection. Every mutation
// through the store refreshes Updated.
type Map struct {
	ID           string        `json:"id" bson:"id"`
	Name         string        `json:"name" bson:"name"`
	Sector       string        `json:"sector" bson:"sector"`
	IsPrivate    bool          `json:"isPrivate" bson:"isPrivate"`
	Created      time.Time     `json:"created" bson:"created"`
	Updated      time.Time     `json:"updated" bson:"updated"`
	Stakeholders []Stakeholder `json:"stakeholders" bson:"stakeholders"`
	Connections  []Connection  `json:"connections" bson:"connections"`
}

// Stakeholder returns the stakeholder with the given id, or nil.
func (m *Map) Stakeholder(id string) *Stakeholder {
	for i := range m.Stakeholders {
		if m.Stakeholders[i].ID == id {
			return &m.Stakeholders[i]
		}
	}
	return nil
}

// Connection returns the connection with the given id, or nil.
func (m *Map) Connection(id string) *Connection {
	for i := range m.Connections {
		if m.Connections[i].ID == id {
			return &m.Connections[i]
		}
	}
	return nil
}

// HasConnection reports whether a connection with the same ordered
// (from, to) pair already exists.
func (m *Map) HasConnection(from, to string) bool {
	for _, c := range m.Connections {
		if c.From == from && c.To == to {
			return true
		}
	}
	return false
}

// ResolvedConnections returns the connections whose endpoints both resolve
// to stakeholders currently in the map. Dangling references can exist
// transiently (an import payload naming unknown endpoints); traversals for
// rendering go through this filter.
func (m *Map) ResolvedConnections() []Connection {
	out := make([]Connection, 0, len(m.Connections))
	for _, c := range m.Connections {
		if m.Stakeholder(c.From) != nil && m.Stakeholder(c.To) != nil {
			out = append(out, c)
		}
	}
	return out
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	out := *m
	out.Stakeholders = append([]Stakeholder(nil), m.Stakeholders...)
	out.Connections = append([]Connection(nil), m.Connections...)
	return &out
}

// Redacted returns a copy with notes and interaction tips blanked for every
// stakeholder flagged private. The per-stakeholder privacy flag is
// independent of the map's own privacy flag so shared exports of otherwise
// public maps still redact individual entries.
func (m *Map) Redacted() *Map {
	out := m.Clone()
	for i := range out.Stakeholders {
		if out.Stakeholders[i].IsPrivate {
			out.Stakeholders[i].Notes = ""
			out.Stakeholders[i].InteractionTips = ""
		}
	}
	return out
}

// =============================================================================
// Stakeholder - A Person or Entity Node
// =============================================================================

// Position is a point in the unbounded canvas coordinate space, independent
// of on-screen pixels.
type Position struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Stakeholder is a person or organization within a map. The id is unique
// within its map. Name is required; every other field has a default.
type Stakeholder struct {
	ID              string    `json:"id" bson:"id"`
	Name            string    `json:"name" bson:"name"`
	Role            string    `json:"role" bson:"role"`
	Organization    string    `json:"organization" bson:"organization"`
	Category        Category  `json:"category" bson:"category"`
	Influence       Influence `json:"influence" bson:"influence"`
	Notes           string    `json:"notes" bson:"notes"`
	InteractionTips string    `json:"interactionTips" bson:"interactionTips"`
	Avatar          string    `json:"avatar" bson:"avatar"`
	IsPrivate       bool      `json:"isPrivate" bson:"isPrivate"`
	Position        Position  `json:"position" bson:"position"`
}

// =============================================================================
// Connection - A Directed, Typed Edge
// =============================================================================

// Connection is a directed relationship between two stakeholders in the
// same map. At most one connection may exist per ordered (from, to) pair.
type Connection struct {
	ID    string         `json:"id" bson:"id"`
	From  string         `json:"from" bson:"from"`
	To    string         `json:"to" bson:"to"`
	Type  ConnectionType `json:"type" bson:"type"`
	Notes string         `json:"notes" bson:"notes"`
}

// =============================================================================
// Stats
// =============================================================================

// Stats summarizes the persisted collection.
type Stats struct {
	MapCount         int `json:"mapCount"`
	StakeholderCount int `json:"stakeholderCount"`
	ConnectionCount  int `json:"connectionCount"`
	BytesUsed        int `json:"bytesUsed"`
}
