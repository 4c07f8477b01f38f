package stakemap

// Partial-update types. Each lists only the legally updatable fields of its
// entity; nil pointer fields are left untouched by Apply. Structural fields
// (id, created timestamp, child collections' identifiers) are deliberately
// absent so a caller cannot overwrite them.

// MapUpdate is a partial update for a map's own attributes.
type MapUpdate struct {
	Name      *string
	Sector    *string
	IsPrivate *bool
}

// Apply merges the set fields of u into m.
func (u MapUpdate) Apply(m *Map) {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.Sector != nil {
		m.Sector = *u.Sector
	}
	if u.IsPrivate != nil {
		m.IsPrivate = *u.IsPrivate
	}
}

// StakeholderUpdate is a partial update for a stakeholder.
type StakeholderUpdate struct {
	Name            *string
	Role            *string
	Organization    *string
	Category        *Category
	Influence       *Influence
	Notes           *string
	InteractionTips *string
	Avatar          *string
	IsPrivate       *bool
	Position        *Position
}

// Apply merges the set fields of u into s.
func (u StakeholderUpdate) Apply(s *Stakeholder) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Role != nil {
		s.Role = *u.Role
	}
	if u.Organization != nil {
		s.Organization = *u.Organization
	}
	if u.Category != nil {
		s.Category = *u.Category
	}
	if u.Influence != nil {
		s.Influence = *u.Influence
	}
	if u.Notes != nil {
		s.Notes = *u.Notes
	}
	if u.InteractionTips != nil {
		s.InteractionTips = *u.InteractionTips
	}
	if u.Avatar != nil {
		s.Avatar = *u.Avatar
	}
	if u.IsPrivate != nil {
		s.IsPrivate = *u.IsPrivate
	}
	if u.Position != nil {
		s.Position = *u.Position
	}
}

// ConnectionUpdate is a partial update for a connection. Endpoints are not
// updatable; delete and recreate to rewire an edge.
type ConnectionUpdate struct {
	Type  *ConnectionType
	Notes *string
}

// Apply merges the set fields of u into c.
func (u ConnectionUpdate) Apply(c *Connection) {
	if u.Type != nil {
		c.Type = *u.Type
	}
	if u.Notes != nil {
		c.Notes = *u.Notes
	}
}

// Ptr returns a pointer to v. Convenience for building partial updates.
func Ptr[T any](v T) *T { return &v }
