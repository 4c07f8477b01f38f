// Package stakemap defines the stakeholder-mapping data model.
//
// # Core Types
//
//   - [Map]: one mapping workspace, owning its stakeholders and connections
//   - [Stakeholder]: a person/entity node with a canvas-space position
//   - [Connection]: a directed, typed edge between two stakeholders
//
// The JSON struct tags define the persisted on-disk format and the
// single-map export format; the bson tags serve the Mongo storage backend.
// Both describe the same shape, so a document round-trips between backends
// unchanged.
//
// # Consistency Rules
//
// The model itself stores no cross-entity indexes; referential integrity is
// maintained operationally by the store: deleting a stakeholder cascades to
// every connection referencing it, and duplicate (from, to) pairs are
// rejected at creation. [Map.ResolvedConnections] is the filter applied
// wherever connections are traversed for display, since imported payloads
// can transiently carry dangling endpoints.
//
// # Partial Updates
//
// Mutation goes through explicit update types ([MapUpdate],
// [StakeholderUpdate], [ConnectionUpdate]) whose nil fields mean "leave
// unchanged". This replaces ad-hoc field merging and makes structural
// fields (id, created) impossible to overwrite.
package stakemap
