// Package store is the single source of truth for persisted stakeholder
// maps.
//
// # Model
//
// The whole collection lives in one durable document behind the [Backend]
// interface; every mutator does a full read-modify-write of that document.
// Four backends exist:
//
//   - [FileBackend]: a JSON document in the user's data directory (default)
//   - [MemoryBackend]: for tests
//   - [RedisBackend]: one fixed key, for shared setups
//   - [MongoBackend]: one upserted document, stored as native bson
//
// # Consistency Rules
//
//   - Fresh ids on every create; incoming ids are never trusted
//   - created/updated timestamps maintained exclusively here
//   - Deleting a stakeholder cascades to its connections in the same write
//   - Duplicate (from, to) connection pairs are rejected without mutation
//
// # Failure Semantics
//
// Reads never fail: an absent, corrupt or unreadable document is logged
// and treated as an empty collection, so a rendering caller cannot crash
// on storage trouble. Mutations do surface failures, as *errors.Error
// values whose codes distinguish not-found (NOT_FOUND_*), rejected
// duplicates (DUPLICATE_CONNECTION), validation problems (VALIDATION) and
// real backend failures (STORAGE).
package store
