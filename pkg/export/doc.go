// Package export renders maps into shareable document formats. JSON
// exports (the machine-readable round-trip format) live on the store; this
// package covers the human-readable field guide and the filename helpers
// used when writing exports to disk.
package export
