package stakemap

import "time"

// BundleVersion is the format-version tag written into bulk exports.
const BundleVersion = "1.0"

// Bundle is the bulk export envelope: the full collection plus a format
// version and export timestamp.
type Bundle struct {
	Version  string    `json:"version"`
	Exported time.Time `json:"exported"`
	Maps     []Map     `json:"maps"`
}
