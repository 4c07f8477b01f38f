package export

import (
	"regexp"
	"strings"
	"time"
)

var nonFilename = regexp.MustCompile(`[^a-z0-9]+`)

// SanitizeFilename turns a map name into a safe lowercase file stem,
// collapsing every run of non-alphanumeric characters to one dash.
func SanitizeFilename(name string) string {
	stem := nonFilename.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(stem, "-")
}

// DateStamp formats a timestamp for inclusion in a download filename.
func DateStamp(t time.Time) string {
	return t.Format("2006-01-02")
}
