// Package templates holds the built-in sector templates and the display
// metadata for categories and connection types.
package templates
