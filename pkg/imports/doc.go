// Package imports folds external JSON and CSV payloads into the store as
// new maps. Payloads are never merged in place: every import validates the
// payload shape first, then clones it with fresh identifiers so imported
// entities can never collide with existing ones.
package imports
