// Package remote exists only as a foreign package for adapter tests:
// references to its types must render as import expressions.
package remote

// Profile is referenced across package boundaries in the fixtures.
type Profile struct {
	URL string
}
