package domain

import "regexp"

// CatalogEntry is a single selectable tag: a human-readable name and
// the slug that ends up in the URL
type CatalogEntry struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// ValidSlug reports whether value is a well-formed slug
// (lowercase latin letters, digits and underscores only)
func ValidSlug(value string) bool {
	return slugPattern.MatchString(value)
}
