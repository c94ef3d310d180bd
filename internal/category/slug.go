package category

import (
	"github.com/pankajredekar/taxongorm/internal/slug"
)

// resolveSlug returns explicit when set, otherwise the slug of name.
// Explicit slugs are stored verbatim and so must already be canonical.
func resolveSlug(explicit, name string) (string, error) {
	if explicit == "" {
		return deriveSlug(name)
	}
	if !slug.Valid(explicit) {
		return "", &ValidationError{Field: "slug", Message: "must be lowercase letters and digits joined by single hyphens"}
	}
	return explicit, nil
}

// deriveSlug slugs name. A name with no letter or digit to keep has no
// slug; an empty name is left for the name check to report.
func deriveSlug(name string) (string, error) {
	s := slug.Make(name)
	if s == "" && name != "" {
		return "", &ValidationError{Field: "slug", Message: "cannot be derived from name"}
	}
	return s, nil
}
