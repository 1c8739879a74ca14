// Package identity derives stable keys from human-readable labels. Keys are
// used as schema property names and as the join between the structural and
// presentation builders, so derivation must be pure: the same label always
// produces the same key, and renaming a node back to an earlier label restores
// the earlier key.
package identity

import (
	"fmt"
	"strings"
	"unicode"
)

// DeriveKey returns the key for a display label: the slugified label joined
// with an eight digit hex fold of a rolling hash. The hash only disambiguates
// accidental slug collisions between different labels; callers still treat
// keys as scoped to their sibling list rather than globally unique.
func DeriveKey(label string) string {
	slug := Slug(label)
	sum := Hash(label)
	if slug == "" {
		return fmt.Sprintf("%08x", sum)
	}
	return fmt.Sprintf("%s-%08x", slug, sum)
}

// Hash computes a 32-bit polynomial rolling hash over the label's code
// points. Not cryptographic; stable across processes.
func Hash(label string) uint32 {
	var h uint32
	for _, r := range label {
		h = h*31 + uint32(r)
	}
	return h
}

// Slug lower-cases the label and collapses whitespace runs into single
// hyphens. Characters that act as separators elsewhere in the pipeline
// ('.', '/', '#') are dropped so a key can never corrupt dotted-path
// insertion or JSON pointer scopes.
func Slug(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	pendingHyphen := false
	for _, r := range label {
		switch {
		case unicode.IsSpace(r):
			if b.Len() > 0 {
				pendingHyphen = true
			}
		case r == '.' || r == '/' || r == '#':
			// separator characters never reach the slug
		default:
			if pendingHyphen {
				b.WriteByte('-')
				pendingHyphen = false
			}
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
