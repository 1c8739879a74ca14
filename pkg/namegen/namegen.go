// Package namegen produces default display names for newly created forms and
// elements: a capitalized adjective+color pair followed by a type label, e.g.
// "Brisk Crimson Form". Labels stay human friendly while remaining unlikely to
// collide inside one sibling scope.
package namegen

import (
	"math/rand"
	"strings"
	"time"
)

var adjectives = []string{
	"Amber", "Bold", "Brisk", "Calm", "Clever", "Crisp", "Daring", "Eager",
	"Fancy", "Gentle", "Happy", "Keen", "Lively", "Mellow", "Nimble", "Polite",
	"Quiet", "Rapid", "Sturdy", "Tidy", "Vivid", "Witty", "Zesty",
}

var colors = []string{
	"Azure", "Beige", "Cobalt", "Coral", "Crimson", "Emerald", "Fuchsia",
	"Indigo", "Ivory", "Jade", "Lilac", "Magenta", "Maroon", "Ochre", "Olive",
	"Pearl", "Russet", "Saffron", "Scarlet", "Teal", "Umber", "Violet",
}

// Generator yields display names from an injectable random source so tests
// can pin the sequence.
type Generator struct {
	r *rand.Rand
}

// New returns a time-seeded generator.
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a generator drawing from the supplied source.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{r: rand.New(src)}
}

// DisplayName returns a two-word adjective+color name suffixed with the given
// type label ("Form", "Group", "Field", ...). An empty suffix yields just the
// two-word pair.
func (g *Generator) DisplayName(typeLabel string) string {
	adjective := adjectives[g.r.Intn(len(adjectives))]
	color := colors[g.r.Intn(len(colors))]
	parts := []string{adjective, color}
	if trimmed := strings.TrimSpace(typeLabel); trimmed != "" {
		parts = append(parts, trimmed)
	}
	return strings.Join(parts, " ")
}
