package block

import (
	"fmt"

	"github.com/gobwas/glob"
)

// FilterBySection returns the subset of blocks whose Section matches the
// given glob pattern (e.g. "Intro*"), preserving order. Used by the
// --section flag on present/check to rehearse part of a deck.
func FilterBySection(blocks []Block, pattern string) ([]Block, error) {
	if pattern == "" {
		return blocks, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile section pattern %q: %w", pattern, err)
	}
	var out []Block
	for _, b := range blocks {
		if g.Match(b.Section) {
			out = append(out, b)
		}
	}
	return out, nil
}
