// Package block groups a parsed script's directives into the ordered
// blocks a Controller advances through: narration waypoints, pauses, and
// atomic action groups.
package block

import "github.com/codemonkey-cli/codemonkey/internal/script"

// Type distinguishes the three shapes a Block can take.
type Type int

const (
	TypeAction Type = iota
	TypePause
	TypeNarrationOnly
)

func (t Type) String() string {
	switch t {
	case TypeAction:
		return "Action"
	case TypePause:
		return "Pause"
	case TypeNarrationOnly:
		return "NarrationOnly"
	default:
		return "Unknown"
	}
}

// Block is one unit of presenter advancement.
//
// Invariants:
//   - Type == TypeAction  => Actions is non-empty and contains no Say, Pause, or Section.
//   - Type == TypePause   => Actions is empty; Narration may carry accumulated Say text.
//   - Type == TypeNarrationOnly => Actions is empty and Narration is non-empty.
type Block struct {
	Narration    string // joined by "\n"; empty means "none" for all Type values except NarrationOnly
	HasNarration bool
	Actions      []script.Directive
	Section      string
	Type         Type
	PauseTimeout *int // only meaningful when Type == TypePause
}
