// Package script turns the line-based .cm DSL into a Script: a typed front
// matter plus an ordered list of directives, one per meaningful line.
package script

import "fmt"

// Kind identifies which directive a line produced.
type Kind int

const (
	KindSay Kind = iota
	KindType
	KindRun
	KindPause
	KindFocus
	KindSlide
	KindKey
	KindClear
	KindWait
	KindExec
	KindSection
)

func (k Kind) String() string {
	switch k {
	case KindSay:
		return "SAY"
	case KindType:
		return "TYPE"
	case KindRun:
		return "RUN"
	case KindPause:
		return "PAUSE"
	case KindFocus:
		return "FOCUS"
	case KindSlide:
		return "SLIDE"
	case KindKey:
		return "KEY"
	case KindClear:
		return "CLEAR"
	case KindWait:
		return "WAIT"
	case KindExec:
		return "EXEC"
	case KindSection:
		return "SECTION"
	default:
		return "UNKNOWN"
	}
}

// SlideDirection distinguishes the three forms SLIDE can take.
type SlideDirection int

const (
	SlideNext SlideDirection = iota
	SlidePrev
	SlideGoTo
)

// Directive is the tagged variant for one parsed line of a script.
//
// Exactly the fields relevant to Kind are meaningful; callers should
// switch on Kind rather than inspect fields directly (see block.Group
// and backend.AppleScriptBackend.Execute for the exhaustive-switch idiom
// used throughout this module).
type Directive struct {
	Kind Kind

	Text string // Say, Type, Exec(cmd), Section(name)
	App  string // Focus(appName)
	Key  string // Key(combo)

	PauseTimeout    *int // Pause(timeout?): seconds, nil = no timeout
	WaitSeconds     int  // Wait(seconds)
	SlideDir        SlideDirection
	SlideGoToNumber int // SlideGoTo(n)
}

// Say returns a Say directive.
func Say(text string) Directive { return Directive{Kind: KindSay, Text: text} }

// Type returns a Type directive.
func Type(text string) Directive { return Directive{Kind: KindType, Text: text} }

// Run returns a Run directive.
func Run() Directive { return Directive{Kind: KindRun} }

// Pause returns a Pause directive with an optional timeout in seconds.
func Pause(timeout *int) Directive { return Directive{Kind: KindPause, PauseTimeout: timeout} }

// Focus returns a Focus directive.
func Focus(app string) Directive { return Directive{Kind: KindFocus, App: app} }

// SlideNextDirective returns a Slide(Next) directive.
func SlideNextDirective() Directive { return Directive{Kind: KindSlide, SlideDir: SlideNext} }

// SlidePrevDirective returns a Slide(Prev) directive.
func SlidePrevDirective() Directive { return Directive{Kind: KindSlide, SlideDir: SlidePrev} }

// SlideGoToDirective returns a Slide(GoTo(n)) directive.
func SlideGoToDirective(n int) Directive {
	return Directive{Kind: KindSlide, SlideDir: SlideGoTo, SlideGoToNumber: n}
}

// KeyDirective returns a Key directive.
func KeyDirective(combo string) Directive { return Directive{Kind: KindKey, Key: combo} }

// Clear returns a Clear directive.
func Clear() Directive { return Directive{Kind: KindClear} }

// Wait returns a Wait directive.
func Wait(seconds int) Directive { return Directive{Kind: KindWait, WaitSeconds: seconds} }

// Exec returns an Exec directive.
func Exec(command string) Directive { return Directive{Kind: KindExec, Text: command} }

// Section returns a Section directive.
func Section(name string) Directive { return Directive{Kind: KindSection, Text: name} }

// String renders a directive the way a dry run or diagnostic would show it.
func (d Directive) String() string {
	switch d.Kind {
	case KindSay:
		return fmt.Sprintf("[SAY] %s", d.Text)
	case KindType:
		return fmt.Sprintf("[TYPE] %s", d.Text)
	case KindRun:
		return "[RUN]"
	case KindPause:
		if d.PauseTimeout != nil {
			return fmt.Sprintf("[PAUSE %d]", *d.PauseTimeout)
		}
		return "[PAUSE]"
	case KindFocus:
		return fmt.Sprintf("[FOCUS] %s", d.App)
	case KindSlide:
		switch d.SlideDir {
		case SlideNext:
			return "[SLIDE next]"
		case SlidePrev:
			return "[SLIDE prev]"
		default:
			return fmt.Sprintf("[SLIDE %d]", d.SlideGoToNumber)
		}
	case KindKey:
		return fmt.Sprintf("[KEY] %s", d.Key)
	case KindClear:
		return "[CLEAR]"
	case KindWait:
		return fmt.Sprintf("[WAIT %d]", d.WaitSeconds)
	case KindExec:
		return fmt.Sprintf("[EXEC] %s", d.Text)
	case KindSection:
		return fmt.Sprintf("## Section: %s", d.Text)
	default:
		return "[UNKNOWN]"
	}
}

// ParsedLine pairs a directive with the 1-based source line it came from,
// preserved through grouping for diagnostics.
type ParsedLine struct {
	LineNumber int
	Directive  Directive
}
