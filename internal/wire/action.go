package wire

import (
	"fmt"

	"github.com/codemonkey-cli/codemonkey/internal/script"
)

// actionJSON is the tagged wire form of one action directive. Only the
// action-shaped directive kinds ever reach this layer; Say, Pause, and
// Section are consumed by the grouper and never transmitted.
type actionJSON struct {
	Type string `json:"type"`

	Text string `json:"text,omitempty"`
	App  string `json:"app,omitempty"`
	Key  string `json:"key,omitempty"`

	WaitSeconds int    `json:"wait_seconds,omitempty"`
	SlideDir    string `json:"slide_dir,omitempty"`
	SlideGoTo   int    `json:"slide_goto,omitempty"`
}

func encodeAction(d script.Directive) (actionJSON, error) {
	switch d.Kind {
	case script.KindType:
		return actionJSON{Type: "TYPE", Text: d.Text}, nil
	case script.KindRun:
		return actionJSON{Type: "RUN"}, nil
	case script.KindFocus:
		return actionJSON{Type: "FOCUS", App: d.App}, nil
	case script.KindSlide:
		switch d.SlideDir {
		case script.SlideNext:
			return actionJSON{Type: "SLIDE", SlideDir: "next"}, nil
		case script.SlidePrev:
			return actionJSON{Type: "SLIDE", SlideDir: "prev"}, nil
		default:
			return actionJSON{Type: "SLIDE", SlideDir: "goto", SlideGoTo: d.SlideGoToNumber}, nil
		}
	case script.KindKey:
		return actionJSON{Type: "KEY", Key: d.Key}, nil
	case script.KindClear:
		return actionJSON{Type: "CLEAR"}, nil
	case script.KindWait:
		return actionJSON{Type: "WAIT", WaitSeconds: d.WaitSeconds}, nil
	case script.KindExec:
		return actionJSON{Type: "EXEC", Text: d.Text}, nil
	default:
		return actionJSON{}, fmt.Errorf("action kind %v is not wire-transmissible", d.Kind)
	}
}

func decodeAction(a actionJSON) (script.Directive, error) {
	switch a.Type {
	case "TYPE":
		return script.Type(a.Text), nil
	case "RUN":
		return script.Run(), nil
	case "FOCUS":
		return script.Focus(a.App), nil
	case "SLIDE":
		switch a.SlideDir {
		case "next":
			return script.SlideNextDirective(), nil
		case "prev":
			return script.SlidePrevDirective(), nil
		case "goto":
			return script.SlideGoToDirective(a.SlideGoTo), nil
		default:
			return script.Directive{}, fmt.Errorf("unknown slide_dir %q", a.SlideDir)
		}
	case "KEY":
		return script.KeyDirective(a.Key), nil
	case "CLEAR":
		return script.Clear(), nil
	case "WAIT":
		return script.Wait(a.WaitSeconds), nil
	case "EXEC":
		return script.Exec(a.Text), nil
	default:
		return script.Directive{}, fmt.Errorf("unknown action type %q", a.Type)
	}
}
