// Package backend is the pure-function layer that turns directives into
// AppleScript text, plus the pluggable ActionBackend
// capability an Executor dispatches actions through.
package backend

import (
	"fmt"
	"strings"
)

// escapeAppleScriptString backslash-escapes '"' and '\' for embedding
// inside a double-quoted AppleScript string literal.
func escapeAppleScriptString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// FocusAppScript returns the AppleScript that activates the named
// application.
func FocusAppScript(name string) string {
	return fmt.Sprintf(`tell application "%s" to activate`, escapeAppleScriptString(name))
}

// SlideNextScript advances Keynote to the next slide.
func SlideNextScript() string {
	return `tell application "Keynote" to show next slide`
}

// SlidePrevScript steps Keynote back to the previous slide.
func SlidePrevScript() string {
	return `tell application "Keynote" to show previous slide`
}

// SlideGotoScript jumps Keynote's front document to slide n.
func SlideGotoScript(n int) string {
	return fmt.Sprintf(`tell application "Keynote" to show slide %d of document 1`, n)
}

// modifierKeyword maps a combo's modifier token (case-insensitive) to its
// AppleScript "X down" keyword.
var modifierKeyword = map[string]string{
	"cmd":   "command down",
	"ctrl":  "control down",
	"shift": "shift down",
	"alt":   "option down",
	"opt":   "option down",
}

// reservedKeyCode maps a combo's reserved final-segment key name to the
// macOS virtual key code used in `key code <n>` AppleScript forms.
var reservedKeyCode = map[string]int{
	"return": 36,
	"tab":    48,
	"escape": 53,
	"space":  49,
	"delete": 51,
	"left":   123,
	"right":  124,
	"down":   125,
	"up":     126,
	"f1":     122,
	"f2":     120,
	"f3":     99,
	"f4":     118,
	"f5":     96,
	"f6":     97,
	"f7":     98,
	"f8":     100,
	"f9":     101,
	"f10":    109,
	"f11":    103,
	"f12":    111,
}

// KeystrokeScript parses combo as mod(+mod)*+key (case-insensitive) and
// returns the AppleScript System Events call that sends it.
func KeystrokeScript(combo string) (string, error) {
	parts := strings.Split(combo, "+")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return "", fmt.Errorf("invalid key combo %q", combo)
	}

	keyPart := parts[len(parts)-1]
	modParts := parts[:len(parts)-1]

	var mods []string
	for _, m := range modParts {
		keyword, ok := modifierKeyword[strings.ToLower(strings.TrimSpace(m))]
		if !ok {
			return "", fmt.Errorf("unknown modifier %q in combo %q", m, combo)
		}
		mods = append(mods, keyword)
	}

	var action string
	if code, ok := reservedKeyCode[strings.ToLower(keyPart)]; ok {
		action = fmt.Sprintf("key code %d", code)
	} else {
		action = fmt.Sprintf("keystroke %q", keyPart)
	}

	usingClause := usingClauseFor(mods)
	script := fmt.Sprintf(`tell application "System Events" to %s%s`, action, usingClause)
	return script, nil
}

func usingClauseFor(mods []string) string {
	switch len(mods) {
	case 0:
		return ""
	case 1:
		return " using " + mods[0]
	default:
		return " using {" + strings.Join(mods, ", ") + "}"
	}
}

// TypeCharScript returns a single keystroke AppleScript call for one
// character of typewriter output.
func TypeCharScript(c rune) string {
	return fmt.Sprintf(`tell application "System Events" to keystroke "%s"`, escapeAppleScriptString(string(c)))
}

// ClearScript sends control-L, the terminal "clear line" shortcut.
func ClearScript() string {
	return `tell application "System Events" to keystroke "l" using control down`
}

// RunScript sends Return, the keystroke that submits a typed command.
func RunScript() string {
	return `tell application "System Events" to key code 36`
}
