package backend

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/codemonkey-cli/codemonkey/internal/script"
)

// AppleScriptBackend is the production ActionBackend: it shells out to
// the host's osascript interpreter for every AppleScript-producing
// directive, and to the shell for Exec.
type AppleScriptBackend struct {
	Rand  RandSource
	Sleep func(time.Duration)
}

// NewAppleScriptBackend returns a backend that draws typewriter jitter
// from math/rand and sleeps for real.
func NewAppleScriptBackend() *AppleScriptBackend {
	return &AppleScriptBackend{Rand: DefaultRand(), Sleep: time.Sleep}
}

func (b *AppleScriptBackend) runOsascript(scriptText string) error {
	cmd := exec.Command("osascript", "-e", scriptText)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("osascript: %w: %s", err, string(out))
	}
	return nil
}

// Execute runs actions in order, stopping at the first failure. See
// the per-directive dispatch order below.
func (b *AppleScriptBackend) Execute(actions []script.Directive, speedMs, varianceMs int) error {
	for _, d := range actions {
		var err error
		switch d.Kind {
		case script.KindFocus:
			err = b.runOsascript(FocusAppScript(d.App))
		case script.KindSlide:
			switch d.SlideDir {
			case script.SlideNext:
				err = b.runOsascript(SlideNextScript())
			case script.SlidePrev:
				err = b.runOsascript(SlidePrevScript())
			default:
				err = b.runOsascript(SlideGotoScript(d.SlideGoToNumber))
			}
		case script.KindKey:
			var s string
			s, err = KeystrokeScript(d.Key)
			if err == nil {
				err = b.runOsascript(s)
			}
		case script.KindClear:
			err = b.runOsascript(ClearScript())
		case script.KindRun:
			err = b.runOsascript(RunScript())
		case script.KindType:
			err = b.typeText(d.Text, speedMs, varianceMs)
		case script.KindWait:
			b.Sleep(time.Duration(d.WaitSeconds) * time.Second)
		case script.KindExec:
			err = b.execDetached(d.Text)
		default:
			err = fmt.Errorf("unsupported action kind %v", d.Kind)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", d.Kind, err)
		}
	}
	return nil
}

func (b *AppleScriptBackend) typeText(text string, speedMs, varianceMs int) error {
	for _, ks := range Typewriter(text, speedMs, varianceMs, b.Rand) {
		if err := b.runOsascript(ks.Script); err != nil {
			return err
		}
		b.Sleep(time.Duration(ks.DelayMs) * time.Millisecond)
	}
	return nil
}

// execDetached launches command via the shell and does not wait for it,
// Exec is fire-and-forget: it never blocks the keystroke sequence on it.
func (b *AppleScriptBackend) execDetached(command string) error {
	cmd := exec.Command("/bin/sh", "-c", command)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("exec %q: %w", command, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
