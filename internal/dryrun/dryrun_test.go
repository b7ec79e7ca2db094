package dryrun

import (
	"strings"
	"testing"

	"github.com/codemonkey-cli/codemonkey/internal/block"
	"github.com/codemonkey-cli/codemonkey/internal/script"
)

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestRenderActionBlock(t *testing.T) {
	blocks := []block.Block{
		{
			Type:    block.TypeAction,
			Section: "Intro",
			Actions: []script.Directive{script.Focus("Terminal"), script.Type("ls")},
		},
	}
	got := Render(blocks)
	if !strings.Contains(got, "Intro") {
		t.Fatalf("missing section in %q", got)
	}
	if !strings.Contains(got, "[FOCUS] Terminal") || !strings.Contains(got, "[TYPE] ls") {
		t.Fatalf("missing directives in %q", got)
	}
}

func TestRenderNarrationOnly(t *testing.T) {
	blocks := []block.Block{
		{Type: block.TypeNarrationOnly, HasNarration: true, Narration: "Hello\nWorld"},
	}
	got := Render(blocks)
	if !strings.Contains(got, "say: Hello") || !strings.Contains(got, "say: World") {
		t.Fatalf("got %q", got)
	}
}
