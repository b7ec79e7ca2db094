package script

import (
	"strings"
	"testing"
)

func TestParseLineBlank(t *testing.T) {
	pl, err := ParseLine("   ", 1)
	if err != nil || pl != nil {
		t.Fatalf("ParseLine(blank) = %v, %v, want nil, nil", pl, err)
	}
}

func TestParseLineComment(t *testing.T) {
	pl, err := ParseLine("# just a comment", 1)
	if err != nil || pl != nil {
		t.Fatalf("ParseLine(comment) = %v, %v, want nil, nil", pl, err)
	}
}

func TestParseLineSection(t *testing.T) {
	pl, err := ParseLine("## Section: Intro", 3)
	if err != nil {
		t.Fatalf("ParseLine error: %v", err)
	}
	if pl.Directive.Kind != KindSection || pl.Directive.Text != "Intro" {
		t.Fatalf("got %+v", pl.Directive)
	}
	if pl.LineNumber != 3 {
		t.Fatalf("LineNumber = %d, want 3", pl.LineNumber)
	}
}

func TestParseLineDirectives(t *testing.T) {
	cases := []struct {
		line string
		kind Kind
	}{
		{"[SAY] hello there", KindSay},
		{"[type] ls -la", KindType},
		{"[RUN]", KindRun},
		{"[PAUSE]", KindPause},
		{"[PAUSE 5]", KindPause},
		{"[FOCUS] Terminal", KindFocus},
		{"[SLIDE next]", KindSlide},
		{"[SLIDE 5]", KindSlide},
		{"[KEY] cmd+shift+s", KindKey},
		{"[CLEAR]", KindClear},
		{"[WAIT 2]", KindWait},
		{"[EXEC] echo hi", KindExec},
	}
	for _, c := range cases {
		pl, err := ParseLine(c.line, 1)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.line, err)
		}
		if pl == nil || pl.Directive.Kind != c.kind {
			t.Fatalf("%q: got %+v, want kind %v", c.line, pl, c.kind)
		}
	}
}

func TestParseLineUnknownDirectiveSuggestsCorrection(t *testing.T) {
	_, err := ParseLine("[TYP] hello", 10)
	if err == nil {
		t.Fatal("expected error for unknown directive")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error is %T, want *ParseError", err)
	}
	if pe.LineNumber != 10 {
		t.Fatalf("LineNumber = %d, want 10", pe.LineNumber)
	}
	if !strings.Contains(pe.Message, "did you mean [TYPE]?") {
		t.Fatalf("Message = %q, want a [TYPE] suggestion", pe.Message)
	}
}

func TestParseLineValidationErrors(t *testing.T) {
	cases := []string{
		"[SAY]",
		"[RUN] extra",
		"[CLEAR] extra",
		"[SLIDE 0]",
		"[SLIDE -1]",
		"[WAIT] notanumber",
		"[PAUSE] -1",
	}
	for _, line := range cases {
		_, err := ParseLine(line, 1)
		if err == nil {
			t.Fatalf("%q: expected error, got none", line)
		}
	}
}

func TestParseScriptEmpty(t *testing.T) {
	s, err := ParseScript("")
	if err != nil {
		t.Fatalf("ParseScript error: %v", err)
	}
	if len(s.Lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(s.Lines))
	}
	if s.FrontMatter.TypingSpeedMs != 40 {
		t.Fatalf("TypingSpeedMs = %d, want default 40", s.FrontMatter.TypingSpeedMs)
	}
}

func TestParseScriptFrontMatterOverride(t *testing.T) {
	text := "---\ntitle: X\ntyping_speed_ms: 80\n---\n[TYPE] hi"
	s, err := ParseScript(text)
	if err != nil {
		t.Fatalf("ParseScript error: %v", err)
	}
	if s.FrontMatter.TypingSpeedMs != 80 {
		t.Fatalf("TypingSpeedMs = %d, want 80", s.FrontMatter.TypingSpeedMs)
	}
	if s.FrontMatter.Title == nil || *s.FrontMatter.Title != "X" {
		t.Fatalf("Title = %v, want X", s.FrontMatter.Title)
	}
	if len(s.Lines) != 1 || s.Lines[0].Directive.Kind != KindType {
		t.Fatalf("got lines %+v", s.Lines)
	}
	if s.Lines[0].LineNumber != 5 {
		t.Fatalf("LineNumber = %d, want 5", s.Lines[0].LineNumber)
	}
}

func TestParseScriptLineNumbersPreserved(t *testing.T) {
	text := "\n\n[SAY] hi\n\n[RUN]"
	s, err := ParseScript(text)
	if err != nil {
		t.Fatalf("ParseScript error: %v", err)
	}
	if len(s.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(s.Lines))
	}
	if s.Lines[0].LineNumber != 3 {
		t.Fatalf("first LineNumber = %d, want 3", s.Lines[0].LineNumber)
	}
	if s.Lines[1].LineNumber != 5 {
		t.Fatalf("second LineNumber = %d, want 5", s.Lines[1].LineNumber)
	}
}

func TestParseScriptErrorCarriesLineNumber(t *testing.T) {
	text := "[SAY] ok\n[BOGUS] nope"
	_, err := ParseScript(text)
	if err == nil {
		t.Fatal("expected error")
	}
	pe := err.(*ParseError)
	if pe.LineNumber != 2 {
		t.Fatalf("LineNumber = %d, want 2", pe.LineNumber)
	}
}
