package script

import "github.com/sahilm/fuzzy"

// knownDirectiveNames lists every bracketed directive name the line parser
// recognizes, used only to propose a correction for a typo.
var knownDirectiveNames = []string{
	"SAY", "TYPE", "RUN", "PAUSE", "FOCUS", "SLIDE", "KEY", "CLEAR", "WAIT", "EXEC",
}

// suggestDirectiveName returns the closest known directive name to an
// unrecognized one, or "" if nothing is a plausible match. Used to turn a
// bare "unknown directive" parse error into a "did you mean [TYPE]?" one.
func suggestDirectiveName(name string) string {
	matches := fuzzy.Find(name, knownDirectiveNames)
	if len(matches) == 0 {
		return ""
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Score > best.Score {
			best = m
		}
	}
	// A weak match (few letters in common) is more confusing than helpful.
	if best.Score <= 0 {
		return ""
	}
	return knownDirectiveNames[best.Index]
}
