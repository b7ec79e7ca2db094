package script

import (
	"strconv"
	"strings"
)

// FrontMatter is the optional typed header block at the top of a script.
type FrontMatter struct {
	Title            *string
	TypingSpeedMs    int
	TypingVarianceMs int
	AgentPort        int
}

// DefaultFrontMatter returns the spec's defaults, used when a script has no
// front matter at all or omits a given key.
func DefaultFrontMatter() FrontMatter {
	return FrontMatter{
		TypingSpeedMs:    40,
		TypingVarianceMs: 15,
		AgentPort:        9876,
	}
}

// extractFrontMatter consumes a leading "---" ... "---" block, if present,
// and returns the parsed FrontMatter plus the index of the first content
// line (relative to lines, 0-based). Absence of an opening "---" yields the
// defaults and contentStartIndex 0.
func extractFrontMatter(lines []string) (FrontMatter, int, error) {
	fm := DefaultFrontMatter()

	firstNonEmpty := -1
	for i, l := range lines {
		if strings.TrimSpace(l) != "" {
			firstNonEmpty = i
			break
		}
	}
	if firstNonEmpty == -1 || strings.TrimSpace(lines[firstNonEmpty]) != "---" {
		return fm, 0, nil
	}

	closeIdx := -1
	for i := firstNonEmpty + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			closeIdx = i
			break
		}
	}
	if closeIdx == -1 {
		// No closing fence: treat the whole thing as ordinary content rather
		// than silently eating the file.
		return fm, 0, nil
	}

	for i := firstNonEmpty + 1; i < closeIdx; i++ {
		lineNumber := i + 1
		raw := lines[i]
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		colonIdx := strings.IndexByte(trimmed, ':')
		if colonIdx < 0 {
			return fm, 0, newParseError(lineNumber, raw, "front matter line must be key: value")
		}
		key := strings.TrimSpace(trimmed[:colonIdx])
		value := strings.TrimSpace(trimmed[colonIdx+1:])

		switch key {
		case "title":
			t := value
			fm.Title = &t
		case "typing_speed_ms", "typing_speed":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return fm, 0, newParseError(lineNumber, raw, "typing_speed_ms must be a non-negative integer")
			}
			fm.TypingSpeedMs = n
		case "typing_variance_ms", "typing_variance":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return fm, 0, newParseError(lineNumber, raw, "typing_variance_ms must be a non-negative integer")
			}
			fm.TypingVarianceMs = n
		case "agent_port":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 || n > 65535 {
				return fm, 0, newParseError(lineNumber, raw, "agent_port must be a valid port number")
			}
			fm.AgentPort = n
		default:
			// Unknown keys are silently ignored.
		}
	}

	return fm, closeIdx + 1, nil
}
