package block

import (
	"strings"

	"github.com/codemonkey-cli/codemonkey/internal/script"
)

// Group walks a parsed Script's directives and produces the ordered block
// list a Controller will advance through.
func Group(s *script.Script) []Block {
	var blocks []Block
	var narrationBuf []string
	var actionBuf []script.Directive
	currentSection := ""

	flush := func() {
		if len(actionBuf) == 0 {
			return
		}
		blocks = append(blocks, Block{
			Narration:    strings.Join(narrationBuf, "\n"),
			HasNarration: len(narrationBuf) > 0,
			Actions:      actionBuf,
			Section:      currentSection,
			Type:         TypeAction,
		})
		narrationBuf = nil
		actionBuf = nil
	}

	for _, pl := range s.Lines {
		d := pl.Directive
		switch d.Kind {
		case script.KindSection:
			flush()
			currentSection = d.Text

		case script.KindSay:
			if len(actionBuf) > 0 {
				flush()
			}
			narrationBuf = append(narrationBuf, d.Text)

		case script.KindPause:
			flush()
			blocks = append(blocks, Block{
				Narration:    strings.Join(narrationBuf, "\n"),
				HasNarration: len(narrationBuf) > 0,
				Section:      currentSection,
				Type:         TypePause,
				PauseTimeout: d.PauseTimeout,
			})
			narrationBuf = nil

		default:
			actionBuf = append(actionBuf, d)
		}
	}

	if len(actionBuf) > 0 {
		flush()
	} else if len(narrationBuf) > 0 {
		blocks = append(blocks, Block{
			Narration:    strings.Join(narrationBuf, "\n"),
			HasNarration: true,
			Section:      currentSection,
			Type:         TypeNarrationOnly,
		})
	}

	return blocks
}
