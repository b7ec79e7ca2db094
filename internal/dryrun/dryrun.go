// Package dryrun renders a grouped block list as deterministic text,
// with no network or backend calls.
package dryrun

import (
	"fmt"
	"strings"

	"github.com/codemonkey-cli/codemonkey/internal/block"
)

// Render enumerates blocks in order: index, kind, section, narration
// (if any), and the directive list in source order.
func Render(blocks []block.Block) string {
	var b strings.Builder
	for i, blk := range blocks {
		fmt.Fprintf(&b, "%d. %s", i, blk.Type)
		if blk.Section != "" {
			fmt.Fprintf(&b, " [%s]", blk.Section)
		}
		b.WriteByte('\n')

		if blk.HasNarration {
			for _, line := range strings.Split(blk.Narration, "\n") {
				fmt.Fprintf(&b, "   say: %s\n", line)
			}
		}
		for _, a := range blk.Actions {
			fmt.Fprintf(&b, "   %s\n", a)
		}
	}
	return b.String()
}
