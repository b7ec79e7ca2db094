// Package notes renders a script's narration as a standalone HTML
// rehearsal document (the --notes supplement to check).
package notes

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/codemonkey-cli/codemonkey/internal/block"
)

// Render produces an HTML document containing each block's section and
// narration, in order, skipping blocks with no narration.
func Render(blocks []block.Block, title string) (string, error) {
	md := goldmark.New()

	var body strings.Builder
	currentSection := ""
	for _, b := range blocks {
		if !b.HasNarration {
			continue
		}
		if b.Section != "" && b.Section != currentSection {
			currentSection = b.Section
			fmt.Fprintf(&body, "<h2>%s</h2>\n", html.EscapeString(currentSection))
		}
		var out bytes.Buffer
		if err := md.Convert([]byte(b.Narration), &out); err != nil {
			return "", fmt.Errorf("render narration: %w", err)
		}
		body.WriteString(out.String())
		body.WriteString("\n")
	}

	doc := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body>
<h1>%s</h1>
%s
</body>
</html>
`, html.EscapeString(title), html.EscapeString(title), body.String())

	return doc, nil
}
