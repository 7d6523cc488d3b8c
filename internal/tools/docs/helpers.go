package docs

import (
	"fmt"

	md "github.com/nao1215/markdown"
)

// countText formats a count with its noun, e.g. "5 models".
func countText(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// imageCell renders an image reference as a small inline image, or a dash.
func imageCell(alt, src string) string {
	if src == "" {
		return "-"
	}
	return md.Image(alt, src)
}

// orDash returns s, or a dash when s is empty.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
