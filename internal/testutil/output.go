package testutil

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// Lines strips ANSI sequences from captured output and splits it into
// non-empty lines.
func Lines(out string) []string {
	var lines []string
	for _, ln := range strings.Split(xansi.Strip(out), "\n") {
		if strings.TrimSpace(ln) != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

// HasColor reports whether out carries at least one SGR color sequence.
func HasColor(out string) bool {
	return strings.Contains(out, "\x1b[") && xansi.Strip(out) != out
}
