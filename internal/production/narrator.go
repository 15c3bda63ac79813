// Package production provides production integrations for the walkthrough
// engine: console narration, transcript recording, event publishing, and a
// structured-log adapter. Implements core interfaces.
package production

import (
	"fmt"
	"io"
	"strings"

	"github.com/comalice/memsemx/internal/core"
)

const bannerWidth = 47

var glyphPrefix = map[core.LineKind]string{
	core.KindText:  "",
	core.KindOK:    "✓ ",
	core.KindFreed: "✗ ",
	core.KindInfo:  "ℹ ",
	core.KindWarn:  "⚠ ",
}

var plainPrefix = map[core.LineKind]string{
	core.KindText:  "",
	core.KindOK:    "+ ",
	core.KindFreed: "- ",
	core.KindInfo:  "i ",
	core.KindWarn:  "! ",
}

// ConsoleNarrator renders narration to a writer in the walkthrough's house
// style: a banner around the run, one dashed header per step, and
// glyph-prefixed indented lines. Plain switches to ASCII prefixes and
// banners for dumb terminals.
type ConsoleNarrator struct {
	W     io.Writer
	Plain bool
}

// NewConsoleNarrator creates a ConsoleNarrator writing to w.
func NewConsoleNarrator(w io.Writer) *ConsoleNarrator {
	return &ConsoleNarrator{W: w}
}

func (n *ConsoleNarrator) banner() string {
	if n.Plain {
		return strings.Repeat("=", bannerWidth)
	}
	return strings.Repeat("═", bannerWidth)
}

func (n *ConsoleNarrator) Begin(title string) {
	fmt.Fprintln(n.W, n.banner())
	fmt.Fprintln(n.W, title)
	fmt.Fprintln(n.W, n.banner())
}

func (n *ConsoleNarrator) Section(title string) {
	fmt.Fprintf(n.W, "\n--- %s ---\n", title)
}

func (n *ConsoleNarrator) Line(kind core.LineKind, text string) {
	prefixes := glyphPrefix
	if n.Plain {
		prefixes = plainPrefix
	}
	fmt.Fprintf(n.W, "  %s%s\n", prefixes[kind], text)
}

func (n *ConsoleNarrator) End(text string) {
	fmt.Fprintf(n.W, "\n%s\n%s\n%s\n", n.banner(), text, n.banner())
}
