// Package overlay draws boxes on top of an already rendered view.
package overlay

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
)

// PlaceOverlay draws fg over bg with its top left corner at (x, y). When
// center is set, x and y are ignored and fg is centered. Both views may contain
// ANSI styling.
func PlaceOverlay(x, y int, fg, bg string, center bool) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	fgWidth := maxLineWidth(fgLines)
	bgWidth := maxLineWidth(bgLines)
	if fgWidth >= bgWidth && len(fgLines) >= len(bgLines) {
		return fg
	}

	if center {
		x = (bgWidth - fgWidth) / 2
		y = (len(bgLines) - len(fgLines)) / 2
	}
	x = clamp(x, 0, max(bgWidth-fgWidth, 0))
	y = clamp(y, 0, max(len(bgLines)-len(fgLines), 0))

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i < y || i >= y+len(fgLines) {
			b.WriteString(bgLine)
			continue
		}

		fgLine := fgLines[i-y]
		lineWidth := ansi.PrintableRuneWidth(bgLine)

		left := truncate.String(bgLine, uint(x))
		if w := ansi.PrintableRuneWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		b.WriteString(left)
		b.WriteString(fgLine)

		right := x + ansi.PrintableRuneWidth(fgLine)
		if right < lineWidth {
			b.WriteString(cutLeft(bgLine, right))
		}
	}
	return b.String()
}

// cutLeft drops the first n printable cells of s. Escape sequences before the
// cut are kept so the remainder keeps its styling.
func cutLeft(s string, n int) string {
	var (
		b     strings.Builder
		width int
		inEsc bool
	)
	for _, r := range s {
		if r == ansi.Marker {
			inEsc = true
		}
		if inEsc {
			b.WriteRune(r)
			if ansi.IsTerminator(r) {
				inEsc = false
			}
			continue
		}
		if width >= n {
			b.WriteRune(r)
			continue
		}
		width += runewidth.RuneWidth(r)
		if width > n {
			// A wide rune straddles the cut.
			b.WriteString(strings.Repeat(" ", width-n))
		}
	}
	return b.String()
}

func maxLineWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		if lw := ansi.PrintableRuneWidth(l); lw > w {
			w = lw
		}
	}
	return w
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
