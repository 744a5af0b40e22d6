package engine

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cell holds one placed fragment. width is the number of terminal columns
// the fragment occupies; the renderer skips that many columns after an
// anchor so rows stay aligned even when wide fragments like "░A░" land.
type cell struct {
	frag  string
	style lipgloss.Style
	width int
}

// Grid accumulates glyph placements between ticks. It is never cleared
// while the program runs; the rain effect comes from old fragments staying
// put until something lands on top of them.
type Grid struct {
	width, height int
	rows          [][]cell
}

func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Fit(width, height)
	return g
}

// Fit resizes the grid to the current terminal dimensions, keeping whatever
// content still overlaps. Called every rendered tick so mid-run resizes
// show up on the next frame.
func (g *Grid) Fit(width, height int) {
	if width == g.width && height == g.height {
		return
	}
	rows := make([][]cell, height)
	for y := range rows {
		rows[y] = make([]cell, width)
		if y < g.height {
			copy(rows[y], g.rows[y])
		}
		for x, c := range rows[y] {
			// drop anchors whose span no longer fits after a shrink
			if c.width > 0 && x+c.width > width {
				rows[y][x] = cell{}
			}
		}
	}
	g.width, g.height = width, height
	g.rows = rows
}

// Place writes a fragment run left to right starting at (x, y), clipping at
// the row end. Positions outside the grid (including streams that drifted
// below the viewport) are dropped silently.
func (g *Grid) Place(x, y int, style lipgloss.Style, frags ...string) {
	if y < 0 || y >= g.height || x < 0 {
		return
	}
	col := x
	for _, f := range frags {
		w := runewidth.StringWidth(f)
		if w < 1 {
			w = 1
		}
		if col+w > g.width {
			return
		}
		g.rows[y][col] = cell{frag: f, style: style, width: w}
		col += w
	}
}

// Render flattens the grid into one styled frame. Anchor cells emit their
// fragment and consume their full width; untouched cells emit a space.
func (g *Grid) Render() string {
	var b strings.Builder
	for y, row := range g.rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		col := 0
		for col < g.width {
			c := row[col]
			if c.width == 0 {
				b.WriteByte(' ')
				col++
				continue
			}
			b.WriteString(c.style.Render(c.frag))
			col += c.width
		}
	}
	return b.String()
}
