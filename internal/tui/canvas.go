package tui

import (
	"strings"

	"github.com/akyairhashvil/gridswap/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// canvas is a fixed grid of terminal cells. Later draws overwrite earlier
// ones, which is how the dragged item ends up on top.
type canvas struct {
	w, h   int
	cells  []cell
	styles []lipgloss.Style
}

type cell struct {
	r     rune
	style int
	wide  bool // second half of a double-width rune
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([]cell, w*h), styles: []lipgloss.Style{lipgloss.NewStyle()}}
	for i := range c.cells {
		c.cells[i].r = ' '
	}
	return c
}

func (c *canvas) style(s lipgloss.Style) int {
	c.styles = append(c.styles, s)
	return len(c.styles) - 1
}

func (c *canvas) set(x, y int, r rune, style int) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, style: style}
	if x+1 < c.w && c.cells[y*c.w+x+1].wide {
		c.cells[y*c.w+x+1] = cell{r: ' ', style: style}
	}
}

// text writes s starting at (x, y), truncated to max columns.
func (c *canvas) text(x, y, max int, s string, style int) {
	if max <= 0 {
		return
	}
	if ansi.StringWidth(s) > max {
		s = ansi.Truncate(s, max, config.TruncationSuffix)
	}
	for _, r := range s {
		c.set(x, y, r, style)
		if ansi.StringWidth(string(r)) == 2 {
			x++
			if x >= 0 && y >= 0 && x < c.w && y < c.h {
				c.cells[y*c.w+x] = cell{style: style, wide: true}
			}
		}
		x++
	}
}

// box draws a w by h frame with label centred on its middle line.
func (c *canvas) box(x, y, w, h int, label string, style int) {
	if w < 2 || h < 1 {
		return
	}
	for i := 1; i < w-1; i++ {
		c.set(x+i, y, '─', style)
		c.set(x+i, y+h-1, '─', style)
	}
	for j := 1; j < h-1; j++ {
		c.set(x, y+j, '│', style)
		c.set(x+w-1, y+j, '│', style)
		for i := 1; i < w-1; i++ {
			c.set(x+i, y+j, ' ', style)
		}
	}
	c.set(x, y, '┌', style)
	c.set(x+w-1, y, '┐', style)
	c.set(x, y+h-1, '└', style)
	c.set(x+w-1, y+h-1, '┘', style)

	inner := w - 2
	if inner <= 0 {
		return
	}
	if ansi.StringWidth(label) > inner {
		label = ansi.Truncate(label, inner, config.TruncationSuffix)
	}
	pad := (inner - ansi.StringWidth(label)) / 2
	c.text(x+1+pad, y+h/2, inner-pad, label, style)
}

// String renders the canvas, styling runs of same-style cells together.
func (c *canvas) String() string {
	var out strings.Builder
	var run strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		current := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current == 0 {
				out.WriteString(run.String())
			} else {
				out.WriteString(c.styles[current].Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			if cl.wide {
				continue
			}
			if cl.style != current {
				flush()
				current = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return out.String()
}
