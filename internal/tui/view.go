package tui

import (
	"fmt"
	"math"

	"github.com/akyairhashvil/gridswap/internal/config"
	"github.com/akyairhashvil/gridswap/internal/dnd"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	t := CurrentTheme
	cellW, cellH := m.cfg.Grid.CellWidth, m.cfg.Grid.CellHeight
	boards := m.boards.Boards()
	frs := frames(boards, cellW, cellH)

	w, h := config.BoardPadding, config.HeaderHeight+config.BoardTitleHeight
	for _, f := range frs {
		w = max(w, f.right()+config.BoardPadding)
		h = max(h, f.bottom())
	}
	c := newCanvas(max(w, m.width), h)

	c.text(0, 0, c.w, fmt.Sprintf("%s · %s", config.AppName, t.Name), c.style(t.Header))
	over, _ := m.coord.Over()

	var dragged *dnd.Placement
	var draggedFrame boardFrame
	var draggedLabel string
	for i, b := range boards {
		f := frs[i]
		titleStyle, rule := t.Title, t.Frame
		if b.ID == over {
			rule = t.Target
		}
		heading := fmt.Sprintf("%s (%d)", b.Title, len(b.Items))
		if !b.AcceptsDrops() {
			titleStyle = t.Dim
			heading += " · no drops"
		}
		c.text(f.left, f.top-config.BoardTitleHeight, f.width, heading, c.style(titleStyle))
		ruleStyle := c.style(rule)
		for x := f.left; x < f.right(); x++ {
			c.set(x, f.top-1, '─', ruleStyle)
		}

		for _, pl := range m.zones[i].Layout() {
			pl := pl
			label := ""
			if pl.Index < len(b.Items) {
				label = b.Items[pl.Index].Label
			}
			if pl.Dragging {
				dragged, draggedFrame, draggedLabel = &pl, f, label
				continue
			}
			st := t.Item
			switch {
			case pl.Mount != nil:
				st = t.Landed
			case pl.Index < len(b.Items) && b.Items[pl.Index].Pinned:
				st = t.Pinned
			}
			x, y := cellOrigin(f, pl)
			c.box(x, y, cellW, cellH, label, c.style(st))
		}
	}
	if dragged != nil {
		x, y := cellOrigin(draggedFrame, *dragged)
		c.box(x, y, cellW, cellH, draggedLabel, c.style(t.Dragging))
	}

	statusStyle := t.Status
	if m.statusErr {
		statusStyle = t.Error
	}
	return t.Base.Render(lipgloss.JoinVertical(lipgloss.Left,
		c.String(),
		statusStyle.Render(m.status),
		m.help.View(m.keys),
	))
}

func cellOrigin(f boardFrame, pl dnd.Placement) (int, int) {
	return f.left + int(math.Round(pl.Position.X)), f.top + int(math.Round(pl.Position.Y))
}
