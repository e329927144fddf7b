package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/gridswap/internal/config"
	"github.com/akyairhashvil/gridswap/internal/report"
	"github.com/akyairhashvil/gridswap/internal/traversal"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// landedFor is how long a dropped item stays highlighted in its new board.
const landedFor = 400 * time.Millisecond

type exportedMsg struct {
	path string
	err  error
}

// settleMsg retires the landing highlight of one commit.
type settleMsg struct {
	zone  string
	token traversal.Token
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.coord.Registry().RemeasureAll()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case settleMsg:
		if tok, ok := m.coord.Pending(); ok && tok == msg.token {
			if z, ok := m.coord.Zone(msg.zone); ok {
				z.ConsumeMount()
			}
		}
		return m, nil
	case exportedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("export failed: %v", msg.err), true)
		} else {
			m.setStatus("layout exported to "+msg.path, false)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		if _, _, ok := m.coord.Dragging(); ok {
			m.coord.DragCancel()
			m.setStatus("drag cancelled", false)
		}
	case key.Matches(msg, m.keys.Export):
		m.setStatus("exporting…", false)
		return m, m.exportCmd()
	case key.Matches(msg, m.keys.Theme):
		names := themeNames()
		next := names[0]
		for i, name := range names {
			if Themes[name].Name == CurrentTheme.Name {
				next = names[(i+1)%len(names)]
				break
			}
		}
		SetTheme(next)
		m.setStatus("theme: "+CurrentTheme.Name, false)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	dragZone, dragIndex, dragging := m.coord.Dragging()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || dragging {
			return m, nil
		}
		z, index, ok := m.hit(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		if err := z.DragStart(index); err != nil {
			m.setStatus(describeDragError(err), true)
			return m, nil
		}
		m.pressX, m.pressY = msg.X, msg.Y
		m.setStatus("dragging "+m.label(z.ID(), index), false)

	case tea.MouseActionMotion:
		if !dragging {
			return m, nil
		}
		m.coord.DragMove(float64(msg.X-m.pressX), float64(msg.Y-m.pressY))
		if over, ok := m.coord.Over(); ok {
			m.setStatus("over "+m.title(over), false)
		} else {
			m.setStatus("release to put it back", false)
		}

	case tea.MouseActionRelease:
		if !dragging {
			return m, nil
		}
		m.coord.DragMove(float64(msg.X-m.pressX), float64(msg.Y-m.pressY))
		ch, ok := m.coord.DragEnd()
		if !ok {
			m.setStatus(m.label(dragZone, dragIndex)+" put back", false)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("moved %s from %s to %s", m.label(ch.TargetID, ch.TargetIndex), m.title(ch.SourceID), m.title(ch.TargetID)), false)
		if tok, pending := m.coord.Pending(); pending {
			zone := ch.TargetID
			return m, tea.Tick(landedFor, func(time.Time) tea.Msg {
				return settleMsg{zone: zone, token: tok}
			})
		}
	}
	return m, nil
}

func (m Model) exportCmd() tea.Cmd {
	boards := m.boards.Snapshot()
	dir := m.exportDir
	return func() tea.Msg {
		path, err := report.WritePDFFile(dir, config.ExportFileName, "Gridswap layout", boards)
		return exportedMsg{path: path, err: err}
	}
}
