// Package tui is an interactive demo of the drag-and-drop grid: every board
// is a drop zone, items are dragged with the mouse.
package tui

import (
	"errors"
	"fmt"
	"log"

	"github.com/akyairhashvil/gridswap/internal/board"
	"github.com/akyairhashvil/gridswap/internal/config"
	"github.com/akyairhashvil/gridswap/internal/dnd"
	"github.com/akyairhashvil/gridswap/internal/dropzone"
	"github.com/akyairhashvil/gridswap/internal/util"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the root bubbletea model.
type Model struct {
	cfg    config.Config
	boards *board.Set
	coord  *dnd.Coordinator
	zones  []*dnd.Zone
	keys   keyMap
	help   help.Model

	// press is the terminal cell where the current drag started.
	pressX, pressY int

	status    string
	statusErr bool
	exportDir string
	width     int
	height    int
}

// NewModel mounts one drop zone per board. logger may be nil.
func NewModel(cfg config.Config, boards *board.Set, logger *log.Logger) (Model, error) {
	SetTheme(cfg.UI.Theme)
	m := Model{
		cfg:       cfg,
		boards:    boards,
		keys:      newKeyMap(),
		help:      help.New(),
		exportDir: util.ExportDir(config.AppName),
		status:    "drag an item with the mouse",
	}

	var opts []dnd.Option
	if logger != nil {
		opts = append(opts, dnd.WithLogger(logger))
	}
	var coord *dnd.Coordinator
	coord = dnd.New(func(sourceID string, sourceIndex, targetIndex int, targetID string) {
		applyChange(coord, boards, sourceID, sourceIndex, targetIndex, targetID)
	}, opts...)
	m.coord = coord

	for i, b := range boards.Boards() {
		i := i
		id := b.ID
		z, err := coord.Mount(id, dnd.ZoneOptions{
			Columns:      b.Columns,
			RowHeight:    float64(cfg.Grid.CellHeight),
			ItemCount:    len(b.Items),
			DropDisabled: !b.AcceptsDrops(),
			Pinned: func(index int) bool {
				cur, ok := boards.Get(id)
				return ok && index < len(cur.Items) && cur.Items[index].Pinned
			},
			Measurer: dnd.MeasurerFunc(func() dropzone.Bounds {
				return frames(boards.Boards(), cfg.Grid.CellWidth, cfg.Grid.CellHeight)[i].bounds()
			}),
		})
		if err != nil {
			return Model{}, fmt.Errorf("mount board %s: %w", id, err)
		}
		m.zones = append(m.zones, z)
	}
	return m, nil
}

// applyChange mirrors a committed move into the board data and tells both
// zones their new item counts.
func applyChange(coord *dnd.Coordinator, boards *board.Set, sourceID string, sourceIndex, targetIndex int, targetID string) {
	if err := boards.Apply(sourceID, sourceIndex, targetIndex, targetID); err != nil {
		util.LogError("apply move", err)
		return
	}
	for _, id := range []string{sourceID, targetID} {
		z, ok := coord.Zone(id)
		if !ok {
			continue
		}
		if b, ok := boards.Get(id); ok {
			z.SetItemCount(len(b.Items))
		}
	}
	coord.Registry().RemeasureAll()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// hit returns the zone and item index under terminal cell (x, y).
func (m Model) hit(x, y int) (*dnd.Zone, int, bool) {
	for _, z := range m.zones {
		b := z.Bounds()
		g := z.Grid()
		for _, pl := range z.Layout() {
			left := int(b.Left + pl.Position.X)
			top := int(b.Top + pl.Position.Y)
			if x >= left && x < left+int(g.ColumnWidth) && y >= top && y < top+int(g.RowHeight) {
				return z, pl.Index, true
			}
		}
	}
	return nil, 0, false
}

func (m Model) label(zoneID string, index int) string {
	b, ok := m.boards.Get(zoneID)
	if !ok || index < 0 || index >= len(b.Items) {
		return ""
	}
	return b.Items[index].Label
}

func (m Model) title(zoneID string) string {
	if b, ok := m.boards.Get(zoneID); ok {
		return b.Title
	}
	return zoneID
}

func describeDragError(err error) string {
	switch {
	case errors.Is(err, dnd.ErrItemPinned):
		return "that item is pinned"
	case errors.Is(err, dnd.ErrDragDisabled):
		return "this board does not allow dragging"
	default:
		return err.Error()
	}
}
