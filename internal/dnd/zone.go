package dnd

import (
	"github.com/akyairhashvil/gridswap/internal/dropzone"
	"github.com/akyairhashvil/gridswap/internal/geometry"
	"github.com/akyairhashvil/gridswap/internal/reorder"
	"github.com/akyairhashvil/gridswap/internal/traversal"
)

// Measurer reports a container's current page-space bounds on demand.
//
//go:generate mockgen -source=zone.go -destination=mock_measurer_test.go -package=dnd
type Measurer interface {
	Measure() dropzone.Bounds
}

// MeasurerFunc adapts a plain function to Measurer.
type MeasurerFunc func() dropzone.Bounds

func (f MeasurerFunc) Measure() dropzone.Bounds { return f() }

type ZoneOptions struct {
	Columns      int
	RowHeight    float64
	ItemCount    int
	DropDisabled bool
	DragDisabled bool
	// Pinned, when set, reports items that cannot be picked up.
	Pinned   func(index int) bool
	Measurer Measurer
}

// Zone is one mounted grid container.
type Zone struct {
	c       *Coordinator
	id      string
	opts    ZoneOptions
	preview reorder.Preview
}

// Mount registers a container and measures it once.
func (c *Coordinator) Mount(id string, opts ZoneOptions) (*Zone, error) {
	c = c.live()
	if _, exists := c.zones[id]; exists {
		return nil, wrapZoneErr("mount", id, ErrDuplicateZone)
	}
	if id == "" || opts.Columns <= 0 || opts.RowHeight <= 0 || opts.ItemCount < 0 {
		return nil, wrapZoneErr("mount", id, ErrInvalidOptions)
	}
	z := &Zone{c: c, id: id, opts: opts}
	c.registry.Register(id, dropzone.Record{
		Grid:         geometry.Grid{Columns: opts.Columns, RowHeight: opts.RowHeight},
		ItemCount:    opts.ItemCount,
		DropDisabled: opts.DropDisabled,
		Remeasure:    z.remeasure,
	})
	c.zones[id] = z
	z.remeasure()
	return z, nil
}

func (z *Zone) coord() *Coordinator {
	if z == nil || z.c == nil {
		panic(ErrNoCoordinator)
	}
	return z.c
}

func (z *Zone) ID() string { return z.id }

func (z *Zone) remeasure() {
	if z.opts.Measurer == nil {
		return
	}
	z.Resize(z.opts.Measurer.Measure())
}

// Resize records new bounds, pushed by the resize notifier, and rederives
// the grid's column width from them.
func (z *Zone) Resize(b dropzone.Bounds) {
	c := z.coord()
	c.registry.UpdateBounds(z.id, b)
	c.registry.UpdateGrid(z.id, geometry.Derive(b.Width, z.opts.Columns, z.opts.RowHeight))
}

// SetItemCount records how many items the container now holds.
func (z *Zone) SetItemCount(n int) {
	c := z.coord()
	if n < 0 {
		n = 0
	}
	z.opts.ItemCount = n
	c.registry.UpdateItemCount(z.id, n)
}

func (z *Zone) SetDropDisabled(disabled bool) {
	c := z.coord()
	z.opts.DropDisabled = disabled
	c.registry.SetDropDisabled(z.id, disabled)
}

func (z *Zone) SetDragDisabled(disabled bool) {
	z.coord()
	z.opts.DragDisabled = disabled
}

// Grid returns the zone's current grid.
func (z *Zone) Grid() geometry.Grid {
	rec, _ := z.coord().registry.Lookup(z.id)
	return rec.Grid
}

// Bounds returns the zone's last known bounds.
func (z *Zone) Bounds() dropzone.Bounds {
	rec, _ := z.coord().registry.Lookup(z.id)
	return rec.Bounds
}

// Unmount removes the container. A drag that started here is cancelled and
// a traversal into it is abandoned.
func (z *Zone) Unmount() {
	c := z.coord()
	if d := c.drag; d != nil && d.zone == z {
		c.DragCancel()
	}
	if a, ok := c.traversal.Active(); ok && a.TargetID == z.id {
		c.traversal.End()
	}
	c.registry.Unregister(z.id)
	if c.zones[z.id] == z {
		delete(c.zones, z.id)
	}
}

// DragStart begins dragging the item at index. Bounds of every container are
// refreshed once here; they are not remeasured during motion.
func (z *Zone) DragStart(index int) error {
	c := z.coord()
	if c.drag != nil {
		return wrapZoneErr("drag start", z.id, ErrDragInProgress)
	}
	if z.opts.DragDisabled {
		c.logf("drag start %s[%d]: %v", z.id, index, ErrDragDisabled)
		return wrapZoneErr("drag start", z.id, ErrDragDisabled)
	}
	if index < 0 || index >= z.opts.ItemCount {
		return wrapZoneErr("drag start", z.id, ErrIndexOutOfRange)
	}
	if z.opts.Pinned != nil && z.opts.Pinned(index) {
		c.logf("drag start %s[%d]: %v", z.id, index, ErrItemPinned)
		return wrapZoneErr("drag start", z.id, ErrItemPinned)
	}

	c.traversal.Settle()
	c.registry.RemeasureAll()
	if !z.Grid().Measured() {
		return wrapZoneErr("drag start", z.id, ErrNotMeasured)
	}
	c.drag = &dragState{zone: z, index: index, over: z.id}
	return nil
}

// MountHint is where a freshly mounted item should begin its entrance.
type MountHint struct {
	Token traversal.Token
	// Source is the target slot in the source container's space.
	Source geometry.Position
	// Local is the point the item was released at, in this zone's space.
	Local geometry.Position
}

// Placement tells the rendering layer where to draw one item.
type Placement struct {
	Index    int
	Slot     int
	Position geometry.Position
	Dragging bool
	Mount    *MountHint
}

// Layout computes where each item of the zone is drawn right now: preview
// slots while dragging inside the zone, a gap held open while another
// zone's item traverses into it, the dragged item at its live position, and
// the one-shot entrance hint after a commit into this zone.
func (z *Zone) Layout() []Placement {
	c := z.coord()
	rec, ok := c.registry.Lookup(z.id)
	if !ok || !rec.Grid.Measured() {
		return nil
	}
	n := rec.ItemCount
	slots := z.preview.Slots(n)

	gap := -1
	if a, ok := c.traversal.Active(); ok && a.TargetID == z.id {
		gap = a.TargetIndex
	}
	var hint *MountHint
	hintIndex := -1
	if p, ok := c.traversal.Pending(); ok && p.TargetID == z.id {
		hint = &MountHint{Token: p.Token, Source: p.Mount, Local: p.Pointer}
		hintIndex = p.TargetIndex
	}

	out := make([]Placement, n)
	for i := 0; i < n; i++ {
		pl := Placement{Index: i, Slot: slots[i]}
		if gap >= 0 {
			pl.Position = geometry.IndexToPositionExcluding(pl.Slot, rec.Grid, gap)
		} else {
			pl.Position = geometry.IndexToPosition(pl.Slot, rec.Grid)
		}
		if d := c.drag; d != nil && d.zone == z && d.index == i {
			pl.Dragging = true
			pl.Position = geometry.IndexToPosition(i, rec.Grid).Add(geometry.Position{X: d.dx, Y: d.dy})
		}
		if i == hintIndex {
			pl.Mount = hint
		}
		out[i] = pl
	}
	return out
}

// ConsumeMount takes the pending entrance hint for this zone, returning the
// coordinator to idle. It yields nothing when no commit targets this zone.
func (z *Zone) ConsumeMount() (MountHint, bool) {
	c := z.coord()
	p, ok := c.traversal.Pending()
	if !ok || p.TargetID != z.id {
		return MountHint{}, false
	}
	if _, ok := c.traversal.Consume(p.Token); !ok {
		return MountHint{}, false
	}
	return MountHint{Token: p.Token, Source: p.Mount, Local: p.Pointer}, true
}
