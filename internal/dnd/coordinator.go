// Package dnd coordinates drag gestures across the grid containers of one
// tree: it owns the dropzone registry, the traversal state machine and each
// container's reorder preview, and reports completed moves exactly once.
//
// Everything runs on the caller's event goroutine. A Coordinator is not safe
// for concurrent use.
package dnd

import (
	"log"

	"github.com/akyairhashvil/gridswap/internal/dropzone"
	"github.com/akyairhashvil/gridswap/internal/geometry"
	"github.com/akyairhashvil/gridswap/internal/traversal"
)

// ChangeFunc receives a completed move. For a move inside one container
// targetID equals sourceID. The caller applies the move to its own lists.
type ChangeFunc func(sourceID string, sourceIndex, targetIndex int, targetID string)

// Change is a completed move as returned by DragEnd.
type Change struct {
	SourceID    string
	SourceIndex int
	TargetIndex int
	TargetID    string
}

// CrossZone reports whether the item left its container.
func (c Change) CrossZone() bool { return c.SourceID != c.TargetID }

type Option func(*Coordinator)

// WithLogger makes the coordinator log refused drags and commits.
func WithLogger(l *log.Logger) Option {
	return func(c *Coordinator) { c.logger = l }
}

type Coordinator struct {
	registry  *dropzone.Registry
	traversal traversal.Machine
	zones     map[string]*Zone
	onChange  ChangeFunc
	drag      *dragState
	logger    *log.Logger
}

type dragState struct {
	zone   *Zone
	index  int
	dx, dy float64
	over   string // container the dragged cell's centre resolves to, "" for none
}

func New(onChange ChangeFunc, opts ...Option) *Coordinator {
	c := &Coordinator{
		registry: dropzone.NewRegistry(),
		zones:    make(map[string]*Zone),
		onChange: onChange,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Coordinator) live() *Coordinator {
	if c == nil {
		panic(ErrNoCoordinator)
	}
	return c
}

// Registry exposes the coordinator's registry for read access.
func (c *Coordinator) Registry() *dropzone.Registry {
	return c.live().registry
}

// Traversal returns the current traversal state.
func (c *Coordinator) Traversal() traversal.State {
	return c.live().traversal.State()
}

// Zone returns the mounted zone with id.
func (c *Coordinator) Zone(id string) (*Zone, bool) {
	z, ok := c.live().zones[id]
	return z, ok
}

// Dragging returns the zone and index of the item being dragged.
func (c *Coordinator) Dragging() (string, int, bool) {
	d := c.live().drag
	if d == nil {
		return "", 0, false
	}
	return d.zone.id, d.index, true
}

// Over returns the container the drag currently resolves to.
func (c *Coordinator) Over() (string, bool) {
	d := c.live().drag
	if d == nil || d.over == "" {
		return "", false
	}
	return d.over, true
}

// DragMove updates the drag with the cumulative pointer delta since
// DragStart. It reports whether any rendered state changed. Without an
// active drag it does nothing.
func (c *Coordinator) DragMove(dx, dy float64) bool {
	d := c.live().drag
	if d == nil {
		return false
	}
	d.dx, d.dy = dx, dy
	origin := d.zone

	rec, _ := c.registry.Lookup(origin.id)
	corner := geometry.IndexToPosition(d.index, rec.Grid).Add(geometry.Position{X: dx, Y: dy})
	center := corner.Add(geometry.CenterOffset(rec.Grid))

	if target, ok := c.registry.HitTest(origin.id, center.X, center.Y); ok {
		d.over = target
		changed, err := c.traversal.Traverse(c.registry, origin.id, target, corner.X, corner.Y, d.index)
		if err != nil {
			c.logf("drag move: %v", err)
			return false
		}
		// The dragged item has left: siblings close up behind it.
		last := rec.ItemCount - 1
		return origin.preview.Update(d.index, last) || changed
	}

	changed := c.traversal.End()
	if c.registry.Contains(origin.id, center.X, center.Y) {
		d.over = origin.id
		target := geometry.TargetIndexForDrag(d.index, rec.Grid, rec.ItemCount, dx, dy)
		if target >= rec.ItemCount {
			target = rec.ItemCount - 1
		}
		return origin.preview.Update(d.index, target) || changed
	}
	d.over = ""
	return origin.preview.Clear() || changed
}

// DragEnd finishes the gesture. A traversal is committed and a reorder
// inside the origin is reported; both fire the ChangeFunc exactly once. A
// release at the origin slot reports nothing. A release over no container
// also reports nothing: the item goes back to its slot instead of being
// appended to the end of its own list.
func (c *Coordinator) DragEnd() (Change, bool) {
	d := c.live().drag
	if d == nil {
		return Change{}, false
	}
	c.drag = nil
	origin := d.zone
	defer origin.preview.Clear()

	if a, ok := c.traversal.Active(); ok {
		ch := Change{SourceID: a.SourceID, SourceIndex: a.SourceIndex, TargetIndex: a.TargetIndex, TargetID: a.TargetID}
		if _, err := c.traversal.Commit(c.notify); err != nil {
			c.logf("drag end: %v", err)
			return Change{}, false
		}
		return ch, true
	}

	p, ok := origin.preview.Current()
	if !ok || d.over != origin.id || p.TargetIndex == d.index {
		return Change{}, false
	}
	ch := Change{SourceID: origin.id, SourceIndex: d.index, TargetIndex: p.TargetIndex, TargetID: origin.id}
	c.notify(ch.SourceID, ch.SourceIndex, ch.TargetIndex, ch.TargetID)
	return ch, true
}

// DragCancel abandons the gesture as if it had been released in place. No
// change is reported.
func (c *Coordinator) DragCancel() {
	d := c.live().drag
	if d == nil {
		return
	}
	c.drag = nil
	c.traversal.End()
	d.zone.preview.Clear()
}

// Pending returns the token of a commit that has not been rendered yet.
func (c *Coordinator) Pending() (traversal.Token, bool) {
	p, ok := c.live().traversal.Pending()
	return p.Token, ok
}

// Settle discards a pending commit once its render cycle has passed. A new
// gesture settles implicitly.
func (c *Coordinator) Settle() bool {
	return c.live().traversal.Settle()
}

func (c *Coordinator) notify(sourceID string, sourceIndex, targetIndex int, targetID string) {
	c.logf("commit %s[%d] -> %s[%d]", sourceID, sourceIndex, targetID, targetIndex)
	if c.onChange != nil {
		c.onChange(sourceID, sourceIndex, targetIndex, targetID)
	}
}

func (c *Coordinator) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
