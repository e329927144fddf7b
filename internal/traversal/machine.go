package traversal

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/gridswap/internal/dropzone"
	"github.com/akyairhashvil/gridswap/internal/geometry"
)

var ErrInvalidTransition = errors.New("invalid traversal transition")

// TransitionError reports an event the current state cannot accept.
type TransitionError struct {
	From  Kind
	Event string
}

func (e *TransitionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s while %s: %v", e.Event, e.From, ErrInvalidTransition)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// CommitFunc receives a committed traversal.
type CommitFunc func(sourceID string, sourceIndex, targetIndex int, targetID string)

// Machine holds the traversal state of one coordinator. The zero value is
// Idle and ready to use.
type Machine struct {
	state State
	last  Token
}

// State returns the current state.
func (m *Machine) State() State {
	if m.state == nil {
		return Idle{}
	}
	return m.state
}

// Kind is shorthand for State().Kind().
func (m *Machine) Kind() Kind { return m.State().Kind() }

// Active returns the in-flight traversal, if any.
func (m *Machine) Active() (Active, bool) {
	a, ok := m.state.(Active)
	return a, ok
}

// Pending returns the committed traversal awaiting a render, if any.
func (m *Machine) Pending() (Committed, bool) {
	c, ok := m.state.(Committed)
	return c, ok
}

// Traverse points the drag of item sourceIndex from sourceID at targetID.
// (localX, localY) is the dragged cell's top-left corner in the source
// container's space. The stored state is only replaced when the target
// container or slot changes; the return value reports whether it was.
func (m *Machine) Traverse(reg *dropzone.Registry, sourceID, targetID string, localX, localY float64, sourceIndex int) (bool, error) {
	kind := m.Kind()
	if kind == KindCommitted {
		return false, &TransitionError{From: kind, Event: "traverse"}
	}

	page := reg.ToPage(sourceID, localX, localY)
	local := reg.ToLocal(targetID, page.X, page.Y)

	var (
		grid  geometry.Grid
		count int
	)
	if rec, ok := reg.Lookup(targetID); ok {
		grid, count = rec.Grid, rec.ItemCount
	}
	probe := local.Add(geometry.CenterOffset(grid))
	targetIndex := geometry.PositionToIndex(probe.X, probe.Y, grid, count)

	if cur, ok := m.Active(); ok && cur.TargetID == targetID && cur.TargetIndex == targetIndex {
		return false, nil
	}

	m.state = Active{
		SourceID:    sourceID,
		TargetID:    targetID,
		SourceIndex: sourceIndex,
		TargetIndex: targetIndex,
		Mount:       geometry.IndexToPosition(targetIndex, grid).Add(reg.Diff(sourceID, targetID)),
		Pointer:     local,
	}
	return true, nil
}

// End abandons any traversal and returns to Idle. It reports whether there
// was anything to abandon.
func (m *Machine) End() bool {
	had := m.Kind() != KindIdle
	m.state = Idle{}
	return had
}

// Commit reports the active traversal to fn and moves to Committed. fn runs
// after the state flips, so the caller may mutate its lists synchronously.
func (m *Machine) Commit(fn CommitFunc) (Token, error) {
	a, ok := m.Active()
	if !ok {
		return 0, &TransitionError{From: m.Kind(), Event: "commit"}
	}
	m.last++
	m.state = Committed{Active: a, Token: m.last}
	if fn != nil {
		fn(a.SourceID, a.SourceIndex, a.TargetIndex, a.TargetID)
	}
	return m.last, nil
}

// Consume returns the mount hint of commit tok and returns to Idle. A stale
// token leaves the state alone.
func (m *Machine) Consume(tok Token) (geometry.Position, bool) {
	c, ok := m.Pending()
	if !ok || c.Token != tok {
		return geometry.Position{}, false
	}
	m.state = Idle{}
	return c.Mount, true
}

// Settle discards a pending commit after its render cycle.
func (m *Machine) Settle() bool {
	if _, ok := m.Pending(); !ok {
		return false
	}
	m.state = Idle{}
	return true
}
