package traversal

import (
	"errors"
	"testing"

	"github.com/akyairhashvil/gridswap/internal/dropzone"
	"github.com/akyairhashvil/gridswap/internal/geometry"
)

func twoZoneRegistry() *dropzone.Registry {
	g := geometry.Grid{Columns: 3, ColumnWidth: 100, RowHeight: 100}
	r := dropzone.NewRegistry()
	r.Register("A", dropzone.Record{Bounds: dropzone.NewBounds(0, 0, 300, 200), Grid: g, ItemCount: 5})
	r.Register("B", dropzone.Record{Bounds: dropzone.NewBounds(300, 0, 300, 100), Grid: g, ItemCount: 3})
	return r
}

func TestZeroMachineIsIdle(t *testing.T) {
	var m Machine
	if m.Kind() != KindIdle {
		t.Fatalf("Kind() = %v, want idle", m.Kind())
	}
	if _, ok := m.Active(); ok {
		t.Fatalf("expected no active traversal")
	}
}

func TestTraverseIntoSecondZone(t *testing.T) {
	var m Machine
	changed, err := m.Traverse(twoZoneRegistry(), "A", "B", 400, 0, 2)
	if err != nil || !changed {
		t.Fatalf("Traverse = %v, %v", changed, err)
	}
	a, ok := m.Active()
	if !ok {
		t.Fatalf("expected active traversal, got %v", m.Kind())
	}
	want := Active{
		SourceID:    "A",
		TargetID:    "B",
		SourceIndex: 2,
		TargetIndex: 1,
		Mount:       geometry.Position{X: 400, Y: 0},
		Pointer:     geometry.Position{X: 100, Y: 0},
	}
	if a != want {
		t.Fatalf("Active = %+v, want %+v", a, want)
	}
}

func TestTraverseDeduplicatesSameSlot(t *testing.T) {
	var m Machine
	reg := twoZoneRegistry()
	if _, err := m.Traverse(reg, "A", "B", 400, 0, 2); err != nil {
		t.Fatalf("Traverse failed: %v", err)
	}
	first, _ := m.Active()

	changed, err := m.Traverse(reg, "A", "B", 420, 10, 2)
	if err != nil {
		t.Fatalf("Traverse failed: %v", err)
	}
	if changed {
		t.Fatalf("expected identical target pair to leave state untouched")
	}
	second, _ := m.Active()
	if first != second {
		t.Fatalf("state replaced: %+v -> %+v", first, second)
	}

	changed, _ = m.Traverse(reg, "A", "B", 500, 0, 2)
	if !changed {
		t.Fatalf("expected new slot to replace state")
	}
	third, _ := m.Active()
	if third.TargetIndex != 2 {
		t.Fatalf("TargetIndex = %d, want 2", third.TargetIndex)
	}
}

func TestTraverseClampsToAppend(t *testing.T) {
	var m Machine
	// Far below B's single row: every slot past the last item resolves to append.
	if _, err := m.Traverse(twoZoneRegistry(), "A", "B", 350, 500, 0); err != nil {
		t.Fatalf("Traverse failed: %v", err)
	}
	a, _ := m.Active()
	if a.TargetIndex != 3 {
		t.Fatalf("TargetIndex = %d, want 3", a.TargetIndex)
	}
}

func TestTraverseUnknownTargetFallsBack(t *testing.T) {
	var m Machine
	if _, err := m.Traverse(twoZoneRegistry(), "A", "gone", 400, 0, 1); err != nil {
		t.Fatalf("Traverse failed: %v", err)
	}
	a, _ := m.Active()
	if a.TargetIndex != 0 || a.Mount != (geometry.Position{}) {
		t.Fatalf("fallback Active = %+v", a)
	}
	if a.Pointer != (geometry.Position{X: 400}) {
		t.Fatalf("Pointer = %+v, want passthrough", a.Pointer)
	}
}

func TestCommitFiresOnceAndConsumes(t *testing.T) {
	var m Machine
	if _, err := m.Traverse(twoZoneRegistry(), "A", "B", 400, 0, 2); err != nil {
		t.Fatalf("Traverse failed: %v", err)
	}

	type call struct {
		src, dst string
		si, ti   int
	}
	var calls []call
	tok, err := m.Commit(func(src string, si, ti int, dst string) {
		if m.Kind() != KindCommitted {
			t.Errorf("callback ran before state flipped: %v", m.Kind())
		}
		calls = append(calls, call{src, dst, si, ti})
	})
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if len(calls) != 1 || calls[0] != (call{"A", "B", 2, 1}) {
		t.Fatalf("calls = %+v", calls)
	}

	if _, err := m.Commit(nil); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second Commit err = %v, want ErrInvalidTransition", err)
	}
	if _, err := m.Traverse(twoZoneRegistry(), "A", "B", 0, 0, 0); err == nil {
		t.Fatalf("expected traverse while committed to fail")
	}

	if _, ok := m.Consume(tok + 1); ok {
		t.Fatalf("stale token consumed")
	}
	mount, ok := m.Consume(tok)
	if !ok || mount != (geometry.Position{X: 400}) {
		t.Fatalf("Consume = %+v, %v", mount, ok)
	}
	if m.Kind() != KindIdle {
		t.Fatalf("Kind() = %v, want idle", m.Kind())
	}
	if _, ok := m.Consume(tok); ok {
		t.Fatalf("token consumed twice")
	}
}

func TestEndAndSettle(t *testing.T) {
	var m Machine
	if m.End() {
		t.Fatalf("End on idle reported a change")
	}
	_, _ = m.Traverse(twoZoneRegistry(), "A", "B", 400, 0, 2)
	if !m.End() || m.Kind() != KindIdle {
		t.Fatalf("End did not return to idle")
	}
	_, _ = m.Traverse(twoZoneRegistry(), "A", "B", 400, 0, 2)
	if _, err := m.Commit(nil); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if !m.Settle() || m.Kind() != KindIdle {
		t.Fatalf("Settle did not return to idle")
	}
	if m.Settle() {
		t.Fatalf("Settle on idle reported a change")
	}
}

func TestTransitionErrorMessage(t *testing.T) {
	var m Machine
	_, err := m.Commit(nil)
	var te *TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("err = %T, want *TransitionError", err)
	}
	if te.From != KindIdle || te.Event != "commit" {
		t.Fatalf("TransitionError = %+v", te)
	}
	if err.Error() != "commit while idle: invalid traversal transition" {
		t.Fatalf("Error() = %q", err.Error())
	}
}
