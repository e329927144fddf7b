// Package dropzone tracks the containers that can take part in a drag and
// resolves which of them a pointer is over.
package dropzone

import "github.com/akyairhashvil/gridswap/internal/geometry"

// Record is everything the registry knows about one container.
type Record struct {
	ID           string
	Bounds       Bounds
	Grid         geometry.Grid
	ItemCount    int
	DropDisabled bool
	Remeasure    func()
}

// Registry holds the containers of one coordinating tree. It is not safe for
// concurrent use; every call happens on the event-dispatch goroutine.
type Registry struct {
	order   []string
	records map[string]*Record
}

func NewRegistry() *Registry {
	return &Registry{records: make(map[string]*Record)}
}

// Register inserts rec under id. Registering an id again replaces its record
// but keeps its place in the scan order.
func (r *Registry) Register(id string, rec Record) {
	rec.ID = id
	if existing, ok := r.records[id]; ok {
		*existing = rec
		return
	}
	r.order = append(r.order, id)
	r.records[id] = &rec
}

// Unregister removes id. Unknown ids are ignored.
func (r *Registry) Unregister(id string) {
	if _, ok := r.records[id]; !ok {
		return
	}
	delete(r.records, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Lookup returns a copy of the record for id.
func (r *Registry) Lookup(id string) (Record, bool) {
	rec, ok := r.records[id]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// Len returns the number of registered containers.
func (r *Registry) Len() int { return len(r.order) }

// IDs returns container ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) UpdateBounds(id string, b Bounds) bool {
	return r.update(id, func(rec *Record) { rec.Bounds = b })
}

func (r *Registry) UpdateGrid(id string, g geometry.Grid) bool {
	return r.update(id, func(rec *Record) { rec.Grid = g })
}

func (r *Registry) UpdateItemCount(id string, n int) bool {
	if n < 0 {
		n = 0
	}
	return r.update(id, func(rec *Record) { rec.ItemCount = n })
}

func (r *Registry) SetDropDisabled(id string, disabled bool) bool {
	return r.update(id, func(rec *Record) { rec.DropDisabled = disabled })
}

func (r *Registry) update(id string, fn func(*Record)) bool {
	rec, ok := r.records[id]
	if !ok {
		return false
	}
	fn(rec)
	return true
}

// ToPage converts a point local to container id into page space. An unknown
// id passes the point through unchanged; containers can disappear mid-drag.
func (r *Registry) ToPage(id string, x, y float64) geometry.Position {
	p := geometry.Position{X: x, Y: y}
	rec, ok := r.records[id]
	if !ok {
		return p
	}
	return p.Add(rec.Bounds.Offset())
}

// ToLocal converts a page-space point into the space of container id, with
// the same pass-through fallback as ToPage.
func (r *Registry) ToLocal(id string, x, y float64) geometry.Position {
	p := geometry.Position{X: x, Y: y}
	rec, ok := r.records[id]
	if !ok {
		return p
	}
	return p.Sub(rec.Bounds.Offset())
}

// Diff returns the offset of container to relative to container from, or
// the zero vector when either is unknown.
func (r *Registry) Diff(from, to string) geometry.Position {
	a, okA := r.records[from]
	b, okB := r.records[to]
	if !okA || !okB {
		return geometry.Position{}
	}
	return b.Bounds.Offset().Sub(a.Bounds.Offset())
}

// HitTest resolves a point local to the origin container to the first other
// container, in registration order, whose bounds strictly contain it.
// Containers with drops disabled are skipped.
func (r *Registry) HitTest(originID string, localX, localY float64) (string, bool) {
	p := r.ToPage(originID, localX, localY)
	for _, id := range r.order {
		if id == originID {
			continue
		}
		rec := r.records[id]
		if rec.DropDisabled {
			continue
		}
		if rec.Bounds.Contains(p.X, p.Y) {
			return id, true
		}
	}
	return "", false
}

// Contains reports whether a point local to id lies inside id's own bounds.
func (r *Registry) Contains(id string, localX, localY float64) bool {
	rec, ok := r.records[id]
	if !ok {
		return false
	}
	p := r.ToPage(id, localX, localY)
	return rec.Bounds.Contains(p.X, p.Y)
}

// RemeasureAll asks every container to refresh its bounds. It runs once when
// a gesture starts, not during motion.
func (r *Registry) RemeasureAll() {
	ids := r.IDs()
	for _, id := range ids {
		rec, ok := r.records[id]
		if !ok || rec.Remeasure == nil {
			continue
		}
		rec.Remeasure()
	}
}
