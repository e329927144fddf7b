// Package traversal tracks a drag whose pointer has left its origin
// container for another one.
package traversal

import "github.com/akyairhashvil/gridswap/internal/geometry"

type Kind int

const (
	KindIdle Kind = iota
	KindActive
	KindCommitted
)

func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindActive:
		return "active"
	case KindCommitted:
		return "committed"
	}
	return "unknown"
}

// State is one of Idle, Active or Committed.
type State interface {
	Kind() Kind
}

type Idle struct{}

func (Idle) Kind() Kind { return KindIdle }

// Active is an in-flight traversal into TargetID.
type Active struct {
	SourceID    string
	TargetID    string
	SourceIndex int
	TargetIndex int
	// Mount is the target slot expressed in the source container's space,
	// where the item mounted in the target starts its entrance.
	Mount geometry.Position
	// Pointer is the dragged cell's corner local to the target.
	Pointer geometry.Position
}

func (Active) Kind() Kind { return KindActive }

// Token identifies one commit so the rendering layer can tell whether the
// mount hint it holds is still pending.
type Token uint64

// Committed is a traversal whose change has been reported. It lives until
// the rendering layer consumes or settles it.
type Committed struct {
	Active
	Token Token
}

func (Committed) Kind() Kind { return KindCommitted }
