// Package board owns the demo's item lists and applies committed moves to
// them.
package board

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/gridswap/internal/listmove"
	"github.com/akyairhashvil/gridswap/internal/models"
)

var ErrBoardNotFound = errors.New("board not found")

// Set is an ordered collection of boards.
type Set struct {
	boards []models.Board
}

func NewSet(boards ...models.Board) *Set {
	return &Set{boards: append([]models.Board(nil), boards...)}
}

// Boards returns the boards in display order.
func (s *Set) Boards() []models.Board {
	return s.boards
}

// Snapshot returns a deep copy of the boards, safe to read while the set
// keeps changing.
func (s *Set) Snapshot() []models.Board {
	out := make([]models.Board, len(s.boards))
	for i, b := range s.boards {
		b.Items = append([]models.Item(nil), b.Items...)
		out[i] = b
	}
	return out
}

// Get returns the board with id.
func (s *Set) Get(id string) (models.Board, bool) {
	i := s.index(id)
	if i < 0 {
		return models.Board{}, false
	}
	return s.boards[i], true
}

func (s *Set) index(id string) int {
	for i, b := range s.boards {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// Apply moves item sourceIndex of board sourceID to targetIndex of board
// targetID. A same-board move reorders in place.
func (s *Set) Apply(sourceID string, sourceIndex, targetIndex int, targetID string) error {
	si := s.index(sourceID)
	if si < 0 {
		return fmt.Errorf("apply move from %s: %w", sourceID, ErrBoardNotFound)
	}
	if sourceID == targetID {
		items, err := listmove.Reorder(s.boards[si].Items, sourceIndex, targetIndex)
		if err != nil {
			return fmt.Errorf("apply move within %s: %w", sourceID, err)
		}
		s.boards[si].Items = items
		return nil
	}

	ti := s.index(targetID)
	if ti < 0 {
		return fmt.Errorf("apply move to %s: %w", targetID, ErrBoardNotFound)
	}
	src, dst, err := listmove.Move(s.boards[si].Items, s.boards[ti].Items, sourceIndex, targetIndex)
	if err != nil {
		return fmt.Errorf("apply move %s -> %s: %w", sourceID, targetID, err)
	}
	s.boards[si].Items = src
	s.boards[ti].Items = dst
	return nil
}
