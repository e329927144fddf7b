package models

// BoardKind distinguishes boards that accept drops from read-only shelves.
type BoardKind string

const (
	KindBoard BoardKind = "board"
	KindShelf BoardKind = "shelf" // drag source only
)

// Item is one cell in a board's grid.
type Item struct {
	ID     string `yaml:"id"`
	Label  string `yaml:"label"`
	Pinned bool   `yaml:"pinned"` // cannot be picked up
}

// Board is a single fixed-column grid of items.
type Board struct {
	ID      string    `yaml:"id"`
	Title   string    `yaml:"title"`
	Columns int       `yaml:"columns"`
	Kind    BoardKind `yaml:"kind"`
	Items   []Item    `yaml:"items"`
}

// AcceptsDrops reports whether items from other boards may land here.
func (b Board) AcceptsDrops() bool {
	return b.Kind != KindShelf
}

// IndexOf returns the position of the item with id, or -1.
func (b Board) IndexOf(id string) int {
	for i, it := range b.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
