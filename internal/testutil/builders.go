package testutil

import (
	"fmt"

	"github.com/akyairhashvil/gridswap/internal/dropzone"
	"github.com/akyairhashvil/gridswap/internal/geometry"
	"github.com/akyairhashvil/gridswap/internal/models"
)

// BoardBuilder provides fluent API for creating test boards.
type BoardBuilder struct {
	board models.Board
}

func NewBoard(id string) *BoardBuilder {
	return &BoardBuilder{
		board: models.Board{
			ID:      id,
			Title:   "Board " + id,
			Columns: 3,
			Kind:    models.KindBoard,
		},
	}
}

func (b *BoardBuilder) WithColumns(n int) *BoardBuilder {
	b.board.Columns = n
	return b
}

func (b *BoardBuilder) WithKind(k models.BoardKind) *BoardBuilder {
	b.board.Kind = k
	return b
}

// WithItems appends n items labelled "<id>-<i>".
func (b *BoardBuilder) WithItems(n int) *BoardBuilder {
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("%s-%d", b.board.ID, len(b.board.Items))
		b.board.Items = append(b.board.Items, models.Item{ID: id, Label: id})
	}
	return b
}

func (b *BoardBuilder) Build() models.Board {
	return b.board
}

// ZoneBuilder provides fluent API for creating registry records.
type ZoneBuilder struct {
	rec dropzone.Record
}

// NewZone starts a 3-column, 100x100-cell zone at the page origin.
func NewZone() *ZoneBuilder {
	return &ZoneBuilder{
		rec: dropzone.Record{
			Bounds: dropzone.NewBounds(0, 0, 300, 300),
			Grid:   geometry.Grid{Columns: 3, ColumnWidth: 100, RowHeight: 100},
		},
	}
}

func (b *ZoneBuilder) At(left, top float64) *ZoneBuilder {
	b.rec.Bounds = dropzone.NewBounds(left, top, b.rec.Bounds.Width, b.rec.Bounds.Height)
	return b
}

func (b *ZoneBuilder) Sized(width, height float64) *ZoneBuilder {
	b.rec.Bounds = dropzone.NewBounds(b.rec.Bounds.Left, b.rec.Bounds.Top, width, height)
	return b
}

func (b *ZoneBuilder) WithGrid(g geometry.Grid) *ZoneBuilder {
	b.rec.Grid = g
	return b
}

func (b *ZoneBuilder) WithItems(n int) *ZoneBuilder {
	b.rec.ItemCount = n
	return b
}

func (b *ZoneBuilder) DropDisabled() *ZoneBuilder {
	b.rec.DropDisabled = true
	return b
}

func (b *ZoneBuilder) OnRemeasure(fn func()) *ZoneBuilder {
	b.rec.Remeasure = fn
	return b
}

func (b *ZoneBuilder) Build() dropzone.Record {
	return b.rec
}
