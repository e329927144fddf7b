package tui

import (
	"github.com/akyairhashvil/gridswap/internal/config"
	"github.com/akyairhashvil/gridswap/internal/dropzone"
	"github.com/akyairhashvil/gridswap/internal/geometry"
	"github.com/akyairhashvil/gridswap/internal/models"
)

// boardFrame is where a board sits on screen, in terminal cells. Boards are
// laid out left to right below the header.
type boardFrame struct {
	left, top     int // top-left of the grid area
	width, height int
}

// frames computes every board's grid area. The grid is one row taller than
// its items so there is always room to drop at the end.
func frames(boards []models.Board, cellW, cellH int) []boardFrame {
	out := make([]boardFrame, len(boards))
	left := config.BoardPadding
	for i, b := range boards {
		cols := b.Columns
		if cols <= 0 {
			cols = 1
		}
		g := geometry.Grid{Columns: cols, ColumnWidth: float64(cellW), RowHeight: float64(cellH)}
		out[i] = boardFrame{
			left:   left,
			top:    config.HeaderHeight + config.BoardTitleHeight,
			width:  cols * cellW,
			height: (g.Rows(len(b.Items)) + 1) * cellH,
		}
		left += out[i].width + config.BoardGap
	}
	return out
}

func (f boardFrame) bounds() dropzone.Bounds {
	return dropzone.NewBounds(float64(f.left), float64(f.top), float64(f.width), float64(f.height))
}

func (f boardFrame) right() int  { return f.left + f.width }
func (f boardFrame) bottom() int { return f.top + f.height }

// contains reports whether terminal cell (x, y) lies in the grid area.
func (f boardFrame) contains(x, y int) bool {
	return x >= f.left && x < f.right() && y >= f.top && y < f.bottom()
}
