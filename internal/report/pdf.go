// Package report renders a board layout snapshot as a PDF.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/gridswap/internal/geometry"
	"github.com/akyairhashvil/gridswap/internal/models"
	"github.com/go-pdf/fpdf"
)

// Page metrics in millimetres.
const (
	margin      = 15.0
	cellWidth   = 40.0
	cellHeight  = 14.0
	titleHeight = 10.0
	boardGap    = 8.0
	pageBottom  = 280.0
)

// WritePDF draws every board as a grid of cells, each item at the slot the
// grid geometry assigns to its index.
func WritePDF(w io.Writer, title string, boards []models.Board) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(14)

	for _, b := range boards {
		columns := b.Columns
		if columns <= 0 {
			columns = 1
		}
		g := geometry.Grid{Columns: columns, ColumnWidth: cellWidth, RowHeight: cellHeight}
		height := titleHeight + float64(g.Rows(len(b.Items)))*cellHeight
		if pdf.GetY()+height > pageBottom {
			pdf.AddPage()
		}

		pdf.SetFont("Arial", "B", 13)
		header := fmt.Sprintf("%s (%d)", b.Title, len(b.Items))
		if !b.AcceptsDrops() {
			header += " [no drops]"
		}
		pdf.Cell(0, titleHeight, header)
		pdf.Ln(titleHeight)

		top := pdf.GetY()
		pdf.SetFont("Arial", "", 10)
		for i, it := range b.Items {
			pos := geometry.IndexToPosition(i, g)
			pdf.SetXY(margin+pos.X, top+pos.Y)
			label := it.Label
			if it.Pinned {
				label += " *"
			}
			pdf.CellFormat(cellWidth-2, cellHeight-2, label, "1", 0, "C", false, 0, "")
		}
		pdf.SetXY(margin, top+float64(g.Rows(len(b.Items)))*cellHeight+boardGap)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// WritePDFFile writes the snapshot to dir/name and returns the absolute path.
func WritePDFFile(dir, name, title string, boards []models.Board) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	if err := WritePDF(f, title, boards); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
