package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/gridswap/internal/models"
	"github.com/akyairhashvil/gridswap/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestWritePDF(t *testing.T) {
	boards := []testBoard{
		{id: "A", items: 5},
		{id: "B", items: 0},
	}
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, "Layout", build(boards)))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestWritePDFManyBoardsPaginates(t *testing.T) {
	var boards []testBoard
	for i := 0; i < 12; i++ {
		boards = append(boards, testBoard{id: string(rune('A' + i)), items: 9})
	}
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, "Layout", build(boards)))
	// "/Type /Pages" matches once alongside one "/Type /Page" per page.
	require.Greater(t, bytes.Count(buf.Bytes(), []byte("/Type /Page")), 2)
}

func TestWritePDFFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	path, err := WritePDFFile(dir, "out.pdf", "Layout", build([]testBoard{{id: "A", items: 2}}))
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

type testBoard struct {
	id    string
	items int
}

func build(specs []testBoard) []models.Board {
	out := make([]models.Board, len(specs))
	for i, s := range specs {
		out[i] = testutil.NewBoard(s.id).WithItems(s.items).Build()
	}
	return out
}
