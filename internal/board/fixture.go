package board

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akyairhashvil/gridswap/internal/config"
	"github.com/akyairhashvil/gridswap/internal/models"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var ErrInvalidFixture = errors.New("invalid board fixture")

type fixture struct {
	Boards []models.Board `yaml:"boards"`
}

// LoadFixture decodes boards from YAML. Missing ids are generated, missing
// column counts fall back to defaultColumns.
func LoadFixture(r io.Reader, defaultColumns int) (*Set, error) {
	var f fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidFixture)
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	if len(f.Boards) == 0 {
		return nil, fmt.Errorf("%w: no boards", ErrInvalidFixture)
	}

	seen := make(map[string]bool)
	for i := range f.Boards {
		b := &f.Boards[i]
		b.ID = strings.TrimSpace(b.ID)
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		if seen[b.ID] {
			return nil, fmt.Errorf("%w: duplicate board id %q", ErrInvalidFixture, b.ID)
		}
		seen[b.ID] = true
		if b.Columns <= 0 {
			b.Columns = defaultColumns
		}
		if b.Kind == "" {
			b.Kind = models.KindBoard
		}
		if b.Kind != models.KindBoard && b.Kind != models.KindShelf {
			return nil, fmt.Errorf("%w: board %q has unknown kind %q", ErrInvalidFixture, b.ID, b.Kind)
		}
		if b.Title == "" {
			b.Title = b.ID
		}
		for j := range b.Items {
			if b.Items[j].ID == "" {
				b.Items[j].ID = uuid.NewString()
			}
		}
	}
	return NewSet(f.Boards...), nil
}

// LoadFixtureFile reads a fixture from path.
func LoadFixtureFile(path string, defaultColumns int) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()
	return LoadFixture(f, defaultColumns)
}

// Sample returns the boards the demo starts with when no fixture is given.
func Sample(columns int) *Set {
	if columns <= 0 {
		columns = config.DefaultColumns
	}
	mk := func(labels ...string) []models.Item {
		out := make([]models.Item, len(labels))
		for i, l := range labels {
			out[i] = models.Item{ID: uuid.NewString(), Label: l}
		}
		return out
	}
	return NewSet(
		models.Board{ID: "todo", Title: "To do", Columns: columns, Kind: models.KindBoard,
			Items: mk("alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf")},
		models.Board{ID: "doing", Title: "Doing", Columns: columns, Kind: models.KindBoard,
			Items: mk("hotel", "india", "juliet")},
		models.Board{ID: "shelf", Title: "Shelf", Columns: 1, Kind: models.KindShelf,
			Items: mk("kilo", "lima")},
	)
}
