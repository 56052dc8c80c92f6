package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	sim "github.com/HiDomesticCat/sushi-sync/sim"
)

// layoutDoc is the on-disk seat-layout document.
type layoutDoc struct {
	Seats []seatDoc `json:"seats" yaml:"seats"`
}

// seatDoc describes one seat in the layout document. Capacity defaults to 1
// for counter seats and is required for tables.
type seatDoc struct {
	ID         string `json:"id" yaml:"id"`
	Class      string `json:"class" yaml:"class"`
	Capacity   int    `json:"capacity" yaml:"capacity"`
	Accessible bool   `json:"accessible" yaml:"accessible"`
}

// LoadLayout reads a seat-layout document from a YAML or JSON file,
// auto-detected by extension. The registry order of the returned seats is
// the document order; the allocation policy's scans depend on it.
func LoadLayout(path string) ([]sim.Seat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open seat layout: %w", err)
	}

	var doc layoutDoc
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse seat layout YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse seat layout JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported seat layout format %q (want .yaml, .yml, or .json)", ext)
	}

	seats := make([]sim.Seat, 0, len(doc.Seats))
	for _, d := range doc.Seats {
		seat := sim.Seat{
			ID:         d.ID,
			Class:      sim.SeatClass(d.Class),
			Capacity:   d.Capacity,
			Accessible: d.Accessible,
		}
		if seat.Class == sim.SeatCounter && seat.Capacity == 0 {
			seat.Capacity = 1
		}
		seats = append(seats, seat)
	}
	return seats, nil
}
