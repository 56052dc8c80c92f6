package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/HiDomesticCat/sushi-sync/sim"
)

func TestLoadLayout_YAML(t *testing.T) {
	// GIVEN a YAML layout with a counter (capacity omitted) and a table
	doc := `seats:
  - id: C1
    class: counter
  - id: T1
    class: table
    capacity: 4
    accessible: true
`
	path := writeTempFile(t, "layout.yaml", doc)

	// WHEN the layout is loaded
	seats, err := LoadLayout(path)

	// THEN document order is preserved and counters default to capacity 1
	require.NoError(t, err)
	require.Len(t, seats, 2)
	assert.Equal(t, sim.Seat{ID: "C1", Class: sim.SeatCounter, Capacity: 1}, seats[0])
	assert.Equal(t, sim.Seat{ID: "T1", Class: sim.SeatTable, Capacity: 4, Accessible: true}, seats[1])
}

func TestLoadLayout_JSON(t *testing.T) {
	doc := `{"seats": [
		{"id": "T1", "class": "table", "capacity": 6, "accessible": true},
		{"id": "C1", "class": "counter", "capacity": 1}
	]}`
	path := writeTempFile(t, "layout.json", doc)

	seats, err := LoadLayout(path)
	require.NoError(t, err)
	require.Len(t, seats, 2)
	assert.Equal(t, "T1", seats[0].ID)
	assert.Equal(t, sim.SeatTable, seats[0].Class)
}

func TestLoadLayout_UnsupportedExtension(t *testing.T) {
	path := writeTempFile(t, "layout.toml", "seats = []")
	_, err := LoadLayout(path)
	assert.Error(t, err)
}

func TestLoadLayout_MalformedDocument(t *testing.T) {
	path := writeTempFile(t, "layout.json", "{not json")
	_, err := LoadLayout(path)
	assert.Error(t, err)
}
