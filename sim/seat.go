// Defines seat descriptors and the in-memory seat registry guarded by the Monitor.

package sim

import "fmt"

// SeatClass distinguishes the two kinds of physical seating units.
type SeatClass string

const (
	// SeatCounter is a single-occupant counter seat (capacity 1).
	SeatCounter SeatClass = "counter"
	// SeatTable is a multi-occupant table with a fixed capacity (>= 2).
	// A table is allocated whole: one table per party, never shared.
	SeatTable SeatClass = "table"
)

// Seat describes one physical seating unit as configured at startup.
// Descriptors are immutable; occupancy lives on SeatState inside the Monitor.
type Seat struct {
	ID         string    `json:"id" yaml:"id"`
	Class      SeatClass `json:"class" yaml:"class"`
	Capacity   int       `json:"capacity" yaml:"capacity"`     // 1 for counter seats
	Accessible bool      `json:"accessible" yaml:"accessible"` // wheelchair-capable (tables only)
}

// SeatState pairs a seat descriptor with its current occupancy.
// OccupiedBy is the owning party's ID, or "" when free. It is mutated only
// while holding the Monitor's lock.
type SeatState struct {
	Seat
	OccupiedBy string
}

// Free reports whether the seat is currently unoccupied.
func (s *SeatState) Free() bool {
	return s.OccupiedBy == ""
}

func (s Seat) String() string {
	return fmt.Sprintf("Seat: (ID: %s, Class: %s, Capacity: %d, Accessible: %v)",
		s.ID, s.Class, s.Capacity, s.Accessible)
}

// newRegistry builds the mutable seat registry from the configured layout,
// preserving registry order (allocation scans depend on it).
func newRegistry(layout []Seat) []*SeatState {
	registry := make([]*SeatState, 0, len(layout))
	for _, seat := range layout {
		registry = append(registry, &SeatState{Seat: seat})
	}
	return registry
}
