// Defines the Party struct that models one arriving group in the simulation.
// Tracks arrival time, seating needs, consumable needs, and dining duration.

package sim

import (
	"fmt"
)

// PartyState represents the lifecycle state of a party.
type PartyState string

const (
	StateArrived  PartyState = "arrived"
	StateWaiting  PartyState = "waiting"
	StateSeated   PartyState = "seated"
	StateLeft     PartyState = "left"
	StateTimedOut PartyState = "timed_out"
)

// Party models a single arriving group's seating requirements.
// Each party has:
// - an arrival time on the logical clock (in ticks)
// - a size (number of people to seat)
// - consumable needs (baby chairs, wheelchair spots) drawn from the shared pool
// - a dining duration (in ticks)
//
// A Party is immutable once created. It is owned by its Actor for the duration
// of the run; everything else reads it through events and frames.
type Party struct {
	ID string `json:"id"` // Unique identifier for the party

	Arrival         int64 `json:"arrivalTime"`     // Timestamp in ticks when the party arrives
	Size            int   `json:"partySize"`       // Number of people to seat (>= 1)
	BabyChairs      int   `json:"babyChairs"`      // Baby-chair attachments required
	WheelchairSpots int   `json:"wheelchairSpots"` // Wheelchair spots required; > 0 forces an accessible table
	DiningTime      int64 `json:"diningTime"`      // How long the party occupies its seats (in ticks)
}

// NeedsAccessible reports whether the party must be placed at an
// accessibility-capable table. Counter seats are never eligible for such
// parties, regardless of size.
func (p *Party) NeedsAccessible() bool {
	return p.WheelchairSpots > 0
}

// This method returns a human-readable string representation of a Party.
func (p Party) String() string {
	return fmt.Sprintf("Party: (ID: %s, Arrival: %d, Size: %d, Baby: %d, Wheel: %d, Dining: %d)",
		p.ID, p.Arrival, p.Size, p.BabyChairs, p.WheelchairSpots, p.DiningTime)
}
