package sim

import "sort"

// EventKind tags the state transition an Event records.
type EventKind string

const (
	KindArrived  EventKind = "ARRIVED"
	KindWaiting  EventKind = "WAITING"
	KindSeated   EventKind = "SEATED"
	KindLeft     EventKind = "LEFT"
	KindTimedOut EventKind = "TIMED_OUT"
)

// Event is an immutable record of one state transition in the run.
//
// Time is the logical timestamp in ticks; Seq is a monotonically increasing
// sequence number assigned while holding the Monitor's lock. Sorting the
// finished log by (Time, Seq) yields one deterministic total order even
// though the real-time interleaving of actors is not deterministic.
type Event struct {
	Time    int64     `json:"timestamp"`
	Seq     int64     `json:"seq"`
	PartyID string    `json:"partyId"`
	Kind    EventKind `json:"type"`

	// Seats lists the seat IDs involved in a SEATED or LEFT transition.
	Seats []string `json:"seatIds,omitempty"`
	// BabyChairs is aligned with Seats and attributes the party's baby chairs
	// to individual seats for display. Allocation correctness never depends
	// on this split.
	BabyChairs []int `json:"babyChairs,omitempty"`

	Message string `json:"message"` // human-readable log line
}

// SortEvents orders events by (Time, Seq) ascending, in place.
// Time is the primary key; Seq breaks ties between events sharing a tick.
func SortEvents(events []Event) {
	sort.Slice(events, func(i, j int) bool {
		if events[i].Time != events[j].Time {
			return events[i].Time < events[j].Time
		}
		return events[i].Seq < events[j].Seq
	})
}
