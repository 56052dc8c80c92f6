// Implements the frame replay generator: a pure, deterministic fold over the
// sorted event log producing one snapshot per logical tick, ready for a
// visualization layer. Consumes no locks and performs no blocking.

package sim

// SeatView is the per-seat slice of a Frame: the seat descriptor plus its
// occupancy at that tick.
type SeatView struct {
	ID         string    `json:"id"`
	Class      SeatClass `json:"class"`
	Capacity   int       `json:"capacity"`
	Accessible bool      `json:"accessible"`
	OccupiedBy string    `json:"occupiedBy,omitempty"`
	BabyChairs int       `json:"babyChairs,omitempty"`
}

// Frame is a read-only snapshot of the whole system at one logical tick.
type Frame struct {
	Timestamp int64      `json:"timestamp"`
	Seats     []SeatView `json:"seats"`
	Waiting   []string   `json:"waitingQueue"` // party IDs still unseated at this tick
	Events    []Event    `json:"events"`       // events whose timestamp equals this tick
	Logs      []string   `json:"logs"`         // cumulative log of messages
}

// BuildFrames folds the sorted event log into frames for every tick from 0
// to the last event timestamp plus grace. The grace period exists purely so
// the final LEFT events stay visible in at least one trailing frame.
func BuildFrames(layout []Seat, events []Event, grace int64) []Frame {
	var maxTime int64
	for _, e := range events {
		if e.Time > maxTime {
			maxTime = e.Time
		}
	}

	seats := make([]SeatView, len(layout))
	for i, s := range layout {
		seats[i] = SeatView{ID: s.ID, Class: s.Class, Capacity: s.Capacity, Accessible: s.Accessible}
	}
	seatIdx := make(map[string]int, len(layout))
	for i, s := range layout {
		seatIdx[s.ID] = i
	}

	var waiting []string
	var logs []string
	frames := make([]Frame, 0, maxTime+grace+1)
	next := 0

	for t := int64(0); t <= maxTime+grace; t++ {
		for next < len(events) && events[next].Time <= t {
			e := events[next]
			next++
			logs = append(logs, e.Message)

			switch e.Kind {
			case KindArrived, KindWaiting:
				waiting = addWaiting(waiting, e.PartyID)
			case KindSeated:
				waiting = removeWaiting(waiting, e.PartyID)
				for i, id := range e.Seats {
					view := &seats[seatIdx[id]]
					view.OccupiedBy = e.PartyID
					if i < len(e.BabyChairs) {
						view.BabyChairs = e.BabyChairs[i]
					}
				}
			case KindLeft:
				for _, id := range e.Seats {
					view := &seats[seatIdx[id]]
					view.OccupiedBy = ""
					view.BabyChairs = 0
				}
			case KindTimedOut:
				waiting = removeWaiting(waiting, e.PartyID)
			}
		}

		frames = append(frames, Frame{
			Timestamp: t,
			Seats:     append([]SeatView(nil), seats...),
			Waiting:   append([]string(nil), waiting...),
			Events:    eventsAt(events, t),
			Logs:      append([]string(nil), logs...),
		})
	}
	return frames
}

func addWaiting(waiting []string, partyID string) []string {
	for _, id := range waiting {
		if id == partyID {
			return waiting
		}
	}
	return append(waiting, partyID)
}

func removeWaiting(waiting []string, partyID string) []string {
	for i, id := range waiting {
		if id == partyID {
			return append(waiting[:i], waiting[i+1:]...)
		}
	}
	return waiting
}

// eventsAt returns the events whose timestamp equals t, preserving log order.
func eventsAt(events []Event, t int64) []Event {
	var out []Event
	for _, e := range events {
		if e.Time == t {
			out = append(out, e)
		}
	}
	return out
}
