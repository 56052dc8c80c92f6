// Aggregates end-of-run statistics from the sorted event log.

package sim

import "fmt"

// Metrics summarizes a finished run for final reporting.
// Computed purely from the sorted event log, after all actors exit.
type Metrics struct {
	SeatedParties   int   `json:"seatedParties"`
	TimedOutParties int   `json:"timedOutParties"`
	TotalWaitTicks  int64 `json:"totalWaitTicks"` // sum of (sit - arrival) over seated parties
	PeakSeatsInUse  int   `json:"peakSeatsInUse"` // max simultaneously occupied seat units
	LastEventTime   int64 `json:"lastEventTime"`
}

// ComputeMetrics walks the sorted event log and aggregates run statistics.
func ComputeMetrics(events []Event) *Metrics {
	m := &Metrics{}
	arrivals := make(map[string]int64)
	inUse := 0

	for _, e := range events {
		if e.Time > m.LastEventTime {
			m.LastEventTime = e.Time
		}
		switch e.Kind {
		case KindArrived:
			arrivals[e.PartyID] = e.Time
		case KindSeated:
			m.SeatedParties++
			m.TotalWaitTicks += e.Time - arrivals[e.PartyID]
			inUse += len(e.Seats)
			if inUse > m.PeakSeatsInUse {
				m.PeakSeatsInUse = inUse
			}
		case KindLeft:
			inUse -= len(e.Seats)
		case KindTimedOut:
			m.TimedOutParties++
		}
	}
	return m
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Seated Parties    : %d\n", m.SeatedParties)
	fmt.Printf("Timed Out Parties : %d\n", m.TimedOutParties)
	if m.SeatedParties > 0 {
		fmt.Printf("Average Wait      : %.2f ticks\n", float64(m.TotalWaitTicks)/float64(m.SeatedParties))
	}
	fmt.Printf("Peak Seats In Use : %d\n", m.PeakSeatsInUse)
	fmt.Printf("Last Event        : tick %d\n", m.LastEventTime)
}
