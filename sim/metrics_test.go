package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMetrics_AggregatesFromSortedLog(t *testing.T) {
	// GIVEN a sorted log with one seated party and one timeout
	events := []Event{
		{Time: 0, Seq: 0, PartyID: "P1", Kind: KindArrived},
		{Time: 0, Seq: 1, PartyID: "P2", Kind: KindArrived},
		{Time: 5, Seq: 2, PartyID: "P1", Kind: KindSeated, Seats: []string{"C1", "C2"}},
		{Time: 8, Seq: 3, PartyID: "P2", Kind: KindTimedOut},
		{Time: 20, Seq: 4, PartyID: "P1", Kind: KindLeft, Seats: []string{"C1", "C2"}},
	}

	// WHEN metrics are computed
	m := ComputeMetrics(events)

	// THEN counts, wait, and peak usage reflect the log
	assert.Equal(t, 1, m.SeatedParties)
	assert.Equal(t, 1, m.TimedOutParties)
	assert.Equal(t, int64(5), m.TotalWaitTicks)
	assert.Equal(t, 2, m.PeakSeatsInUse)
	assert.Equal(t, int64(20), m.LastEventTime)
}

func TestComputeMetrics_EmptyLog(t *testing.T) {
	m := ComputeMetrics(nil)
	assert.Equal(t, 0, m.SeatedParties)
	assert.Equal(t, 0, m.TimedOutParties)
	assert.Equal(t, int64(0), m.LastEventTime)
}
