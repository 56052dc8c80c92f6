package sim

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitor_TryAllocate_ReservesSeatsAndConsumables(t *testing.T) {
	// GIVEN a monitor over the test layout and a party needing a baby chair
	m := NewMonitor(testLayout(), NewResourcePool(4, 2))
	party := &Party{ID: "P1", Arrival: 3, Size: 2, BabyChairs: 1, DiningTime: 10}

	// WHEN allocation succeeds
	seats, sit, ok := m.TryAllocate(party)

	// THEN the seats are occupied, the pool is deducted, and SEATED is logged
	require.True(t, ok)
	assert.Equal(t, []string{"T4"}, seats)
	assert.Equal(t, int64(3), sit)

	baby, wheel := m.PoolAvailable()
	assert.Equal(t, 3, baby)
	assert.Equal(t, 2, wheel)
	assert.Equal(t, map[string]string{"T4": "P1"}, m.Occupancy())

	events := m.Events()
	require.Len(t, events, 1)
	assert.Equal(t, KindSeated, events[0].Kind)
	assert.Equal(t, []int{1}, events[0].BabyChairs)
}

func TestMonitor_TryAllocate_RefusalMutatesNothing(t *testing.T) {
	// GIVEN a monitor whose accessible table is already taken
	m := NewMonitor(testLayout(), NewResourcePool(4, 2))
	_, _, ok := m.TryAllocate(&Party{ID: "P0", Size: 5, WheelchairSpots: 1})
	require.True(t, ok)

	// WHEN a second accessibility party tries to allocate
	_, _, ok = m.TryAllocate(&Party{ID: "P1", Size: 2, WheelchairSpots: 1})

	// THEN it refuses and no state changed
	assert.False(t, ok)
	baby, wheel := m.PoolAvailable()
	assert.Equal(t, 4, baby)
	assert.Equal(t, 1, wheel)
	assert.Len(t, m.Events(), 1)
}

func TestMonitor_TryAllocate_ConcurrentRaceSeatsExactlyOne(t *testing.T) {
	// GIVEN a single counter seat contested by many goroutines
	layout := []Seat{{ID: "C1", Class: SeatCounter, Capacity: 1}}
	m := NewMonitor(layout, NewResourcePool(0, 0))

	// WHEN they all race TryAllocate for a size-1 party
	const racers = 32
	var wg sync.WaitGroup
	wins := make(chan string, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			p := &Party{ID: string(rune('A' + id)), Size: 1}
			if _, _, ok := m.TryAllocate(p); ok {
				wins <- p.ID
			}
		}(i)
	}
	wg.Wait()
	close(wins)

	// THEN exactly one racer observed "seat free" and claimed it
	var winners []string
	for id := range wins {
		winners = append(winners, id)
	}
	require.Len(t, winners, 1)
	assert.Equal(t, map[string]string{"C1": winners[0]}, m.Occupancy())
}

func TestMonitor_Acquire_WaiterWokenByRelease(t *testing.T) {
	// GIVEN one counter seat held by the first party
	layout := []Seat{{ID: "C1", Class: SeatCounter, Capacity: 1}}
	m := NewMonitor(layout, NewResourcePool(0, 0))
	first := &Party{ID: "P1", Arrival: 0, Size: 1, DiningTime: 30}
	seats, sit, ok := m.TryAllocate(first)
	require.True(t, ok)

	// WHEN a second party blocks in Acquire and the first releases
	second := &Party{ID: "P2", Arrival: 5, Size: 1, DiningTime: 10}
	type result struct {
		sit int64
		ok  bool
	}
	done := make(chan result, 1)
	go func() {
		_, sit, ok := m.Acquire(second, 5*time.Second)
		done <- result{sit, ok}
	}()

	// Give the waiter time to log WAITING and block on the cond.
	time.Sleep(50 * time.Millisecond)
	m.Release(first, seats, sit+first.DiningTime)

	// THEN the waiter wakes and seats at the release timestamp
	res := <-done
	require.True(t, res.ok)
	assert.Equal(t, int64(30), res.sit)

	// AND the WAITING event was logged exactly once
	waiting := 0
	for _, e := range m.Events() {
		if e.Kind == KindWaiting {
			waiting++
		}
	}
	assert.Equal(t, 1, waiting)
}

func TestMonitor_Acquire_BoundedWaitTimesOut(t *testing.T) {
	// GIVEN a pool that can never satisfy the party
	layout := []Seat{{ID: "C1", Class: SeatCounter, Capacity: 1}}
	m := NewMonitor(layout, NewResourcePool(0, 0))
	party := &Party{ID: "P1", Arrival: 0, Size: 1, BabyChairs: 1}

	// WHEN Acquire runs with a short bounded wait
	_, _, ok := m.Acquire(party, 30*time.Millisecond)

	// THEN it gives up, records TIMED_OUT, and holds no seats
	assert.False(t, ok)
	assert.Empty(t, m.Occupancy())

	events := m.Events()
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, KindTimedOut, last.Kind)
	for _, e := range events {
		assert.NotEqual(t, KindSeated, e.Kind)
	}
}

func TestMonitor_Events_SortedWithStrictlyIncreasingSeq(t *testing.T) {
	// GIVEN a monitor with a few transitions appended
	m := NewMonitor(testLayout(), NewResourcePool(4, 2))
	p1 := &Party{ID: "P1", Arrival: 10, Size: 1, DiningTime: 5}
	p2 := &Party{ID: "P2", Arrival: 0, Size: 1, DiningTime: 5}
	m.RecordArrival(p1)
	m.RecordArrival(p2)
	seats, sit, ok := m.TryAllocate(p2)
	require.True(t, ok)
	m.Release(p2, seats, sit+p2.DiningTime)

	// WHEN the finished log is read
	events := m.Events()

	// THEN timestamps are non-decreasing and ties are broken by sequence
	require.Len(t, events, 4)
	for i := 1; i < len(events); i++ {
		prev, cur := events[i-1], events[i]
		assert.LessOrEqual(t, prev.Time, cur.Time)
		if prev.Time == cur.Time {
			assert.Less(t, prev.Seq, cur.Seq)
		}
	}
}
