// Implements the Monitor: one mutex and one condition variable guarding the
// seat registry, the resource pool, the event log, and the sequence counter
// as a single unit. Every mutation of shared state goes through here.

package sim

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Monitor coordinates all concurrent access to shared simulation state.
//
// The joint lock over registry + pool + log is the correctness anchor of the
// whole system: an allocation checks availability and reserves seats plus
// consumables in one critical section, so two actors can never both observe
// "seat free" and both claim it. Do not split this lock.
type Monitor struct {
	mu   sync.Mutex
	cond *sync.Cond

	registry []*SeatState
	pool     *ResourcePool

	events  []Event
	nextSeq int64
	maxTime int64 // latest timestamp appended so far
}

// NewMonitor creates a Monitor over the given seat layout and pool.
// The layout's registry order is preserved; allocation scans depend on it.
func NewMonitor(layout []Seat, pool *ResourcePool) *Monitor {
	m := &Monitor{
		registry: newRegistry(layout),
		pool:     pool,
	}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// RecordArrival appends an ARRIVED event at the party's arrival time.
// No resource effect.
func (m *Monitor) RecordArrival(p *Party) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appendLocked(Event{
		Time:    p.Arrival,
		PartyID: p.ID,
		Kind:    KindArrived,
		Message: fmt.Sprintf("[%d] Party %s arrived (size: %d, baby: %d, wheel: %d)",
			p.Arrival, p.ID, p.Size, p.BabyChairs, p.WheelchairSpots),
	})
}

// TryAllocate makes one atomic allocation attempt for the party. On success
// it reserves the consumables, marks the chosen seats occupied, appends a
// SEATED event, and returns the seat IDs with the effective sit time. On
// refusal it mutates nothing and returns ok=false.
func (m *Monitor) TryAllocate(p *Party) (seatIDs []string, sitTime int64, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tryAllocateLocked(p)
}

// Acquire drives the party's allocation loop: attempt, append a single
// WAITING event on the first refusal, then block on the condition variable
// until a release wakes all waiters, re-attempting on every wakeup. A zero
// timeout waits forever; otherwise a party still unseated at the deadline is
// marked TIMED_OUT and abandoned.
func (m *Monitor) Acquire(p *Party, timeout time.Duration) (seatIDs []string, sitTime int64, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	waiting := false
	for {
		if ids, sit, ok := m.tryAllocateLocked(p); ok {
			return ids, sit, true
		}
		if !waiting {
			waiting = true
			t := m.effectiveTimeLocked(p)
			m.appendLocked(Event{
				Time:    t,
				PartyID: p.ID,
				Kind:    KindWaiting,
				Message: fmt.Sprintf("[%d] Party %s waiting for seats", t, p.ID),
			})
		}
		if !m.waitLocked(deadline) {
			t := m.effectiveTimeLocked(p)
			m.appendLocked(Event{
				Time:    t,
				PartyID: p.ID,
				Kind:    KindTimedOut,
				Message: fmt.Sprintf("[TIMEOUT] Party %s waited too long", p.ID),
			})
			return nil, 0, false
		}
	}
}

// Release frees the party's seats, returns its consumables to the pool,
// appends a LEFT event at leaveTime, and wakes every blocked waiter so they
// race to re-evaluate allocation.
func (m *Monitor) Release(p *Party, seatIDs []string, leaveTime int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pool.Restore(p)
	for _, id := range seatIDs {
		if s := m.seatLocked(id); s != nil {
			s.OccupiedBy = ""
		}
	}
	m.appendLocked(Event{
		Time:    leaveTime,
		PartyID: p.ID,
		Kind:    KindLeft,
		Seats:   seatIDs,
		Message: fmt.Sprintf("[%d] Party %s left %s", leaveTime, p.ID, strings.Join(seatIDs, ",")),
	})
	m.cond.Broadcast()
}

// Events returns a copy of the event log sorted by (Time, Seq).
// Call only after all actors have finished.
func (m *Monitor) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	SortEvents(out)
	return out
}

// PoolAvailable returns the current consumable counters.
func (m *Monitor) PoolAvailable() (babyChairs, wheelchairSpots int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pool.BabyChairs, m.pool.WheelchairSpots
}

// Occupancy returns a seat ID -> occupying party ID snapshot of all
// currently occupied seats.
func (m *Monitor) Occupancy() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string)
	for _, s := range m.registry {
		if !s.Free() {
			out[s.ID] = s.OccupiedBy
		}
	}
	return out
}

// tryAllocateLocked runs the allocation policy and, on success, applies the
// reservation before the lock is released. Check and reserve never separate.
func (m *Monitor) tryAllocateLocked(p *Party) ([]string, int64, bool) {
	ids, ok := Allocate(p, m.registry, m.pool)
	if !ok {
		return nil, 0, false
	}

	m.pool.Reserve(p)
	for _, id := range ids {
		m.seatLocked(id).OccupiedBy = p.ID
	}

	sit := m.effectiveTimeLocked(p)
	m.appendLocked(Event{
		Time:       sit,
		PartyID:    p.ID,
		Kind:       KindSeated,
		Seats:      ids,
		BabyChairs: DistributeBabyChairs(p.BabyChairs, len(ids)),
		Message:    fmt.Sprintf("[%d] Party %s sat at %s", sit, p.ID, strings.Join(ids, ",")),
	})
	return ids, sit, true
}

// effectiveTimeLocked computes the logical time of a transition happening
// "now": never earlier than the party's arrival, and never earlier than the
// latest event in the log (the moment resources last changed hands).
func (m *Monitor) effectiveTimeLocked(p *Party) int64 {
	if m.maxTime > p.Arrival {
		return m.maxTime
	}
	return p.Arrival
}

// waitLocked suspends the caller on the condition variable, releasing the
// lock for the duration and reacquiring it on wakeup. With a non-zero
// deadline a timer broadcasts the cond at expiry so stuck waiters observe
// the timeout; the return value is false once the deadline has passed.
func (m *Monitor) waitLocked(deadline time.Time) bool {
	if deadline.IsZero() {
		m.cond.Wait()
		return true
	}
	if !time.Now().Before(deadline) {
		return false
	}
	timer := time.AfterFunc(time.Until(deadline), m.cond.Broadcast)
	defer timer.Stop()
	m.cond.Wait()
	return time.Now().Before(deadline)
}

func (m *Monitor) seatLocked(id string) *SeatState {
	for _, s := range m.registry {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// appendLocked stamps the event with the next sequence number and appends it.
func (m *Monitor) appendLocked(e Event) {
	e.Seq = m.nextSeq
	m.nextSeq++
	if e.Time > m.maxTime {
		m.maxTime = e.Time
	}
	m.events = append(m.events, e)
	logrus.Debugf("[tick %07d] seq=%d %s %s", e.Time, e.Seq, e.Kind, e.PartyID)
}
