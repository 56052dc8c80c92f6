// Implements the Actor, the concurrent unit of execution driving one party
// through its lifecycle: ARRIVED -> WAITING (retry loop) -> SEATED -> LEFT,
// with TIMED_OUT as the alternate terminal state.

package sim

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Actor drives a single party against the Monitor. All shared state is
// touched only through Monitor calls; the actor itself owns nothing but its
// party and its current lifecycle state.
type Actor struct {
	Party   *Party
	Monitor *Monitor

	// WaitTimeout bounds the WAITING state. Zero waits forever. It is a
	// safety valve against a misconfigured pool, not normal control flow.
	WaitTimeout time.Duration

	// TickDuration scales logical ticks to real time for the arrival stagger
	// and the dining suspension. Zero runs the lifecycle without sleeping;
	// logical timestamps are unaffected either way.
	TickDuration time.Duration

	State PartyState
}

// Run executes the party lifecycle and decrements wg on exit.
func (a *Actor) Run(wg *sync.WaitGroup) {
	defer wg.Done()
	p := a.Party

	a.sleepTicks(p.Arrival)
	a.State = StateArrived
	a.Monitor.RecordArrival(p)

	// Fast path first; only a refused party enters the waiting state and the
	// monitor's blocking retry loop. State writes precede the monitor calls
	// so observers holding the monitor's lock read them race-free.
	seatIDs, sitTime, ok := a.Monitor.TryAllocate(p)
	if !ok {
		a.State = StateWaiting
		seatIDs, sitTime, ok = a.Monitor.Acquire(p, a.WaitTimeout)
	}
	if !ok {
		a.State = StateTimedOut
		logrus.Warnf("party %s timed out waiting for seats", p.ID)
		return
	}
	a.State = StateSeated
	logrus.Debugf("party %s seated at %v (tick %d)", p.ID, seatIDs, sitTime)

	// Dine with the lock not held, or every other actor would starve.
	a.sleepTicks(p.DiningTime)

	a.Monitor.Release(p, seatIDs, sitTime+p.DiningTime)
	a.State = StateLeft
}

func (a *Actor) sleepTicks(ticks int64) {
	if a.TickDuration > 0 && ticks > 0 {
		time.Sleep(time.Duration(ticks) * a.TickDuration)
	}
}
