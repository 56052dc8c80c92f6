// sim/simulator.go
package sim

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Simulator is the run driver: it validates the configuration, spawns one
// Actor per party, waits for all of them to finish, and post-processes the
// Monitor's event log into the sorted log and the frame replay.
type Simulator struct {
	Config  Config
	Layout  []Seat
	Parties []*Party
	Monitor *Monitor
}

// RunResult bundles the outputs of a finished run.
type RunResult struct {
	Events  []Event  `json:"events"` // sorted by (Time, Seq)
	Frames  []Frame  `json:"frames"`
	Metrics *Metrics `json:"metrics"`
}

// NewSimulator validates the layout, parties, and config, and wires up the
// Monitor. Configuration errors are fatal to the run and surface here,
// before any actor exists.
func NewSimulator(cfg Config, layout []Seat, parties []*Party) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateLayout(layout); err != nil {
		return nil, err
	}
	if err := ValidateParties(parties); err != nil {
		return nil, err
	}
	return &Simulator{
		Config:  cfg,
		Layout:  layout,
		Parties: parties,
		Monitor: NewMonitor(layout, NewResourcePool(cfg.BabyChairs, cfg.WheelchairSpots)),
	}, nil
}

// Run executes the full simulation: every party races for seats through the
// Monitor, and once the last actor exits, the finished log is sorted and
// folded into frames. Per-party failures (timeouts) are recorded in-band and
// never abort the run.
func (s *Simulator) Run() *RunResult {
	logrus.Infof("starting simulation: %d parties, %d seats, pool: %d baby chairs, %d wheelchair spots",
		len(s.Parties), len(s.Layout), s.Config.BabyChairs, s.Config.WheelchairSpots)

	var wg sync.WaitGroup
	for _, p := range s.Parties {
		actor := &Actor{
			Party:        p,
			Monitor:      s.Monitor,
			WaitTimeout:  s.Config.WaitTimeout,
			TickDuration: s.Config.TickDuration,
		}
		wg.Add(1)
		go actor.Run(&wg)
	}
	wg.Wait()

	events := s.Monitor.Events()
	logrus.Infof("simulation ended: %d events", len(events))

	return &RunResult{
		Events:  events,
		Frames:  BuildFrames(s.Layout, events, s.Config.GracePeriod),
		Metrics: ComputeMetrics(events),
	}
}
