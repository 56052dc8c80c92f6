package sim

import (
	"fmt"
	"time"
)

// Defaults for the run configuration.
const (
	// DefaultBabyChairs is the baby-chair pool size when none is configured.
	DefaultBabyChairs = 4
	// DefaultWheelchairSpots is the wheelchair-spot pool size when none is configured.
	DefaultWheelchairSpots = 2
	// DefaultWaitTimeout bounds how long a party waits before giving up.
	// Generous enough never to fire under a correct configuration.
	DefaultWaitTimeout = 3 * time.Second
	// DefaultGracePeriod is the number of trailing ticks appended to the
	// frame replay so the final LEFT events stay visible.
	DefaultGracePeriod = 5
)

// Config groups the run parameters of a simulation.
type Config struct {
	BabyChairs      int           // initial baby-chair pool total
	WheelchairSpots int           // initial wheelchair-spot pool total
	WaitTimeout     time.Duration // bounded wait per party; 0 = wait forever
	GracePeriod     int64         // trailing frame ticks past the last event
	TickDuration    time.Duration // real time per logical tick; 0 = no sleeping
}

// NewConfig returns a Config populated with defaults.
func NewConfig() Config {
	return Config{
		BabyChairs:      DefaultBabyChairs,
		WheelchairSpots: DefaultWheelchairSpots,
		WaitTimeout:     DefaultWaitTimeout,
		GracePeriod:     DefaultGracePeriod,
	}
}

// Validate rejects configurations that would produce nonsensical allocations.
// It must pass before any actor is spawned.
func (c Config) Validate() error {
	if c.BabyChairs < 0 {
		return fmt.Errorf("baby-chair pool must be >= 0, got %d", c.BabyChairs)
	}
	if c.WheelchairSpots < 0 {
		return fmt.Errorf("wheelchair-spot pool must be >= 0, got %d", c.WheelchairSpots)
	}
	if c.WaitTimeout < 0 {
		return fmt.Errorf("wait timeout must be >= 0, got %v", c.WaitTimeout)
	}
	if c.GracePeriod < 0 {
		return fmt.Errorf("grace period must be >= 0, got %d", c.GracePeriod)
	}
	if c.TickDuration < 0 {
		return fmt.Errorf("tick duration must be >= 0, got %v", c.TickDuration)
	}
	return nil
}

// ValidateLayout checks the seat layout: at least one seat, unique IDs, and
// class-consistent capacities.
func ValidateLayout(layout []Seat) error {
	if len(layout) == 0 {
		return fmt.Errorf("seat layout is empty")
	}
	seen := make(map[string]bool, len(layout))
	for _, s := range layout {
		if s.ID == "" {
			return fmt.Errorf("seat with empty ID")
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate seat ID %q", s.ID)
		}
		seen[s.ID] = true
		switch s.Class {
		case SeatCounter:
			if s.Capacity != 1 {
				return fmt.Errorf("counter seat %q must have capacity 1, got %d", s.ID, s.Capacity)
			}
			if s.Accessible {
				return fmt.Errorf("counter seat %q cannot be accessible", s.ID)
			}
		case SeatTable:
			if s.Capacity < 2 {
				return fmt.Errorf("table %q must have capacity >= 2, got %d", s.ID, s.Capacity)
			}
		default:
			return fmt.Errorf("seat %q has unknown class %q", s.ID, s.Class)
		}
	}
	return nil
}

// ValidateParties checks party records: unique IDs and sane field ranges.
func ValidateParties(parties []*Party) error {
	seen := make(map[string]bool, len(parties))
	for _, p := range parties {
		if p.ID == "" {
			return fmt.Errorf("party with empty ID")
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate party ID %q", p.ID)
		}
		seen[p.ID] = true
		if p.Arrival < 0 {
			return fmt.Errorf("party %q has negative arrival time %d", p.ID, p.Arrival)
		}
		if p.Size < 1 {
			return fmt.Errorf("party %q has size %d, must be >= 1", p.ID, p.Size)
		}
		if p.BabyChairs < 0 || p.WheelchairSpots < 0 {
			return fmt.Errorf("party %q has negative consumable needs", p.ID)
		}
		if p.DiningTime < 0 {
			return fmt.Errorf("party %q has negative dining time %d", p.ID, p.DiningTime)
		}
	}
	return nil
}
