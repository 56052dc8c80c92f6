package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	got := NewConfig()
	want := Config{
		BabyChairs:      DefaultBabyChairs,
		WheelchairSpots: DefaultWheelchairSpots,
		WaitTimeout:     DefaultWaitTimeout,
		GracePeriod:     DefaultGracePeriod,
	}
	assert.Equal(t, want, got)
	assert.NoError(t, got.Validate())
}

func TestConfig_Validate_RejectsNegativeValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative baby chairs", func(c *Config) { c.BabyChairs = -1 }},
		{"negative wheelchair spots", func(c *Config) { c.WheelchairSpots = -2 }},
		{"negative wait timeout", func(c *Config) { c.WaitTimeout = -time.Second }},
		{"negative grace period", func(c *Config) { c.GracePeriod = -1 }},
		{"negative tick duration", func(c *Config) { c.TickDuration = -time.Millisecond }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateLayout_RejectsBadLayouts(t *testing.T) {
	cases := []struct {
		name   string
		layout []Seat
	}{
		{"empty layout", nil},
		{"empty seat ID", []Seat{{ID: "", Class: SeatCounter, Capacity: 1}}},
		{"duplicate seat ID", []Seat{
			{ID: "C1", Class: SeatCounter, Capacity: 1},
			{ID: "C1", Class: SeatCounter, Capacity: 1},
		}},
		{"counter with capacity 2", []Seat{{ID: "C1", Class: SeatCounter, Capacity: 2}}},
		{"accessible counter", []Seat{{ID: "C1", Class: SeatCounter, Capacity: 1, Accessible: true}}},
		{"table with capacity 1", []Seat{{ID: "T1", Class: SeatTable, Capacity: 1}}},
		{"unknown class", []Seat{{ID: "X1", Class: "booth", Capacity: 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, ValidateLayout(tc.layout))
		})
	}

	assert.NoError(t, ValidateLayout(testLayout()))
}

func TestValidateParties_RejectsBadRecords(t *testing.T) {
	cases := []struct {
		name    string
		parties []*Party
	}{
		{"empty party ID", []*Party{{ID: "", Size: 1}}},
		{"duplicate party ID", []*Party{{ID: "P1", Size: 1}, {ID: "P1", Size: 2}}},
		{"negative arrival", []*Party{{ID: "P1", Arrival: -1, Size: 1}}},
		{"zero size", []*Party{{ID: "P1", Size: 0}}},
		{"negative baby chairs", []*Party{{ID: "P1", Size: 1, BabyChairs: -1}}},
		{"negative dining time", []*Party{{ID: "P1", Size: 1, DiningTime: -5}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, ValidateParties(tc.parties))
		})
	}

	assert.NoError(t, ValidateParties([]*Party{{ID: "P1", Size: 2, DiningTime: 10}}))
}
