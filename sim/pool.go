// Implements the ResourcePool, the shared counters for consumable accessories
// (baby chairs, wheelchair spots). Mutated only under the Monitor's lock.

package sim

// ResourcePool tracks the globally shared consumable accessories.
// Counters are decremented on allocation and restored on release; they must
// never go negative and never exceed their configured totals.
type ResourcePool struct {
	BabyChairs      int // baby-chair attachments currently available
	WheelchairSpots int // wheelchair spots currently available

	totalBabyChairs      int
	totalWheelchairSpots int
}

// NewResourcePool creates a pool with the given initial totals.
func NewResourcePool(babyChairs, wheelchairSpots int) *ResourcePool {
	return &ResourcePool{
		BabyChairs:           babyChairs,
		WheelchairSpots:      wheelchairSpots,
		totalBabyChairs:      babyChairs,
		totalWheelchairSpots: wheelchairSpots,
	}
}

// CanSatisfy reports whether the pool can currently cover the party's full
// consumable needs. Partial reservation is never allowed.
func (p *ResourcePool) CanSatisfy(party *Party) bool {
	return p.BabyChairs >= party.BabyChairs && p.WheelchairSpots >= party.WheelchairSpots
}

// Reserve deducts the party's consumables from the pool.
// Callers must have checked CanSatisfy under the same lock acquisition.
func (p *ResourcePool) Reserve(party *Party) {
	p.BabyChairs -= party.BabyChairs
	p.WheelchairSpots -= party.WheelchairSpots
}

// Restore returns the party's consumables to the pool.
func (p *ResourcePool) Restore(party *Party) {
	p.BabyChairs += party.BabyChairs
	p.WheelchairSpots += party.WheelchairSpots
}

// Totals returns the configured totals, for conservation checks.
func (p *ResourcePool) Totals() (babyChairs, wheelchairSpots int) {
	return p.totalBabyChairs, p.totalWheelchairSpots
}
