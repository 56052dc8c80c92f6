// Implements the allocation policy: a pure decision function from a party's
// needs plus the current registry/pool state to a candidate seat set.
// It performs no mutation; the Monitor applies the result under its lock.

package sim

// Allocate evaluates the seating rules for a party against a seat registry
// and resource pool snapshot. It returns the chosen seat IDs, or ok=false
// when the party cannot be fully seated right now.
//
// Rules, in priority order ("one table per party", all-or-nothing):
//  1. If the pool cannot cover the party's full consumable needs, refuse.
//  2. Parties needing wheelchair spots go to a single free accessible table
//     with sufficient capacity; counter seats are never eligible.
//  3. Groups (size > 1) take a free table, preferring an exact capacity
//     match, then the smallest sufficient capacity. With no table free they
//     fall back to the first ascending contiguous run of free counter seats.
//  4. Singles take a free counter seat, falling back to the smallest free
//     table.
func Allocate(party *Party, registry []*SeatState, pool *ResourcePool) ([]string, bool) {
	if !pool.CanSatisfy(party) {
		return nil, false
	}

	if party.NeedsAccessible() {
		if table := pickTable(registry, party.Size, true, false); table != nil {
			return []string{table.ID}, true
		}
		return nil, false
	}

	if party.Size > 1 {
		if table := pickTable(registry, party.Size, false, true); table != nil {
			return []string{table.ID}, true
		}
		if table := pickTable(registry, party.Size, false, false); table != nil {
			return []string{table.ID}, true
		}
		if run := counterRun(registry, party.Size); run != nil {
			return run, true
		}
		return nil, false
	}

	for _, s := range registry {
		if s.Free() && s.Class == SeatCounter {
			return []string{s.ID}, true
		}
	}
	if table := pickTable(registry, party.Size, false, false); table != nil {
		return []string{table.ID}, true
	}
	return nil, false
}

// pickTable scans the registry for a free table seating at least size people.
// exact restricts the search to tables whose capacity equals size; otherwise
// the smallest sufficient capacity wins, ties broken by registry order.
func pickTable(registry []*SeatState, size int, accessible, exact bool) *SeatState {
	var best *SeatState
	for _, s := range registry {
		if !s.Free() || s.Class != SeatTable || s.Capacity < size {
			continue
		}
		if accessible && !s.Accessible {
			continue
		}
		if exact {
			if s.Capacity == size {
				return s
			}
			continue
		}
		if best == nil || s.Capacity < best.Capacity {
			best = s
		}
	}
	return best
}

// counterRun finds the first contiguous run of size free counter seats,
// contiguity meaning consecutive registry entries. A run is broken by a
// table or an occupied seat.
func counterRun(registry []*SeatState, size int) []string {
	run := make([]string, 0, size)
	for _, s := range registry {
		if s.Class != SeatCounter || !s.Free() {
			run = run[:0]
			continue
		}
		run = append(run, s.ID)
		if len(run) == size {
			return run
		}
	}
	return nil
}

// DistributeBabyChairs splits n baby chairs as evenly as possible across
// seatCount seats, assigning the remainder to the earliest seats. The split
// only affects display attribution in frames.
func DistributeBabyChairs(n, seatCount int) []int {
	if seatCount == 0 {
		return nil
	}
	counts := make([]int, seatCount)
	base := n / seatCount
	rem := n % seatCount
	for i := range counts {
		counts[i] = base
		if i < rem {
			counts[i]++
		}
	}
	return counts
}
