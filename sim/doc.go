// Package sim provides the concurrent seating-contention core of sushi-sync.
//
// # Reading Guide
//
// Start with these three files to understand the kernel:
//   - party.go / seat.go: the data model (parties, seat registry, resource pool)
//   - monitor.go: the single lock + condition variable guarding all shared state
//   - actor.go: the per-party goroutine lifecycle (ARRIVED → WAITING ⇄ retry → SEATED → LEFT)
//
// # Architecture
//
// One goroutine per arriving party races for seats and consumables through
// the Monitor, the only mutation path for shared state. Allocation decisions
// are made by the pure policy in policy.go; the Monitor applies them
// atomically so a seat can never be double-booked. Every state transition is
// appended to the event log with a sequence number handed out under the same
// lock; sorting the finished log by (timestamp, sequence) produces one
// deterministic total order despite non-deterministic goroutine scheduling.
//
// After the last actor exits, frames.go folds the sorted log into per-tick
// snapshots for visualization, and metrics.go aggregates run statistics.
// Both are pure post-processing with no locking.
package sim
