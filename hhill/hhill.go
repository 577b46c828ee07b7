// Package hhill implements the Huntington-Hill method of equal proportions
// for apportioning indivisible seats.
//
// The allocator is a pure greedy procedure: after seeding every entity with
// its floor, it repeatedly awards the next seat to the entity with the
// highest priority value (see Priority) until the target total is reached.
// Greedy selection by the Huntington-Hill priority is provably equivalent to
// minimizing the maximum pairwise relative seat-to-population disparity over
// all integer allocations summing to the target, and each entity's priority
// sequence is strictly decreasing in its seat count, so no decision ever
// needs revisiting.
//
// Complexity:
//
//   - Time:  O(N + R·log N), N = |entities|, R = seats beyond the floors.
//   - Validation and floor seeding scan the input once: O(N).
//   - Building the priority frontier heap: O(N).
//   - Each award round repositions exactly one heap entry: O(log N).
//   - Space: O(N) for the seat table and the frontier heap.
//
// Notes on implementation choices:
//
//   - The frontier heap keeps exactly one live entry per entity; after an
//     award, the winner's entry is recomputed in place and re-sifted with
//     heap.Fix. No lazy/stale entries exist, so no staleness checks either.
//   - Ties in priority (including the all-+Inf floor round under a floor
//     of 0) are broken by the lexicographically smallest entity ID, directly
//     inside the heap ordering. Identical input therefore always produces
//     identical output, regardless of input order.
//   - The result is re-validated before return; a violation surfaces as
//     ErrInternalInvariant rather than a silently wrong allocation.
package hhill

import (
	"container/heap"
	"fmt"
)

// Apportion allocates Options.TotalSeats seats among the given entities
// according to the Huntington-Hill method. It accepts functional options to
// customize behavior (WithTotalSeats, WithMinSeats, WithFloor).
//
// Returns:
//
//   - seats: map from entity ID to its final seat count. The counts sum to
//     exactly TotalSeats and every count is ≥ the entity's effective floor.
//   - err:   a sentinel validation error if the request is invalid, or
//     ErrInternalInvariant if the allocation broke its own guarantees.
//
// Preconditions and validation (in order):
//  1. At least one entity must be supplied (ErrEmptyInput).
//  2. TotalSeats must be ≥ 1 (ErrInvalidTotalSeats).
//  3. Every population must be ≥ 0 (ErrInvalidPopulation).
//  4. Every entity ID must be unique (ErrDuplicateEntity).
//  5. The sum of effective floors must fit in TotalSeats (ErrInvalidTotalSeats).
//
// All validation failures are reported before any allocation work begins;
// there are no partial results. The call is deterministic, side-effect-free,
// and safe to invoke from concurrent goroutines (no shared state survives or
// precedes a call).
func Apportion(entities []Entity, opts ...Option) (map[string]int, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Pre-validate the request. Fail fast: no seat is assigned unless the
	//    whole request is well-formed.
	if err := validateRequest(entities, cfg); err != nil {
		return nil, err
	}

	// 3) Seed every entity at its effective floor and count the seats spent.
	r := newRunner(entities, cfg)

	// 4) Distribute whatever the floors left over. validateRequest has
	//    already guaranteed remaining ≥ 0; remaining == 0 means the floor
	//    allocation is the final answer.
	if remaining := cfg.TotalSeats - r.allocated; remaining > 0 {
		r.distribute(remaining)
	}

	// 5) Post-validate before returning. A failure here is a defect in the
	//    allocator itself and must never be swallowed.
	if err := validateResult(entities, cfg, r.seats); err != nil {
		return nil, err
	}

	return r.seats, nil
}

// runner holds the mutable state for a single Apportion execution.
// Nothing in it survives the call.
type runner struct {
	entities  []Entity       // The request, read-only within the run.
	options   Options        // Resolved configuration.
	seats     map[string]int // Entity ID → seat count awarded so far.
	allocated int            // Total seats spent on floors.
	pq        seatPQ         // Max-heap frontier of next-seat priorities.
}

// newRunner seeds every entity's seat count at its effective floor.
func newRunner(entities []Entity, cfg Options) *runner {
	r := &runner{
		entities: entities,
		options:  cfg,
		seats:    make(map[string]int, len(entities)),
	}

	var floor int
	for _, ent := range entities {
		floor = cfg.floorFor(ent.ID)
		r.seats[ent.ID] = floor
		r.allocated += floor
	}

	return r
}

// distribute runs the selection loop: exactly `remaining` rounds of
// pop-highest / increment / recompute over the priority frontier.
func (r *runner) distribute(remaining int) {
	// 1) Build the frontier: for each entity, the priority of its next seat
	//    (seat number current_count + 1). Entities are walked in input order,
	//    but the heap's total ordering (priority, then ID) makes the award
	//    sequence independent of that order.
	r.pq = make(seatPQ, 0, len(r.entities))
	var ent Entity
	for _, ent = range r.entities {
		r.pq = append(r.pq, &seatItem{
			id:         ent.ID,
			population: ent.Population,
			priority:   Priority(ent.Population, r.seats[ent.ID]),
		})
	}
	heap.Init(&r.pq)

	// 2) Award the remaining seats one at a time. Each round touches only
	//    the winner's heap entry: its priority is recomputed for its new
	//    next seat and sifted back into place.
	var top *seatItem
	for i := 0; i < remaining; i++ {
		top = r.pq[0]
		r.seats[top.id]++
		top.priority = Priority(top.population, r.seats[top.id])
		heap.Fix(&r.pq, 0)
	}
}

// validateRequest runs all pre-checks from the package contract, in the
// documented order. Sentinel errors are wrapped with the offending value so
// callers can both branch on errors.Is and read a useful message.
func validateRequest(entities []Entity, cfg Options) error {
	// 1) At least one entity.
	if len(entities) == 0 {
		return ErrEmptyInput
	}

	// 2) Positive seat total.
	if cfg.TotalSeats < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidTotalSeats, cfg.TotalSeats)
	}

	// 3) Non-negative populations, unique IDs, and the floor budget — one
	//    pass over the input.
	seen := make(map[string]struct{}, len(entities))
	floorSum := 0
	for _, ent := range entities {
		if ent.Population < 0 {
			return fmt.Errorf("%w: entity %q has population %d", ErrInvalidPopulation, ent.ID, ent.Population)
		}
		if _, dup := seen[ent.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateEntity, ent.ID)
		}
		seen[ent.ID] = struct{}{}
		floorSum += cfg.floorFor(ent.ID)
	}

	// 4) The floors alone must not exceed the target total.
	if floorSum > cfg.TotalSeats {
		return fmt.Errorf("%w: floors require %d seats but only %d available", ErrInvalidTotalSeats, floorSum, cfg.TotalSeats)
	}

	return nil
}

// validateResult runs all post-checks: exact seat sum, per-entity floor
// guarantee, and a one-to-one correspondence between request and result.
// Any failure wraps ErrInternalInvariant — it indicates a bug in the
// allocator, never a problem with the caller's data.
func validateResult(entities []Entity, cfg Options, seats map[string]int) error {
	if len(seats) != len(entities) {
		return fmt.Errorf("%w: %d entities in, %d out", ErrInternalInvariant, len(entities), len(seats))
	}

	total := 0
	for _, ent := range entities {
		n, ok := seats[ent.ID]
		if !ok {
			return fmt.Errorf("%w: entity %q missing from result", ErrInternalInvariant, ent.ID)
		}
		if floor := cfg.floorFor(ent.ID); n < floor {
			return fmt.Errorf("%w: entity %q holds %d seats, floor is %d", ErrInternalInvariant, ent.ID, n, floor)
		}
		total += n
	}

	if total != cfg.TotalSeats {
		return fmt.Errorf("%w: allocated %d seats, want %d", ErrInternalInvariant, total, cfg.TotalSeats)
	}

	return nil
}

// seatItem is one entity's frontier entry: the priority value of its next
// seat. Exactly one live seatItem exists per entity for the whole run; it is
// updated in place after every award.
type seatItem struct {
	id         string  // entity ID
	population int64   // entity population, cached to recompute priority
	priority   float64 // priority of the entity's next seat
}

// seatPQ is a max-heap (priority queue) of *seatItem, ordered by priority
// descending with exact ties broken by ascending entity ID. The ID tie-break
// is part of the heap ordering itself, so extraction order — and therefore
// the final allocation — is fully deterministic even when priorities collide
// (including the all-+Inf first-seat round under a floor of 0).
type seatPQ []*seatItem

// Len returns the number of items in the heap.
func (pq seatPQ) Len() int { return len(pq) }

// Less defines the comparison: higher priority wins; on an exact tie, the
// lexicographically smaller entity ID wins.
func (pq seatPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority > pq[j].priority
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq seatPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *seatItem.
func (pq *seatPQ) Push(x interface{}) { *pq = append(*pq, x.(*seatItem)) }

// Pop removes and returns the last element from the heap's backing slice.
// Called by heap.Pop; returns interface{} that must be cast to *seatItem.
func (pq *seatPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
