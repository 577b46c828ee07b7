// Package hhill provides a precise, reproducible implementation of the
// Huntington-Hill "method of equal proportions" for apportioning a fixed
// number of indivisible seats among entities in proportion to population —
// the method used to apportion the U.S. House of Representatives since 1941.
//
// Overview:
//
//   - Apportion seeds every entity with its guaranteed seat floor, then
//     awards the remaining seats one at a time to the entity with the
//     highest priority value p / sqrt(k·(k+1)).
//   - The selection loop runs over a max-heap frontier, giving
//     O(N + R·log N) time for N entities and R seats beyond the floors.
//   - Every result is re-validated before return: the seat sum, the floor
//     guarantee, and the request/result correspondence cannot silently break.
//
// When to use:
//
//   - Apportioning legislative seats, delegates, or any fixed pool of
//     indivisible resources proportionally to integer weights.
//   - As a reference implementation when auditing an existing apportionment:
//     the output is fully deterministic, including under exact priority ties.
//
// Key features:
//
//   - Functional options allow fine-tuning without changing the API:
//     WithTotalSeats(n), WithMinSeats(n), WithFloor(id, n).
//   - Seat floors: a uniform per-entity minimum (default 1, settable to 0)
//     plus optional per-entity overrides, all honored before any entity
//     competes for additional seats.
//   - Zero-population entities hold exactly their floor: their priority is 0
//     at every seat count, so they never outrank a populated entity.
//   - Deterministic tie-break: exact priority ties resolve to the
//     lexicographically smallest entity ID. The classical method leaves
//     ties unspecified; this rule is a reproducibility choice, and callers
//     modeling a legal framework with a different rule (e.g. largest
//     population wins) should resolve ties upstream.
//
// Mathematical guarantee (equal proportions):
//
//   - Among all integer allocations summing to the target total and
//     honoring the floors, the greedy priority order minimizes the maximum
//     pairwise relative difference in population per seat. Equivalently: in
//     the returned allocation, no transfer of a single seat between any two
//     entities can reduce their relative representational disparity.
//   - The priority sequence of each entity is strictly decreasing in its
//     seat count, which is why the greedy process never needs backtracking.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyInput:
//     Returned when the request contains no entities.
//   - ErrInvalidTotalSeats:
//     Returned when TotalSeats < 1, or when the configured floors alone
//     already require more seats than TotalSeats provides.
//   - ErrInvalidPopulation:
//     Returned when any entity's population is negative.
//   - ErrDuplicateEntity:
//     Returned when an entity ID appears more than once in the request.
//   - ErrInternalInvariant:
//     Returned when post-allocation validation fails. This is a defect in
//     the allocator, never a data error, and is always fatal to the call.
//   - ErrNegativeFloor:
//     Reported via panic when WithMinSeats or WithFloor is constructed with
//     a negative value.
//
// API reference:
//
//	func Apportion(
//	    entities []Entity,
//	    opts ...Option,
//	) (seats map[string]int, err error)
//
//	  - entities: the request; each Entity pairs a unique ID with a
//	    non-negative population. Input order never affects the result.
//	  - opts:     zero or more functional options:
//	      • WithTotalSeats(int):  target seat total (default 435).
//	      • WithMinSeats(int):    uniform seat floor (default 1, may be 0).
//	      • WithFloor(string, int): per-entity floor override.
//	  - seats:    map[ID] = final seat count; counts sum to exactly
//	    TotalSeats and every count is ≥ the entity's effective floor.
//	  - err:      one of the sentinel errors above, or nil on success.
//
//	func Priority(population int64, seats int) float64
//
//	  - The pure priority function, exported for audit tooling and tests:
//	    +Inf for a populated entity's first seat, 0 for any seat of a
//	    zero-population entity, p / sqrt(k·(k+1)) otherwise.
//
// Thread safety:
//
//   - Apportion holds no state between calls and mutates nothing it did not
//     allocate itself; concurrent calls need no coordination. Within one
//     call the selection loop is inherently sequential — every award depends
//     on all prior awards.
//
// See also:
//
//   - census.Entities: the embedded 2020 state population table in the
//     shape Apportion consumes.
//   - report.Summarize: district-size statistics for a returned allocation.
package hhill
