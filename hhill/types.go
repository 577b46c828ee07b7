// Package hhill defines core types and configuration options for the
// Huntington-Hill seat-apportionment engine.
//
// Huntington-Hill (the "method of equal proportions") assigns a fixed number
// of indivisible seats to entities in proportion to their populations. After
// every entity is seeded with its guaranteed floor, the remaining seats are
// awarded one at a time to the entity with the highest priority value
// p / sqrt(k·(k+1)), where p is the entity's population and k its current
// seat count.
//
// Complexity:
//
//	– Time:  O(N + R·log N)   where N = |entities|, R = seats beyond the floors
//	   • O(N) to validate the request and seed the floors.
//	   • Each of the R award rounds adjusts one heap entry: O(log N).
//	– Space: O(N)
//	   • One heap entry and one seat counter per entity.
//
// Options:
//
//	– TotalSeats: target total number of seats (default DefaultTotalSeats).
//	– MinSeats:   uniform per-entity seat floor (default DefaultMinSeats).
//	– Floors:     optional per-entity floor overrides keyed by entity ID.
//
// Errors (sentinel):
//
//	– ErrEmptyInput        if no entities are supplied.
//	– ErrInvalidTotalSeats if TotalSeats < 1 or the floors alone exceed it.
//	– ErrInvalidPopulation if any population is negative.
//	– ErrDuplicateEntity   if an entity ID appears more than once.
//	– ErrInternalInvariant if post-allocation validation fails (a bug, never
//	                       a data problem).
//	– ErrNegativeFloor     if a floor option is constructed with a negative
//	                       value (reported via panic at option construction).
package hhill

import "errors"

// Sentinel errors returned by the apportionment engine.
var (
	// ErrEmptyInput indicates that the request contained no entities.
	ErrEmptyInput = errors.New("hhill: no entities supplied")

	// ErrInvalidTotalSeats indicates that the target seat total is not a
	// positive integer, or that the configured floors alone already exceed it.
	ErrInvalidTotalSeats = errors.New("hhill: invalid total seat count")

	// ErrInvalidPopulation indicates that an entity carries a negative
	// population value.
	ErrInvalidPopulation = errors.New("hhill: population must be non-negative")

	// ErrDuplicateEntity indicates that the same entity ID appears more than
	// once in the request.
	ErrDuplicateEntity = errors.New("hhill: duplicate entity ID")

	// ErrInternalInvariant indicates that the allocation produced a result
	// violating its own invariants (seat sum or floor guarantee). This is an
	// implementation defect, never a caller-input error, and is always fatal
	// to the call.
	ErrInternalInvariant = errors.New("hhill: internal invariant violated")

	// ErrNegativeFloor indicates that WithMinSeats or WithFloor was called
	// with a negative value (reported via panic at option construction).
	ErrNegativeFloor = errors.New("hhill: seat floor must be non-negative")
)

// DefaultTotalSeats is the default target seat total — the statutory size of
// the U.S. House of Representatives since 1913.
const DefaultTotalSeats = 435

// DefaultMinSeats is the default uniform seat floor — the constitutional
// guarantee of at least one representative per state.
const DefaultMinSeats = 1

// Entity is one participant in an apportionment run: an opaque unique
// identifier paired with a non-negative population.
type Entity struct {
	ID         string // unique identifier (e.g. a USPS abbreviation or FIPS code)
	Population int64  // non-negative population count
}

// Options configures the behavior of Apportion.
//
// TotalSeats – target total number of seats to allocate. Must be ≥ 1
//
//	(validated by Apportion, which returns ErrInvalidTotalSeats).
//
// MinSeats   – uniform floor applied to every entity without an explicit
//
//	per-entity override. Must be ≥ 0. Default is DefaultMinSeats.
//
// Floors     – optional per-entity floor overrides keyed by entity ID.
//
//	Overrides for IDs absent from the request are ignored.
type Options struct {
	TotalSeats int            // Target total number of seats
	MinSeats   int            // Uniform per-entity seat floor
	Floors     map[string]int // Per-entity floor overrides (may be nil)
}

// Option represents a functional option for configuring Apportion.
type Option func(*Options)

// WithTotalSeats sets the target total number of seats.
// Values < 1 are rejected by Apportion with ErrInvalidTotalSeats; the option
// itself does not panic because a bad total is a caller-input error with a
// dedicated sentinel, not a construction mistake.
func WithTotalSeats(total int) Option {
	return func(o *Options) {
		o.TotalSeats = total
	}
}

// WithMinSeats sets the uniform seat floor applied to every entity.
// Pass 0 to allow entities to receive no seats at all.
// Must pass a non-negative value; negative values panic with ErrNegativeFloor.
func WithMinSeats(min int) Option {
	return func(o *Options) {
		if min < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrNegativeFloor.Error())
		}
		o.MinSeats = min
	}
}

// WithFloor overrides the seat floor for a single entity, taking precedence
// over MinSeats for that entity only. Overrides naming IDs that do not occur
// in the request are ignored.
// Must pass a non-negative value; negative values panic with ErrNegativeFloor.
func WithFloor(id string, floor int) Option {
	return func(o *Options) {
		if floor < 0 {
			panic(ErrNegativeFloor.Error())
		}
		if o.Floors == nil {
			o.Floors = make(map[string]int)
		}
		o.Floors[id] = floor
	}
}

// DefaultOptions returns an Options struct initialized with the documented
// defaults. Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - TotalSeats: DefaultTotalSeats (435).
//   - MinSeats:   DefaultMinSeats (1).
//   - Floors:     nil (no per-entity overrides).
func DefaultOptions() Options {
	return Options{
		TotalSeats: DefaultTotalSeats,
		MinSeats:   DefaultMinSeats,
		Floors:     nil,
	}
}

// floorFor returns the effective seat floor for the given entity ID:
// the per-entity override if one exists, the uniform MinSeats otherwise.
func (o Options) floorFor(id string) int {
	if floor, ok := o.Floors[id]; ok {
		return floor
	}

	return o.MinSeats
}
