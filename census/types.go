// Package census defines the types, options and sentinel errors for the
// embedded 2020 state directory.
//
// The directory carries one row per state or territory: the two-digit FIPS
// code, the USPS abbreviation, the full name, and the 2020 census population
// used for apportionment. Lookups accept a FIPS code, an abbreviation, or a
// full name; filters control whether the District of Columbia and Puerto
// Rico participate in an apportionment run (both are excluded by default, as
// neither holds a voting House seat).
//
// Errors (sentinel):
//
//	– ErrEmptyQuery    if a lookup query is empty or whitespace-only.
//	– ErrStateNotFound if no row matches the query.
package census

import "errors"

// Sentinel errors returned by the census directory.
var (
	// ErrEmptyQuery indicates that Lookup received an empty query string.
	ErrEmptyQuery = errors.New("census: empty state query")

	// ErrStateNotFound indicates that no state or territory matched the query.
	ErrStateNotFound = errors.New("census: no matching state or territory")
)

// FIPSLen is the width of a state FIPS code. Digit-only lookup queries of at
// most this length are interpreted as FIPS codes.
const FIPSLen = 2

// State is one row of the directory: a state or territory with its 2020
// apportionment population. For the 50 states the population is the official
// 2020 apportionment count (resident population plus overseas federal
// personnel); DC and Puerto Rico have no apportionment population, so their
// 2020 resident counts are carried instead.
type State struct {
	FIPS       string `json:"fips"`       // zero-padded 2-digit FIPS code, e.g. "06"
	Abbr       string `json:"abbr"`       // USPS abbreviation, e.g. "CA"
	Name       string `json:"name"`       // full name, e.g. "California"
	Population int64  `json:"population"` // 2020 population used for apportionment
}

// Options configures which directory rows participate in Entities.
//
// IncludeDC – include the District of Columbia (FIPS 11). Default false.
// IncludePR – include Puerto Rico (FIPS 72). Default false.
type Options struct {
	IncludeDC bool // Whether DC participates in apportionment
	IncludePR bool // Whether Puerto Rico participates in apportionment
}

// Option represents a functional option for configuring Entities.
type Option func(*Options)

// WithDC includes the District of Columbia in the entity set.
func WithDC() Option {
	return func(o *Options) {
		o.IncludeDC = true
	}
}

// WithPR includes Puerto Rico in the entity set.
func WithPR() Option {
	return func(o *Options) {
		o.IncludePR = true
	}
}

// DefaultOptions returns the documented defaults: the 50 states only, with
// both DC and Puerto Rico excluded.
func DefaultOptions() Options {
	return Options{
		IncludeDC: false,
		IncludePR: false,
	}
}
