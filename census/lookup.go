package census

import (
	"fmt"
	"strings"
)

// Lookup resolves a state or territory from free-form user input.
//
// The query is interpreted in three ways, most specific first:
//
//  1. All digits, at most FIPSLen characters → a FIPS code ("6" and "06"
//     both resolve to California).
//  2. Exactly FIPSLen characters → a USPS abbreviation, case-insensitive
//     ("ca", "CA").
//  3. Anything else → a full name, case-insensitive ("new york").
//
// Returns ErrEmptyQuery for blank input and ErrStateNotFound (wrapped with
// the query) when nothing matches.
func Lookup(query string) (State, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return State{}, ErrEmptyQuery
	}

	switch {
	case isDigits(query) && len(query) <= FIPSLen:
		// Zero-pad so single-digit codes compare against the stored width.
		fips := query
		if len(fips) < FIPSLen {
			fips = strings.Repeat("0", FIPSLen-len(fips)) + fips
		}
		for _, st := range directory {
			if st.FIPS == fips {
				return st, nil
			}
		}

	case len(query) == FIPSLen:
		abbr := strings.ToUpper(query)
		for _, st := range directory {
			if st.Abbr == abbr {
				return st, nil
			}
		}

	default:
		for _, st := range directory {
			if strings.EqualFold(st.Name, query) {
				return st, nil
			}
		}
	}

	return State{}, fmt.Errorf("%w: %q", ErrStateNotFound, query)
}

// isDigits reports whether s consists solely of ASCII digits.
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
