// Package census_test contains unit tests for the embedded state directory:
// structural integrity of the table, the three lookup modes, and the
// DC / Puerto Rico participation switches.
package census_test

import (
	"testing"

	"github.com/katalvlaran/apportion/census"
	"github.com/katalvlaran/apportion/hhill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Directory integrity: the embedded table must be complete and coherent.
// ------------------------------------------------------------------------

func TestAll_RowCountAndUniqueness(t *testing.T) {
	rows := census.All()
	require.Len(t, rows, 52, "50 states + DC + PR")

	fips := make(map[string]struct{}, len(rows))
	abbrs := make(map[string]struct{}, len(rows))
	names := make(map[string]struct{}, len(rows))
	for _, st := range rows {
		assert.Len(t, st.FIPS, census.FIPSLen, "FIPS codes are zero-padded to width 2")
		assert.Len(t, st.Abbr, 2)
		assert.NotEmpty(t, st.Name)
		assert.Positive(t, st.Population, "%s", st.Abbr)

		fips[st.FIPS] = struct{}{}
		abbrs[st.Abbr] = struct{}{}
		names[st.Name] = struct{}{}
	}
	assert.Len(t, fips, 52, "FIPS codes are unique")
	assert.Len(t, abbrs, 52, "abbreviations are unique")
	assert.Len(t, names, 52, "names are unique")
}

func TestAll_FIPSOrder(t *testing.T) {
	rows := census.All()
	for i := 1; i < len(rows); i++ {
		assert.Less(t, rows[i-1].FIPS, rows[i].FIPS, "directory is sorted by FIPS")
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := census.All()
	first[0].Name = "Mutated"
	again := census.All()
	assert.NotEqual(t, "Mutated", again[0].Name, "All must hand out fresh copies")
}

// ------------------------------------------------------------------------
// 2. Lookup: FIPS digits, abbreviation, and full-name resolution.
// ------------------------------------------------------------------------

func TestLookup_ByFIPS(t *testing.T) {
	// Both padded and unpadded digit queries resolve as FIPS codes.
	st, err := census.Lookup("06")
	require.NoError(t, err)
	assert.Equal(t, "CA", st.Abbr)

	st, err = census.Lookup("6")
	require.NoError(t, err)
	assert.Equal(t, "California", st.Name)
}

func TestLookup_ByAbbreviation(t *testing.T) {
	for _, query := range []string{"TX", "tx", "Tx"} {
		st, err := census.Lookup(query)
		require.NoError(t, err, "query %q", query)
		assert.Equal(t, "48", st.FIPS, "query %q", query)
	}
}

func TestLookup_ByName(t *testing.T) {
	for _, query := range []string{"New York", "new york", "NEW YORK"} {
		st, err := census.Lookup(query)
		require.NoError(t, err, "query %q", query)
		assert.Equal(t, "NY", st.Abbr, "query %q", query)
	}
}

func TestLookup_TrimsWhitespace(t *testing.T) {
	st, err := census.Lookup("  Wyoming  ")
	require.NoError(t, err)
	assert.Equal(t, "WY", st.Abbr)
}

func TestLookup_Errors(t *testing.T) {
	_, err := census.Lookup("")
	assert.ErrorIs(t, err, census.ErrEmptyQuery)

	_, err = census.Lookup("   ")
	assert.ErrorIs(t, err, census.ErrEmptyQuery)

	// "99" is digits of FIPS width but matches no row.
	_, err = census.Lookup("99")
	assert.ErrorIs(t, err, census.ErrStateNotFound)

	// "ZZ" is abbreviation-shaped but matches no row.
	_, err = census.Lookup("ZZ")
	assert.ErrorIs(t, err, census.ErrStateNotFound)

	_, err = census.Lookup("Atlantis")
	assert.ErrorIs(t, err, census.ErrStateNotFound)
}

// ------------------------------------------------------------------------
// 3. Entities: conversion to the apportionment request shape.
// ------------------------------------------------------------------------

// entityIDs collects the ID set of an entity slice.
func entityIDs(entities []hhill.Entity) map[string]struct{} {
	ids := make(map[string]struct{}, len(entities))
	for _, ent := range entities {
		ids[ent.ID] = struct{}{}
	}

	return ids
}

func TestEntities_DefaultsToFiftyStates(t *testing.T) {
	entities := census.Entities()
	require.Len(t, entities, 50)

	ids := entityIDs(entities)
	assert.NotContains(t, ids, "DC")
	assert.NotContains(t, ids, "PR")
	assert.Contains(t, ids, "CA")
	assert.Contains(t, ids, "WY")
}

func TestEntities_IncludeSwitches(t *testing.T) {
	withDC := census.Entities(census.WithDC())
	require.Len(t, withDC, 51)
	assert.Contains(t, entityIDs(withDC), "DC")

	withBoth := census.Entities(census.WithDC(), census.WithPR())
	require.Len(t, withBoth, 52)
	ids := entityIDs(withBoth)
	assert.Contains(t, ids, "DC")
	assert.Contains(t, ids, "PR")
}

func TestEntities_FeedsApportion(t *testing.T) {
	// The directory must be directly consumable by the engine: 435 seats
	// over the 50 states, every state at least one, California the largest
	// delegation, and the single-seat states exactly at their floor.
	seats, err := hhill.Apportion(census.Entities())
	require.NoError(t, err)

	sum := 0
	maxID, maxSeats := "", 0
	for id, n := range seats {
		sum += n
		assert.GreaterOrEqual(t, n, 1, "state %s", id)
		if n > maxSeats {
			maxID, maxSeats = id, n
		}
	}
	assert.Equal(t, 435, sum)
	assert.Equal(t, "CA", maxID, "California holds the largest delegation")

	for _, small := range []string{"WY", "VT", "AK", "ND"} {
		assert.Equal(t, 1, seats[small], "state %s", small)
	}
}
