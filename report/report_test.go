// Package report_test contains unit tests for district-size summaries.
package report_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/apportion/hhill"
	"github.com/katalvlaran/apportion/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Validation: request and seat table must correspond.
// ------------------------------------------------------------------------

func TestSummarize_MismatchedResult(t *testing.T) {
	entities := []hhill.Entity{
		{ID: "A", Population: 100},
		{ID: "B", Population: 200},
	}

	// Wrong cardinality.
	_, err := report.Summarize(entities, map[string]int{"A": 1})
	assert.ErrorIs(t, err, report.ErrMismatchedResult)

	// Right cardinality, wrong membership.
	_, err = report.Summarize(entities, map[string]int{"A": 1, "X": 1})
	assert.ErrorIs(t, err, report.ErrMismatchedResult)
}

func TestSummarize_NoSeats(t *testing.T) {
	entities := []hhill.Entity{{ID: "A", Population: 100}}
	_, err := report.Summarize(entities, map[string]int{"A": 0})
	assert.ErrorIs(t, err, report.ErrNoSeats)
}

// ------------------------------------------------------------------------
// 2. Statistics: hand-checked small allocations.
// ------------------------------------------------------------------------

func TestSummarize_HandChecked(t *testing.T) {
	// Districts: A → 100/2 = 50, B → 100/1 = 100, C → 300/2 = 150.
	entities := []hhill.Entity{
		{ID: "A", Population: 100},
		{ID: "B", Population: 100},
		{ID: "C", Population: 300},
	}
	seats := map[string]int{"A": 2, "B": 1, "C": 2}

	summary, err := report.Summarize(entities, seats)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Entities)
	assert.Equal(t, 5, summary.TotalSeats)
	assert.InDelta(t, 100.0, summary.MeanDistrict, 1e-9)
	assert.InDelta(t, 100.0, summary.MedianDistrict, 1e-9)
	// Population stddev of {50, 100, 150} = sqrt((2500+0+2500)/3).
	assert.InDelta(t, math.Sqrt(5000.0/3.0), summary.StdDevDistrict, 1e-6)
	assert.InDelta(t, 50.0, summary.MinDistrict, 1e-9)
	assert.InDelta(t, 150.0, summary.MaxDistrict, 1e-9)

	// Worst pair: C (150 per seat) vs A (50 per seat) → 150/50 − 1 = 2.
	assert.InDelta(t, 2.0, summary.MaxDisparity, 1e-9)
	assert.Equal(t, [2]string{"C", "A"}, summary.MaxDisparityPair)
}

func TestSummarize_ZeroPopulationFloorSeat(t *testing.T) {
	// A zero-population entity with a floor seat produces a district of size
	// 0, so the worst relative disparity is unbounded.
	entities := []hhill.Entity{
		{ID: "A", Population: 0},
		{ID: "B", Population: 100},
	}
	seats := map[string]int{"A": 1, "B": 2}

	summary, err := report.Summarize(entities, seats)
	require.NoError(t, err)
	assert.Zero(t, summary.MinDistrict)
	assert.True(t, math.IsInf(summary.MaxDisparity, 1))
	assert.Equal(t, [2]string{"B", "A"}, summary.MaxDisparityPair)
}

func TestSummarize_ZeroSeatEntitiesExcluded(t *testing.T) {
	// Entities with no seats contribute no district sample.
	entities := []hhill.Entity{
		{ID: "A", Population: 0},
		{ID: "B", Population: 120},
	}
	seats := map[string]int{"A": 0, "B": 3}

	summary, err := report.Summarize(entities, seats)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalSeats)
	assert.InDelta(t, 40.0, summary.MinDistrict, 1e-9)
	assert.InDelta(t, 40.0, summary.MaxDistrict, 1e-9)
	assert.Zero(t, summary.MaxDisparity)
}

// ------------------------------------------------------------------------
// 3. Integration: summary of a real engine run.
// ------------------------------------------------------------------------

func TestSummarize_OverApportionResult(t *testing.T) {
	entities := []hhill.Entity{
		{ID: "A", Population: 105},
		{ID: "B", Population: 100},
		{ID: "C", Population: 50},
	}
	seats, err := hhill.Apportion(entities, hhill.WithTotalSeats(5))
	require.NoError(t, err)

	summary, err := report.Summarize(entities, seats)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.TotalSeats)
	// Districts: A → 52.5, B → 50, C → 50.
	assert.InDelta(t, 50.0, summary.MinDistrict, 1e-9)
	assert.InDelta(t, 52.5, summary.MaxDistrict, 1e-9)
	assert.InDelta(t, 0.05, summary.MaxDisparity, 1e-9)
	assert.Equal(t, "A", summary.MaxDisparityPair[0])
}
