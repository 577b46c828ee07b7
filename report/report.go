// Package report computes district-size statistics for an apportionment
// result: how many people each seat represents, how spread out those figures
// are, and the worst pairwise relative disparity — the quantity the method of
// equal proportions minimizes.
package report

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/apportion/hhill"
)

// Sentinel errors returned by Summarize.
var (
	// ErrNoSeats indicates that no entity in the allocation holds a seat, so
	// there are no districts to describe.
	ErrNoSeats = errors.New("report: allocation holds no seats")

	// ErrMismatchedResult indicates that the entity list and the seat table
	// do not correspond one-to-one.
	ErrMismatchedResult = errors.New("report: entities and seat table do not correspond")
)

// Summary describes the district sizes of one allocation. A "district" here
// is population ÷ seats for a single entity; entities holding zero seats
// contribute no district.
type Summary struct {
	Entities   int `json:"entities"`    // number of entities in the request
	TotalSeats int `json:"total_seats"` // sum of all seat counts

	MeanDistrict   float64 `json:"mean_district"`   // mean persons per seat across entities
	MedianDistrict float64 `json:"median_district"` // median persons per seat
	StdDevDistrict float64 `json:"stddev_district"` // population standard deviation of district sizes
	MinDistrict    float64 `json:"min_district"`    // smallest district (best-represented entity)
	MaxDistrict    float64 `json:"max_district"`    // largest district (worst-represented entity)

	// MaxDisparity is the worst pairwise relative difference between any two
	// district sizes: (largest ÷ smallest) − 1. +Inf when a zero-population
	// entity holds a floor seat (its district size is 0).
	MaxDisparity float64 `json:"max_disparity"`

	// MaxDisparityPair names the two entities realizing MaxDisparity:
	// the worst-represented first, the best-represented second.
	MaxDisparityPair [2]string `json:"max_disparity_pair"`
}

// Summarize computes district statistics for the given entities and their
// seat allocation (as returned by hhill.Apportion).
//
// The seat table must hold exactly the requested entities
// (ErrMismatchedResult otherwise), and at least one entity must hold a seat
// (ErrNoSeats otherwise).
func Summarize(entities []hhill.Entity, seats map[string]int) (Summary, error) {
	if len(seats) != len(entities) {
		return Summary{}, fmt.Errorf("%w: %d entities, %d seat rows", ErrMismatchedResult, len(entities), len(seats))
	}

	summary := Summary{Entities: len(entities)}

	// One district-size sample per seated entity, tracking the extremes and
	// their owners along the way.
	districts := make([]float64, 0, len(entities))
	minDistrict, maxDistrict := math.Inf(1), math.Inf(-1)
	var minID, maxID string

	for _, ent := range entities {
		n, ok := seats[ent.ID]
		if !ok {
			return Summary{}, fmt.Errorf("%w: entity %q missing from seat table", ErrMismatchedResult, ent.ID)
		}
		summary.TotalSeats += n
		if n == 0 {
			continue // no district to describe
		}

		district := float64(ent.Population) / float64(n)
		districts = append(districts, district)
		if district < minDistrict {
			minDistrict, minID = district, ent.ID
		}
		if district > maxDistrict {
			maxDistrict, maxID = district, ent.ID
		}
	}

	if len(districts) == 0 {
		return Summary{}, ErrNoSeats
	}

	var err error
	if summary.MeanDistrict, err = stats.Mean(districts); err != nil {
		return Summary{}, fmt.Errorf("report: mean: %w", err)
	}
	if summary.MedianDistrict, err = stats.Median(districts); err != nil {
		return Summary{}, fmt.Errorf("report: median: %w", err)
	}
	if summary.StdDevDistrict, err = stats.StandardDeviation(districts); err != nil {
		return Summary{}, fmt.Errorf("report: stddev: %w", err)
	}

	summary.MinDistrict = minDistrict
	summary.MaxDistrict = maxDistrict
	summary.MaxDisparityPair = [2]string{maxID, minID}
	if minDistrict == 0 {
		summary.MaxDisparity = math.Inf(1)
	} else {
		summary.MaxDisparity = maxDistrict/minDistrict - 1
	}

	return summary, nil
}
