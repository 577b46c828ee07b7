package hhill

import "math"

// Priority computes the Huntington-Hill priority value for awarding an entity
// its next seat: given a population p and a current seat count k, the value of
// seat number k+1 is
//
//	priority(p, k) = p / sqrt(k·(k+1))    for k ≥ 1
//	priority(p, 0) = +Inf                 for p > 0
//	priority(0, k) = 0                    for any k, including k = 0
//
// The +Inf first-seat priority guarantees that every populated entity receives
// a seat before any entity competes for a second one, which reproduces the
// constitutional minimum-one-seat rule whenever the configured floor is 1.
// A zero-population entity never competes for any seat: its priority is 0 at
// every seat count, so it ends the run holding exactly its configured floor
// (and nothing at all under a floor of 0).
//
// Priority is a pure function with no side effects. The divisor sqrt(k·(k+1))
// is the geometric mean of k and k+1 — the signature of the "equal
// proportions" method. Callers must pass population ≥ 0 and seats ≥ 0;
// Apportion validates both before ever calling Priority.
func Priority(population int64, seats int) float64 {
	// Zero population outranks nothing, not even another zero — checked
	// before the seats == 0 case so a zero-population entity does not claim
	// an infinite first-seat priority.
	if population == 0 {
		return 0
	}

	// First seat: infinitely urgent, so floor seats are settled before any
	// entity competes for seconds. IEEE-754 +Inf compares equal to every
	// other +Inf, which leaves the deterministic ID tie-break in charge of
	// the ordering within this round.
	if seats == 0 {
		return math.Inf(1)
	}

	k := float64(seats)

	return float64(population) / math.Sqrt(k*(k+1))
}
