package engine

import "math"

// budgetScore scores compatibility between the job's budget range and the
// provider's hourly rate. Rates inside [bmin, bmax] score 1.0. Outside the
// range the score decays linearly in both directions: a rate below half the
// minimum is "too cheap to be credible" and a rate at twice the maximum is
// unaffordable; both floor at 0. The decay is continuous at both boundaries.
func budgetScore(bmin, bmax, rate float64) float64 {
	switch {
	case rate >= bmin && rate <= bmax:
		return 1.0
	case rate < bmin:
		// bmin > 0 here because rate >= 0.
		floor := bmin / 2
		return math.Max(0, (rate-floor)/(bmin-floor))
	default:
		if bmax <= 0 {
			return 0
		}
		return math.Max(0, 1-(rate-bmax)/bmax)
	}
}
