package scoring

import "math"

// mean returns the arithmetic mean, or false for an empty slice.
func mean(vals []float64) (float64, bool) {
	if len(vals) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals)), true
}

// pctChange returns (current-prior)/prior, or false when the baseline is
// zero or either value is not finite.
func pctChange(current, prior float64) (float64, bool) {
	if prior == 0 || math.IsNaN(prior) || math.IsInf(prior, 0) ||
		math.IsNaN(current) || math.IsInf(current, 0) {
		return 0, false
	}
	return (current - prior) / prior, true
}

// consecutiveGrowth reports whether the n most recent values each exceed
// the value before them. vals is newest first, the way statement rows
// arrive from providers.
func consecutiveGrowth(vals []float64, n int) bool {
	if n < 2 || len(vals) < n {
		return false
	}
	for i := 0; i < n-1; i++ {
		if vals[i] <= vals[i+1] {
			return false
		}
	}
	return true
}

// priceReturn computes (last-first)/first over a close-price series in
// chronological order. Returns false when there are fewer than two bars
// or the first close is zero.
func priceReturn(closes []float64) (float64, bool) {
	if len(closes) < 2 || closes[0] == 0 {
		return 0, false
	}
	return (closes[len(closes)-1] - closes[0]) / closes[0], true
}

// fitVolatility measures how far a series strays from its own straight
// line: an ordinary least-squares fit over index positions, then the
// mean absolute deviation of the residuals. Needs at least three points.
func fitVolatility(vals []float64) float64 {
	n := len(vals)
	if n < 3 {
		return 0
	}
	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range vals {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}
	fn := float64(n)
	denom := fn*sumX2 - sumX*sumX
	if denom == 0 {
		return 0
	}
	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn

	total := 0.0
	for i, y := range vals {
		total += math.Abs(y - (slope*float64(i) + intercept))
	}
	return total / fn
}

// clampScore bounds a score to [lo, hi].
func clampScore(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
