package scoring

import (
	"fmt"

	"github.com/ternarybob/gauntlet/internal/models"
	"github.com/ternarybob/gauntlet/internal/services/evidence"
)

// RecurringRevenue scores 0-5 from the revenue evidence. A disclosed
// percentage drives the ladder; weaker evidence bottoms out at the
// conservative fallbacks.
func (s *Scorer) RecurringRevenue(ev evidence.RevenueEvidence) Score {
	t := s.thresholds()

	switch ev.Source {
	case evidence.RevenueSourceExplicit, evidence.RevenueSourceStatement:
		pct := ev.Percent
		reasoning := fmt.Sprintf("%.0f%% recurring revenue (%s)", pct, ev.Source)
		switch {
		case pct >= t.RecurringExcellent:
			return scored(5, reasoning)
		case pct >= t.RecurringStrong:
			return scored(4, reasoning)
		case pct >= t.RecurringGood:
			return scored(3, reasoning)
		case pct >= t.RecurringModerate:
			return scored(2, reasoning)
		case pct >= t.RecurringMinimal:
			return scored(1, reasoning)
		default:
			return scored(0, reasoning)
		}
	case evidence.RevenueSourceKeywords:
		return scored(3, fmt.Sprintf("Conservative score from %d strong business summary keywords", ev.StrongKeywordCount))
	case evidence.RevenueSourceModel:
		return scored(2, fmt.Sprintf("Subscription model detected (%s) without a disclosed percentage", ev.ModelType))
	default:
		return scored(0, "No recurring revenue indicators found")
	}
}

// RecessionResistance requires human judgement of demand durability
// through downturns.
func (s *Scorer) RecessionResistance() Score {
	return manual("Requires manual evaluation of demand durability through recessions")
}

// PricingPower scores 0-5 from the gross margin history: trend
// direction and decline rate set the base, then margin level,
// volatility, the recent three-year trend, and a trailing-twelve-month
// shift adjust it.
//
// margins are annual gross margin percentages in chronological order;
// ttmMargin is the trailing-twelve-month margin, or 0 when unavailable.
func (s *Scorer) PricingPower(margins []float64, ttmMargin float64) Score {
	t := s.thresholds()
	if len(margins) < 2 {
		return scored(0, "Insufficient gross margin history")
	}

	overallChange := margins[len(margins)-1] - margins[0]
	direction := "stable"
	if overallChange > 1 {
		direction = "rising"
	} else if overallChange < -1 {
		direction = "declining"
	}

	annualRate := 0.0
	if len(margins) > 1 {
		annualRate = overallChange / float64(len(margins)-1)
	}

	points := 0.0
	switch direction {
	case "rising":
		points = 3
	case "stable":
		points = 1
	case "declining":
		switch {
		case annualRate >= -2 && annualRate <= 2:
			points = 2
		case annualRate >= -4 && annualRate <= 4:
			points = 1
		}
	}

	avg, _ := mean(margins)
	switch {
	case avg > t.MarginLevelExceptional:
		points += 3
	case avg > t.MarginLevelStrong:
		points += 2
	case avg > t.MarginLevelHealthy:
		points += 1
	case avg < t.MarginLevelWeak:
		points--
	}

	// Short series fit their trend line exactly and take the
	// low-volatility bonus.
	volatility := fitVolatility(margins)
	if volatility < t.MarginVolatilityLow {
		points++
	} else if volatility > t.MarginVolatilityHigh {
		points--
	}

	recent := margins
	if len(margins) > 3 {
		recent = margins[len(margins)-3:]
	}
	if len(recent) >= 2 {
		if recent[len(recent)-1] > recent[0] {
			points++
		} else if recent[len(recent)-1] < recent[0] {
			points--
		}
	}

	if ttmMargin != 0 {
		shift := ttmMargin - margins[len(margins)-1]
		if shift > t.MarginTTMShift {
			points++
		} else if shift < -t.MarginTTMShift {
			points--
		}
	}

	final := clampScore(points, 0, 5)
	reasoning := fmt.Sprintf("%.1f%% avg margin, %s trend (%+.1f%%/yr), %.1f volatility", avg, direction, annualRate, volatility)
	if ttmMargin != 0 {
		reasoning += fmt.Sprintf(", TTM %.1f%%", ttmMargin)
	}
	return scored(final, reasoning)
}

// GrossMarginHistory derives the chronological annual margin series
// for PricingPower from the income statement, skipping years without
// usable revenue.
func GrossMarginHistory(f *models.Financials) []float64 {
	if f == nil {
		return nil
	}
	margins := make([]float64, 0, len(f.AnnualIncome))
	for i := len(f.AnnualIncome) - 1; i >= 0; i-- {
		row := f.AnnualIncome[i]
		if row.TotalRevenue > 0 && row.GrossProfit != 0 {
			margins = append(margins, row.GrossProfit/row.TotalRevenue*100)
		}
	}
	return margins
}

// TTMGrossMargin sums the last four quarters into a trailing margin
// percentage. At least three usable quarters are required; otherwise 0.
func TTMGrossMargin(f *models.Financials) float64 {
	if f == nil {
		return 0
	}
	quarters := f.QuarterlyIncome
	if len(quarters) > 4 {
		quarters = quarters[:4]
	}

	var revenue, grossProfit float64
	used := 0
	for _, q := range quarters {
		if q.TotalRevenue > 0 {
			revenue += q.TotalRevenue
			grossProfit += q.GrossProfit
			used++
		}
	}
	if used < 3 || revenue == 0 {
		return 0
	}
	return grossProfit / revenue * 100
}
