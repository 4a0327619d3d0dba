package scoring

import (
	"fmt"

	"github.com/ternarybob/gauntlet/internal/models"
)

// Growth-trend checks look for this many consecutive improving periods.
const growthPeriods = 3

// Resilience scores balance-sheet strength 0-5: cash covering total
// debt (+2), debt-to-equity under 1 (+1), no preferred stock (+1),
// assets covering debt at least twice over (+1), and retained earnings
// growing across the recent quarters (+1).
func (s *Scorer) Resilience(f *models.Financials) Score {
	if f == nil || len(f.QuarterlyBalance) == 0 {
		return scored(0, "No quarterly balance sheet data")
	}
	latest := f.QuarterlyBalance[0]

	points := 0.0
	var strengths []string

	if latest.Cash > 0 && latest.TotalDebt > 0 && latest.Cash > latest.TotalDebt {
		points += 2
		strengths = append(strengths, "strong cash position")
	}
	if latest.TotalEquity > 0 && latest.TotalDebt/latest.TotalEquity < 1 {
		points++
		strengths = append(strengths, "low debt-to-equity")
	}
	if latest.PreferredEquity == 0 {
		points++
		strengths = append(strengths, "no preferred stock overhang")
	}
	if latest.TotalDebt > 0 && latest.TotalAssets/latest.TotalDebt > 2 {
		points++
		strengths = append(strengths, "strong asset coverage")
	}

	retained := make([]float64, 0, len(f.QuarterlyBalance))
	for _, row := range f.QuarterlyBalance {
		retained = append(retained, row.RetainedEarnings)
	}
	if consecutiveGrowth(retained, growthPeriods) {
		points++
		strengths = append(strengths, "consistent earnings growth")
	}

	if points > 5 {
		points = 5
	}
	if len(strengths) == 0 {
		return scored(points, "Limited financial resilience indicators")
	}
	return scored(points, joinStrengths(strengths))
}

// GrossMargin scores the latest annual gross margin 0-3.
func (s *Scorer) GrossMargin(f *models.Financials) Score {
	t := s.thresholds()
	if f == nil || len(f.AnnualIncome) == 0 {
		return scored(0, "Missing gross profit or revenue data")
	}
	latest := f.AnnualIncome[0]
	if latest.TotalRevenue <= 0 || latest.GrossProfit == 0 {
		return scored(0, "Missing gross profit or revenue data")
	}

	margin := latest.GrossProfit / latest.TotalRevenue
	pct := margin * 100
	switch {
	case margin > t.GrossMarginExcellent:
		return scored(3, fmt.Sprintf("Excellent margin (%.1f%%)", pct))
	case margin >= t.GrossMarginStrong:
		return scored(2, fmt.Sprintf("Good margin (%.1f%%)", pct))
	case margin >= t.GrossMarginAdequate:
		return scored(1, fmt.Sprintf("Moderate margin (%.1f%%)", pct))
	default:
		return scored(0, fmt.Sprintf("Low margin (%.1f%%)", pct))
	}
}

// ReturnOnEquity scores the latest ROE 0-3: the base ladder plus a
// bonus when net income over equity has improved for consecutive years.
func (s *Scorer) ReturnOnEquity(f *models.Financials) Score {
	t := s.thresholds()
	if f == nil || len(f.AnnualIncome) == 0 || len(f.AnnualBalance) == 0 {
		return scored(0, "No ROE data available")
	}
	if f.AnnualBalance[0].TotalEquity == 0 {
		return scored(0, "No ROE data available")
	}

	roe := f.AnnualIncome[0].NetIncome / f.AnnualBalance[0].TotalEquity
	pct := roe * 100

	points := 0.0
	var strengths []string
	switch {
	case roe > t.ROEStrong:
		points = 2
		strengths = append(strengths, fmt.Sprintf("excellent ROE (%.1f%%)", pct))
	case roe >= t.ROEAdequate:
		points = 1
		strengths = append(strengths, fmt.Sprintf("good ROE (%.1f%%)", pct))
	default:
		strengths = append(strengths, fmt.Sprintf("low ROE (%.1f%%)", pct))
	}

	if history := historicalROE(f); consecutiveGrowth(history, growthPeriods) {
		points++
		strengths = append(strengths, "growing consistently")
	}
	return scored(points, joinStrengths(strengths))
}

// historicalROE pairs annual net income with annual equity, newest
// first, for as many years as both statements cover.
func historicalROE(f *models.Financials) []float64 {
	n := len(f.AnnualIncome)
	if len(f.AnnualBalance) < n {
		n = len(f.AnnualBalance)
	}
	history := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		equity := f.AnnualBalance[i].TotalEquity
		if equity == 0 {
			break
		}
		history = append(history, f.AnnualIncome[i].NetIncome/equity)
	}
	return history
}

// FreeCashFlow scores the FCF history 0-3: positive on average earns 2,
// consecutive growth earns the bonus point.
func (s *Scorer) FreeCashFlow(f *models.Financials) Score {
	if f == nil || len(f.AnnualCashFlow) == 0 {
		return scored(0, "No FCF data available")
	}
	vals := make([]float64, 0, len(f.AnnualCashFlow))
	for _, row := range f.AnnualCashFlow {
		vals = append(vals, row.FreeCashFlow)
	}

	avg, _ := mean(vals)
	if avg <= 0 {
		return scored(0, fmt.Sprintf("Negative FCF ($%.1fB avg)", avg/1e9))
	}

	points := 2.0
	strengths := []string{fmt.Sprintf("positive FCF ($%.1fB avg)", avg/1e9)}
	if consecutiveGrowth(vals, growthPeriods) {
		points++
		strengths = append(strengths, "growing consistently")
	}
	return scored(points, joinStrengths(strengths))
}

// EarningsPerShare scores the EPS history 0-3 the same way.
func (s *Scorer) EarningsPerShare(f *models.Financials) Score {
	if f == nil || len(f.AnnualIncome) == 0 {
		return scored(0, "No EPS data available")
	}
	vals := make([]float64, 0, len(f.AnnualIncome))
	for _, row := range f.AnnualIncome {
		vals = append(vals, row.EPS)
	}

	avg, _ := mean(vals)
	if avg <= 0 {
		return scored(0, fmt.Sprintf("Negative EPS ($%.2f avg)", avg))
	}

	points := 2.0
	strengths := []string{fmt.Sprintf("positive EPS ($%.2f avg)", avg)}
	if consecutiveGrowth(vals, growthPeriods) {
		points++
		strengths = append(strengths, "growing consistently")
	}
	return scored(points, joinStrengths(strengths))
}
