package scoring

import (
	"fmt"

	"github.com/ternarybob/gauntlet/internal/models"
)

// SalesEfficiency scores customer acquisition 0-5 from sales and
// marketing spend as a share of gross profit, falling back to SG&A when
// the statement doesn't break S&M out. Missing data gets the neutral 2.
func (s *Scorer) SalesEfficiency(f *models.Financials) Score {
	t := s.thresholds()
	if f == nil || len(f.AnnualIncome) == 0 {
		return scored(2, "Gross profit data unavailable, using neutral score")
	}
	latest := f.AnnualIncome[0]
	if latest.GrossProfit <= 0 {
		return scored(2, "Gross profit data unavailable, using neutral score")
	}

	expense := latest.SellingMarketing
	if expense == 0 {
		expense = latest.SellingGeneral
	}
	if expense == 0 {
		return scored(2, "Both S&M and SG&A data unavailable, using neutral score")
	}

	pct := expense / latest.GrossProfit * 100
	switch {
	case pct < t.SalesEfficiencyExcellent:
		return scored(5, fmt.Sprintf("Excellent efficiency (%.1f%% of gross profit)", pct))
	case pct < t.SalesEfficiencyGood:
		return scored(4, fmt.Sprintf("Good efficiency (%.1f%% of gross profit)", pct))
	case pct < t.SalesEfficiencyModerate:
		return scored(3, fmt.Sprintf("Moderate efficiency (%.1f%% of gross profit)", pct))
	case pct < t.SalesEfficiencyBelowAvg:
		return scored(2, fmt.Sprintf("Below average efficiency (%.1f%% of gross profit)", pct))
	case pct < t.SalesEfficiencyPoor:
		return scored(1, fmt.Sprintf("Poor efficiency (%.1f%% of gross profit)", pct))
	default:
		return scored(0, fmt.Sprintf("Very poor efficiency (%.1f%% of gross profit)", pct))
	}
}

// Dependence requires human judgement of cyclical exposure.
func (s *Scorer) Dependence() Score {
	return manual("Requires manual evaluation of cyclical dependence (highly cyclical / moderate / recession proof)")
}
