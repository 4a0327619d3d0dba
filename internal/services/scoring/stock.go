package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/ternarybob/gauntlet/internal/models"
)

// Shareholder-action consistency needs negative cash flow in at least
// this many of the last four fiscal years.
const (
	actionLookbackYears  = 4
	actionConsistentMin  = 3
	earningsQuartersUsed = 4
)

// Performance scores 0-4 how the stock's five-year return compares to
// the benchmark index. A negative absolute return or any benchmark
// shortfall scores 0.
func (s *Scorer) Performance(stockBars, benchBars []models.PriceBar) Score {
	t := s.thresholds()

	stockPerf, stockOK := priceReturn(closes(stockBars))
	benchPerf, benchOK := priceReturn(closes(benchBars))
	if !stockOK || !benchOK {
		return scored(0, "Insufficient performance data")
	}

	diff := stockPerf - benchPerf
	versus := fmt.Sprintf("%.1f%% vs %.1f%%", stockPerf*100, benchPerf*100)

	switch {
	case stockPerf <= 0 || diff < 0:
		return scored(0, "Underperformed the index ("+versus+")")
	case diff == 0:
		return scored(1, "Inline with the index ("+versus+")")
	case diff > t.PerformanceStrongOutperform:
		return scored(4, fmt.Sprintf("Significantly outperformed the index (+%.1f%%)", diff*100))
	case diff > t.PerformanceModerateOutperform:
		return scored(3, fmt.Sprintf("Outperformed the index (+%.1f%%)", diff*100))
	default:
		return scored(2, fmt.Sprintf("Moderately outperformed the index (+%.1f%%)", diff*100))
	}
}

// ShareholderActions scores 0-3, one point per consistently funded
// return of capital: buybacks, dividends, and debt repayment. Outflows
// are negative in the cash flow statement.
func (s *Scorer) ShareholderActions(f *models.Financials) Score {
	if f == nil || len(f.AnnualCashFlow) == 0 {
		return scored(0, "Cash flow data unavailable")
	}
	rows := f.AnnualCashFlow
	if len(rows) > actionLookbackYears {
		rows = rows[:actionLookbackYears]
	}

	buybacks := consistentOutflow(rows, func(r models.CashFlowRow) float64 { return r.StockRepurchased })
	debt := consistentOutflow(rows, func(r models.CashFlowRow) float64 { return r.DebtRepayment })

	dividends := consistentOutflow(rows, func(r models.CashFlowRow) float64 { return r.DividendsPaid })
	if dividends {
		total := 0.0
		for _, r := range rows {
			total += math.Abs(r.DividendsPaid)
		}
		dividends = total > 0
	}

	var actions []string
	if buybacks {
		actions = append(actions, "buybacks")
	}
	if dividends {
		actions = append(actions, "dividends")
	}
	if debt {
		actions = append(actions, "debt repayment")
	}

	if len(actions) == 0 {
		return scored(0, "No consistent shareholder-friendly actions")
	}
	return scored(float64(len(actions)),
		fmt.Sprintf("%d/3 factors consistent: %s", len(actions), strings.Join(actions, ", ")))
}

func consistentOutflow(rows []models.CashFlowRow, field func(models.CashFlowRow) float64) bool {
	negatives := 0
	for _, r := range rows {
		if field(r) < 0 {
			negatives++
		}
	}
	return negatives >= actionConsistentMin
}

// BeatsExpectations scores 0-4 from the last four reported quarters: a
// base for the beat rate plus a bonus for the average surprise margin.
func (s *Scorer) BeatsExpectations(events []models.EarningsEvent) Score {
	t := s.thresholds()
	if len(events) < earningsQuartersUsed {
		return scored(0, "Insufficient earnings history")
	}

	beats := 0
	validQuarters := 0
	totalSurprise := 0.0
	for _, e := range events[:earningsQuartersUsed] {
		if e.EPSEstimate == 0 && e.EPSActual == 0 {
			continue
		}
		validQuarters++
		if e.EPSActual > e.EPSEstimate {
			beats++
		}
		if e.EPSEstimate != 0 {
			totalSurprise += (e.EPSActual - e.EPSEstimate) / math.Abs(e.EPSEstimate) * 100
		}
	}
	if validQuarters == 0 {
		return scored(0, "No valid earnings data found")
	}

	beatRate := float64(beats) / float64(validQuarters) * 100
	base := 0.0
	if beatRate >= t.BeatRateStrong {
		base = 2
	} else if beatRate >= t.BeatRateGood {
		base = 1
	}

	avgSurprise := totalSurprise / float64(validQuarters)
	bonus := 0.0
	if avgSurprise > t.SurpriseMarginHigh {
		bonus = 2
	} else if avgSurprise > t.SurpriseMarginGood {
		bonus = 1
	}

	return scored(base+bonus, fmt.Sprintf(
		"%.1f%% beat rate, %+.1f%% avg surprise (base: %.0f, magnitude: %.0f)",
		beatRate, avgSurprise, base, bonus))
}

func closes(bars []models.PriceBar) []float64 {
	vals := make([]float64, 0, len(bars))
	for _, b := range bars {
		vals = append(vals, b.Close)
	}
	return vals
}
