package scoring

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/ternarybob/gauntlet/internal/models"
	"github.com/ternarybob/gauntlet/internal/rules"
	"github.com/ternarybob/gauntlet/internal/services/evidence"
)

// Optionality requires human judgement of strategic options.
func (s *Scorer) Optionality() Score {
	return manual("Requires manual evaluation of strategic options and future opportunities")
}

// OrganicGrowth requires human judgement of projected revenue growth.
func (s *Scorer) OrganicGrowth() Score {
	return manual("Requires manual evaluation of projected revenue growth")
}

// TopDog scores market position 0-3 from filing evidence. A company
// outside every emerging industry is capped at 1 no matter how loudly
// its filing talks about leadership.
func (s *Scorer) TopDog(result evidence.TopDogResult) Score {
	maxScore := 1.0
	if result.InEmergingIndustry() {
		maxScore = 3
	}

	points := 0.0
	var strengths []string

	if result.InEmergingIndustry() {
		mentions := result.TotalIndustryMentions()
		if mentions >= 10 {
			points++
			strengths = append(strengths, fmt.Sprintf("strong presence in emerging industries (%d mentions)", mentions))
		} else if mentions >= 5 {
			points += 0.5
			strengths = append(strengths, fmt.Sprintf("moderate presence in emerging industries (%d mentions)", mentions))
		}
	}

	leaders := result.Matches[rules.TopDogMarketLeader]
	if leaders >= 3 && result.InEmergingIndustry() {
		points++
		strengths = append(strengths, fmt.Sprintf("market leader in emerging industry (%d indicators)", leaders))
	} else if leaders >= 1 {
		points += 0.5
		strengths = append(strengths, fmt.Sprintf("potential market leader (%d indicators)", leaders))
	}

	firstMover := result.Matches[rules.TopDogFirstMover]
	if firstMover >= 5 {
		points++
		strengths = append(strengths, fmt.Sprintf("first mover advantage (%d indicators)", firstMover))
	} else if firstMover >= 2 {
		points += 0.5
		strengths = append(strengths, fmt.Sprintf("first mover indicators (%d mentions)", firstMover))
	}

	disruptor := result.Matches[rules.TopDogDisruptor]
	if disruptor >= 5 {
		points++
		strengths = append(strengths, fmt.Sprintf("industry disruptor (%d indicators)", disruptor))
	} else if disruptor >= 2 {
		points += 0.5
		strengths = append(strengths, fmt.Sprintf("disruption indicators (%d mentions)", disruptor))
	}

	final := math.Min(maxScore, math.Round(points))
	if len(strengths) == 0 {
		return scored(final, "No significant top dog indicators")
	}
	return scored(final, joinStrengths(strengths))
}

// OperatingLeverage scores 0-4 how strongly operating income reacts to
// revenue growth, blending the trailing-twelve-month, one-year, and
// two-year windows. A window only counts when revenue actually grew
// beyond the noise floor.
func (s *Scorer) OperatingLeverage(f *models.Financials) Score {
	t := s.thresholds()
	if f == nil || len(f.AnnualIncome) < 2 {
		return scored(0, "No operating leverage or insufficient comparable data")
	}

	type window struct {
		name   string
		weight float64
	}
	windows := []window{
		{"ttm", t.LeverageWeightTTM},
		{"1y", t.LeverageWeightOneYear},
		{"2y", t.LeverageWeightTwoYear},
	}

	revenue, opIncome := leverageSeries(f)

	ratios := map[string]float64{}
	for i, w := range windows {
		if i+1 >= len(revenue) {
			break
		}
		revChange, revOK := pctChange(revenue[i], revenue[i+1])
		opChange, opOK := pctChange(opIncome[i], opIncome[i+1])
		if !revOK || !opOK {
			continue
		}
		if revChange <= t.LeverageMinRevenueChange {
			ratios[w.name] = 0
			continue
		}
		ratios[w.name] = math.Abs(opChange / revChange)
	}

	totalWeight := 0.0
	weighted := 0.0
	for _, w := range windows {
		if ratio, ok := ratios[w.name]; ok {
			totalWeight += w.weight
			weighted += w.weight * ratio
		}
	}
	if totalWeight == 0 {
		return scored(0, "No operating leverage or insufficient comparable data")
	}
	leverage := weighted / totalWeight

	switch {
	case leverage <= 0:
		return scored(0, "No operating leverage or insufficient comparable data")
	case leverage <= 1:
		return scored(1, fmt.Sprintf("Low operating leverage (%.2f)", leverage))
	case leverage <= 2:
		return scored(2, fmt.Sprintf("Moderate operating leverage (%.2f)", leverage))
	case leverage <= 3:
		return scored(3, fmt.Sprintf("High operating leverage (%.2f)", leverage))
	default:
		return scored(4, fmt.Sprintf("Exceptional operating leverage (%.2f)", leverage))
	}
}

// leverageSeries returns revenue and operating income newest first,
// with the head replaced by a trailing-twelve-month sum of quarters when
// the latest annual statement has gone stale.
func leverageSeries(f *models.Financials) (revenue, opIncome []float64) {
	for _, row := range f.AnnualIncome {
		revenue = append(revenue, row.TotalRevenue)
		opIncome = append(opIncome, row.OperatingIncome)
	}

	if annualStale(f) && len(f.QuarterlyIncome) >= 4 {
		var ttmRev, ttmOp float64
		for _, q := range f.QuarterlyIncome[:4] {
			ttmRev += q.TotalRevenue
			ttmOp += q.OperatingIncome
		}
		revenue = append([]float64{ttmRev}, revenue...)
		opIncome = append([]float64{ttmOp}, opIncome...)
	}
	return revenue, opIncome
}

// annualStale reports whether the newest annual statement is old enough
// that summing the last four quarters gives a better trailing year.
func annualStale(f *models.Financials) bool {
	if len(f.AnnualIncome) == 0 || len(f.AnnualIncome[0].Date) < 4 {
		return false
	}
	year, err := strconv.Atoi(f.AnnualIncome[0].Date[:4])
	if err != nil {
		return false
	}
	return time.Now().Year() > year+1
}
