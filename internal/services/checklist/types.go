// Package checklist orchestrates a scoring run: fetch the inputs for
// each ticker, extract evidence, apply every segment's ladders, and
// aggregate totals. A failing segment degrades to an empty result for
// that segment only; the run keeps going.
package checklist

import (
	"time"

	"github.com/ternarybob/gauntlet/internal/rules"
	"github.com/ternarybob/gauntlet/internal/services/scoring"
)

// Metric names as they appear in results and the audit log.
const (
	MetricResilience  = "Resilience Score"
	MetricGrossMargin = "Gross Margin Score"
	MetricROE         = "ROE Score"
	MetricFCF         = "FCF Score"
	MetricEPS         = "EPS Score"

	MetricOptionality       = "Optionality Score"
	MetricOrganicGrowth     = "Organic Growth Score"
	MetricTopDog            = "Top Dog Score"
	MetricOperatingLeverage = "Operating Leverage Score"
	MetricRecurringRevenue  = "Recurring Revenue Score"

	MetricAcquisitions = "Acquisitions Score"
	MetricDependence   = "Dependence Score"

	MetricPricingPower        = "Pricing Power Score"
	MetricRecessionResistance = "Recession Resistance Score"

	MetricSoulInTheGame    = "Soul in the Game Score"
	MetricInsideOwnership  = "Inside Ownership Score"
	MetricGlassdoorRatings = "Glassdoor Ratings Score"
	MetricMissionStatement = "Mission Statement Score"

	MetricPerformance        = "5-Year Performance Score"
	MetricShareholderActions = "Shareholder Friendly Actions Score"
	MetricBeatsExpectations  = "Consistently Beats Expectations Score"

	MetricAccountingIrregularities = "Accounting Irregularities"
	MetricCustomerConcentration    = "Customer Concentration"
	MetricIndustryDisruption       = "Industry Disruption"
	MetricOutsideForces            = "Outside Forces"
	MetricBigMarketLoser           = "Big Market Loser"
	MetricBinaryEvents             = "Binary Events"
	MetricExtremeDilution          = "Extreme Dilution"
	MetricGrowthByAcquisition      = "Growth By Acquisition"
	MetricComplicatedFinancials    = "Complicated Financials"
	MetricAntitrustConcerns        = "Antitrust Concerns"
	MetricHeadquartersRisk         = "Headquarters Risk"

	// MetricGauntletScore is the penalties roll-up. It repeats the sum of
	// the individual penalty scores and is excluded from ticker totals.
	MetricGauntletScore = "Gauntlet Score"
)

// MetricResult is one scored metric.
type MetricResult struct {
	Name  string        `json:"name"`
	Max   float64       `json:"max"`
	Score scoring.Score `json:"score"`
}

// SegmentResult groups the metrics of one checklist segment.
type SegmentResult struct {
	Name    string         `json:"name"`
	Max     int            `json:"max"`
	Metrics []MetricResult `json:"metrics"`
}

// Total sums the segment's automated scores. Manual metrics and the
// penalties roll-up contribute nothing.
func (s SegmentResult) Total() float64 {
	total := 0.0
	for _, m := range s.Metrics {
		if m.Score.Manual || m.Name == MetricGauntletScore {
			continue
		}
		total += m.Score.Value
	}
	return total
}

// TickerResult is one company's full checklist outcome.
type TickerResult struct {
	Ticker   string          `json:"ticker"`
	Company  string          `json:"company,omitempty"`
	RunID    string          `json:"run_id"`
	ScoredAt time.Time       `json:"scored_at"`
	Segments []SegmentResult `json:"segments"`
	// Mission is the captured mission statement, surfaced for the
	// manual management review.
	Mission string `json:"mission,omitempty"`
}

// Total sums all segment totals, penalties included.
func (t *TickerResult) Total() float64 {
	total := 0.0
	for _, seg := range t.Segments {
		total += seg.Total()
	}
	return total
}

// Segment returns the named segment result, or nil.
func (t *TickerResult) Segment(name string) *SegmentResult {
	for i := range t.Segments {
		if t.Segments[i].Name == name {
			return &t.Segments[i]
		}
	}
	return nil
}

// RunResult is the outcome of one scoring run across a watchlist.
type RunResult struct {
	RunID     string          `json:"run_id"`
	StartedAt time.Time       `json:"started_at"`
	Duration  time.Duration   `json:"duration"`
	Results   []*TickerResult `json:"results"`
}

// segmentOrder fixes how segments appear in results and reports.
var segmentOrder = []string{
	rules.SegmentFinancials,
	rules.SegmentMoat,
	rules.SegmentPotential,
	rules.SegmentCustomers,
	rules.SegmentSpecific,
	rules.SegmentManagement,
	rules.SegmentStock,
	rules.SegmentPenalties,
}
