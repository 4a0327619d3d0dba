package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/ternarybob/gauntlet/internal/models"
	"github.com/ternarybob/gauntlet/internal/rules"
	"github.com/ternarybob/gauntlet/internal/services/evidence"
)

// ConcentrationPenalty scores customer concentration 0 to -5 from the
// strongest factual finding, weighted by how confidently it was
// extracted. Hypothetical findings never drive the score.
func (s *Scorer) ConcentrationPenalty(findings []evidence.Finding) Score {
	t := s.thresholds()
	if len(findings) == 0 {
		return scored(0, "No significant customer concentration disclosed")
	}

	actual := findings[:0:0]
	for _, f := range findings {
		if f.IsActual {
			actual = append(actual, f)
		}
	}
	if len(actual) == 0 {
		return scored(0, "Only hypothetical concentration statements found")
	}

	top := actual[0]
	effective := top.Effective()
	detail := fmt.Sprintf("%.0f%% from a %s customer base (effective %.1f%%)", top.Value, top.Type, effective)

	switch {
	case top.Type == rules.CustomerSingle && effective > t.ConcentrationSingleSevere:
		return scored(-5, "Extreme concentration risk: "+detail)
	case top.Type == rules.CustomerFew && effective > t.ConcentrationFewSevere:
		return scored(-5, "Extreme concentration risk: "+detail)
	case top.Type == rules.CustomerSingle && effective > t.ConcentrationSingleModerate:
		return scored(-3, "Moderate concentration risk: "+detail)
	case top.Type == rules.CustomerFew && effective > t.ConcentrationFewModerate:
		return scored(-3, "Moderate concentration risk: "+detail)
	default:
		return scored(0, "No significant customer concentration: "+detail)
	}
}

// DisruptionPenalty scores industry disruption exposure 0 to -5.
func (s *Scorer) DisruptionPenalty(a evidence.RiskAssessment) Score {
	switch {
	case len(a.Critical) > 0 || len(a.Significant) >= 2:
		return scored(-5, riskSummary("Critical disruption exposure", a))
	case len(a.Significant) >= 1:
		return scored(-3, riskSummary("Significant disruption exposure", a))
	case len(a.Minor) > 0:
		return scored(-1, riskSummary("Minor disruption indicators", a))
	default:
		return scored(0, "No material disruption risks identified")
	}
}

// OutsideForcesPenalty scores commodity, geographic, and regulatory
// exposure 0 to -5. Unlike disruption there is no minor band.
func (s *Scorer) OutsideForcesPenalty(a evidence.RiskAssessment) Score {
	switch {
	case len(a.Critical) > 0 || len(a.Significant) >= 2:
		return scored(-5, riskSummary("Critical outside-force exposure", a))
	case len(a.Significant) >= 1:
		return scored(-3, riskSummary("Significant outside-force exposure", a))
	default:
		return scored(0, "No material outside forces identified")
	}
}

// BinaryEventsPenalty scores -5 when any make-or-break event (patent
// cliff, existential litigation) is on record.
func (s *Scorer) BinaryEventsPenalty(events []string) Score {
	if len(events) == 0 {
		return scored(0, "No binary events identified")
	}
	return scored(-5, fmt.Sprintf("%d binary events: %s", len(events), strings.Join(events, "; ")))
}

// MarketLoserPenalty scores 0 to -5 for sustained underperformance
// against the benchmark index. Unfetchable price history scores 0.
func (s *Scorer) MarketLoserPenalty(stockBars, benchBars []models.PriceBar) Score {
	t := s.thresholds()

	stockPerf, stockOK := priceReturn(closes(stockBars))
	benchPerf, benchOK := priceReturn(closes(benchBars))
	if !stockOK || !benchOK {
		return scored(0, "Performance data unavailable, check skipped")
	}

	diff := stockPerf - benchPerf
	detail := fmt.Sprintf("%.1f%% vs the index", diff*100)

	switch {
	case diff <= -t.MarketUnderperformSevere:
		return scored(-5, "Extreme underperformance: "+detail)
	case diff <= -t.MarketUnderperformSignificant:
		return scored(-4, "Severe underperformance: "+detail)
	case diff <= -t.MarketUnderperformModerate:
		return scored(-3, "Significant underperformance: "+detail)
	case diff <= -t.MarketUnderperformMinor:
		return scored(-2, "Moderate underperformance: "+detail)
	case diff <= -t.MarketUnderperformSlight:
		return scored(-1, "Minor underperformance: "+detail)
	default:
		return scored(0, "No significant underperformance: "+detail)
	}
}

// DilutionPenalty scores 0 to -4 from the growth in common stock
// issuance over the last four fiscal years.
func (s *Scorer) DilutionPenalty(f *models.Financials) Score {
	t := s.thresholds()
	if f == nil || len(f.AnnualCashFlow) < 4 {
		return scored(0, "Insufficient share issuance history, check skipped")
	}

	rows := f.AnnualCashFlow[:4]
	oldest := rows[3].CommonStockIssued
	if oldest == 0 {
		return scored(0, "No share issuance baseline, check skipped")
	}
	annualGrowth := (rows[0].CommonStockIssued - oldest) / oldest / 4
	detail := fmt.Sprintf("%.1f%% annual growth in shares issued", annualGrowth*100)

	switch {
	case annualGrowth > t.DilutionSevere:
		return scored(-4, "Extreme dilution: "+detail)
	case annualGrowth > t.DilutionHigh:
		return scored(-3, "Severe dilution: "+detail)
	case annualGrowth > t.DilutionModerate:
		return scored(-2, "Significant dilution: "+detail)
	case annualGrowth > t.DilutionMinor:
		return scored(-1, "Moderate dilution: "+detail)
	default:
		return scored(0, "Minimal dilution: "+detail)
	}
}

// AcquisitionPenalty scores 0 to -4 when growth is bought rather than
// built: acquisition spend as a share of operating cash flow over four
// years, inflated when the filing leans on acquisition language.
func (s *Scorer) AcquisitionPenalty(f *models.Financials, filingText string) Score {
	t := s.thresholds()
	if f == nil || len(f.AnnualCashFlow) < t.AcquisitionLookbackYears {
		return scored(0, "Insufficient cash flow history, check skipped")
	}

	rows := f.AnnualCashFlow[:t.AcquisitionLookbackYears]
	var totalAcquisitions, totalOperating float64
	for _, r := range rows {
		spend := r.AcquisitionsNet
		if spend == 0 {
			spend = r.OtherInvestingCharge
		}
		totalAcquisitions += math.Abs(spend)
		totalOperating += math.Abs(r.OperatingCashFlow)
	}
	if totalOperating == 0 {
		return scored(0, "Zero operating cash flow, check skipped")
	}

	ratio := totalAcquisitions / totalOperating
	boosted := false
	if filingText != "" {
		mentions := evidence.CountPhrases(strings.ToLower(filingText), rules.AcquisitionKeywords)
		if mentions >= t.AcquisitionKeywordCount {
			ratio *= t.AcquisitionKeywordBoost
			boosted = true
		}
	}

	detail := fmt.Sprintf("%.1f%% of operating cash flow", ratio*100)
	if boosted {
		detail += " (acquisition-focused language)"
	}

	switch {
	case ratio > t.AcquisitionSevere:
		return scored(-4, "Growth exclusively through acquisitions: "+detail)
	case ratio > t.AcquisitionHigh:
		return scored(-3, "Heavy reliance on acquisitions: "+detail)
	case ratio > t.AcquisitionModerate:
		return scored(-2, "Significant acquisition-based growth: "+detail)
	case ratio > t.AcquisitionMinor:
		return scored(-1, "Moderate acquisition-based growth: "+detail)
	default:
		return scored(0, "Minimal acquisition-based growth: "+detail)
	}
}

// ComplicatedFinancials requires human judgement of statement
// complexity and keeps a neutral 0 until entered.
func (s *Scorer) ComplicatedFinancials() Score {
	return manual("Requires manual review of statement complexity and segment reporting")
}

// AccountingIrregularities requires human judgement of restatements
// and auditor findings and keeps a neutral 0 until entered.
func (s *Scorer) AccountingIrregularities() Score {
	return manual("Requires manual review of restatements and auditor findings")
}

// AntitrustPenalty scores -3 when the filing shows an actual antitrust
// matter rather than boilerplate.
func (s *Scorer) AntitrustPenalty(issue string, found bool) Score {
	if !found {
		return scored(0, "No antitrust concerns identified")
	}
	return scored(-3, "Antitrust exposure: "+issue)
}

// HeadquartersPenalty scores the company's home country risk.
func (s *Scorer) HeadquartersPenalty(country string) Score {
	name := strings.ToLower(strings.TrimSpace(country))
	if name == "" {
		return scored(0, "Headquarters country unknown, check skipped")
	}
	switch s.rules.Countries.RiskLevel(name) {
	case rules.CountryRiskHigh:
		return scored(-3, "High-risk headquarters location: "+name)
	case rules.CountryRiskMedium:
		return scored(-2, "Medium-risk headquarters location: "+name)
	default:
		return scored(0, "Low-risk headquarters location: "+name)
	}
}

func riskSummary(label string, a evidence.RiskAssessment) string {
	return fmt.Sprintf("%s (%d critical, %d significant, %d minor)",
		label, len(a.Critical), len(a.Significant), len(a.Minor))
}
