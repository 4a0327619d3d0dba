package checklist

import (
	"github.com/ternarybob/gauntlet/internal/rules"
	"github.com/ternarybob/gauntlet/internal/services/scoring"
)

func (s *Service) financialMetrics(in *inputs) []MetricResult {
	return []MetricResult{
		{Name: MetricResilience, Max: 5, Score: s.scorer.Resilience(in.fin)},
		{Name: MetricGrossMargin, Max: 3, Score: s.scorer.GrossMargin(in.fin)},
		{Name: MetricROE, Max: 3, Score: s.scorer.ReturnOnEquity(in.fin)},
		{Name: MetricFCF, Max: 3, Score: s.scorer.FreeCashFlow(in.fin)},
		{Name: MetricEPS, Max: 3, Score: s.scorer.EarningsPerShare(in.fin)},
	}
}

// moatMetrics is entirely manual: the moat questions (network effects,
// switching costs, brand, scale) resist automation and stay with the
// analyst.
func (s *Service) moatMetrics() []MetricResult {
	return []MetricResult{
		{Name: "Moat Assessment", Score: moatManual()},
	}
}

func moatManual() scoring.Score {
	return scoring.Score{
		Manual:    true,
		Reasoning: "Requires manual evaluation of network effects, switching costs, brand, and scale advantages",
	}
}

func (s *Service) potentialMetrics(in *inputs) []MetricResult {
	business := in.sections[rules.SectionBusiness]
	risk := in.sections[rules.SectionRiskFactors]

	var topDog scoring.Score
	if business == "" && risk == "" {
		topDog = scoring.Score{Reasoning: "No business or risk factors sections found"}
	} else {
		topDog = s.scorer.TopDog(s.analyzer.TopDog(business + " " + risk))
	}

	summary := ""
	if in.profile != nil {
		summary = in.profile.Description
	}
	revenue := s.analyzer.RecurringRevenue(in.sections[rules.SectionMDA], in.filingText, summary)

	return []MetricResult{
		{Name: MetricOptionality, Score: s.scorer.Optionality()},
		{Name: MetricOrganicGrowth, Score: s.scorer.OrganicGrowth()},
		{Name: MetricTopDog, Max: 3, Score: topDog},
		{Name: MetricOperatingLeverage, Max: 4, Score: s.scorer.OperatingLeverage(in.fin)},
		{Name: MetricRecurringRevenue, Max: 5, Score: s.scorer.RecurringRevenue(revenue)},
	}
}

func (s *Service) customerMetrics(in *inputs) []MetricResult {
	return []MetricResult{
		{Name: MetricAcquisitions, Max: 5, Score: s.scorer.SalesEfficiency(in.fin)},
		{Name: MetricDependence, Score: s.scorer.Dependence()},
	}
}

func (s *Service) specificMetrics(in *inputs) []MetricResult {
	margins := scoring.GrossMarginHistory(in.fin)
	ttm := scoring.TTMGrossMargin(in.fin)
	return []MetricResult{
		{Name: MetricPricingPower, Max: 5, Score: s.scorer.PricingPower(margins, ttm)},
		{Name: MetricRecessionResistance, Score: s.scorer.RecessionResistance()},
	}
}

func (s *Service) managementMetrics(in *inputs) []MetricResult {
	mission := scoring.Score{
		Manual:    true,
		Reasoning: "Mission statement captured for manual review",
	}
	if s.scorer.MissionStatement(in.profile) == "" {
		mission.Reasoning = "No mission statement available"
	}
	return []MetricResult{
		{Name: MetricSoulInTheGame, Score: s.scorer.SoulInTheGame()},
		{Name: MetricInsideOwnership, Max: 3, Score: s.scorer.InsideOwnership(in.profile)},
		{Name: MetricGlassdoorRatings, Score: s.scorer.EmployeeSentiment(in.profile)},
		{Name: MetricMissionStatement, Score: mission},
	}
}

func (s *Service) stockMetrics(in *inputs) []MetricResult {
	return []MetricResult{
		{Name: MetricPerformance, Max: 4, Score: s.scorer.Performance(in.prices, in.benchmark)},
		{Name: MetricShareholderActions, Max: 3, Score: s.scorer.ShareholderActions(in.fin)},
		{Name: MetricBeatsExpectations, Max: 4, Score: s.scorer.BeatsExpectations(in.earnings)},
	}
}

func (s *Service) penaltyMetrics(in *inputs) []MetricResult {
	var antitrust scoring.Score
	var concentration, disruption, forces, binary scoring.Score

	if in.filingText == "" {
		missing := "No filing text, check skipped"
		concentration = scoring.Score{Reasoning: missing}
		disruption = scoring.Score{Reasoning: missing}
		forces = scoring.Score{Reasoning: missing}
		binary = scoring.Score{Reasoning: missing}
		antitrust = scoring.Score{Reasoning: missing}
	} else {
		concentration = s.scorer.ConcentrationPenalty(s.analyzer.Concentration(in.ticker, in.filingText))
		disruption = s.scorer.DisruptionPenalty(s.analyzer.DisruptionRisks(in.riskText))
		forces = s.scorer.OutsideForcesPenalty(s.analyzer.OutsideForces(in.filingText))
		binary = s.scorer.BinaryEventsPenalty(s.analyzer.BinaryEvents(in.filingText))
		issue, found := s.analyzer.AntitrustIssue(in.ticker, in.filingText)
		antitrust = s.scorer.AntitrustPenalty(issue, found)
	}

	country := ""
	if in.profile != nil {
		country = in.profile.Country
	}

	metrics := []MetricResult{
		{Name: MetricAccountingIrregularities, Score: s.scorer.AccountingIrregularities()},
		{Name: MetricCustomerConcentration, Score: concentration},
		{Name: MetricIndustryDisruption, Score: disruption},
		{Name: MetricOutsideForces, Score: forces},
		{Name: MetricBigMarketLoser, Score: s.scorer.MarketLoserPenalty(in.prices, in.benchmark)},
		{Name: MetricBinaryEvents, Score: binary},
		{Name: MetricExtremeDilution, Score: s.scorer.DilutionPenalty(in.fin)},
		{Name: MetricGrowthByAcquisition, Score: s.scorer.AcquisitionPenalty(in.fin, in.filingText)},
		{Name: MetricComplicatedFinancials, Score: s.scorer.ComplicatedFinancials()},
		{Name: MetricAntitrustConcerns, Score: antitrust},
		{Name: MetricHeadquartersRisk, Score: s.scorer.HeadquartersPenalty(country)},
	}

	total := 0.0
	for _, m := range metrics {
		if !m.Score.Manual {
			total += m.Score.Value
		}
	}
	metrics = append(metrics, MetricResult{
		Name: MetricGauntletScore,
		Score: scoring.Score{
			Value:     total,
			Reasoning: "Sum of all penalty scores",
		},
	})
	return metrics
}
