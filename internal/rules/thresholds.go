package rules

// Thresholds collects the numeric cut-offs used by the scoring ladders.
// Percentages are expressed the way the source data carries them: filing
// percentages as whole numbers (45 means 45%), statement ratios as
// fractions (0.10 means 10%).
type Thresholds struct {
	// Customer concentration penalty bands, applied to
	// percentage * confidence.
	ConcentrationSingleSevere   float64 `yaml:"concentration_single_severe"`   // single customer, score -5
	ConcentrationFewSevere      float64 `yaml:"concentration_few_severe"`      // few customers, score -5
	ConcentrationSingleModerate float64 `yaml:"concentration_single_moderate"` // single customer, score -3
	ConcentrationFewModerate    float64 `yaml:"concentration_few_moderate"`    // few customers, score -3
	ConcentrationMinPercent     float64 `yaml:"concentration_min_percent"`     // findings at or below this are noise

	// Share dilution: annualised growth in shares outstanding.
	DilutionSevere   float64 `yaml:"dilution_severe"`   // -4
	DilutionHigh     float64 `yaml:"dilution_high"`     // -3
	DilutionModerate float64 `yaml:"dilution_moderate"` // -2
	DilutionMinor    float64 `yaml:"dilution_minor"`    // -1

	// Growth by acquisition: |acquisitions| / |operating cash flow|.
	AcquisitionSevere        float64 `yaml:"acquisition_severe"`         // -4
	AcquisitionHigh          float64 `yaml:"acquisition_high"`           // -3
	AcquisitionModerate      float64 `yaml:"acquisition_moderate"`       // -2
	AcquisitionMinor         float64 `yaml:"acquisition_minor"`          // -1
	AcquisitionKeywordBoost  float64 `yaml:"acquisition_keyword_boost"`  // ratio multiplier
	AcquisitionKeywordCount  int     `yaml:"acquisition_keyword_count"`  // keyword hits needed for boost
	AcquisitionLookbackYears int     `yaml:"acquisition_lookback_years"` // cash-flow rows considered

	// Market loser: 5-year performance gap versus the benchmark index.
	MarketUnderperformSevere      float64 `yaml:"market_underperform_severe"`      // -5
	MarketUnderperformSignificant float64 `yaml:"market_underperform_significant"` // -4
	MarketUnderperformModerate    float64 `yaml:"market_underperform_moderate"`    // -3
	MarketUnderperformMinor       float64 `yaml:"market_underperform_minor"`       // -2
	MarketUnderperformSlight      float64 `yaml:"market_underperform_slight"`      // -1

	// 5-year performance score (Stock segment).
	PerformanceStrongOutperform   float64 `yaml:"performance_strong_outperform"`   // gap for score 4
	PerformanceModerateOutperform float64 `yaml:"performance_moderate_outperform"` // gap for score 3

	// Recurring revenue ladder (percentage of revenue).
	RecurringExcellent float64 `yaml:"recurring_excellent"` // 5
	RecurringStrong    float64 `yaml:"recurring_strong"`    // 4
	RecurringGood      float64 `yaml:"recurring_good"`      // 3
	RecurringModerate  float64 `yaml:"recurring_moderate"`  // 2
	RecurringMinimal   float64 `yaml:"recurring_minimal"`   // 1

	// Pricing power: gross margin levels and stability.
	MarginLevelExceptional float64 `yaml:"margin_level_exceptional"` // +3
	MarginLevelStrong      float64 `yaml:"margin_level_strong"`      // +2
	MarginLevelHealthy     float64 `yaml:"margin_level_healthy"`     // +1
	MarginLevelWeak        float64 `yaml:"margin_level_weak"`        // -1 below this
	MarginVolatilityLow    float64 `yaml:"margin_volatility_low"`    // +1 below this
	MarginVolatilityHigh   float64 `yaml:"margin_volatility_high"`   // -1 above this
	MarginTTMShift         float64 `yaml:"margin_ttm_shift"`         // TTM vs annual adjustment band

	// Financials segment.
	GrossMarginExcellent float64 `yaml:"gross_margin_excellent"` // 3
	GrossMarginStrong    float64 `yaml:"gross_margin_strong"`    // 2
	GrossMarginAdequate  float64 `yaml:"gross_margin_adequate"`  // 1
	ROEStrong            float64 `yaml:"roe_strong"`             // 2
	ROEAdequate          float64 `yaml:"roe_adequate"`           // 1

	// Operating leverage.
	LeverageMinRevenueChange float64 `yaml:"leverage_min_revenue_change"`
	LeverageWeightTTM        float64 `yaml:"leverage_weight_ttm"`
	LeverageWeightOneYear    float64 `yaml:"leverage_weight_one_year"`
	LeverageWeightTwoYear    float64 `yaml:"leverage_weight_two_year"`

	// Customer acquisition efficiency: S&M as a percentage of gross profit.
	SalesEfficiencyExcellent float64 `yaml:"sales_efficiency_excellent"` // 5 below this
	SalesEfficiencyGood      float64 `yaml:"sales_efficiency_good"`      // 4
	SalesEfficiencyModerate  float64 `yaml:"sales_efficiency_moderate"`  // 3
	SalesEfficiencyBelowAvg  float64 `yaml:"sales_efficiency_below_avg"` // 2
	SalesEfficiencyPoor      float64 `yaml:"sales_efficiency_poor"`      // 1

	// Inside ownership.
	OwnershipHighPercent    float64 `yaml:"ownership_high_percent"`    // 2
	OwnershipPresentPercent float64 `yaml:"ownership_present_percent"` // 1
	OwnershipBonusValue     float64 `yaml:"ownership_bonus_value"`     // dollar stake for +1

	// Earnings surprises.
	BeatRateStrong     float64 `yaml:"beat_rate_strong"`     // +2
	BeatRateGood       float64 `yaml:"beat_rate_good"`       // +1
	SurpriseMarginHigh float64 `yaml:"surprise_margin_high"` // +2
	SurpriseMarginGood float64 `yaml:"surprise_margin_good"` // +1
}

func defaultThresholds() Thresholds {
	return Thresholds{
		ConcentrationSingleSevere:   50,
		ConcentrationFewSevere:      70,
		ConcentrationSingleModerate: 25,
		ConcentrationFewModerate:    50,
		ConcentrationMinPercent:     5,

		DilutionSevere:   0.10,
		DilutionHigh:     0.07,
		DilutionModerate: 0.05,
		DilutionMinor:    0.03,

		AcquisitionSevere:        0.40,
		AcquisitionHigh:          0.30,
		AcquisitionModerate:      0.20,
		AcquisitionMinor:         0.10,
		AcquisitionKeywordBoost:  1.2,
		AcquisitionKeywordCount:  3,
		AcquisitionLookbackYears: 4,

		MarketUnderperformSevere:      0.50,
		MarketUnderperformSignificant: 0.40,
		MarketUnderperformModerate:    0.30,
		MarketUnderperformMinor:       0.20,
		MarketUnderperformSlight:      0.10,

		PerformanceStrongOutperform:   1.0,
		PerformanceModerateOutperform: 0.5,

		RecurringExcellent: 80,
		RecurringStrong:    60,
		RecurringGood:      40,
		RecurringModerate:  20,
		RecurringMinimal:   5,

		MarginLevelExceptional: 85,
		MarginLevelStrong:      70,
		MarginLevelHealthy:     50,
		MarginLevelWeak:        20,
		MarginVolatilityLow:    3,
		MarginVolatilityHigh:   5,
		MarginTTMShift:         1.5,

		GrossMarginExcellent: 0.8,
		GrossMarginStrong:    0.5,
		GrossMarginAdequate:  0.3,
		ROEStrong:            0.15,
		ROEAdequate:          0.08,

		LeverageMinRevenueChange: 0.02,
		LeverageWeightTTM:        0.4,
		LeverageWeightOneYear:    0.3,
		LeverageWeightTwoYear:    0.2,

		SalesEfficiencyExcellent: 10,
		SalesEfficiencyGood:      20,
		SalesEfficiencyModerate:  35,
		SalesEfficiencyBelowAvg:  50,
		SalesEfficiencyPoor:      70,

		OwnershipHighPercent:    10,
		OwnershipPresentPercent: 1,
		OwnershipBonusValue:     50_000_000,

		BeatRateStrong:     75,
		BeatRateGood:       50,
		SurpriseMarginHigh: 15,
		SurpriseMarginGood: 5,
	}
}
