package scoring

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/ternarybob/gauntlet/internal/models"
	"github.com/ternarybob/gauntlet/internal/rules"
	"github.com/ternarybob/gauntlet/internal/services/evidence"
)

func newScorer() *Scorer {
	return NewScorer(rules.Default())
}

func TestResilienceAllStrengths(t *testing.T) {
	f := &models.Financials{
		QuarterlyBalance: []models.BalanceSheetRow{
			{Cash: 100, TotalDebt: 50, TotalAssets: 200, TotalEquity: 120, RetainedEarnings: 30},
			{RetainedEarnings: 20},
			{RetainedEarnings: 10},
		},
	}
	got := newScorer().Resilience(f)
	if got.Value != 5 {
		t.Errorf("Resilience() = %v, want 5 (%s)", got.Value, got.Reasoning)
	}
}

func TestResilienceNoData(t *testing.T) {
	got := newScorer().Resilience(&models.Financials{})
	if got.Value != 0 {
		t.Errorf("Resilience() = %v, want 0", got.Value)
	}
}

func TestGrossMarginLadder(t *testing.T) {
	tests := []struct {
		grossProfit float64
		want        float64
	}{
		{85, 3},
		{55, 2},
		{35, 1},
		{10, 0},
	}
	s := newScorer()
	for _, tt := range tests {
		f := &models.Financials{
			AnnualIncome: []models.IncomeRow{{TotalRevenue: 100, GrossProfit: tt.grossProfit}},
		}
		if got := s.GrossMargin(f); got.Value != tt.want {
			t.Errorf("GrossMargin(gp=%v) = %v, want %v", tt.grossProfit, got.Value, tt.want)
		}
	}
}

func TestReturnOnEquityWithGrowthBonus(t *testing.T) {
	f := &models.Financials{
		AnnualIncome: []models.IncomeRow{
			{NetIncome: 20}, {NetIncome: 15}, {NetIncome: 10},
		},
		AnnualBalance: []models.BalanceSheetRow{
			{TotalEquity: 100}, {TotalEquity: 100}, {TotalEquity: 100},
		},
	}
	got := newScorer().ReturnOnEquity(f)
	if got.Value != 3 {
		t.Errorf("ReturnOnEquity() = %v, want 3 (%s)", got.Value, got.Reasoning)
	}
}

func TestFreeCashFlowGrowing(t *testing.T) {
	f := &models.Financials{
		AnnualCashFlow: []models.CashFlowRow{
			{FreeCashFlow: 120}, {FreeCashFlow: 100}, {FreeCashFlow: 80},
		},
	}
	got := newScorer().FreeCashFlow(f)
	if got.Value != 3 {
		t.Errorf("FreeCashFlow() = %v, want 3 (%s)", got.Value, got.Reasoning)
	}
}

func TestEarningsPerShareNegative(t *testing.T) {
	f := &models.Financials{
		AnnualIncome: []models.IncomeRow{{EPS: -1}, {EPS: -2}},
	}
	got := newScorer().EarningsPerShare(f)
	if got.Value != 0 {
		t.Errorf("EarningsPerShare() = %v, want 0", got.Value)
	}
}

func TestSalesEfficiencyLadder(t *testing.T) {
	tests := []struct {
		name    string
		income  models.IncomeRow
		want    float64
	}{
		{"excellent S&M", models.IncomeRow{GrossProfit: 100, SellingMarketing: 8}, 5},
		{"SG&A fallback", models.IncomeRow{GrossProfit: 100, SellingGeneral: 45}, 2},
		{"very poor", models.IncomeRow{GrossProfit: 100, SellingMarketing: 80}, 0},
		{"no gross profit", models.IncomeRow{}, 2},
	}
	s := newScorer()
	for _, tt := range tests {
		f := &models.Financials{AnnualIncome: []models.IncomeRow{tt.income}}
		if got := s.SalesEfficiency(f); got.Value != tt.want {
			t.Errorf("SalesEfficiency(%s) = %v, want %v", tt.name, got.Value, tt.want)
		}
	}
}

func TestInsideOwnership(t *testing.T) {
	tests := []struct {
		name    string
		profile *models.Profile
		want    float64
	}{
		{"high with value bonus", &models.Profile{InsiderOwnPct: 12, MarketCap: 1e9}, 3},
		{"negligible stake", &models.Profile{InsiderOwnPct: 0.5, MarketCap: 1e9}, 0},
		{"small company stake", &models.Profile{InsiderOwnPct: 5, MarketCap: 1e8}, 1},
		{"missing data", &models.Profile{}, 1},
	}
	s := newScorer()
	for _, tt := range tests {
		if got := s.InsideOwnership(tt.profile); got.Value != tt.want {
			t.Errorf("InsideOwnership(%s) = %v, want %v", tt.name, got.Value, tt.want)
		}
	}
}

func TestManualMetrics(t *testing.T) {
	s := newScorer()
	for name, score := range map[string]Score{
		"soul in the game": s.SoulInTheGame(),
		"optionality":      s.Optionality(),
		"organic growth":   s.OrganicGrowth(),
		"dependence":       s.Dependence(),
	} {
		if !score.Manual {
			t.Errorf("%s should be manual", name)
		}
	}
}

func TestTopDogEmergingLeader(t *testing.T) {
	result := evidence.TopDogResult{
		Matches: map[string]int{
			rules.TopDogMarketLeader: 3,
			rules.TopDogFirstMover:   5,
		},
		Industries: map[string]int{"cloud_computing": 12},
	}
	got := newScorer().TopDog(result)
	if got.Value != 3 {
		t.Errorf("TopDog() = %v, want 3 (%s)", got.Value, got.Reasoning)
	}
}

func TestTopDogCappedOutsideEmergingIndustries(t *testing.T) {
	result := evidence.TopDogResult{
		Matches: map[string]int{
			rules.TopDogMarketLeader: 2,
			rules.TopDogFirstMover:   2,
		},
	}
	got := newScorer().TopDog(result)
	if got.Value != 1 {
		t.Errorf("TopDog() = %v, want 1 (%s)", got.Value, got.Reasoning)
	}
}

func TestOperatingLeverageWeightedWindows(t *testing.T) {
	date := fmt.Sprintf("%d-12-31", time.Now().Year())
	f := &models.Financials{
		AnnualIncome: []models.IncomeRow{
			{Date: date, TotalRevenue: 133.1, OperatingIncome: 28.6},
			{TotalRevenue: 121, OperatingIncome: 22},
			{TotalRevenue: 110, OperatingIncome: 20},
			{TotalRevenue: 100, OperatingIncome: 18.181818},
		},
	}
	got := newScorer().OperatingLeverage(f)
	if got.Value != 2 {
		t.Errorf("OperatingLeverage() = %v, want 2 (%s)", got.Value, got.Reasoning)
	}
}

func TestOperatingLeverageFlatRevenue(t *testing.T) {
	date := fmt.Sprintf("%d-12-31", time.Now().Year())
	f := &models.Financials{
		AnnualIncome: []models.IncomeRow{
			{Date: date, TotalRevenue: 101, OperatingIncome: 30},
			{TotalRevenue: 100, OperatingIncome: 20},
			{TotalRevenue: 99.5, OperatingIncome: 18},
		},
	}
	got := newScorer().OperatingLeverage(f)
	if got.Value != 0 {
		t.Errorf("OperatingLeverage() = %v, want 0 (%s)", got.Value, got.Reasoning)
	}
}

func TestRecurringRevenueLadder(t *testing.T) {
	tests := []struct {
		name string
		ev   evidence.RevenueEvidence
		want float64
	}{
		{"dominant explicit", evidence.RevenueEvidence{Percent: 85, Source: evidence.RevenueSourceExplicit}, 5},
		{"strong explicit", evidence.RevenueEvidence{Percent: 62, Source: evidence.RevenueSourceExplicit}, 4},
		{"statement derived", evidence.RevenueEvidence{Percent: 45, Source: evidence.RevenueSourceStatement}, 3},
		{"keyword fallback", evidence.RevenueEvidence{Source: evidence.RevenueSourceKeywords, StrongKeywordCount: 4}, 3},
		{"model only", evidence.RevenueEvidence{Source: evidence.RevenueSourceModel, ModelType: rules.RevenueSubscription}, 2},
		{"nothing found", evidence.RevenueEvidence{Source: evidence.RevenueSourceNone}, 0},
	}
	s := newScorer()
	for _, tt := range tests {
		if got := s.RecurringRevenue(tt.ev); got.Value != tt.want {
			t.Errorf("RecurringRevenue(%s) = %v, want %v", tt.name, got.Value, tt.want)
		}
	}
}

func TestPricingPowerRisingPremiumMargins(t *testing.T) {
	got := newScorer().PricingPower([]float64{80, 82, 84, 86}, 0)
	if got.Value != 5 {
		t.Errorf("PricingPower() = %v, want 5 (%s)", got.Value, got.Reasoning)
	}
	if !strings.Contains(got.Reasoning, "rising") {
		t.Errorf("PricingPower() reasoning = %q, want rising trend", got.Reasoning)
	}
}

func TestPricingPowerDecliningWithTTMDrop(t *testing.T) {
	got := newScorer().PricingPower([]float64{50, 46, 42}, 40)
	if got.Value != 0 {
		t.Errorf("PricingPower() = %v, want 0 (%s)", got.Value, got.Reasoning)
	}
}

func TestPricingPowerInsufficientHistory(t *testing.T) {
	got := newScorer().PricingPower([]float64{50}, 0)
	if got.Value != 0 {
		t.Errorf("PricingPower() = %v, want 0", got.Value)
	}
}

func TestPricingPowerTwoYearsGetVolatilityBonus(t *testing.T) {
	// Two points fit their trend line exactly: stable base 1, zero
	// volatility +1, recent uptick +1.
	got := newScorer().PricingPower([]float64{30, 31}, 0)
	if got.Value != 3 {
		t.Errorf("PricingPower() = %v, want 3 (%s)", got.Value, got.Reasoning)
	}
}

func TestGrossMarginHistoryChronological(t *testing.T) {
	f := &models.Financials{
		AnnualIncome: []models.IncomeRow{
			{TotalRevenue: 100, GrossProfit: 60},
			{TotalRevenue: 100, GrossProfit: 55},
			{TotalRevenue: 0, GrossProfit: 50},
		},
	}
	got := GrossMarginHistory(f)
	if len(got) != 2 {
		t.Fatalf("GrossMarginHistory() = %v, want 2 margins (zero-revenue year dropped)", got)
	}
	// Margins come out of a division; compare with a tolerance.
	if math.Abs(got[0]-55) > 1e-9 || math.Abs(got[1]-60) > 1e-9 {
		t.Errorf("GrossMarginHistory() = %v, want [55 60]", got)
	}
}

func TestTTMGrossMarginNeedsThreeQuarters(t *testing.T) {
	f := &models.Financials{
		QuarterlyIncome: []models.IncomeRow{
			{TotalRevenue: 100, GrossProfit: 60},
			{TotalRevenue: 100, GrossProfit: 62},
		},
	}
	if got := TTMGrossMargin(f); got != 0 {
		t.Errorf("TTMGrossMargin() = %v, want 0 for two quarters", got)
	}

	f.QuarterlyIncome = append(f.QuarterlyIncome,
		models.IncomeRow{TotalRevenue: 100, GrossProfit: 58},
		models.IncomeRow{TotalRevenue: 100, GrossProfit: 60},
	)
	if got := TTMGrossMargin(f); got != 60 {
		t.Errorf("TTMGrossMargin() = %v, want 60", got)
	}
}
