package scoring

import (
	"strings"
	"testing"

	"github.com/ternarybob/gauntlet/internal/models"
	"github.com/ternarybob/gauntlet/internal/rules"
	"github.com/ternarybob/gauntlet/internal/services/evidence"
)

func bars(closes ...float64) []models.PriceBar {
	out := make([]models.PriceBar, 0, len(closes))
	for _, c := range closes {
		out = append(out, models.PriceBar{Close: c})
	}
	return out
}

func TestConcentrationPenalty(t *testing.T) {
	tests := []struct {
		name     string
		findings []evidence.Finding
		want     float64
	}{
		{
			"single customer over half",
			[]evidence.Finding{{Value: 60, Confidence: 0.95, Type: rules.CustomerSingle, IsActual: true}},
			-5,
		},
		{
			"single customer weighted past moderate band",
			[]evidence.Finding{{Value: 45, Confidence: 0.9, Type: rules.CustomerSingle, IsActual: true}},
			-3,
		},
		{
			"few customers over half",
			[]evidence.Finding{{Value: 60, Confidence: 0.9, Type: rules.CustomerFew, IsActual: true}},
			-3,
		},
		{
			"diversified base",
			[]evidence.Finding{{Value: 30, Confidence: 0.9, Type: rules.CustomerMultiple, IsActual: true}},
			0,
		},
		{
			"hypothetical finding cannot drive a penalty",
			[]evidence.Finding{{Value: 80, Confidence: 0.7, Type: rules.CustomerSingle}},
			0,
		},
		{
			"actual finding below a stronger hypothetical still scores",
			[]evidence.Finding{
				{Value: 80, Confidence: 0.7, Type: rules.CustomerSingle},
				{Value: 60, Confidence: 0.95, Type: rules.CustomerSingle, IsActual: true},
			},
			-5,
		},
		{"no findings", nil, 0},
	}
	s := newScorer()
	for _, tt := range tests {
		if got := s.ConcentrationPenalty(tt.findings); got.Value != tt.want {
			t.Errorf("ConcentrationPenalty(%s) = %v, want %v", tt.name, got.Value, tt.want)
		}
	}
}

func TestDisruptionPenaltyGrades(t *testing.T) {
	tests := []struct {
		name string
		a    evidence.RiskAssessment
		want float64
	}{
		{"critical", evidence.RiskAssessment{Critical: []string{"x"}}, -5},
		{"two significant", evidence.RiskAssessment{Significant: []string{"x", "y"}}, -5},
		{"one significant", evidence.RiskAssessment{Significant: []string{"x"}}, -3},
		{"minor only", evidence.RiskAssessment{Minor: []string{"x"}}, -1},
		{"clean", evidence.RiskAssessment{}, 0},
	}
	s := newScorer()
	for _, tt := range tests {
		if got := s.DisruptionPenalty(tt.a); got.Value != tt.want {
			t.Errorf("DisruptionPenalty(%s) = %v, want %v", tt.name, got.Value, tt.want)
		}
	}
}

func TestOutsideForcesPenaltyHasNoMinorBand(t *testing.T) {
	s := newScorer()
	if got := s.OutsideForcesPenalty(evidence.RiskAssessment{Minor: []string{"x"}}); got.Value != 0 {
		t.Errorf("OutsideForcesPenalty(minor only) = %v, want 0", got.Value)
	}
	if got := s.OutsideForcesPenalty(evidence.RiskAssessment{Significant: []string{"x"}}); got.Value != -3 {
		t.Errorf("OutsideForcesPenalty(significant) = %v, want -3", got.Value)
	}
}

func TestBinaryEventsPenalty(t *testing.T) {
	s := newScorer()
	if got := s.BinaryEventsPenalty([]string{"patent expiration on core product"}); got.Value != -5 {
		t.Errorf("BinaryEventsPenalty() = %v, want -5", got.Value)
	}
	if got := s.BinaryEventsPenalty(nil); got.Value != 0 {
		t.Errorf("BinaryEventsPenalty(none) = %v, want 0", got.Value)
	}
}

func TestMarketLoserPenaltyLadder(t *testing.T) {
	tests := []struct {
		name  string
		stock []models.PriceBar
		bench []models.PriceBar
		want  float64
	}{
		{"extreme gap", bars(100, 80), bars(100, 135), -5},
		{"moderate gap", bars(100, 110), bars(100, 135), -2},
		{"ahead of index", bars(100, 140), bars(100, 135), 0},
		{"missing data", nil, bars(100, 135), 0},
	}
	s := newScorer()
	for _, tt := range tests {
		if got := s.MarketLoserPenalty(tt.stock, tt.bench); got.Value != tt.want {
			t.Errorf("MarketLoserPenalty(%s) = %v, want %v", tt.name, got.Value, tt.want)
		}
	}
}

func TestDilutionPenaltyLadder(t *testing.T) {
	rows := func(newest, oldest float64) *models.Financials {
		return &models.Financials{AnnualCashFlow: []models.CashFlowRow{
			{CommonStockIssued: newest},
			{CommonStockIssued: 110},
			{CommonStockIssued: 105},
			{CommonStockIssued: oldest},
		}}
	}
	tests := []struct {
		name string
		f    *models.Financials
		want float64
	}{
		{"extreme", rows(150, 100), -4},
		{"moderate", rows(120, 100), -1},
		{"minimal", rows(105, 100), 0},
		{"short history", &models.Financials{AnnualCashFlow: []models.CashFlowRow{{CommonStockIssued: 100}}}, 0},
	}
	s := newScorer()
	for _, tt := range tests {
		if got := s.DilutionPenalty(tt.f); got.Value != tt.want {
			t.Errorf("DilutionPenalty(%s) = %v, want %v", tt.name, got.Value, tt.want)
		}
	}
}

func TestAcquisitionPenaltyKeywordBoost(t *testing.T) {
	f := &models.Financials{AnnualCashFlow: []models.CashFlowRow{
		{AcquisitionsNet: -28, OperatingCashFlow: 100},
		{AcquisitionsNet: -28, OperatingCashFlow: 100},
		{AcquisitionsNet: -28, OperatingCashFlow: 100},
		{AcquisitionsNet: -28, OperatingCashFlow: 100},
	}}
	s := newScorer()

	got := s.AcquisitionPenalty(f, "")
	if got.Value != -2 {
		t.Errorf("AcquisitionPenalty() = %v, want -2 (%s)", got.Value, got.Reasoning)
	}

	filing := "Our acquisition strategy relies on a deep acquisition pipeline and disciplined acquisition targets."
	got = s.AcquisitionPenalty(f, filing)
	if got.Value != -3 {
		t.Errorf("AcquisitionPenalty(boosted) = %v, want -3 (%s)", got.Value, got.Reasoning)
	}
	if !strings.Contains(got.Reasoning, "acquisition-focused") {
		t.Errorf("AcquisitionPenalty(boosted) reasoning = %q, want boost note", got.Reasoning)
	}
}

func TestAcquisitionPenaltyZeroOperatingCash(t *testing.T) {
	f := &models.Financials{AnnualCashFlow: []models.CashFlowRow{
		{AcquisitionsNet: -10}, {}, {}, {},
	}}
	if got := newScorer().AcquisitionPenalty(f, ""); got.Value != 0 {
		t.Errorf("AcquisitionPenalty(zero OCF) = %v, want 0", got.Value)
	}
}

func TestHeadquartersPenalty(t *testing.T) {
	tests := []struct {
		country string
		want    float64
	}{
		{"Venezuela", -3},
		{"China", -2},
		{"United States", 0},
		{"", 0},
	}
	s := newScorer()
	for _, tt := range tests {
		if got := s.HeadquartersPenalty(tt.country); got.Value != tt.want {
			t.Errorf("HeadquartersPenalty(%q) = %v, want %v", tt.country, got.Value, tt.want)
		}
	}
}

func TestAntitrustPenalty(t *testing.T) {
	s := newScorer()
	if got := s.AntitrustPenalty("doj antitrust investigation", true); got.Value != -3 {
		t.Errorf("AntitrustPenalty(found) = %v, want -3", got.Value)
	}
	if got := s.AntitrustPenalty("", false); got.Value != 0 {
		t.Errorf("AntitrustPenalty(clean) = %v, want 0", got.Value)
	}
}

func TestPerformanceLadder(t *testing.T) {
	tests := []struct {
		name  string
		stock []models.PriceBar
		bench []models.PriceBar
		want  float64
	}{
		{"significantly outperformed", bars(100, 300), bars(100, 150), 4},
		{"outperformed", bars(100, 250), bars(100, 160), 3},
		{"moderately outperformed", bars(100, 180), bars(100, 150), 2},
		{"negative return", bars(100, 90), bars(100, 80), 0},
		{"behind the index", bars(100, 120), bars(100, 150), 0},
		{"missing data", nil, bars(100, 150), 0},
	}
	s := newScorer()
	for _, tt := range tests {
		if got := s.Performance(tt.stock, tt.bench); got.Value != tt.want {
			t.Errorf("Performance(%s) = %v, want %v (%s)", tt.name, got.Value, tt.want, got.Reasoning)
		}
	}
}

func TestShareholderActions(t *testing.T) {
	f := &models.Financials{AnnualCashFlow: []models.CashFlowRow{
		{StockRepurchased: -10, DividendsPaid: -5, DebtRepayment: -3},
		{StockRepurchased: -12, DividendsPaid: -5},
		{StockRepurchased: -8, DividendsPaid: -6, DebtRepayment: -2},
		{StockRepurchased: -9},
	}}
	got := newScorer().ShareholderActions(f)
	if got.Value != 2 {
		t.Errorf("ShareholderActions() = %v, want 2 (%s)", got.Value, got.Reasoning)
	}
	if !strings.Contains(got.Reasoning, "buybacks") || !strings.Contains(got.Reasoning, "dividends") {
		t.Errorf("ShareholderActions() reasoning = %q, want buybacks and dividends", got.Reasoning)
	}
}

func TestBeatsExpectations(t *testing.T) {
	events := []models.EarningsEvent{
		{EPSActual: 1.2, EPSEstimate: 1.0},
		{EPSActual: 1.1, EPSEstimate: 1.0},
		{EPSActual: 0.9, EPSEstimate: 1.0},
		{EPSActual: 1.3, EPSEstimate: 1.0},
	}
	got := newScorer().BeatsExpectations(events)
	if got.Value != 3 {
		t.Errorf("BeatsExpectations() = %v, want 3 (%s)", got.Value, got.Reasoning)
	}

	if got := newScorer().BeatsExpectations(events[:2]); got.Value != 0 {
		t.Errorf("BeatsExpectations(short history) = %v, want 0", got.Value)
	}
}
