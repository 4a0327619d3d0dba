// Package evidence extracts structured findings from filing text:
// customer concentration, disruption risks, outside forces, binary
// events, antitrust exposure, recurring revenue, and market-position
// signals. Findings carry their source context so every derived score can
// point back at the sentence that produced it.
package evidence

// Finding is one percentage-bearing piece of evidence.
type Finding struct {
	// Value is the disclosed percentage.
	Value float64 `json:"value"`
	// Context is the surrounding text, trimmed.
	Context string `json:"context"`
	// Confidence reflects how the finding was matched: targeted patterns
	// rank above broad ones, statements of fact above hypotheticals.
	Confidence float64 `json:"confidence"`
	// Type classifies the subject (single, few, multiple customers).
	Type string `json:"type"`
	// Sentence is the matched fragment itself.
	Sentence string `json:"sentence"`
	// IsActual marks a statement of fact. Hypothetical and
	// forward-looking sentences keep their finding for display but are
	// not eligible to drive a score.
	IsActual bool `json:"is_actual"`
}

// Effective is the confidence-weighted percentage used by scoring.
func (f Finding) Effective() float64 {
	return f.Value * f.Confidence
}

// RiskAssessment buckets qualitative risk matches by severity.
type RiskAssessment struct {
	Critical    []string `json:"critical"`
	Significant []string `json:"significant"`
	Minor       []string `json:"minor"`
}

// Empty reports whether no risks were identified at any severity.
func (r RiskAssessment) Empty() bool {
	return len(r.Critical) == 0 && len(r.Significant) == 0 && len(r.Minor) == 0
}

// RevenueEvidence is the outcome of recurring-revenue analysis.
type RevenueEvidence struct {
	// Percent is the best recurring-revenue percentage found, or 0.
	Percent float64 `json:"percent"`
	// Source names the strategy that produced Percent: explicit,
	// statement, keywords, model, or none.
	Source string `json:"source"`
	// ModelType is subscription, consumption_based, or transactional.
	ModelType string `json:"model_type"`
	// HasSubscriptionModel and HasDeferredRevenue are model indicators
	// detected independently of any percentage.
	HasSubscriptionModel bool `json:"has_subscription_model"`
	HasDeferredRevenue   bool `json:"has_deferred_revenue"`
	// StrongKeywordCount supports the no-filing fallback.
	StrongKeywordCount int `json:"strong_keyword_count"`
	// Findings are the explicit-percentage matches, strongest first.
	Findings []Finding `json:"findings,omitempty"`
}

// Revenue evidence sources.
const (
	RevenueSourceExplicit  = "explicit"
	RevenueSourceStatement = "statement"
	RevenueSourceKeywords  = "keywords"
	RevenueSourceModel     = "model"
	RevenueSourceNone      = "none"
)

// TopDogResult summarizes market-position analysis of the business and
// risk-factors sections.
type TopDogResult struct {
	// Matches counts positive keyword hits per category.
	Matches map[string]int `json:"matches"`
	// Industries maps detected emerging industries to term mention counts.
	Industries map[string]int `json:"industries"`
}

// InEmergingIndustry reports whether any emerging industry was detected.
func (t TopDogResult) InEmergingIndustry() bool {
	return len(t.Industries) > 0
}

// TotalIndustryMentions sums term mentions across detected industries.
func (t TopDogResult) TotalIndustryMentions() int {
	total := 0
	for _, n := range t.Industries {
		total += n
	}
	return total
}

// KeywordGroupResult is one keyword group's hits in a body of text.
type KeywordGroupResult struct {
	Count    int      `json:"count"`
	Contexts []string `json:"contexts,omitempty"`
}
