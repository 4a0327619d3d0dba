package rules

import "regexp"

// ClassifierRules governs sentence-level extraction of percentage
// statements and their classification as customer-concentration evidence.
type ClassifierRules struct {
	// Percent matches percentage figures like "45%" or "12.5 %".
	Percent *regexp.Regexp
	// SentenceSplit breaks candidate text into sentences.
	SentenceSplit *regexp.Regexp

	MinSentenceLength int
	// MaxCandidates caps sentences handed to the NLP classifier; beyond
	// it the fast regex classifier is used alone.
	MaxCandidates int
	// MinMeaningfulPercent filters trivially small figures.
	MinMeaningfulPercent float64
	// ContextLength trims the stored evidence context.
	ContextLength int

	// A sentence is only a concentration candidate when it carries both a
	// customer term and a revenue term.
	CustomerTerms []string
	RevenueTerms  []string

	// Exclusions are substrings that mark a sentence as describing a
	// breakdown other than customers (geography, segment, channel).
	Exclusions []string

	// SinglePatterns and MultiplePatterns vote on whether the figure
	// concerns one customer or a group.
	SinglePatterns   []string
	MultiplePatterns []string

	// Percentage bands for resolving a multiple-customer vote.
	SingleThreshold float64
	FewThreshold    float64
	// FallbackFewThreshold applies when no pattern voted at all.
	FallbackFewThreshold float64

	// CueWords signal hypothetical or forward-looking sentences. A
	// sentence with none of them is treated as a statement of fact.
	CueWords []string

	ActualConfidence       float64
	HypotheticalConfidence float64
}

func defaultClassifierRules() ClassifierRules {
	return ClassifierRules{
		Percent:       regexp.MustCompile(`(\d{1,2}(?:\.\d{1,2})?)\s*%`),
		SentenceSplit: regexp.MustCompile(`[.!?]+`),

		MinSentenceLength:    20,
		MaxCandidates:        100,
		MinMeaningfulPercent: 5,
		ContextLength:        200,

		CustomerTerms: []string{"customer", "customers", "client", "clients", "account", "accounts"},
		RevenueTerms:  []string{"revenue", "revenues", "sales", "income", "receipts", "billing"},

		Exclusions: []string{
			"geographic", "geographical", "region", "international", "domestic",
			"industry", "sector", "market segment", "product line", "business unit",
			"channel", "distribution", "sales channel", "revenue stream",
			"service line", "division", "subsidiary", "segment",
		},

		SinglePatterns: []string{
			"customer", "client", "account",
			"largest customer", "major customer", "significant customer",
			"key customer", "primary customer",
		},
		MultiplePatterns: []string{
			"customers", "clients", "accounts",
			"top customers", "major customers", "largest customers",
			"key customers", "significant customers",
		},

		SingleThreshold:      50,
		FewThreshold:         20,
		FallbackFewThreshold: 25,

		CueWords: []string{
			"risk", "could", "may", "might", "potential", "possible", "if",
			"would", "forward-looking", "projection", "estimate", "expect",
			"anticipate", "believe", "plan", "intend", "future", "outlook",
			"guidance",
		},

		ActualConfidence:       0.9,
		HypotheticalConfidence: 0.7,
	}
}
