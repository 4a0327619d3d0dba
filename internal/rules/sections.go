package rules

import "regexp"

// Filing section identifiers.
const (
	SectionBusiness    = "business"
	SectionRiskFactors = "risk_factors"
	SectionMDA         = "mda"
	SectionLegal       = "legal"
)

// SectionRules describes how named sections are located in lowercased
// filing text: a header pattern marks the start, and the first boundary
// pattern found after it marks the end.
type SectionRules struct {
	// Headers and Boundaries are keyed by section identifier. Header
	// patterns are tried in order; the earliest match wins.
	Headers    map[string][]*regexp.Regexp
	Boundaries map[string][]*regexp.Regexp

	// BoundaryOffset is how far past the header the boundary search
	// begins, so the header's own "item" text cannot terminate it.
	BoundaryOffset int
	// MaxSectionLength caps extracted sections.
	MaxSectionLength int

	// Risk-factor fallback markers used when the layered header patterns
	// fail, typically on 20-F filings with non-standard item numbering.
	RiskFallbackMarkers []string
	RiskFallbackEnd     *regexp.Regexp
	RiskFallbackLength  int
}

func defaultSectionRules() SectionRules {
	return SectionRules{
		Headers: map[string][]*regexp.Regexp{
			SectionMDA: {
				regexp.MustCompile(`item\s+2\s*[\.\-\s]*management['\s]*s\s+discussion\s+and\s+analysis`),
				regexp.MustCompile(`management['\s]*s\s+discussion\s+and\s+analysis`),
				regexp.MustCompile(`item\s+2\s*[\.\-\s]*results\s+of\s+operations`),
				regexp.MustCompile(`md&a`),
			},
			SectionRiskFactors: {
				regexp.MustCompile(`item\s+1a\s*[\.\-\s]*risk\s+factors`),
				regexp.MustCompile(`risk\s+factors`),
				regexp.MustCompile(`item\s+1a\s*[\.\-\s]*risks?\s+relating\s+to`),
			},
			SectionBusiness: {
				regexp.MustCompile(`item\s+1\s*[\.\-\s]*business`),
				regexp.MustCompile(`item\s+1\s*[\.\-\s]*general`),
				regexp.MustCompile(`business\s+overview`),
			},
			SectionLegal: {
				regexp.MustCompile(`item\s+3\s*[\.\-\s]*legal\s+proceedings`),
				regexp.MustCompile(`legal\s+proceedings`),
			},
		},
		Boundaries: map[string][]*regexp.Regexp{
			SectionMDA: {
				regexp.MustCompile(`item\s+3\s*[\.\-\s]*legal\s+proceedings`),
				regexp.MustCompile(`item\s+4\s*[\.\-\s]*mine\s+safety`),
				regexp.MustCompile(`item\s+[3-9][a-c]?[\.\s]`),
			},
			SectionRiskFactors: {
				regexp.MustCompile(`item\s+1b\s*[\.\-\s]*unresolved`),
				regexp.MustCompile(`item\s+2\s*[\.\-\s]*`),
				regexp.MustCompile(`item\s+[2-9][a-c]?[\.\s]`),
			},
			SectionBusiness: {
				regexp.MustCompile(`item\s+1a\s*[\.\-\s]*risk\s+factors`),
				regexp.MustCompile(`item\s+1b\s*[\.\-\s]*`),
				regexp.MustCompile(`item\s+[2-9][a-c]?[\.\s]`),
			},
			SectionLegal: {
				regexp.MustCompile(`item\s+4\s*[\.\-\s]*mine\s+safety`),
				regexp.MustCompile(`item\s+[4-9][a-c]?[\.\s]`),
			},
		},
		BoundaryOffset:   1000,
		MaxSectionLength: 150_000,
		RiskFallbackMarkers: []string{
			"item 1a. risk factors",
			"risk factors",
			"risks relating to",
			"principal risks",
			"risk considerations",
		},
		RiskFallbackEnd:    regexp.MustCompile(`item\s+[1-9][a-c]?[\.\s]`),
		RiskFallbackLength: 20_000,
	}
}

// SectionNames returns the known section identifiers in extraction order.
func SectionNames() []string {
	return []string{SectionBusiness, SectionRiskFactors, SectionMDA, SectionLegal}
}
