package rules

import "regexp"

// BinaryEventRules drives the binary-events penalty check: patent cliffs,
// major litigation, and pending rulings whose outcome is all-or-nothing.
type BinaryEventRules struct {
	// SectionMarkers anchor the relevant sections; text from each marker
	// to the next "item" heading (or end of filing) is searched.
	SectionMarkers []string
	SectionEnd     *regexp.Regexp

	PatentRisk  []*regexp.Regexp
	LegalRisk   []*regexp.Regexp
	Materiality []*regexp.Regexp

	// ContextWindow is the span around a match checked for materiality.
	ContextWindow int
}

func defaultBinaryEventRules() BinaryEventRules {
	return BinaryEventRules{
		SectionMarkers: []string{
			"risk factors",
			"legal proceedings",
			"patents and intellectual property",
		},
		SectionEnd: regexp.MustCompile(`(?i)item`),

		PatentRisk: []*regexp.Regexp{
			regexp.MustCompile(`(?i)patent expir(ation|e|y|ing)`),
			regexp.MustCompile(`(?i)patent challenge`),
			regexp.MustCompile(`(?i)patent litigation`),
			regexp.MustCompile(`(?i)patent protection.*expir`),
			regexp.MustCompile(`(?i)patent.*expir.*protection`),
		},
		LegalRisk: []*regexp.Regexp{
			regexp.MustCompile(`(?i)major.*lawsuit`),
			regexp.MustCompile(`(?i)significant.*litigation`),
			regexp.MustCompile(`(?i)critical.*legal proceeding`),
			regexp.MustCompile(`(?i)material.*court ruling`),
			regexp.MustCompile(`(?i)pending.*(decision|ruling|approval)`),
			regexp.MustCompile(`(?i)awaiting.*approval`),
		},
		Materiality: []*regexp.Regexp{
			regexp.MustCompile(`(?i)material`),
			regexp.MustCompile(`(?i)significant`),
			regexp.MustCompile(`(?i)substantial`),
			regexp.MustCompile(`(?i)critical`),
			regexp.MustCompile(`(?i)major`),
			regexp.MustCompile(`(?i)important`),
		},

		ContextWindow: 50,
	}
}
