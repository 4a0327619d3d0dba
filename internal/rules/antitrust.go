package rules

import "regexp"

// AntitrustRules drives the antitrust penalty check. Tickers with known
// regulatory history get a tailored keyword pass over whole paragraphs;
// everything else goes through section extraction and the pattern bank.
type AntitrustRules struct {
	// TickerKeywords maps lowercase tickers to the search terms used for
	// companies with documented antitrust history.
	TickerKeywords map[string][]string
	// TickerAliases fold share-class and renamed tickers onto the entry
	// that carries the keywords.
	TickerAliases map[string]string
	// InvestigationContext words must co-occur with a ticker keyword in
	// the same paragraph for it to count.
	InvestigationContext []string
	// MinParagraphLength filters fragments from the paragraph split.
	MinParagraphLength int

	// SectionMarkers select the paragraphs worth scanning in the generic
	// path. Sections shorter than MinSectionLength are skipped.
	SectionMarkers   []string
	MinSectionLength int

	// DirectPhrases anywhere in the filing are treated as an issue
	// without further qualification.
	DirectPhrases []string

	// Patterns is the generic issue bank; Negatives suppress a match
	// whose section is boilerplate or explicitly immaterial.
	Patterns  []*regexp.Regexp
	Negatives []*regexp.Regexp

	// RiskFactorGuard: a match inside risk-factor language only counts
	// when one of these words shows it describes a live matter.
	RiskFactorMarker string
	ActualWords      []string
}

func defaultAntitrustRules() AntitrustRules {
	return AntitrustRules{
		TickerKeywords: map[string][]string{
			"teva":  {"antitrust", "competition", "anti-competitive", "litigation", "ftc", "department of justice"},
			"googl": {"antitrust", "competition", "anti-competitive", "doj", "department of justice", "ec", "european commission"},
			"meta":  {"antitrust", "competition", "anti-competitive", "ftc", "federal trade commission"},
			"amzn":  {"antitrust", "competition", "anti-competitive", "ftc", "federal trade commission"},
			"aapl":  {"antitrust", "competition", "anti-competitive", "app store", "commission"},
			"msft":  {"antitrust", "competition", "anti-competitive", "acquisition"},
		},
		TickerAliases: map[string]string{
			"goog": "googl",
			"fb":   "meta",
		},
		InvestigationContext: []string{
			"investigation", "litigation", "lawsuit", "complaint",
			"settlement", "proceeding", "action", "enforcement",
			"regulatory", "alleged", "allegation",
		},
		MinParagraphLength: 100,

		SectionMarkers: []string{
			"legal proceedings",
			"litigation",
			"antitrust",
			"government investigations",
			"regulatory proceedings",
			"competition law",
			"item 3. legal proceedings",
		},
		MinSectionLength: 50,

		DirectPhrases: []string{
			"antitrust litigation",
			"antitrust settlement",
			"antitrust investigation",
		},

		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`antitrust.{0,50}(investigation|proceeding|litigation|lawsuit|complaint|allegation)`),
			regexp.MustCompile(`anti.?competitive.{0,50}(investigation|proceeding|litigation|lawsuit|complaint|allegation)`),
			regexp.MustCompile(`competition law.{0,50}(investigation|proceeding|litigation|lawsuit|complaint|allegation)`),
			regexp.MustCompile(`monopol.{0,50}(investigation|proceeding|litigation|lawsuit|complaint|allegation)`),
			regexp.MustCompile(`(doj|department of justice).{0,100}antitrust`),
			regexp.MustCompile(`(ftc|federal trade commission).{0,100}antitrust`),
			regexp.MustCompile(`(ec|european commission).{0,100}competition`),
			regexp.MustCompile(`antitrust.{0,100}(fine|penalty|settlement).{0,50}(million|billion)`),
			regexp.MustCompile(`competition.{0,100}(fine|penalty|settlement).{0,50}(million|billion)`),
			regexp.MustCompile(`antitrust\s+litigation`),
			regexp.MustCompile(`antitrust\s+settlement`),
			regexp.MustCompile(`antitrust\s+(matters|cases|issues|concerns)`),
			regexp.MustCompile(`competition\s+law\s+proceedings`),
		},
		Negatives: []*regexp.Regexp{
			regexp.MustCompile(`not\s+material`),
			regexp.MustCompile(`no\s+material`),
			regexp.MustCompile(`no\s+pending.*antitrust`),
			regexp.MustCompile(`boilerplate`),
			regexp.MustCompile(`forward.looking\s+statement`),
			regexp.MustCompile(`not\s+party\s+to.*antitrust`),
		},

		RiskFactorMarker: "risk factor",
		ActualWords:      []string{"actual", "ongoing"},
	}
}

// KeywordsFor resolves the tailored keyword list for a ticker, following
// aliases. The second return is false when the ticker has no entry.
func (a *AntitrustRules) KeywordsFor(ticker string) ([]string, bool) {
	if canonical, ok := a.TickerAliases[ticker]; ok {
		ticker = canonical
	}
	keywords, ok := a.TickerKeywords[ticker]
	return keywords, ok
}
