package rules

import "regexp"

// Customer concentration finding types.
const (
	CustomerSingle   = "single"
	CustomerFew      = "few"
	CustomerMultiple = "multiple"
)

// ConcentrationRules drives the customer-concentration penalty check.
// Matching runs over lowercased filing text in layers: the sentence
// classifier when NLP segmentation is configured, targeted patterns for
// multi-year disclosure formats, the broad bank with exclusion
// filtering, and last the basic co-occurrence fallback.
type ConcentrationRules struct {
	// Targeted patterns capture multi-year disclosures such as
	// "accounted for 23%, 25% and 22% of our net revenue". The largest
	// captured percentage is taken.
	Targeted           []*regexp.Regexp
	TargetedConfidence float64

	// Broad is the main pattern bank covering direct statements,
	// government and hyperscaler concentration, top-N customer groups,
	// and tenant disclosures.
	Broad           []*regexp.Regexp
	BroadConfidence float64

	// Exclusions reject matches whose surrounding context describes
	// something other than customer concentration. Each bank is checked
	// against a window of ExclusionWindow characters around the match.
	GeographicExclusions   []*regexp.Regexp
	ProceduralExclusions   []*regexp.Regexp
	DistributionExclusions []*regexp.Regexp
	EquityExclusions       []*regexp.Regexp
	ExclusionWindow        int

	// SingleMarkers in the matched text mean the figure concerns one
	// customer rather than a group.
	SingleMarkers []string

	// Fallback patterns and exclusions for the basic co-occurrence pass
	// that runs after every richer layer has come up empty.
	FallbackActual     []*regexp.Regexp
	FallbackExclusions []*regexp.Regexp
	FallbackConfidence float64

	// Percent pulls the figure out of a matched fragment.
	Percent *regexp.Regexp
}

func defaultConcentrationRules() ConcentrationRules {
	return ConcentrationRules{
		Targeted: []*regexp.Regexp{
			regexp.MustCompile(`(?:largest|biggest)\s+(?:customer|client)[^.]{0,300}accounted\s+for[^.]{0,100}(\d{1,2})\s*%[^.]{0,20}(\d{1,2})\s*%[^.]{0,30}(\d{1,2})\s*%[^.]{0,100}(?:net\s+)?revenue`),
			regexp.MustCompile(`(?:customer|client)[^.]{0,100}accounted\s+for[^.]{0,50}(\d{1,2})\s*%[^.]{0,100}revenue[^.]{0,50}(?:in\s+)?(?:2024|2023)`),
			regexp.MustCompile(`(?:largest|biggest)\s+(?:customer|client)[^.]{0,100}represented[^.]{0,50}(\d{1,2})\s*%[^.]{0,100}(?:total\s+)?revenue`),
		},
		TargetedConfidence: 0.95,

		Broad: []*regexp.Regexp{
			regexp.MustCompile(`(?:largest|biggest|major|primary|principal)\s+(?:customer|client|tenant)\s+(?:accounted for|represented)\s+(?:approximately\s+)?(\d{1,2}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(?:one|single|a)\s+(?:customer|client|tenant)\s+(?:accounted for|represented)\s+(?:approximately\s+)?(\d{1,2}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(?:customer|client|tenant)\s+(?:that\s+)?(?:accounted for|represented)\s+(?:approximately\s+)?(\d{1,2}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(?:customer|client|tenant)[^.]{0,100}represented\s+(?:approximately\s+)?(\d{1,2}(?:\.\d{1,2})?)\s*%[^.]{0,50}(?:of\s+our\s+)?(?:revenue|sales|rent)`),
			regexp.MustCompile(`represented\s+(?:approximately\s+)?(\d{1,2}(?:\.\d{1,2})?)\s*%[^.]{0,100}(?:of\s+our\s+)?(?:total\s+)?(?:revenue|sales|rent)`),
			regexp.MustCompile(`(?:largest|biggest)\s+(?:customer|client)[^.]{0,200}accounted\s+for[^.]{0,100}(\d{1,2})\s*%[^.]{0,50}(?:of\s+our\s+)?(?:net\s+)?(?:revenue|sales)`),
			regexp.MustCompile(`(?:top|largest)\s+(?:three|four|five|ten|\d+)\s+(?:customers?|clients?|tenants?)[^.]{0,100}(?:accounted for|represented)\s+(?:approximately\s+)?(\d{1,2}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(?:ten|twenty|\d+)\s+largest\s+(?:customers?|clients?|tenants?)[^.]{0,100}(?:accounted for|represented)\s+(?:approximately\s+)?(\d{1,2}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(?:government|federal|military|defense|agency|agencies)\s+(?:contracts?|sales|revenue)\s+(?:accounted for|represented)\s+(?:approximately\s+)?(\d{1,2}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(?:u\.s\.|united states)\s+government\s+(?:accounted for|represented)\s+(?:approximately\s+)?(\d{1,2}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(?:cloud|hyperscaler|data center)\s+(?:customers?|providers?)\s+(?:accounted for|represented)\s+(?:approximately\s+)?(\d{1,2}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(?:amazon|microsoft|google|meta|alibaba)\s+(?:accounted for|represented)\s+(?:approximately\s+)?(\d{1,2}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(\d{1,2}(?:\.\d{1,2})?)\s*%\s+of\s+(?:our\s+)?(?:total\s+)?(?:revenue|sales|rent).*(?:from|was from|came from).*(?:one|single|largest|major|government)\s+(?:customer|client|tenant|contract)`),
			regexp.MustCompile(`no\s+(?:single\s+)?(?:customer|client|tenant)\s+(?:accounted for|represented)\s+more\s+than\s+(\d{1,2}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`concentration\s+of\s+credit\s+risk.*(\d{1,2}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(?:tenant|lessee)[^.]{0,100}represented\s+(?:approximately\s+)?(\d{1,2}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(?:tenants?|lessees?)[^.]{0,100}(?:accounted for|represented)\s+(?:approximately\s+)?(\d{1,2}(?:\.\d{1,2})?)\s*%`),
		},
		BroadConfidence: 0.9,

		GeographicExclusions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:outside|from|in).*(?:united states|us|u\.s\.|usa)`),
			regexp.MustCompile(`(?i)international.*(?:customers?|revenue|sales)`),
			regexp.MustCompile(`(?i)foreign.*(?:customers?|revenue|sales|operations)`),
			regexp.MustCompile(`(?i)overseas.*(?:customers?|revenue|sales)`),
			regexp.MustCompile(`(?i)geographic(?:al)?.*(?:revenue|sales|distribution)`),
			regexp.MustCompile(`(?i)(?:north america|europe|asia|americas?).*(?:revenue|sales)`),
		},
		ProceduralExclusions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)audit.*procedures`),
			regexp.MustCompile(`(?i)accounting.*(?:policies|procedures)`),
			regexp.MustCompile(`(?i)revenue.*recognition`),
			regexp.MustCompile(`(?i)internal.*controls`),
			regexp.MustCompile(`(?i)(?:ifrs|gaap|accounting).*standards`),
		},
		DistributionExclusions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:direct|indirect).*(?:distribution|sales|channels?)`),
			regexp.MustCompile(`(?i)distribution.*channels?`),
			regexp.MustCompile(`(?i)sales.*channels?`),
			regexp.MustCompile(`(?i)through.*(?:distributors?|resellers?|partners?)`),
		},
		EquityExclusions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)equity.*(?:awards?|compensation)`),
			regexp.MustCompile(`(?i)stock.*(?:options?|compensation|based)`),
			regexp.MustCompile(`(?i)employee.*(?:stock|equity)`),
			regexp.MustCompile(`(?i)share.*based.*compensation`),
			regexp.MustCompile(`(?i)stock-based.*compensation`),
		},
		ExclusionWindow: 300,

		SingleMarkers: []string{"largest", "single", "one", "a customer"},

		FallbackActual: []*regexp.Regexp{
			regexp.MustCompile(`(customer|client)\s+accounted\s+for\s+(?:approximately\s+)?(\d{1,2}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(customer|client)\s+represented\s+(?:approximately\s+)?(\d{1,2}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`largest\s+(customer|client)\s+(?:accounted\s+for|represented)\s+(?:approximately\s+)?(\d{1,2}(?:\.\d{1,2})?)\s*%`),
		},
		FallbackExclusions: []*regexp.Regexp{
			regexp.MustCompile(`(?i)risk\s+(?:that|of)`),
			regexp.MustCompile(`(?i)could\s+(?:result|lead)`),
			regexp.MustCompile(`(?i)may\s+(?:result|lead)`),
			regexp.MustCompile(`(?i)potential\s+(?:for|impact)`),
			regexp.MustCompile(`(?i)no\s+(?:single\s+)?(customer|client)`),
			regexp.MustCompile(`(?i)geographic(?:al)?\s+(?:region|area)`),
			regexp.MustCompile(`(?i)product\s+(?:line|segment)`),
		},
		FallbackConfidence: 0.7,

		Percent: regexp.MustCompile(`(\d{1,2}(?:\.\d{1,2})?)`),
	}
}

// Excluded reports whether the context around a concentration match hits
// any exclusion bank.
func (c *ConcentrationRules) Excluded(context string) bool {
	banks := [][]*regexp.Regexp{
		c.GeographicExclusions,
		c.ProceduralExclusions,
		c.DistributionExclusions,
		c.EquityExclusions,
	}
	for _, bank := range banks {
		for _, re := range bank {
			if re.MatchString(context) {
				return true
			}
		}
	}
	return false
}
