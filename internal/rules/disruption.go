package rules

import "regexp"

// Disruption risk categories.
const (
	DisruptionTechnology = "technology_risks"
	DisruptionCompetits  = "competitive_threats"
	DisruptionMarket     = "market_shifts"
	DisruptionRegulatory = "regulatory_environmental"
)

// DisruptionIndicator is one layered disruption signal: the pattern must
// match, and the surrounding context is graded by which of the context and
// materiality word lists it satisfies.
type DisruptionIndicator struct {
	Pattern     *regexp.Regexp
	Context     []string
	Materiality []string
}

// DisruptionRules drives the industry-disruption penalty check over the
// risk-factors section.
type DisruptionRules struct {
	// Indicators keyed by category.
	Indicators map[string][]DisruptionIndicator
	// ContextWindow is the span around a match searched for context and
	// materiality words.
	ContextWindow int
	// CriticalWords escalate a significant match to critical.
	CriticalWords []string
}

func defaultDisruptionRules() DisruptionRules {
	material := []string{"material", "significant", "substantial", "major", "critical"}
	impact := []string{"could", "may", "impact", "affect", "result in"}

	return DisruptionRules{
		Indicators: map[string][]DisruptionIndicator{
			DisruptionTechnology: {
				{
					Pattern:     regexp.MustCompile(`(obsolete|outdated|legacy)\s+(technology|systems|products|infrastructure)`),
					Context:     []string{"unable to", "fail to", "cannot", "significant impact", "material impact"},
					Materiality: []string{"materially", "significantly", "substantially", "major", "critical"},
				},
				{
					Pattern:     regexp.MustCompile(`(losing|lost)\s+(technological|technology)\s+(leadership|advantage)`),
					Context:     []string{"competitors", "market share", "revenue", "position"},
					Materiality: material,
				},
				{
					Pattern:     regexp.MustCompile(`(unable|failure|fail)\s+to\s+(keep up|maintain|sustain)\s+(technological|technology)`),
					Context:     []string{"advancement", "leadership", "competition", "market"},
					Materiality: material,
				},
			},
			DisruptionCompetits: {
				{
					Pattern:     regexp.MustCompile(`(new|emerging)\s+(competitors|entrants)`),
					Context:     []string{"could", "may", "threaten", "impact", "disrupt"},
					Materiality: material,
				},
				{
					Pattern:     regexp.MustCompile(`(disruptive|revolutionary)\s+(technology|solution)`),
					Context:     []string{"competitors", "market", "industry", "threat"},
					Materiality: material,
				},
				{
					Pattern:     regexp.MustCompile(`(losing|lost)\s+(market share|customers|position)`),
					Context:     []string{"competitors", "market", "industry"},
					Materiality: material,
				},
			},
			DisruptionMarket: {
				{
					Pattern:     regexp.MustCompile(`(declining|decreasing|reduced|falling)\s+(demand|revenue|market|growth)`),
					Context:     impact,
					Materiality: material,
				},
				{
					Pattern:     regexp.MustCompile(`(industry|market|secular)\s+(decline|shift|change|transition)`),
					Context:     impact,
					Materiality: material,
				},
				{
					Pattern:     regexp.MustCompile(`(fundamental|permanent|long.term)\s+change\s+in\s+(market|industry|demand)`),
					Context:     impact,
					Materiality: material,
				},
			},
			DisruptionRegulatory: {
				{
					Pattern:     regexp.MustCompile(`(environmental|climate|carbon|emission|greenhouse gas)\s+(regulation|compliance|risk|impact)`),
					Context:     impact,
					Materiality: material,
				},
				{
					Pattern:     regexp.MustCompile(`(regulatory|regulation)\s+(changes|pressure|requirements|compliance|risk)`),
					Context:     impact,
					Materiality: material,
				},
			},
		},
		ContextWindow: 200,
		CriticalWords: []string{"critical", "existential", "threaten", "survival"},
	}
}
