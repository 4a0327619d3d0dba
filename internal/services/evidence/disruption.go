package evidence

import "strings"

// DisruptionRisks scans the risk-factors section for industry-disruption
// signals and buckets them by severity. A pattern match alone is not
// enough: its surrounding context must carry the indicator's required
// context words, and materiality words decide the grade.
func (a *Analyzer) DisruptionRisks(riskSection string) RiskAssessment {
	rules := a.rules.Disruption
	var assessment RiskAssessment

	for category, indicators := range rules.Indicators {
		for _, indicator := range indicators {
			matches := indicator.Pattern.FindAllStringIndex(riskSection, -1)
			for _, idx := range matches {
				context := contextAround(riskSection, idx[0], idx[1], rules.ContextWindow)

				hasContext := containsAny(context, indicator.Context)
				hasMateriality := containsAny(context, indicator.Materiality)

				description := category + ": " + strings.TrimSpace(context)
				switch {
				case hasContext && hasMateriality:
					if len(matches) > 1 || containsAny(context, rules.CriticalWords) {
						assessment.Critical = append(assessment.Critical, description)
					} else {
						assessment.Significant = append(assessment.Significant, description)
					}
				case hasContext || hasMateriality:
					assessment.Minor = append(assessment.Minor, description)
				}
			}
		}
	}

	a.logger.Debug().
		Int("critical", len(assessment.Critical)).
		Int("significant", len(assessment.Significant)).
		Int("minor", len(assessment.Minor)).
		Msg("Industry disruption risks assessed")
	return assessment
}
