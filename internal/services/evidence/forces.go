package evidence

import "strings"

// OutsideForces assesses exposure to forces outside management's control:
// commodity price dependency, extractive-industry operations, operations
// in high-risk regions, and heavy regulatory load. Text must be
// lowercase.
func (a *Analyzer) OutsideForces(text string) RiskAssessment {
	forces := a.rules.OutsideForces
	var assessment RiskAssessment

	// Commodity dependencies. One hit per commodity; the context around
	// the first phrase occurrence must show material dependence.
	for _, commodities := range forces.Commodities {
		for _, commodity := range commodities {
			for _, phrase := range commodity.Phrases {
				pos := strings.Index(text, phrase)
				if pos < 0 {
					continue
				}
				context := contextAround(text, pos, pos+len(phrase), forces.ContextWindow)
				if containsAny(context, forces.CommodityMateriality) {
					assessment.Critical = append(assessment.Critical,
						"critical commodity dependency: "+commodity.Name)
					break
				}
			}
		}
	}

	// Extractive industries as core operations.
	for industry, keywords := range forces.Industries {
		for _, keyword := range keywords {
			pos := strings.Index(text, keyword)
			if pos < 0 {
				continue
			}
			context := contextAround(text, pos, pos+len(keyword), forces.ContextWindow)
			if containsAny(context, forces.IndustryMateriality) {
				assessment.Critical = append(assessment.Critical, "critical industry: "+industry)
				break
			}
		}
	}

	// High-risk regions. Operations words nearby make it a risk;
	// materiality words escalate it to critical.
	for country := range a.rules.Countries.HighRisk {
		pos := strings.Index(text, country)
		if pos < 0 {
			continue
		}
		context := contextAround(text, pos, pos+len(country), forces.CountryContextWindow)
		if !containsAny(context, forces.OperationsWords) {
			continue
		}
		if containsAny(context, forces.CountryMateriality) {
			assessment.Critical = append(assessment.Critical,
				"primary operations in high-risk region: "+country)
		} else {
			assessment.Significant = append(assessment.Significant,
				"operations in developing country: "+country)
		}
	}

	// Regulatory exposure. Each keyword present counts once.
	for _, keyword := range forces.RegulatoryKeywords {
		if strings.Contains(text, keyword) {
			assessment.Significant = append(assessment.Significant,
				"significant regulatory exposure: "+keyword)
		}
	}

	a.logger.Debug().
		Int("critical", len(assessment.Critical)).
		Int("significant", len(assessment.Significant)).
		Msg("Outside forces assessed")
	return assessment
}
