package evidence

import (
	"strconv"
	"strings"

	"github.com/ternarybob/gauntlet/internal/rules"
)

// RecurringRevenue analyzes how much of a company's revenue recurs.
// Strategies run in reliability order: explicit percentage disclosures in
// the MD&A, then subscription line items in the financial statements,
// then business-model keyword evidence. mdaSection and filingText must be
// lowercase; businessSummary feeds the no-filing fallback.
func (a *Analyzer) RecurringRevenue(mdaSection, filingText, businessSummary string) RevenueEvidence {
	rec := a.rules.Recurring

	evidence := RevenueEvidence{Source: RevenueSourceNone}
	a.detectRevenueModel(filingText, &evidence)

	searchText := mdaSection
	if searchText == "" {
		searchText = filingText
	}

	if findings := a.explicitRecurringPercents(searchText); len(findings) > 0 {
		evidence.Findings = findings
		evidence.Percent = findings[0].Value
		evidence.Source = RevenueSourceExplicit
		a.logger.Debug().
			Float64("percent", evidence.Percent).
			Int("findings", len(findings)).
			Msg("Recurring revenue found by explicit disclosure")
		return evidence
	}

	if pct, ok := a.statementSubscriptionPercent(filingText); ok {
		evidence.Percent = pct
		evidence.Source = RevenueSourceStatement
		a.logger.Debug().
			Float64("percent", pct).
			Msg("Recurring revenue found in financial statements")
		return evidence
	}

	if filingText == "" {
		summary := strings.ToLower(businessSummary)
		for _, keyword := range rec.StrongKeywords {
			if strings.Contains(summary, keyword) {
				evidence.StrongKeywordCount++
			}
		}
		if evidence.StrongKeywordCount >= rec.StrongKeywordFloor {
			evidence.Source = RevenueSourceKeywords
		}
		return evidence
	}

	if evidence.HasSubscriptionModel {
		evidence.Source = RevenueSourceModel
	}
	return evidence
}

// explicitRecurringPercents pulls stated recurring-revenue percentages,
// deduplicated by value, strongest first.
func (a *Analyzer) explicitRecurringPercents(text string) []Finding {
	rec := a.rules.Recurring
	var findings []Finding
	seen := make(map[float64]bool)

	for _, re := range rec.Explicit {
		for _, idx := range re.FindAllStringSubmatchIndex(text, -1) {
			var value float64
			for g := 1; g*2 < len(idx); g++ {
				start, end := idx[g*2], idx[g*2+1]
				if start < 0 {
					continue
				}
				if v, err := strconv.ParseFloat(text[start:end], 64); err == nil {
					value = v
					break
				}
			}
			if value < rec.MinPercent || value > rec.MaxPercent || seen[value] {
				continue
			}
			seen[value] = true

			context := normalizeSpace(contextAround(text, idx[0], idx[1], rec.ContextWindow))
			findings = append(findings, Finding{
				Value:      value,
				Context:    truncate(context, rec.ContextLength),
				Confidence: 1.0,
				Sentence:   truncate(text[idx[0]:idx[1]], 300),
				IsActual:   a.fallback.isActualStatement(sentenceAround(text, idx[0], idx[1])),
			})
		}
	}

	sortFindings(findings)
	return findings
}

// statementSubscriptionPercent looks for subscription revenue line items
// carrying a percentage near the income-statement and revenue
// disaggregation anchors.
func (a *Analyzer) statementSubscriptionPercent(text string) (float64, bool) {
	rec := a.rules.Recurring

	var sections []string
	for _, anchor := range rec.StatementAnchors {
		for _, idx := range anchor.FindAllStringIndex(text, -1) {
			from := idx[0] - rec.AnchorBefore
			if from < 0 {
				from = 0
			}
			to := idx[1] + rec.AnchorAfter
			if to > len(text) {
				to = len(text)
			}
			sections = append(sections, text[from:to])
		}
	}
	if len(sections) == 0 {
		return 0, false
	}
	combined := strings.Join(sections, " ")

	for _, re := range rec.SubscriptionLines {
		if m := re.FindStringSubmatch(combined); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				return v, true
			}
		}
	}
	return 0, false
}

// detectRevenueModel fills the model-indicator fields.
func (a *Analyzer) detectRevenueModel(text string, evidence *RevenueEvidence) {
	rec := a.rules.Recurring

	for _, indicator := range rec.SubscriptionIndicators {
		if strings.Contains(text, indicator) {
			evidence.HasSubscriptionModel = true
			break
		}
	}
	for _, indicator := range rec.DeferredIndicators {
		if strings.Contains(text, indicator) {
			evidence.HasDeferredRevenue = true
			break
		}
	}

	consumption := 0
	for _, indicator := range rec.ConsumptionIndicators {
		if strings.Contains(text, indicator) {
			consumption++
		}
	}

	switch {
	case consumption >= rec.ConsumptionFloor:
		evidence.ModelType = rules.RevenueConsumption
	case evidence.HasSubscriptionModel:
		evidence.ModelType = rules.RevenueSubscription
	default:
		evidence.ModelType = rules.RevenueTransaction
	}
}
