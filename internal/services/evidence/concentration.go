package evidence

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ternarybob/gauntlet/internal/rules"
)

// Concentration extracts customer-concentration findings from lowercased
// filing text, strongest first. Layers run in degrading precision order
// and the first that produces findings wins. When NLP segmentation is
// configured the sentence classifier leads; otherwise the pattern banks
// lead and the classifier backstops them. The basic keyword pass is
// always last.
func (a *Analyzer) Concentration(ticker, text string) []Finding {
	if a.nlp {
		if findings := a.concentrationSentences(text); len(findings) > 0 {
			return a.logConcentration(ticker, "sentence classifier", findings)
		}
	}

	if findings := a.concentrationTargeted(text); len(findings) > 0 {
		return a.logConcentration(ticker, "targeted patterns", findings)
	}
	if findings := a.concentrationBroad(text); len(findings) > 0 {
		return a.logConcentration(ticker, "pattern bank", findings)
	}

	if !a.nlp {
		if findings := a.concentrationSentences(text); len(findings) > 0 {
			return a.logConcentration(ticker, "sentence classifier", findings)
		}
	}

	if findings := a.concentrationBasic(text); len(findings) > 0 {
		return a.logConcentration(ticker, "basic fallback", findings)
	}
	return nil
}

func (a *Analyzer) logConcentration(ticker, layer string, findings []Finding) []Finding {
	a.logger.Debug().
		Str("ticker", ticker).
		Str("layer", layer).
		Int("findings", len(findings)).
		Float64("top_percent", findings[0].Value).
		Str("type", findings[0].Type).
		Msg("Customer concentration found")
	return findings
}

// concentrationTargeted handles multi-year disclosure formats where one
// sentence reports the figure for three fiscal years; the largest year
// is taken.
func (a *Analyzer) concentrationTargeted(text string) []Finding {
	conc := a.rules.Concentration
	var findings []Finding

	for _, re := range conc.Targeted {
		for _, idx := range re.FindAllStringSubmatchIndex(text, -1) {
			var max float64
			for g := 1; g*2 < len(idx); g++ {
				start, end := idx[g*2], idx[g*2+1]
				if start < 0 {
					continue
				}
				if v, err := strconv.ParseFloat(text[start:end], 64); err == nil && v > max {
					max = v
				}
			}
			if max == 0 {
				continue
			}
			matched := text[idx[0]:idx[1]]
			findings = append(findings, Finding{
				Value:      max,
				Context:    truncate(contextAround(text, idx[0], idx[1], 200), 200),
				Confidence: conc.TargetedConfidence,
				Type:       rules.CustomerSingle,
				Sentence:   truncate(matched, 300),
				IsActual:   a.fallback.isActualStatement(sentenceAround(text, idx[0], idx[1])),
			})
		}
	}

	sortFindings(findings)
	return findings
}

// concentrationBroad runs the main pattern bank, dropping matches whose
// surrounding context is a geographic, procedural, distribution, or
// equity breakdown.
func (a *Analyzer) concentrationBroad(text string) []Finding {
	conc := a.rules.Concentration
	var findings []Finding

	for _, re := range conc.Broad {
		for _, idx := range re.FindAllStringIndex(text, -1) {
			context := contextAround(text, idx[0], idx[1], conc.ExclusionWindow)
			if conc.Excluded(context) {
				continue
			}

			matched := text[idx[0]:idx[1]]
			pct := conc.Percent.FindString(matched)
			if pct == "" {
				continue
			}
			value, err := strconv.ParseFloat(pct, 64)
			if err != nil || value <= a.rules.Thresholds.ConcentrationMinPercent {
				continue
			}

			findingType := rules.CustomerMultiple
			for _, marker := range conc.SingleMarkers {
				if strings.Contains(matched, marker) {
					findingType = rules.CustomerSingle
					break
				}
			}

			findings = append(findings, Finding{
				Value:      value,
				Context:    truncate(context, 200),
				Confidence: conc.BroadConfidence,
				Type:       findingType,
				Sentence:   truncate(matched, 300),
				IsActual:   a.fallback.isActualStatement(sentenceAround(text, idx[0], idx[1])),
			})
		}
	}

	sortFindings(findings)
	return findings
}

// concentrationBasic is the lowest-confidence pass: bare
// customer-plus-percentage co-occurrence with its own small exclusion
// bank, for disclosures the richer layers rejected on context.
func (a *Analyzer) concentrationBasic(text string) []Finding {
	conc := a.rules.Concentration
	var findings []Finding

	for _, re := range conc.FallbackActual {
		for _, idx := range re.FindAllStringSubmatchIndex(text, -1) {
			sentence := sentenceAround(text, idx[0], idx[1])
			if matchesAny(sentence, conc.FallbackExclusions) {
				continue
			}

			// The percentage is the last capture group.
			start, end := idx[len(idx)-2], idx[len(idx)-1]
			if start < 0 {
				continue
			}
			value, err := strconv.ParseFloat(text[start:end], 64)
			if err != nil || value <= a.rules.Thresholds.ConcentrationMinPercent {
				continue
			}

			findingType := rules.CustomerMultiple
			for _, marker := range conc.SingleMarkers {
				if strings.Contains(sentence, marker) {
					findingType = rules.CustomerSingle
					break
				}
			}

			findings = append(findings, Finding{
				Value:      value,
				Context:    truncate(normalizeSpace(sentence), 200),
				Confidence: conc.FallbackConfidence,
				Type:       findingType,
				Sentence:   truncate(text[idx[0]:idx[1]], 300),
				IsActual:   a.fallback.isActualStatement(sentence),
			})
		}
	}

	sortFindings(findings)
	return findings
}

func matchesAny(s string, bank []*regexp.Regexp) bool {
	for _, re := range bank {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// concentrationSentences splits into sentences, keeps those carrying a
// meaningful percentage, and classifies each. Very large candidate sets
// skip the configured classifier for the regex one, to bound cost.
func (a *Analyzer) concentrationSentences(text string) []Finding {
	cls := a.classifier
	candidates := cls.Sentences(text)

	percentBearing := candidates[:0:0]
	for _, sentence := range candidates {
		if a.rules.Classifier.Percent.MatchString(sentence) {
			percentBearing = append(percentBearing, sentence)
		}
	}
	if len(percentBearing) >= a.rules.Classifier.MaxCandidates {
		cls = a.fallback
	}

	var findings []Finding
	for _, sentence := range percentBearing {
		if finding, ok := cls.Classify(sentence); ok {
			findings = append(findings, finding)
		}
	}

	sortFindings(findings)
	return findings
}
