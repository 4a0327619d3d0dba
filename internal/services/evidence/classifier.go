package evidence

import (
	"strconv"
	"strings"

	"github.com/ternarybob/gauntlet/internal/rules"
)

// SentenceClassifier examines one sentence carrying a percentage and
// decides whether it is customer-concentration evidence. The second
// return is false when the sentence is not about customers at all.
type SentenceClassifier interface {
	Classify(sentence string) (Finding, bool)
	// Sentences splits text into candidate sentences.
	Sentences(text string) []string
}

// RegexClassifier is the fast rule-based classifier. It requires a
// customer term and a revenue term in the same sentence, rejects known
// non-customer breakdowns, and grades confidence by whether the sentence
// states a fact or a hypothetical.
type RegexClassifier struct {
	rules rules.ClassifierRules
}

// NewRegexClassifier creates a classifier over the given rule set.
func NewRegexClassifier(r *rules.Rules) *RegexClassifier {
	return &RegexClassifier{rules: r.Classifier}
}

// Sentences splits on terminal punctuation and drops fragments.
func (c *RegexClassifier) Sentences(text string) []string {
	parts := c.rules.SentenceSplit.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) >= c.rules.MinSentenceLength {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

// Classify evaluates one sentence.
func (c *RegexClassifier) Classify(sentence string) (Finding, bool) {
	lower := strings.ToLower(sentence)

	match := c.rules.Percent.FindStringSubmatch(lower)
	if match == nil {
		return Finding{}, false
	}
	percent, err := strconv.ParseFloat(match[1], 64)
	if err != nil || percent <= c.rules.MinMeaningfulPercent {
		return Finding{}, false
	}

	if !containsAny(lower, c.rules.CustomerTerms) || !containsAny(lower, c.rules.RevenueTerms) {
		return Finding{}, false
	}

	customerType := c.classifyCustomerType(lower, percent)
	if customerType == "" {
		return Finding{}, false
	}

	actual := c.isActualStatement(lower)
	confidence := c.rules.HypotheticalConfidence
	if actual {
		confidence = c.rules.ActualConfidence
	}

	return Finding{
		Value:      percent,
		Context:    truncate(sentence, c.rules.ContextLength),
		Confidence: confidence,
		Type:       customerType,
		Sentence:   sentence,
		IsActual:   actual,
	}, true
}

// classifyCustomerType decides whether the figure concerns one customer,
// a handful, or a broad group. An empty return means the sentence is a
// different kind of breakdown entirely.
func (c *RegexClassifier) classifyCustomerType(lower string, percent float64) string {
	if containsAny(lower, c.rules.Exclusions) {
		return ""
	}

	single := countMatches(lower, c.rules.SinglePatterns)
	multiple := countMatches(lower, c.rules.MultiplePatterns)

	if single > multiple {
		return rules.CustomerSingle
	}
	if multiple > 0 {
		switch {
		case percent >= c.rules.SingleThreshold:
			return rules.CustomerSingle
		case percent >= c.rules.FewThreshold:
			return rules.CustomerFew
		default:
			return rules.CustomerMultiple
		}
	}
	switch {
	case percent >= c.rules.SingleThreshold:
		return rules.CustomerSingle
	case percent >= c.rules.FallbackFewThreshold:
		return rules.CustomerFew
	default:
		return rules.CustomerMultiple
	}
}

// isActualStatement reports whether the sentence states a fact rather
// than a risk or projection.
func (c *RegexClassifier) isActualStatement(lower string) bool {
	return !containsAny(lower, c.rules.CueWords)
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func countMatches(s string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(s, term) {
			n++
		}
	}
	return n
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
