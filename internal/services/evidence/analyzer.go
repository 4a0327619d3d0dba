package evidence

import (
	"sort"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/gauntlet/internal/rules"
)

// Analyzer runs the filing-text analyses. All methods expect lowercased
// text; callers that hold mixed-case text should lower it once.
type Analyzer struct {
	rules      *rules.Rules
	classifier SentenceClassifier
	fallback   *RegexClassifier
	nlp        bool // proper sentence segmentation; the classifier pass leads
	logger     arbor.ILogger
}

// NewAnalyzer creates an analyzer. The classifier handles the
// sentence-level concentration pass; on very large candidate sets the
// regex fallback is used regardless, to bound cost.
func NewAnalyzer(r *rules.Rules, classifier SentenceClassifier, logger arbor.ILogger) *Analyzer {
	_, nlp := classifier.(*ProseClassifier)
	return &Analyzer{
		rules:      r,
		classifier: classifier,
		fallback:   NewRegexClassifier(r),
		nlp:        nlp,
		logger:     logger,
	}
}

// Rules exposes the analyzer's rule set to callers that need thresholds.
func (a *Analyzer) Rules() *rules.Rules {
	return a.rules
}

func sortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Value > findings[j].Value
	})
}

// sentenceAround expands [start, end) to the enclosing period-delimited
// sentence, so cue-word scans see the same text a sentence classifier
// would.
func sentenceAround(text string, start, end int) string {
	from := strings.LastIndexByte(text[:start], '.') + 1
	to := len(text)
	if i := strings.IndexByte(text[end:], '.'); i >= 0 {
		to = end + i
	}
	return text[from:to]
}

// contextAround returns the window around [start, end) in text.
func contextAround(text string, start, end, window int) string {
	from := start - window
	if from < 0 {
		from = 0
	}
	to := end + window
	if to > len(text) {
		to = len(text)
	}
	return text[from:to]
}

// normalizeSpace collapses runs of whitespace to single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
