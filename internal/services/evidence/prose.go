package evidence

import (
	"github.com/jdkato/prose/v2"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/gauntlet/internal/rules"
)

// ProseClassifier layers proper sentence segmentation over the rule-based
// classification. Regex splitting on terminal punctuation breaks on
// abbreviations and figures ("approx. 45% of U.S. revenue"); the prose
// segmenter handles those, so percentages keep their full sentence of
// context. Classification itself stays rule-based.
type ProseClassifier struct {
	inner  *RegexClassifier
	logger arbor.ILogger
}

// NewProseClassifier creates a prose-backed classifier.
func NewProseClassifier(r *rules.Rules, logger arbor.ILogger) *ProseClassifier {
	return &ProseClassifier{
		inner:  NewRegexClassifier(r),
		logger: logger,
	}
}

// Sentences segments text with the prose tokenizer, falling back to the
// regex split when the document cannot be built.
func (c *ProseClassifier) Sentences(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithTagging(false),
	)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Msg("Sentence segmentation failed, falling back to regex split")
		return c.inner.Sentences(text)
	}

	segmented := doc.Sentences()
	sentences := make([]string, 0, len(segmented))
	for _, s := range segmented {
		if len(s.Text) >= c.inner.rules.MinSentenceLength {
			sentences = append(sentences, s.Text)
		}
	}
	return sentences
}

// Classify applies the shared rule-based evaluation.
func (c *ProseClassifier) Classify(sentence string) (Finding, bool) {
	return c.inner.Classify(sentence)
}
