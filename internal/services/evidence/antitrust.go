package evidence

import (
	"regexp"
	"strings"
)

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
	htmlEntityPattern = regexp.MustCompile(`&[^;]+;`)
	paragraphSplit    = regexp.MustCompile(`\n\s*\n`)
)

// AntitrustIssue reports whether the filing discloses a live antitrust
// matter, with a context snippet when it does. Tickers with documented
// antitrust history get a tailored keyword pass over whole paragraphs;
// all others go through legal-proceedings section extraction and the
// generic pattern bank.
func (a *Analyzer) AntitrustIssue(ticker, filingText string) (string, bool) {
	rules := a.rules.Antitrust
	ticker = strings.ToLower(ticker)

	// Strip markup but keep paragraph structure; whitespace inside each
	// paragraph is normalized later.
	text := htmlTagPattern.ReplaceAllString(strings.ToLower(filingText), " ")
	text = htmlEntityPattern.ReplaceAllString(text, " ")

	if keywords, ok := rules.KeywordsFor(ticker); ok {
		for _, paragraph := range paragraphSplit.Split(text, -1) {
			if len(paragraph) < rules.MinParagraphLength {
				continue
			}
			paragraph = normalizeSpace(paragraph)
			for _, keyword := range keywords {
				if !strings.Contains(paragraph, keyword) {
					continue
				}
				if !containsAny(paragraph, rules.InvestigationContext) {
					continue
				}
				pos := strings.Index(paragraph, keyword)
				context := contextAround(paragraph, pos, pos+len(keyword), 150)
				a.logger.Debug().
					Str("ticker", ticker).
					Str("keyword", keyword).
					Msg("Antitrust concern found by ticker keywords")
				return truncate(context, 200), true
			}
		}
	}

	flat := normalizeSpace(text)

	// Explicit phrases anywhere are conclusive.
	for _, phrase := range rules.DirectPhrases {
		if pos := strings.Index(flat, phrase); pos >= 0 {
			context := contextAround(flat, pos, pos+len(phrase), 150)
			return truncate(context, 200), true
		}
	}

	// Pull the paragraphs that discuss legal and regulatory matters.
	var sections []string
	for _, paragraph := range paragraphSplit.Split(text, -1) {
		if containsAny(paragraph, rules.SectionMarkers) {
			sections = append(sections, normalizeSpace(paragraph))
		}
	}

	for _, section := range sections {
		if len(section) < rules.MinSectionLength {
			continue
		}
		if a.antitrustBoilerplate(section) {
			continue
		}
		for _, re := range rules.Patterns {
			loc := re.FindStringIndex(section)
			if loc == nil {
				continue
			}
			// Risk-factor language only counts when it describes a live
			// matter rather than a generic what-if.
			if strings.Contains(section, rules.RiskFactorMarker) &&
				!containsAny(section, rules.ActualWords) {
				continue
			}
			context := contextAround(section, loc[0], loc[1], 150)
			return truncate(context, 200), true
		}
	}

	return "", false
}

func (a *Analyzer) antitrustBoilerplate(section string) bool {
	for _, re := range a.rules.Antitrust.Negatives {
		if re.MatchString(section) {
			return true
		}
	}
	return false
}
