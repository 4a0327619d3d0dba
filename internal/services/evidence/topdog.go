package evidence

import "strings"

// TopDog analyzes market-position language in the combined business and
// risk-factors text: leadership claims, first-mover language, emerging
// industry membership, and disruptor posture. Keyword hits inside
// negative framing ("competitors could disrupt...") are not counted.
// Text must be lowercase.
func (a *Analyzer) TopDog(text string) TopDogResult {
	td := a.rules.TopDog
	result := TopDogResult{
		Matches:    make(map[string]int),
		Industries: make(map[string]int),
	}

	for industry, terms := range td.EmergingIndustries {
		mentions := 0
		for _, term := range terms {
			mentions += strings.Count(text, term)
		}
		if mentions > 0 {
			result.Industries[industry] = mentions
		}
	}

	for category, phrases := range td.Keywords {
		count := 0
		for _, phrase := range phrases {
			for _, pos := range allIndexes(text, phrase) {
				context := contextAround(text, pos, pos+len(phrase), 100)
				if a.negativeFraming(context) {
					continue
				}
				count++
			}
		}
		if count > 0 {
			result.Matches[category] = count
		}
	}

	a.logger.Debug().
		Int("industries", len(result.Industries)).
		Int("industry_mentions", result.TotalIndustryMentions()).
		Int("leader_hits", result.Matches["market_leader"]).
		Msg("Top dog analysis complete")
	return result
}

func (a *Analyzer) negativeFraming(context string) bool {
	for _, word := range strings.Fields(context) {
		if a.rules.TopDog.NegativeWords[strings.Trim(word, ".,;:()")] {
			return true
		}
	}
	return false
}

// allIndexes returns every occurrence of substr in s.
func allIndexes(s, substr string) []int {
	var out []int
	offset := 0
	for {
		idx := strings.Index(s[offset:], substr)
		if idx < 0 {
			return out
		}
		out = append(out, offset+idx)
		offset += idx + len(substr)
	}
}
