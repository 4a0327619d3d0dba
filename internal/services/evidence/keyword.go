package evidence

// maxKeywordContexts caps the stored contexts per group.
const maxKeywordContexts = 5

// AnalyzeKeywords counts occurrences of each keyword group in text and
// captures a few surrounding contexts per group. Text and keywords must
// share case.
func (a *Analyzer) AnalyzeKeywords(text string, groups map[string][]string, contextWindow int) map[string]KeywordGroupResult {
	results := make(map[string]KeywordGroupResult, len(groups))

	for group, keywords := range groups {
		var result KeywordGroupResult
		for _, keyword := range keywords {
			for _, pos := range allIndexes(text, keyword) {
				result.Count++
				if len(result.Contexts) < maxKeywordContexts {
					result.Contexts = append(result.Contexts,
						normalizeSpace(contextAround(text, pos, pos+len(keyword), contextWindow)))
				}
			}
		}
		results[group] = result
	}
	return results
}

// CountPhrases counts how many phrases from the list appear in text at
// least once.
func CountPhrases(text string, phrases []string) int {
	n := 0
	for _, phrase := range phrases {
		if len(allIndexes(text, phrase)) > 0 {
			n++
		}
	}
	return n
}
