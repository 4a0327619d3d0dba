package evidence

import "strings"

// BinaryEvents finds all-or-nothing risk events: patent expirations and
// challenges, major pending litigation, and awaited regulatory rulings.
// Only the risk-factors, legal-proceedings, and patent sections are
// searched, and a match must sit next to materiality language. Returns
// the matched descriptions; an empty slice means none were found.
func (a *Analyzer) BinaryEvents(text string) []string {
	b := a.rules.BinaryEvents

	var relevant strings.Builder
	for _, marker := range b.SectionMarkers {
		start := strings.Index(text, marker)
		if start < 0 {
			continue
		}
		rest := text[start+len(marker):]
		end := len(rest)
		if loc := b.SectionEnd.FindStringIndex(rest); loc != nil {
			end = loc[0]
		}
		relevant.WriteString(text[start : start+len(marker)+end])
		relevant.WriteByte('\n')
	}
	if relevant.Len() == 0 {
		return nil
	}
	section := relevant.String()

	var events []string
	for _, re := range b.PatentRisk {
		for _, idx := range re.FindAllStringIndex(section, -1) {
			context := contextAround(section, idx[0], idx[1], b.ContextWindow)
			if a.isMaterial(context) {
				events = append(events, "patent risk: "+strings.TrimSpace(context))
			}
		}
	}
	for _, re := range b.LegalRisk {
		for _, idx := range re.FindAllStringIndex(section, -1) {
			context := contextAround(section, idx[0], idx[1], b.ContextWindow)
			if a.isMaterial(context) {
				events = append(events, "legal risk: "+strings.TrimSpace(context))
			}
		}
	}

	if len(events) > 0 {
		a.logger.Debug().
			Int("events", len(events)).
			Msg("Binary events found")
	}
	return events
}

func (a *Analyzer) isMaterial(context string) bool {
	for _, re := range a.rules.BinaryEvents.Materiality {
		if re.MatchString(context) {
			return true
		}
	}
	return false
}
