// Package sections locates the named sections of an annual filing:
// business, risk factors, MD&A, and legal proceedings. Extraction works
// on lowercased text; header patterns mark the start of a section and the
// first boundary pattern found past the header marks its end.
package sections

import (
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/gauntlet/internal/rules"
)

// Extractor slices filing text into sections.
type Extractor struct {
	rules  rules.SectionRules
	logger arbor.ILogger
}

// NewExtractor creates a section extractor.
func NewExtractor(r *rules.Rules, logger arbor.ILogger) *Extractor {
	return &Extractor{
		rules:  r.Sections,
		logger: logger,
	}
}

// Extract returns all known sections present in the filing, keyed by
// section identifier. Sections that cannot be located are absent from
// the map. The returned text is lowercase.
func (e *Extractor) Extract(filingText string) map[string]string {
	lower := strings.ToLower(filingText)
	found := make(map[string]string)
	for _, name := range rules.SectionNames() {
		if section := e.section(lower, name); section != "" {
			found[name] = section
		}
	}
	e.logger.Debug().
		Int("sections_found", len(found)).
		Int("filing_length", len(lower)).
		Msg("Extracted filing sections")
	return found
}

// Section returns one named section of the filing in lowercase, or ""
// when it cannot be located.
func (e *Extractor) Section(filingText, name string) string {
	return e.section(strings.ToLower(filingText), name)
}

func (e *Extractor) section(lower, name string) string {
	headers := e.rules.Headers[name]
	boundaries := e.rules.Boundaries[name]

	for _, header := range headers {
		loc := header.FindStringIndex(lower)
		if loc == nil {
			continue
		}
		start := loc[0]

		end := len(lower)
		searchFrom := start + e.rules.BoundaryOffset
		if searchFrom < len(lower) {
			rest := lower[searchFrom:]
			for _, boundary := range boundaries {
				if bloc := boundary.FindStringIndex(rest); bloc != nil {
					if candidate := searchFrom + bloc[0]; candidate < end {
						end = candidate
					}
				}
			}
		}

		if max := start + e.rules.MaxSectionLength; end > max {
			end = max
		}
		return lower[start:end]
	}
	return ""
}

// RiskSection returns the risk-factors section using the literal fallback
// markers, for checks that tolerate looser boundaries. Returns the whole
// lowercased filing when no marker is present.
func (e *Extractor) RiskSection(filingText string) string {
	lower := strings.ToLower(filingText)
	for _, marker := range e.rules.RiskFallbackMarkers {
		start := strings.Index(lower, marker)
		if start < 0 {
			continue
		}
		// Skip past the marker itself before hunting for the next item
		// heading.
		searchFrom := start + 100
		if searchFrom >= len(lower) {
			return lower[start:]
		}
		if loc := e.rules.RiskFallbackEnd.FindStringIndex(lower[searchFrom:]); loc != nil {
			return lower[start : searchFrom+loc[0]]
		}
		end := start + e.rules.RiskFallbackLength
		if end > len(lower) {
			end = len(lower)
		}
		return lower[start:end]
	}
	return lower
}
