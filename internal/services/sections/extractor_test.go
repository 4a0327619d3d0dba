package sections

import (
	"strings"
	"testing"

	"github.com/ternarybob/gauntlet/internal/common"
	"github.com/ternarybob/gauntlet/internal/rules"
)

func newExtractor() *Extractor {
	return NewExtractor(rules.Default(), common.GetLogger())
}

// buildFiling assembles a synthetic annual report with padded sections so
// boundary searches start past the headers.
func buildFiling() string {
	pad := strings.Repeat("lorem ipsum filler text. ", 60) // ~1.5KB

	var b strings.Builder
	b.WriteString("Item 1. Business\n")
	b.WriteString("We design and sell consumer hardware. " + pad)
	b.WriteString("\nItem 1A. Risk Factors\n")
	b.WriteString("Our largest customer accounted for 45% of revenue. " + pad)
	b.WriteString("\nItem 2. Management's Discussion and Analysis\n")
	b.WriteString("Revenue grew twelve percent year over year. " + pad)
	b.WriteString("\nItem 3. Legal Proceedings\n")
	b.WriteString("We are party to various routine matters. " + pad)
	b.WriteString("\nItem 4. Mine Safety Disclosures\nNot applicable.\n")
	return b.String()
}

func TestExtractAllSections(t *testing.T) {
	extractor := newExtractor()
	found := extractor.Extract(buildFiling())

	for _, name := range rules.SectionNames() {
		if _, ok := found[name]; !ok {
			t.Errorf("section %q not extracted", name)
		}
	}
}

func TestSectionBoundaries(t *testing.T) {
	extractor := newExtractor()
	filing := buildFiling()

	business := extractor.Section(filing, rules.SectionBusiness)
	if !strings.Contains(business, "consumer hardware") {
		t.Error("business section missing its body")
	}
	if strings.Contains(business, "largest customer") {
		t.Error("business section ran into risk factors")
	}

	risk := extractor.Section(filing, rules.SectionRiskFactors)
	if !strings.Contains(risk, "largest customer accounted for 45%") {
		t.Error("risk factors section missing its body")
	}
	if strings.Contains(risk, "legal proceedings") {
		t.Error("risk factors section ran past its boundary")
	}

	legal := extractor.Section(filing, rules.SectionLegal)
	if !strings.Contains(legal, "routine matters") {
		t.Error("legal section missing its body")
	}
	if strings.Contains(legal, "mine safety") {
		t.Error("legal section ran into mine safety")
	}
}

func TestSectionIsLowercase(t *testing.T) {
	extractor := newExtractor()
	business := extractor.Section(buildFiling(), rules.SectionBusiness)
	if business != strings.ToLower(business) {
		t.Error("extracted section should be lowercase")
	}
}

func TestSectionMissing(t *testing.T) {
	extractor := newExtractor()
	if got := extractor.Section("quarterly shareholder letter with no items", rules.SectionMDA); got != "" {
		t.Errorf("expected empty section, got %d chars", len(got))
	}
}

func TestSectionLengthCap(t *testing.T) {
	r := rules.Default()
	extractor := NewExtractor(r, common.GetLogger())

	// A filing whose risk section never hits a boundary.
	filing := "item 1a. risk factors\n" + strings.Repeat("risk detail text. ", 20_000)
	section := extractor.Section(filing, rules.SectionRiskFactors)
	if len(section) > r.Sections.MaxSectionLength {
		t.Errorf("section length %d exceeds cap %d", len(section), r.Sections.MaxSectionLength)
	}
}

func TestRiskSectionFallback(t *testing.T) {
	extractor := newExtractor()

	// 20-F style text without item 1a numbering.
	filing := "principal risks\nwe depend on a small number of suppliers. " +
		strings.Repeat("detail. ", 40) + "\nitem 5. operating review\n"
	section := extractor.RiskSection(filing)
	if !strings.Contains(section, "small number of suppliers") {
		t.Error("fallback risk section missing body")
	}
	if strings.Contains(section, "operating review") {
		t.Error("fallback risk section ran past the next item heading")
	}
}
