// Package rules holds the compiled pattern banks, keyword tables, and
// numeric thresholds that drive filing analysis and checklist scoring.
// A Rules value is immutable after construction; services receive it by
// pointer and never mutate it.
package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Segment names as they appear in checklist results.
const (
	SegmentFinancials = "Financials"
	SegmentMoat       = "Moat"
	SegmentPotential  = "Potential"
	SegmentCustomers  = "Customers"
	SegmentSpecific   = "Company-specific factors"
	SegmentManagement = "Management & Culture"
	SegmentStock      = "Stock"
	SegmentPenalties  = "Penalties"
)

// Rules is the full analysis rule set.
type Rules struct {
	SegmentMax map[string]int

	Sections      SectionRules
	Classifier    ClassifierRules
	Concentration ConcentrationRules
	Disruption    DisruptionRules
	OutsideForces OutsideForcesRules
	BinaryEvents  BinaryEventRules
	Antitrust     AntitrustRules
	Countries     CountryRules
	TopDog        TopDogRules
	Recurring     RecurringRules
	Thresholds    Thresholds
}

// Default returns the built-in rule set.
func Default() *Rules {
	return &Rules{
		SegmentMax: map[string]int{
			SegmentFinancials: 14,
			SegmentMoat:       20,
			SegmentPotential:  18,
			SegmentCustomers:  10,
			SegmentSpecific:   10,
			SegmentManagement: 14,
			SegmentStock:      11,
			SegmentPenalties:  0,
		},
		Sections:      defaultSectionRules(),
		Classifier:    defaultClassifierRules(),
		Concentration: defaultConcentrationRules(),
		Disruption:    defaultDisruptionRules(),
		OutsideForces: defaultOutsideForcesRules(),
		BinaryEvents:  defaultBinaryEventRules(),
		Antitrust:     defaultAntitrustRules(),
		Countries:     defaultCountryRules(),
		TopDog:        defaultTopDogRules(),
		Recurring:     defaultRecurringRules(),
		Thresholds:    defaultThresholds(),
	}
}

// Overrides is the YAML-loadable subset of the rule set. Pattern banks are
// compiled into the binary and cannot be overridden; keyword tables, country
// lists, and numeric thresholds can.
type Overrides struct {
	SegmentMax          map[string]int      `yaml:"segment_max"`
	HighRiskCountries   []string            `yaml:"high_risk_countries"`
	MediumRiskCountries []string            `yaml:"medium_risk_countries"`
	AntitrustTickers    map[string][]string `yaml:"antitrust_tickers"`
	Thresholds          *Thresholds         `yaml:"thresholds"`
}

// LoadOverrides reads a YAML overrides file. A missing path returns an
// empty overrides value rather than an error.
func LoadOverrides(path string) (*Overrides, error) {
	if path == "" {
		return &Overrides{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Overrides{}, nil
		}
		return nil, fmt.Errorf("failed to read rules overrides %s: %w", path, err)
	}
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse rules overrides %s: %w", path, err)
	}
	return &o, nil
}

// Apply overlays non-empty override values onto the rule set.
func (r *Rules) Apply(o *Overrides) {
	if o == nil {
		return
	}
	for segment, max := range o.SegmentMax {
		r.SegmentMax[segment] = max
	}
	if len(o.HighRiskCountries) > 0 {
		r.Countries.HighRisk = toSet(o.HighRiskCountries)
	}
	if len(o.MediumRiskCountries) > 0 {
		r.Countries.MediumRisk = toSet(o.MediumRiskCountries)
	}
	for ticker, keywords := range o.AntitrustTickers {
		r.Antitrust.TickerKeywords[ticker] = keywords
	}
	if o.Thresholds != nil {
		r.Thresholds = *o.Thresholds
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
