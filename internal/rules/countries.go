package rules

// Country risk levels.
const (
	CountryRiskHigh   = "high"
	CountryRiskMedium = "medium"
	CountryRiskLow    = "low"
)

// CountryRules classifies headquarters and operating countries by
// political and economic risk. Lookups are lowercase.
type CountryRules struct {
	HighRisk   map[string]bool
	MediumRisk map[string]bool
}

func defaultCountryRules() CountryRules {
	return CountryRules{
		HighRisk: toSet([]string{
			"venezuela", "iran", "iraq", "libya", "nigeria", "north korea",
			"democratic republic of congo", "zimbabwe", "syria", "yemen",
			"afghanistan", "myanmar", "cuba", "sudan", "south sudan", "somalia",
		}),
		MediumRisk: toSet([]string{
			"brazil", "russia", "india", "china", "mexico", "indonesia",
			"turkey", "south africa", "argentina", "colombia", "thailand",
			"vietnam", "philippines", "malaysia", "egypt", "pakistan",
			"bangladesh", "ukraine", "belarus", "kazakhstan",
		}),
	}
}

// RiskLevel returns the risk classification for a lowercase country name.
func (c *CountryRules) RiskLevel(country string) string {
	switch {
	case c.HighRisk[country]:
		return CountryRiskHigh
	case c.MediumRisk[country]:
		return CountryRiskMedium
	default:
		return CountryRiskLow
	}
}
