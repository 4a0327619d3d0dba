package rules

// Commodity names a commodity and the specific phrases that indicate the
// business depends on it.
type Commodity struct {
	Name    string
	Phrases []string
}

// OutsideForcesRules drives the outside-forces penalty check: commodity
// price dependency, extractive-industry operations, operations in risky
// regions, and heavy regulatory exposure.
type OutsideForcesRules struct {
	// Commodities keyed by group (metals, energy).
	Commodities map[string][]Commodity
	// Industries keyed by industry name, each a list of operating phrases.
	Industries map[string][]string
	// RegulatoryKeywords each count as one significant risk when present.
	RegulatoryKeywords []string

	// Materiality words required near a commodity or industry phrase for
	// it to count as a critical dependency.
	CommodityMateriality []string
	IndustryMateriality  []string

	// Country matches look for operations words nearby, then grade by
	// materiality words.
	OperationsWords    []string
	CountryMateriality []string

	ContextWindow        int
	CountryContextWindow int
}

func defaultOutsideForcesRules() OutsideForcesRules {
	materiality := []string{
		"primary", "significant", "material", "substantial",
		"major", "critical", "core business", "main operations",
	}

	return OutsideForcesRules{
		Commodities: map[string][]Commodity{
			"metals": {
				{Name: "copper", Phrases: []string{"copper price", "copper production", "copper mining"}},
				{Name: "gold", Phrases: []string{"gold price", "gold production", "gold mining"}},
				{Name: "silver", Phrases: []string{"silver price", "silver production", "silver mining"}},
				{Name: "iron ore", Phrases: []string{"iron ore"}},
				{Name: "aluminum", Phrases: []string{"aluminum price", "aluminum production"}},
				{Name: "nickel", Phrases: []string{"nickel price", "nickel production"}},
				{Name: "zinc", Phrases: []string{"zinc price", "zinc production"}},
				{Name: "platinum", Phrases: []string{"platinum price", "platinum production"}},
				{Name: "palladium", Phrases: []string{"palladium price", "palladium production"}},
				{Name: "lithium", Phrases: []string{"lithium price", "lithium production"}},
				{Name: "uranium", Phrases: []string{"uranium price", "uranium production"}},
			},
			"energy": {
				{Name: "crude oil", Phrases: []string{"oil price", "oil production", "oil exploration"}},
				{Name: "natural gas", Phrases: []string{"gas price", "gas production", "gas exploration"}},
				{Name: "coal", Phrases: []string{"coal price", "coal production", "coal mining"}},
				{Name: "petroleum", Phrases: []string{"petroleum price", "petroleum production"}},
				{Name: "oil and gas", Phrases: []string{"oil and gas production", "oil and gas exploration"}},
			},
		},
		Industries: map[string][]string{
			"mining": {
				"mining operations", "mineral reserves", "ore deposits",
				"mining production", "mineral exploration",
			},
			"oil_gas": {
				"oil production", "gas production", "oil and gas operations",
				"drilling operations", "exploration and production",
			},
		},
		RegulatoryKeywords: []string{
			"regulatory approval", "regulatory compliance", "government regulation",
			"regulatory requirements", "regulatory framework", "regulatory oversight",
		},

		CommodityMateriality: append(append([]string{}, materiality...),
			"dependent on", "relies on", "key commodity"),
		IndustryMateriality: materiality,

		OperationsWords: []string{
			"operations", "facilities", "manufacturing", "production",
			"subsidiary", "business", "revenue", "sales",
		},
		CountryMateriality: []string{
			"primary", "significant", "material", "substantial",
			"major", "critical", "main", "key market",
		},

		ContextWindow:        100,
		CountryContextWindow: 150,
	}
}
