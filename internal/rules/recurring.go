package rules

import "regexp"

// Recurring revenue model types.
const (
	RevenueSubscription = "subscription"
	RevenueConsumption  = "consumption_based"
	RevenueTransaction  = "transactional"
)

// RecurringRules drives recurring-revenue detection: explicit percentage
// disclosures first, then subscription line items in the financial
// statements, then business-model keyword evidence.
type RecurringRules struct {
	// Explicit percentage disclosure patterns over lowercased text. The
	// first captured digit group is the percentage; values outside
	// MinPercent..MaxPercent are dropped, duplicates collapse by value.
	Explicit   []*regexp.Regexp
	MinPercent float64
	MaxPercent float64
	// ContextWindow and ContextLength bound the stored evidence.
	ContextWindow int
	ContextLength int

	// StatementAnchors locate income-statement and revenue-disaggregation
	// sections; a window from AnchorBefore ahead of the anchor to
	// AnchorAfter past it is searched.
	StatementAnchors []*regexp.Regexp
	AnchorBefore     int
	AnchorAfter      int

	// SubscriptionLines match subscription revenue line items carrying a
	// percentage; ServiceLines match non-recurring service lines.
	SubscriptionLines []*regexp.Regexp
	ServiceLines      []*regexp.Regexp

	// Business-model keyword tiers for the no-percentage fallback.
	StrongKeywords   []string
	ModerateKeywords []string
	WeakKeywords     []string
	// StrongKeywordFloor is the strong-keyword count that supports a
	// business-summary score when no filing is available.
	StrongKeywordFloor int

	// Model indicators.
	SubscriptionIndicators []string
	DeferredIndicators     []string
	ConsumptionIndicators  []string
	// ConsumptionFloor is the indicator count that flags a
	// consumption-based model.
	ConsumptionFloor int
}

func defaultRecurringRules() RecurringRules {
	return RecurringRules{
		Explicit: []*regexp.Regexp{
			// Gaps directly before the capture are lazy so they cannot
			// swallow the leading digits of the percentage.
			regexp.MustCompile(`(\d{1,3}(?:\.\d{1,2})?)\s*%[^.]{0,100}(?:of|from)[^.]{0,50}(?:revenue|sales)[^.]{0,100}(?:recurring|subscription|maintenance|service|contract)`),
			regexp.MustCompile(`(?:recurring|subscription|maintenance|service)[^.]{0,100}(?:revenue|sales)[^.]{0,100}(?:represented|accounted for|comprised)[^.]{0,50}?(\d{1,3}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(?:recurring|subscription|maintenance|service)[^.]{0,100}(?:revenue|sales)[^.]{0,100}?(\d{1,3}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(?:arr|mrr|annual recurring revenue|monthly recurring revenue)[^.]{0,100}?(\d{1,3}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(\d{1,3}(?:\.\d{1,2})?)\s*%[^.]{0,100}(?:subscription|contract|recurring)`),
			regexp.MustCompile(`(?:approximately|about|roughly)?\s*(\d{1,3}(?:\.\d{1,2})?)\s*%[^.]{0,100}(?:recurring|subscription|maintenance)`),
		},
		MinPercent:    1,
		MaxPercent:    100,
		ContextWindow: 300,
		ContextLength: 400,

		StatementAnchors: []*regexp.Regexp{
			regexp.MustCompile(`consolidated\s+statements?\s+of\s+(?:operations|income)`),
			regexp.MustCompile(`consolidated\s+statements?\s+of\s+(?:comprehensive\s+)?income`),
			regexp.MustCompile(`statements?\s+of\s+operations`),
			regexp.MustCompile(`income\s+statements?`),
			regexp.MustCompile(`revenue\s+breakdown`),
			regexp.MustCompile(`disaggregation\s+of\s+revenue`),
			regexp.MustCompile(`revenues?\s*:`),
			regexp.MustCompile(`total\s+revenues?`),
		},
		AnchorBefore: 1000,
		AnchorAfter:  20_000,

		SubscriptionLines: []*regexp.Regexp{
			regexp.MustCompile(`(?i)subscription\s+and\s+support[^\n]*?(\d{1,3}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(?i)subscription\s+revenue[^\n]*?(\d{1,3}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(?i)software\s+subscription[^\n]*?(\d{1,3}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(?i)recurring\s+revenue[^\n]*?(\d{1,3}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(?i)license\s+and\s+maintenance[^\n]*?(\d{1,3}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(?i)maintenance\s+and\s+support[^\n]*?(\d{1,3}(?:\.\d{1,2})?)\s*%`),
		},
		ServiceLines: []*regexp.Regexp{
			regexp.MustCompile(`(?i)professional\s+services[^\n]*?(\d{1,3}(?:\.\d{1,2})?)\s*%`),
			regexp.MustCompile(`(?i)consulting\s+services[^\n]*?(\d{1,3}(?:\.\d{1,2})?)\s*%`),
		},

		StrongKeywords: []string{
			"subscription", "recurring revenue", "annual recurring revenue", "monthly recurring revenue",
			"arr", "mrr", "saas", "software as a service", "subscription-based", "recurring billing",
			"subscription model", "recurring subscription", "subscription fees", "recurring fees",
		},
		ModerateKeywords: []string{
			"long-term contract", "multi-year contract", "maintenance contract", "service contract",
			"renewal rate", "retention rate", "contract renewal", "recurring maintenance",
			"support contract", "license fees", "recurring license", "membership fees",
		},
		WeakKeywords: []string{
			"repeat customer", "customer loyalty", "repeat business", "customer retention",
			"long-term relationship", "ongoing relationship", "repeat purchase",
		},
		StrongKeywordFloor: 3,

		SubscriptionIndicators: []string{
			"subscription revenue", "subscription fees", "subscription model",
			"recurring revenue", "annual recurring revenue", "monthly recurring revenue",
			"saas", "software as a service", "subscription-based",
		},
		DeferredIndicators: []string{
			"deferred revenue", "unearned revenue", "contract liabilities",
			"advance payments", "prepaid subscriptions",
		},
		ConsumptionIndicators: []string{
			"usage-based", "consumption-based", "pay-as-you-go", "pay-per-use",
			"variable pricing", "usage pricing", "metered billing", "consumption pricing",
			"transaction-based", "volume-based pricing", "elastic pricing",
		},
		ConsumptionFloor: 2,
	}
}

// AcquisitionKeywords flag an acquisition-driven growth strategy; three or
// more hits in a filing boost the acquisition spend ratio.
var AcquisitionKeywords = []string{
	"growth through acquisition",
	"acquisition strategy",
	"acquisition program",
	"acquisition pipeline",
	"acquisition targets",
	"acquisition opportunities",
	"acquisition growth",
	"acquisition-driven",
	"acquisition-based",
}
