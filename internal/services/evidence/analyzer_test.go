package evidence

import (
	"strings"
	"testing"

	"github.com/ternarybob/gauntlet/internal/common"
	"github.com/ternarybob/gauntlet/internal/rules"
)

func newAnalyzer() *Analyzer {
	r := rules.Default()
	return NewAnalyzer(r, NewRegexClassifier(r), common.GetLogger())
}

func TestConcentrationTargetedMultiYear(t *testing.T) {
	a := newAnalyzer()

	text := "our largest customer accounted for 23%, 25% and 22% of our net revenue in 2024, 2023 and 2022"
	findings := a.Concentration("tsm", text)

	if len(findings) == 0 {
		t.Fatal("expected a finding from the multi-year disclosure")
	}
	top := findings[0]
	if top.Value != 25 {
		t.Errorf("Value = %v, want 25 (largest year)", top.Value)
	}
	if top.Confidence != 0.95 {
		t.Errorf("Confidence = %v, want 0.95", top.Confidence)
	}
	if top.Type != rules.CustomerSingle {
		t.Errorf("Type = %q, want single", top.Type)
	}
	if !top.IsActual {
		t.Error("stated multi-year disclosure should be a statement of fact")
	}
}

func TestConcentrationHypotheticalNotActual(t *testing.T) {
	a := newAnalyzer()

	text := "if our largest customer were lost, up to 80% of revenue could be at risk"
	findings := a.Concentration("acme", text)

	if len(findings) == 0 {
		t.Fatal("expected the hypothetical to still surface as a finding")
	}
	if findings[0].IsActual {
		t.Error("risk-factor hypothetical must not be a statement of fact")
	}
}

func TestConcentrationClassifierLeadsWithNLP(t *testing.T) {
	r := rules.Default()
	a := NewAnalyzer(r, NewProseClassifier(r, common.GetLogger()), common.GetLogger())

	text := "our largest customer accounted for 23%, 25% and 22% of our net revenue in 2024, 2023 and 2022"
	findings := a.Concentration("tsm", text)

	if len(findings) == 0 {
		t.Fatal("expected a finding")
	}
	// The sentence pass answers first, ahead of the targeted bank.
	if findings[0].Confidence != r.Classifier.ActualConfidence {
		t.Errorf("Confidence = %v, want %v from the sentence classifier", findings[0].Confidence, r.Classifier.ActualConfidence)
	}
}

func TestConcentrationBasicFallback(t *testing.T) {
	a := newAnalyzer()

	// The broad bank rejects this on the nearby distribution-channel
	// context and the classifier on the industry term; the basic
	// co-occurrence pass still surfaces the disclosure.
	text := "we sell through distribution channels worldwide. our largest industry client accounted for 40% of consolidated revenue"
	findings := a.Concentration("acme", text)

	if len(findings) == 0 {
		t.Fatal("expected a finding from the basic fallback")
	}
	top := findings[0]
	if top.Value != 40 {
		t.Errorf("Value = %v, want 40", top.Value)
	}
	if top.Confidence != a.rules.Concentration.FallbackConfidence {
		t.Errorf("Confidence = %v, want %v", top.Confidence, a.rules.Concentration.FallbackConfidence)
	}
	if top.Type != rules.CustomerSingle {
		t.Errorf("Type = %q, want single", top.Type)
	}
}

func TestConcentrationBroadSingleCustomer(t *testing.T) {
	a := newAnalyzer()

	text := "one customer accounted for approximately 62% of consolidated receivables and related revenue"
	findings := a.Concentration("acme", text)

	if len(findings) == 0 {
		t.Fatal("expected a finding")
	}
	if findings[0].Type != rules.CustomerSingle {
		t.Errorf("Type = %q, want single", findings[0].Type)
	}
	if findings[0].Value != 62 {
		t.Errorf("Value = %v, want 62", findings[0].Value)
	}
}

func TestConcentrationGeographicExcluded(t *testing.T) {
	a := newAnalyzer()

	text := "international revenue represented 45% of net sales, reflecting growth across europe and asia"
	if findings := a.Concentration("acme", text); len(findings) != 0 {
		t.Errorf("geographic breakdown produced %d findings, want 0: %+v", len(findings), findings)
	}
}

func TestConcentrationEquityExcluded(t *testing.T) {
	a := newAnalyzer()

	text := "stock-based compensation awards granted during the year represented 12% of total revenue related expense"
	if findings := a.Concentration("acme", text); len(findings) != 0 {
		t.Errorf("equity context produced %d findings, want 0", len(findings))
	}
}

func TestDisruptionRisksGraded(t *testing.T) {
	a := newAnalyzer()

	risk := "our legacy systems may become uncompetitive and we may be unable to respond, " +
		"which could materially harm our results. "
	assessment := a.DisruptionRisks("we depend on " + risk)

	// "legacy systems" + "unable to" context + "materially" materiality,
	// single match, no critical words.
	if len(assessment.Significant) != 1 {
		t.Fatalf("significant = %d, want 1 (%+v)", len(assessment.Significant), assessment)
	}
	if len(assessment.Critical) != 0 {
		t.Errorf("critical = %d, want 0", len(assessment.Critical))
	}
}

func TestDisruptionNoRisks(t *testing.T) {
	a := newAnalyzer()

	assessment := a.DisruptionRisks("we operate a chain of regional bakeries with steady demand")
	if !assessment.Empty() {
		t.Errorf("expected no risks, got %+v", assessment)
	}
}

func TestOutsideForcesCommodity(t *testing.T) {
	a := newAnalyzer()

	text := "our results are dependent on the copper price, which is the primary driver of revenue"
	assessment := a.OutsideForces(text)
	if len(assessment.Critical) == 0 {
		t.Fatal("expected critical commodity dependency")
	}
	if !strings.Contains(assessment.Critical[0], "copper") {
		t.Errorf("unexpected description: %s", assessment.Critical[0])
	}
}

func TestOutsideForcesHighRiskRegion(t *testing.T) {
	a := newAnalyzer()

	// Operations words without materiality words: significant, not critical.
	text := "we operate manufacturing facilities in nigeria serving regional demand"
	assessment := a.OutsideForces(text)
	if len(assessment.Significant) == 0 {
		t.Fatal("expected significant regional risk")
	}
	if len(assessment.Critical) != 0 {
		t.Errorf("critical = %d, want 0", len(assessment.Critical))
	}
}

func TestBinaryEventsPatentCliff(t *testing.T) {
	a := newAnalyzer()

	text := "risk factors\nthe patent expiration of our lead product would have a material adverse effect\nitem 2"
	events := a.BinaryEvents(text)
	if len(events) == 0 {
		t.Fatal("expected a patent-risk binary event")
	}
}

func TestBinaryEventsRequireMateriality(t *testing.T) {
	a := newAnalyzer()

	text := "legal proceedings\nroutine patent litigation arises from time to time in the ordinary course\nitem 4"
	// "patent litigation" matches but no materiality words nearby.
	if events := a.BinaryEvents(text); len(events) != 0 {
		t.Errorf("got %d events, want 0: %v", len(events), events)
	}
}

func TestAntitrustTickerKeywordPath(t *testing.T) {
	a := newAnalyzer()

	filing := "Overview of operations.\n\n" +
		"The DOJ has opened an investigation into our advertising practices and related " +
		"conduct, and we are cooperating with the proceeding while contesting the allegations raised.\n\n" +
		"Other matters follow below."
	context, found := a.AntitrustIssue("GOOGL", filing)
	if !found {
		t.Fatal("expected an antitrust issue for googl")
	}
	if !strings.Contains(context, "doj") {
		t.Errorf("context should surround the keyword, got %q", context)
	}
}

func TestAntitrustTickerAlias(t *testing.T) {
	a := newAnalyzer()

	filing := "Risk overview.\n\n" +
		"The FTC commenced litigation against the company alleging anti-competitive conduct in " +
		"social networking markets, and the complaint seeks structural remedies.\n\n"
	if _, found := a.AntitrustIssue("FB", filing); !found {
		t.Error("fb should resolve to meta keywords")
	}
}

func TestAntitrustBoilerplateSkipped(t *testing.T) {
	a := newAnalyzer()

	filing := "Legal proceedings overview.\n\n" +
		"legal proceedings: the company is subject to various claims. management believes there is " +
		"no material exposure and we are not party to any antitrust matters of consequence.\n\n"
	if _, found := a.AntitrustIssue("ibm", filing); found {
		t.Error("boilerplate disclosure should not flag an issue")
	}
}

func TestAntitrustDirectPhrase(t *testing.T) {
	a := newAnalyzer()

	filing := "The company recorded a charge related to the antitrust settlement reached with " +
		"european regulators during the year."
	if _, found := a.AntitrustIssue("ibm", filing); !found {
		t.Error("direct phrase should flag an issue")
	}
}

func TestTopDogPositiveAndNegativeFraming(t *testing.T) {
	a := newAnalyzer()

	text := "we are the market leader in cloud infrastructure for enterprise customers worldwide, and our " +
		"platform adoption continues to expand across regulated industries in every region we serve. " +
		"new entrants could disrupt the market and threaten our position."
	result := a.TopDog(text)

	if result.Matches[rules.TopDogMarketLeader] == 0 {
		t.Error("expected a market_leader hit")
	}
	if !result.InEmergingIndustry() {
		t.Error("cloud infrastructure should register an emerging industry")
	}
	if result.Industries["cloud_computing"] == 0 {
		t.Error("expected cloud_computing mentions")
	}
	// "disrupt" appears only inside negative framing.
	if result.Matches[rules.TopDogDisruptor] != 0 {
		t.Errorf("disruptor hits = %d, want 0 (negative framing)", result.Matches[rules.TopDogDisruptor])
	}
}

func TestRecurringRevenueExplicit(t *testing.T) {
	a := newAnalyzer()

	mda := "subscription revenue represented 62% of total revenue for the year ended january 31, 2025"
	evidence := a.RecurringRevenue(mda, mda, "")

	if evidence.Source != RevenueSourceExplicit {
		t.Fatalf("Source = %q, want explicit", evidence.Source)
	}
	if evidence.Percent != 62 {
		t.Errorf("Percent = %v, want 62", evidence.Percent)
	}
	if evidence.ModelType != rules.RevenueSubscription {
		t.Errorf("ModelType = %q, want subscription", evidence.ModelType)
	}
}

func TestRecurringRevenueConsumptionModel(t *testing.T) {
	a := newAnalyzer()

	filing := "customers purchase usage-based capacity under consumption-based arrangements with metered billing"
	evidence := a.RecurringRevenue("", filing, "")
	if evidence.ModelType != rules.RevenueConsumption {
		t.Errorf("ModelType = %q, want consumption_based", evidence.ModelType)
	}
}

func TestRecurringRevenueNoFilingFallback(t *testing.T) {
	a := newAnalyzer()

	summary := "The company operates a SaaS platform sold on a subscription model with recurring revenue and subscription fees."
	evidence := a.RecurringRevenue("", "", summary)

	if evidence.Source != RevenueSourceKeywords {
		t.Fatalf("Source = %q, want keywords (%d strong hits)", evidence.Source, evidence.StrongKeywordCount)
	}
	if evidence.StrongKeywordCount < 3 {
		t.Errorf("StrongKeywordCount = %d, want >= 3", evidence.StrongKeywordCount)
	}
}

func TestRecurringRevenueNone(t *testing.T) {
	a := newAnalyzer()

	filing := "we sell industrial fasteners through distributors on purchase orders"
	evidence := a.RecurringRevenue("", filing, "")
	if evidence.Source != RevenueSourceNone {
		t.Errorf("Source = %q, want none", evidence.Source)
	}
	if evidence.Percent != 0 {
		t.Errorf("Percent = %v, want 0", evidence.Percent)
	}
}
