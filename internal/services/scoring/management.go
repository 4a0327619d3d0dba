package scoring

import (
	"fmt"

	"github.com/ternarybob/gauntlet/internal/models"
)

// SoulInTheGame requires human judgement of leadership quality.
func (s *Scorer) SoulInTheGame() Score {
	return manual("Requires manual evaluation of CEO tenure, founder status, and leadership")
}

// InsideOwnership scores 0-3 from the insider ownership percentage,
// with a bonus point when the dollar stake is meaningful. Missing data
// gets the neutral 1.
func (s *Scorer) InsideOwnership(p *models.Profile) Score {
	t := s.thresholds()
	if p == nil || p.InsiderOwnPct == 0 || p.MarketCap == 0 {
		return scored(1, "Ownership data missing, using neutral score")
	}

	pct := p.InsiderOwnPct
	value := pct / 100 * p.MarketCap

	points := 0.0
	switch {
	case pct > t.OwnershipHighPercent:
		points = 2
	case pct >= t.OwnershipPresentPercent:
		points = 1
	}

	reasoning := fmt.Sprintf("%.1f%% insider ownership", pct)
	if value > t.OwnershipBonusValue {
		points++
		reasoning += fmt.Sprintf(", $%.0fM value", value/1e6)
	}
	return scored(points, reasoning)
}

// EmployeeSentiment requires manual verification of employer review
// ratings; the provider's governance risk metrics are surfaced as a
// starting point.
func (s *Scorer) EmployeeSentiment(p *models.Profile) Score {
	if p == nil {
		return manual("Requires manual employer review verification (no governance risk metrics available)")
	}
	return manual(fmt.Sprintf(
		"Requires manual employer review verification (risk metrics: board=%.0f, comp=%.0f, overall=%.0f)",
		p.BoardRisk, p.CompensationRisk, p.OverallRisk))
}

// MissionStatement pulls the mission from the profile for the report;
// the metric itself stays manual.
func (s *Scorer) MissionStatement(p *models.Profile) string {
	if p == nil {
		return ""
	}
	if p.MissionStatement != "" {
		return p.MissionStatement
	}
	return p.Description
}
