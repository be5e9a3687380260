package question

import (
	"strings"

	"github.com/FairForge/adoptly/internal/intelligence"
)

func riskLabel(level intelligence.RiskLevel) string {
	return strings.ToUpper(string(level))
}

// composeWhat builds a factual answer: WHAT (facts) → WHY (brief, only when
// the facts warrant interpretation) → EVIDENCE
func (r *Router) composeWhat(ans *Answer, f *facts) error {
	switch ans.Domain {
	case IntentChurnRisk:
		assessment := r.analyzer.AssessChurnRisk(f.customer, f.features)

		ans.addSection("WHAT",
			bullet("Churn risk level: %s", riskLabel(assessment.RiskLevel)),
			bullet("Risk score: %.1f%%", assessment.RiskScore*100),
			bullet("Risk signals: %d", len(assessment.Signals)))

		if assessment.RiskLevel == intelligence.RiskHigh {
			ans.addSection("WHY", "Multiple risk indicators present")
		}

		evidence := make([]string, 0, 2)
		for i, signal := range assessment.Signals {
			if i == 2 {
				break
			}
			evidence = append(evidence, bullet("%s", signal))
		}
		ans.addSection("EVIDENCE", evidence...)

		ans.Confidence = 0.85

	case IntentAdoption, IntentRecommendations, IntentOnboarding:
		ans.addSection("WHAT",
			bullet("Total adopted features: %d", len(f.adopted)),
			bullet("Active features: %d", len(f.active)),
			bullet("Core features adopted: %d/%d", f.coreAdopted, f.coreTotal))

		if float64(f.coreAdopted) < float64(f.coreTotal)*0.5 {
			ans.addSection("WHY", "Low core adoption indicates adoption gap")
		}

		ans.addSection("EVIDENCE",
			bullet("adopted_features_count = %d", len(f.adopted)),
			bullet("core_adoption_rate = %d/%d", f.coreAdopted, f.coreTotal))

		ans.Confidence = 0.8

	case IntentUsageTrends, IntentUsageData:
		ans.addSection("WHAT",
			bullet("Features used in last 30 days: %d", f.recent30),
			bullet("Total active features: %d", len(f.active)))

		ans.addSection("EVIDENCE",
			bullet("recent_30d_usage_count = %d", f.recent30))

		ans.Confidence = 0.75

	default:
		assessment := r.analyzer.AssessChurnRisk(f.customer, f.features)

		ans.addSection("WHAT",
			bullet("Plan: %s | MRR: $%.0f", f.customer.PlanTier, f.customer.MRR),
			bullet("Churn risk: %s", riskLabel(assessment.RiskLevel)),
			bullet("Core adoption: %d/%d", f.coreAdopted, f.coreTotal))

		ans.addSection("EVIDENCE",
			bullet("mrr = $%.0f", f.customer.MRR),
			bullet("churn_risk_score = %.1f%%", assessment.RiskScore*100))

		ans.Confidence = 0.7
	}

	return nil
}
