package question

import (
	"context"
	"fmt"

	"github.com/FairForge/adoptly/internal/intelligence"
	"github.com/FairForge/adoptly/internal/memory"
)

// composeWhy builds an explanatory answer: WHY (causal) → WHAT (factual) →
// ACTION (when warranted) → EVIDENCE
func (r *Router) composeWhy(ctx context.Context, ans *Answer, f *facts) error {
	switch ans.Domain {
	case IntentChurnRisk:
		return r.composeWhyChurn(ans, f)
	case IntentAdoption, IntentRecommendations, IntentOnboarding:
		return r.composeWhyAdoption(ctx, ans, f)
	default:
		return r.composeWhyGeneric(ans, f)
	}
}

func (r *Router) composeWhyChurn(ans *Answer, f *facts) error {
	assessment := r.analyzer.AssessChurnRisk(f.customer, f.features)

	var why string
	switch assessment.RiskLevel {
	case intelligence.RiskHigh:
		why = "Multiple risk signals present, indicating elevated churn probability " +
			"because core features remain unadopted and usage has declined."
	case intelligence.RiskMedium:
		why = "Some risk indicators detected, suggesting potential retention issues " +
			"if adoption patterns don't improve."
	default:
		why = "No significant risk patterns detected, indicating healthy customer " +
			"engagement and product value realization."
	}
	ans.addSection("WHY", why)

	what := fmt.Sprintf("Churn risk: %s (score: %.1f%%) | Signals: %d",
		riskLabel(assessment.RiskLevel), assessment.RiskScore*100, len(assessment.Signals))
	ans.addSection("WHAT", bullet("%s", what))

	if assessment.RiskLevel == intelligence.RiskHigh || assessment.RiskLevel == intelligence.RiskMedium {
		ans.addSection("ACTION", bullet("%s", assessment.RecommendedIntervention))
	}

	evidence := make([]string, 0, 3)
	for i, signal := range assessment.Signals {
		if i == 3 {
			break
		}
		evidence = append(evidence, bullet("%s", signal))
	}
	ans.addSection("EVIDENCE", evidence...)

	if trend := r.memory.RiskTrend(f.customer.ID); trend != memory.TrendUnknown {
		ans.Trend = string(trend)
	}

	ans.Confidence = assessment.RiskScore
	if ans.Confidence == 0 {
		ans.Confidence = 0.7
	}
	return nil
}

func (r *Router) composeWhyAdoption(ctx context.Context, ans *Answer, f *facts) error {
	recs := r.analyzer.AnalyzeFeatureAdoption(f.customer, f.features)

	var why string
	if f.coreAdoptionRate() < 0.5 {
		why = "Low core feature adoption suggests delayed time-to-value, indicating " +
			"the customer hasn't realized expected product benefits."
	} else {
		why = "Healthy adoption patterns indicate successful onboarding, suggesting " +
			"the customer is deriving value from core features."
	}
	ans.addSection("WHY", why)

	ans.addSection("WHAT",
		bullet("Core features adopted: %d/%d", f.coreAdopted, f.coreTotal),
		bullet("Total adopted features: %d", len(f.adopted)))

	if len(recs) > 0 {
		// Confirm the top recommendation's feature still resolves before
		// prescribing action on it
		if _, err := r.requireFeature(ctx, recs[0].FeatureID); err != nil {
			return err
		}
		ans.addSection("ACTION", bullet("%s", recs[0].SuggestedAction))
	}

	ans.addSection("EVIDENCE",
		bullet("core_adoption_rate = %.1f%%", f.coreAdoptionRate()*100),
		bullet("total_adopted_features = %d", len(f.adopted)))

	if len(recs) > 0 {
		ans.Confidence = 0.75
	} else {
		ans.Confidence = 0.6
	}
	return nil
}

func (r *Router) composeWhyGeneric(ans *Answer, f *facts) error {
	assessment := r.analyzer.AssessChurnRisk(f.customer, f.features)

	ans.addSection("WHY",
		"Customer engagement patterns suggest moderate product adoption, "+
			"indicating room for improvement in feature utilization.")

	ans.addSection("WHAT",
		bullet("Adopted features: %d", len(f.adopted)),
		bullet("Churn risk: %s", riskLabel(assessment.RiskLevel)))

	ans.addSection("EVIDENCE",
		bullet("adopted_features_count = %d", len(f.adopted)),
		bullet("churn_risk_score = %.1f%%", assessment.RiskScore*100))

	ans.Confidence = 0.65
	return nil
}
