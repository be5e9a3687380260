package intelligence

import (
	"fmt"

	"github.com/FairForge/adoptly/internal/catalog"
	"github.com/FairForge/adoptly/internal/customer"
	"go.uber.org/zap"
)

// AssessChurnRisk scores churn risk from independent additive signals and
// maps the clamped score to a three-tier level with an intervention plan.
func (a *Analyzer) AssessChurnRisk(c *customer.Customer, features []*catalog.Feature) *ChurnRiskAssessment {
	now := a.now()
	adopted := toSet(c.AdoptedFeatures(features, now))
	tenure := c.TenureDays(now)

	var signals []string
	var score float64

	// Signal 1: low core adoption
	var coreTotal, coreAdopted int
	for _, f := range features {
		if f.Category != catalog.CategoryCore {
			continue
		}
		coreTotal++
		if adopted[f.ID] {
			coreAdopted++
		}
	}
	var adoptionRate float64
	if coreTotal > 0 {
		adoptionRate = float64(coreAdopted) / float64(coreTotal)
	}
	if adoptionRate < a.cfg.CoreAdoptionFloor {
		signals = append(signals, fmt.Sprintf(
			"Low core feature adoption (%d/%d core features adopted)", coreAdopted, coreTotal))
		score += a.cfg.WeightLowCoreAdoption
	}

	// Signal 2: declining usage
	var recentUsage, staleFeatures int
	for _, usage := range c.Features {
		if usage == nil || usage.LastUsed == nil {
			continue
		}
		daysSinceLast := int(now.Sub(*usage.LastUsed).Hours() / 24)
		if daysSinceLast <= a.cfg.RecentWindowDays {
			recentUsage++
		} else if daysSinceLast > a.cfg.StaleWindowDays {
			staleFeatures++
		}
	}
	if recentUsage < a.cfg.RecentUsageFloor {
		signals = append(signals, fmt.Sprintf(
			"Low recent activity (%d features used in last %d days)", recentUsage, a.cfg.RecentWindowDays))
		score += a.cfg.WeightLowRecentUsage
	}
	if staleFeatures > a.cfg.StaleFeatureCeiling {
		signals = append(signals, fmt.Sprintf(
			"Multiple features unused for %d+ days (%d features)", a.cfg.StaleWindowDays, staleFeatures))
		score += a.cfg.WeightStaleFeatures
	}

	// Signal 3: plan-value mismatch
	if c.PlanTier.Premium() {
		premiumAdopted := 0
		for _, f := range features {
			if f.IsPremium && adopted[f.ID] {
				premiumAdopted++
			}
		}
		if premiumAdopted == 0 {
			signals = append(signals, fmt.Sprintf(
				"Premium plan (%s) but no premium features adopted", c.PlanTier))
			score += a.cfg.WeightPlanMismatch
		}
	}

	// Signal 4: new customer with low early adoption
	if tenure < a.cfg.NewCustomerDays && adoptionRate < a.cfg.EarlyAdoptionFloor {
		signals = append(signals, fmt.Sprintf(
			"New customer (%d days) with low early adoption", tenure))
		score += a.cfg.WeightNewLowAdoption
	}

	if score > 1.0 {
		score = 1.0
	}

	var level RiskLevel
	var urgency int
	var intervention string
	switch {
	case score >= a.cfg.HighRiskThreshold:
		level = RiskHigh
		urgency = a.cfg.HighRiskUrgencyDays
		intervention = fmt.Sprintf(
			"Immediate intervention required. Schedule executive business review with %s "+
				"within %d days. Focus on core feature adoption and value realization.",
			c.AccountManager, urgency)
	case score >= a.cfg.MediumRiskThreshold:
		level = RiskMedium
		urgency = a.cfg.MediumRiskUrgencyDays
		intervention = "Proactive engagement recommended. Schedule quarterly business review " +
			"and create adoption playbook for top 3 core features. Monitor usage trends weekly."
	default:
		level = RiskLow
		urgency = a.cfg.LowRiskUrgencyDays
		intervention = "Maintain regular check-ins. Continue expansion conversations " +
			"around premium features and advanced use cases."
	}

	if len(signals) == 0 {
		signals = append(signals, NoRiskSignals)
	}

	a.logger.Debug("assessed churn risk",
		zap.String("customer_id", c.ID),
		zap.String("risk_level", string(level)),
		zap.Float64("risk_score", score))

	return &ChurnRiskAssessment{
		RiskLevel:               level,
		RiskScore:               score,
		Signals:                 signals,
		RecommendedIntervention: intervention,
		UrgencyDays:             urgency,
	}
}
