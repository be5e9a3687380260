package intelligence

import (
	"fmt"

	"github.com/FairForge/adoptly/internal/customer"
)

// BuildOnboardingPlaybook derives an ordered step list from recommendations.
// With no recommendations the playbook is a single default exploration step;
// otherwise it covers setup of the top-ranked feature, exploration of the
// runner-up when present, and always closes with a success review. Step
// numbers are contiguous starting at 1.
func (a *Analyzer) BuildOnboardingPlaybook(c *customer.Customer, recs []Recommendation) []OnboardingStep {
	if len(recs) == 0 {
		return []OnboardingStep{{
			StepNumber:           1,
			Title:                "Explore Core Dashboard",
			Description:          "Get familiar with the main analytics dashboard and key metrics",
			FeatureID:            "feat_core_dashboard",
			EstimatedTimeMinutes: 15,
		}}
	}

	var playbook []OnboardingStep

	top := recs[0]
	playbook = append(playbook, OnboardingStep{
		StepNumber:           1,
		Title:                fmt.Sprintf("Set up %s", top.FeatureName),
		Description:          top.SuggestedAction,
		FeatureID:            top.FeatureID,
		EstimatedTimeMinutes: 30,
	})

	if len(recs) > 1 {
		second := recs[1]
		playbook = append(playbook, OnboardingStep{
			StepNumber:           2,
			Title:                fmt.Sprintf("Explore %s", second.FeatureName),
			Description:          second.SuggestedAction,
			FeatureID:            second.FeatureID,
			EstimatedTimeMinutes: 20,
		})
	}

	playbook = append(playbook, OnboardingStep{
		StepNumber: len(playbook) + 1,
		Title:      "Schedule Success Review",
		Description: fmt.Sprintf(
			"Book a 30-minute call with %s to review progress and discuss next steps",
			c.AccountManager),
		EstimatedTimeMinutes: 30,
	})

	return playbook
}
