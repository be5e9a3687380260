package question

import (
	"context"
	"strings"
)

// composeAction builds a prescriptive answer: ACTION (steps) → WHY (brief
// rationale) → WHAT (current state) → EVIDENCE. Confidence reuses the top
// recommendation's own confidence.
func (r *Router) composeAction(ctx context.Context, ans *Answer, f *facts) error {
	recs := r.analyzer.AnalyzeFeatureAdoption(f.customer, f.features)

	if len(recs) == 0 {
		ans.addSection("ACTION",
			bullet("No specific actions needed - customer shows healthy adoption"))
		ans.addSection("WHY",
			"Customer adoption patterns are within expected range")
		ans.addSection("WHAT",
			bullet("Adopted features: %d", len(f.adopted)))
		ans.addSection("EVIDENCE",
			bullet("adopted_features_count = %d", len(f.adopted)))
		ans.Confidence = 0.6
		return nil
	}

	top := recs[0]
	if _, err := r.requireFeature(ctx, top.FeatureID); err != nil {
		return err
	}

	var steps []string
	for i, step := range strings.Split(top.SuggestedAction, ". ") {
		if i == 3 {
			break
		}
		step = strings.TrimSpace(step)
		if step != "" {
			steps = append(steps, bullet("%s", step))
		}
	}
	ans.addSection("ACTION", steps...)

	ans.addSection("WHY", "Because "+top.Reason)

	usage := f.customer.Usage(top.FeatureID)
	switch {
	case usage == nil:
		ans.addSection("WHAT", bullet("Feature not adopted"))
		ans.addSection("EVIDENCE", bullet("%s_adopted = false", top.FeatureID))
	case usage.TotalActions == 0:
		ans.addSection("WHAT", bullet("Feature never used (0 actions)"))
		ans.addSection("EVIDENCE",
			bullet("%s_actions = %d", top.FeatureID, usage.TotalActions),
			bullet("%s_frequency = %.1f%%", top.FeatureID, usage.UsageFrequency*100))
	default:
		ans.addSection("WHAT", bullet("Feature underutilized (%.1f%% frequency)", usage.UsageFrequency*100))
		ans.addSection("EVIDENCE",
			bullet("%s_actions = %d", top.FeatureID, usage.TotalActions),
			bullet("%s_frequency = %.1f%%", top.FeatureID, usage.UsageFrequency*100))
	}

	ans.Confidence = top.Confidence
	return nil
}
