package intelligence

import "time"

// RiskLevel classifies churn risk
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Recommendation is a prioritized feature-adoption suggestion with an
// explainable rationale. Priority 1 is highest.
type Recommendation struct {
	FeatureID       string  `json:"feature_id"`
	FeatureName     string  `json:"feature_name"`
	Priority        int     `json:"priority"`
	Reason          string  `json:"reason"`
	SuggestedAction string  `json:"suggested_action"`
	ExpectedImpact  string  `json:"expected_impact"`
	Confidence      float64 `json:"confidence"`
}

// OnboardingStep is one step in a derived onboarding playbook
type OnboardingStep struct {
	StepNumber           int    `json:"step_number"`
	Title                string `json:"title"`
	Description          string `json:"description"`
	FeatureID            string `json:"feature_id,omitempty"`
	EstimatedTimeMinutes int    `json:"estimated_time_minutes"`
}

// NoRiskSignals is the sentinel signal used when no risk condition fired.
// Renderers never see an empty signal list.
const NoRiskSignals = "No significant risk patterns detected"

// ChurnRiskAssessment is an additive risk score with explanatory signals
type ChurnRiskAssessment struct {
	RiskLevel               RiskLevel `json:"risk_level"`
	RiskScore               float64   `json:"risk_score"`
	Signals                 []string  `json:"signals"`
	RecommendedIntervention string    `json:"recommended_intervention"`
	UrgencyDays             int       `json:"urgency_days"`
}

// CustomerIntelligence is the complete analysis output for one customer
type CustomerIntelligence struct {
	ID                      string               `json:"id"`
	CustomerID              string               `json:"customer_id"`
	CustomerName            string               `json:"customer_name"`
	AdoptionRecommendations []Recommendation     `json:"adoption_recommendations"`
	OnboardingPlaybook      []OnboardingStep     `json:"onboarding_playbook"`
	ChurnRisk               *ChurnRiskAssessment `json:"churn_risk"`
	GeneratedAt             time.Time            `json:"generated_at"`
}
