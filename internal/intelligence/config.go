package intelligence

// Config holds the engine's scoring and threshold constants. The defaults
// mirror the calibration the product team settled on; they are exposed as
// configuration rather than rederived.
type Config struct {
	// Adoption recommendation confidences per priority
	ConfidenceNeverUsed    float64 `yaml:"confidence_never_used"`
	ConfidenceUnderAdopted float64 `yaml:"confidence_under_adopted"`
	ConfidencePremium      float64 `yaml:"confidence_premium"`

	// FoundationGate is the number of adopted features required before
	// premium expansion recommendations fire
	FoundationGate int `yaml:"foundation_gate"`

	// PremiumImpactRate estimates expansion revenue as a share of MRR
	PremiumImpactRate float64 `yaml:"premium_impact_rate"`

	// MaxRecommendations caps the recommendation list
	MaxRecommendations int `yaml:"max_recommendations"`

	// ReengageAfterDays is the staleness bar for re-engagement outreach
	ReengageAfterDays int `yaml:"reengage_after_days"`

	// Churn signal weights
	WeightLowCoreAdoption  float64 `yaml:"weight_low_core_adoption"`
	WeightLowRecentUsage   float64 `yaml:"weight_low_recent_usage"`
	WeightStaleFeatures    float64 `yaml:"weight_stale_features"`
	WeightPlanMismatch     float64 `yaml:"weight_plan_mismatch"`
	WeightNewLowAdoption   float64 `yaml:"weight_new_low_adoption"`
	CoreAdoptionFloor      float64 `yaml:"core_adoption_floor"`
	RecentWindowDays       int     `yaml:"recent_window_days"`
	RecentUsageFloor       int     `yaml:"recent_usage_floor"`
	StaleWindowDays        int     `yaml:"stale_window_days"`
	StaleFeatureCeiling    int     `yaml:"stale_feature_ceiling"`
	NewCustomerDays        int     `yaml:"new_customer_days"`
	EarlyAdoptionFloor     float64 `yaml:"early_adoption_floor"`
	HighRiskThreshold      float64 `yaml:"high_risk_threshold"`
	MediumRiskThreshold    float64 `yaml:"medium_risk_threshold"`
	HighRiskUrgencyDays    int     `yaml:"high_risk_urgency_days"`
	MediumRiskUrgencyDays  int     `yaml:"medium_risk_urgency_days"`
	LowRiskUrgencyDays     int     `yaml:"low_risk_urgency_days"`
}

// DefaultConfig returns the standard engine calibration
func DefaultConfig() Config {
	return Config{
		ConfidenceNeverUsed:    0.85,
		ConfidenceUnderAdopted: 0.65,
		ConfidencePremium:      0.6,
		FoundationGate:         3,
		PremiumImpactRate:      0.15,
		MaxRecommendations:     5,
		ReengageAfterDays:      30,

		WeightLowCoreAdoption: 0.30,
		WeightLowRecentUsage:  0.25,
		WeightStaleFeatures:   0.20,
		WeightPlanMismatch:    0.15,
		WeightNewLowAdoption:  0.10,
		CoreAdoptionFloor:     0.5,
		RecentWindowDays:      30,
		RecentUsageFloor:      2,
		StaleWindowDays:       60,
		StaleFeatureCeiling:   3,
		NewCustomerDays:       90,
		EarlyAdoptionFloor:    0.3,
		HighRiskThreshold:     0.6,
		MediumRiskThreshold:   0.35,
		HighRiskUrgencyDays:   7,
		MediumRiskUrgencyDays: 30,
		LowRiskUrgencyDays:    90,
	}
}
