package catalog

// DefaultFeatures returns the built-in product feature catalog
func DefaultFeatures() []*Feature {
	return []*Feature{
		{
			ID:                    "feat_core_dashboard",
			Name:                  "Core Dashboard",
			Category:              CategoryCore,
			Description:           "Main analytics dashboard with key metrics",
			AdoptionThresholdDays: 7,
			UsageFrequencyTarget:  0.7,
		},
		{
			ID:                    "feat_core_reports",
			Name:                  "Custom Reports",
			Category:              CategoryCore,
			Description:           "Create and export custom reports",
			AdoptionThresholdDays: 14,
			UsageFrequencyTarget:  0.4,
		},
		{
			ID:                    "feat_collab_teams",
			Name:                  "Team Collaboration",
			Category:              CategoryCollaboration,
			Description:           "Share insights and collaborate with team members",
			AdoptionThresholdDays: 21,
			UsageFrequencyTarget:  0.5,
		},
		{
			ID:                    "feat_collab_comments",
			Name:                  "Comments & Annotations",
			Category:              CategoryCollaboration,
			Description:           "Add comments and annotations to reports",
			IsPremium:             true,
			AdoptionThresholdDays: 30,
			UsageFrequencyTarget:  0.3,
		},
		{
			ID:                    "feat_analytics_advanced",
			Name:                  "Advanced Analytics",
			Category:              CategoryAnalytics,
			Description:           "Advanced statistical analysis and forecasting",
			IsPremium:             true,
			AdoptionThresholdDays: 45,
			UsageFrequencyTarget:  0.2,
		},
		{
			ID:                    "feat_analytics_ai",
			Name:                  "AI-Powered Insights",
			Category:              CategoryAnalytics,
			Description:           "Automated insights and anomaly detection",
			IsPremium:             true,
			AdoptionThresholdDays: 60,
			UsageFrequencyTarget:  0.15,
		},
		{
			ID:                    "feat_integration_api",
			Name:                  "API Integration",
			Category:              CategoryIntegration,
			Description:           "REST API for data integration",
			AdoptionThresholdDays: 30,
			UsageFrequencyTarget:  0.3,
		},
		{
			ID:                    "feat_integration_webhook",
			Name:                  "Webhook Integration",
			Category:              CategoryIntegration,
			Description:           "Real-time webhook notifications",
			IsPremium:             true,
			AdoptionThresholdDays: 45,
			UsageFrequencyTarget:  0.25,
		},
		{
			ID:                    "feat_admin_audit",
			Name:                  "Audit Logs",
			Category:              CategoryAdmin,
			Description:           "Comprehensive audit logging",
			IsPremium:             true,
			AdoptionThresholdDays: 30,
			UsageFrequencyTarget:  0.1,
		},
		{
			ID:                    "feat_admin_sso",
			Name:                  "SSO Authentication",
			Category:              CategoryAdmin,
			Description:           "Single Sign-On integration",
			IsPremium:             true,
			AdoptionThresholdDays: 60,
			UsageFrequencyTarget:  0.1,
		},
	}
}

// SeedDefaults loads the built-in catalog into a store
func SeedDefaults(s *MemoryStore) {
	for _, f := range DefaultFeatures() {
		s.Add(f)
	}
}
