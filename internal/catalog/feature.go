package catalog

// Category groups features for analysis
type Category string

const (
	CategoryCore          Category = "core"
	CategoryCollaboration Category = "collaboration"
	CategoryAnalytics     Category = "analytics"
	CategoryIntegration   Category = "integration"
	CategoryAdmin         Category = "admin"
	CategoryPremium       Category = "premium"
)

// Valid reports whether the category is a known value
func (c Category) Valid() bool {
	switch c {
	case CategoryCore, CategoryCollaboration, CategoryAnalytics,
		CategoryIntegration, CategoryAdmin, CategoryPremium:
		return true
	}
	return false
}

// Feature is a catalog entry describing a product capability.
// Features are created once at catalog-load time and never mutated.
type Feature struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	IsPremium   bool     `json:"is_premium"`

	// AdoptionThresholdDays is the minimum tenure (days since first use)
	// before the feature can count as adopted.
	AdoptionThresholdDays int `json:"adoption_threshold_days"`

	// UsageFrequencyTarget is the target ratio of active days (0-1)
	// a customer must meet for adoption.
	UsageFrequencyTarget float64 `json:"usage_frequency_target"`
}
