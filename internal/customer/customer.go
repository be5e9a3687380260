package customer

import (
	"sort"
	"time"

	"github.com/FairForge/adoptly/internal/catalog"
)

// PlanTier is the customer's subscription plan
type PlanTier string

const (
	TierBasic        PlanTier = "basic"
	TierProfessional PlanTier = "professional"
	TierEnterprise   PlanTier = "enterprise"
)

// Valid reports whether the tier is a known value
func (t PlanTier) Valid() bool {
	switch t {
	case TierBasic, TierProfessional, TierEnterprise:
		return true
	}
	return false
}

// Premium reports whether the tier includes premium features
func (t PlanTier) Premium() bool {
	return t == TierProfessional || t == TierEnterprise
}

// FeatureUsage holds usage counters for one customer-feature pair.
// A nil FirstUsed means the feature has never been touched.
type FeatureUsage struct {
	FeatureID      string     `json:"feature_id"`
	CustomerID     string     `json:"customer_id"`
	FirstUsed      *time.Time `json:"first_used,omitempty"`
	LastUsed       *time.Time `json:"last_used,omitempty"`
	TotalSessions  int        `json:"total_sessions"`
	TotalActions   int        `json:"total_actions"`
	DaysActive     int        `json:"days_active"`
	UsageFrequency float64    `json:"usage_frequency"`
}

// IsAdopted reports whether usage meets the feature's adoption criteria:
// minimum tenure since first use and minimum usage frequency. A feature
// that was never used is never adopted, regardless of other fields.
func (u *FeatureUsage) IsAdopted(f *catalog.Feature, now time.Time) bool {
	if u == nil || u.FirstUsed == nil {
		return false
	}
	daysSinceFirst := int(now.Sub(*u.FirstUsed).Hours() / 24)
	return daysSinceFirst >= f.AdoptionThresholdDays &&
		u.UsageFrequency >= f.UsageFrequencyTarget
}

// Customer is a business customer profile with per-feature usage
type Customer struct {
	ID                string                   `json:"id"`
	Name              string                   `json:"name"`
	PlanTier          PlanTier                 `json:"plan_tier"`
	SubscriptionStart time.Time                `json:"subscription_start"`
	MRR               float64                  `json:"mrr"`
	Industry          string                   `json:"industry"`
	CompanySize       string                   `json:"company_size"`
	AccountManager    string                   `json:"account_manager"`
	Features          map[string]*FeatureUsage `json:"features"`
}

// TenureDays returns full days since subscription start
func (c *Customer) TenureDays(now time.Time) int {
	return int(now.Sub(c.SubscriptionStart).Hours() / 24)
}

// Usage returns the usage entry for a feature, or nil if none exists.
// A missing entry is treated as "never used" throughout the engine.
func (c *Customer) Usage(featureID string) *FeatureUsage {
	return c.Features[featureID]
}

// ActiveFeatures returns ids of features with any recorded actions, sorted
func (c *Customer) ActiveFeatures() []string {
	var ids []string
	for id, u := range c.Features {
		if u != nil && u.TotalActions > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// AdoptedFeatures returns ids of features meeting their adoption criteria
// against the given catalog, sorted
func (c *Customer) AdoptedFeatures(features []*catalog.Feature, now time.Time) []string {
	var ids []string
	for _, f := range features {
		if c.Usage(f.ID).IsAdopted(f, now) {
			ids = append(ids, f.ID)
		}
	}
	sort.Strings(ids)
	return ids
}
