package intelligence

import (
	"strings"
	"testing"
	"time"

	"github.com/FairForge/adoptly/internal/catalog"
	"github.com/FairForge/adoptly/internal/customer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testAnalyzer() *Analyzer {
	return NewAnalyzer(DefaultConfig(), zap.NewNop()).
		WithClock(func() time.Time { return testNow })
}

func testCatalog() []*catalog.Feature {
	return catalog.DefaultFeatures()
}

// usedFor builds a usage entry first used firstDaysAgo days back, last used
// lastDaysAgo days back, with the given frequency
func usedFor(customerID, featureID string, firstDaysAgo, lastDaysAgo int, freq float64, actions int) *customer.FeatureUsage {
	first := testNow.AddDate(0, 0, -firstDaysAgo)
	last := testNow.AddDate(0, 0, -lastDaysAgo)
	return &customer.FeatureUsage{
		FeatureID:      featureID,
		CustomerID:     customerID,
		FirstUsed:      &first,
		LastUsed:       &last,
		TotalSessions:  actions / 3,
		TotalActions:   actions,
		DaysActive:     int(float64(firstDaysAgo) * freq),
		UsageFrequency: freq,
	}
}

func neverUsed(customerID, featureID string) *customer.FeatureUsage {
	return &customer.FeatureUsage{FeatureID: featureID, CustomerID: customerID}
}

// silentCustomer has a usage entry for every catalog feature but no activity
func silentCustomer(id string, tier customer.PlanTier, tenureDays int) *customer.Customer {
	c := &customer.Customer{
		ID:                id,
		Name:              "Test Co",
		PlanTier:          tier,
		SubscriptionStart: testNow.AddDate(0, 0, -tenureDays),
		MRR:               2000,
		Industry:          "SaaS",
		CompanySize:       "50-200",
		AccountManager:    "Dana Reeves",
		Features:          make(map[string]*customer.FeatureUsage),
	}
	for _, f := range testCatalog() {
		c.Features[f.ID] = neverUsed(id, f.ID)
	}
	return c
}

// engagedCustomer has every feature adopted and recently used
func engagedCustomer(id string, tier customer.PlanTier, tenureDays int) *customer.Customer {
	c := silentCustomer(id, tier, tenureDays)
	for _, f := range testCatalog() {
		c.Features[f.ID] = usedFor(id, f.ID, tenureDays, 2, 0.9, 300)
	}
	return c
}

func TestAnalyzer_AnalyzeFeatureAdoption(t *testing.T) {
	t.Run("untouched core features get priority 1", func(t *testing.T) {
		a := testAnalyzer()
		c := silentCustomer("cust_test", customer.TierBasic, 120)

		recs := a.AnalyzeFeatureAdoption(c, testCatalog())

		require.NotEmpty(t, recs)
		assert.Equal(t, 1, recs[0].Priority)
		assert.Equal(t, 0.85, recs[0].Confidence)
		assert.Contains(t, recs[0].Reason, "never been used")
		assert.Contains(t, recs[0].Reason, "120 days")
		assert.Contains(t, recs[0].SuggestedAction, "Dana Reeves")
	})

	t.Run("touched but unadopted core features get priority 2", func(t *testing.T) {
		a := testAnalyzer()
		c := silentCustomer("cust_test", customer.TierBasic, 120)
		// Active on the dashboard but below its 0.7 frequency target
		c.Features["feat_core_dashboard"] = usedFor("cust_test", "feat_core_dashboard", 60, 5, 0.2, 40)

		recs := a.AnalyzeFeatureAdoption(c, testCatalog())

		var dashboard *Recommendation
		for i := range recs {
			if recs[i].FeatureID == "feat_core_dashboard" {
				dashboard = &recs[i]
			}
		}
		require.NotNil(t, dashboard)
		assert.Equal(t, 2, dashboard.Priority)
		assert.Equal(t, 0.65, dashboard.Confidence)
		assert.Contains(t, dashboard.Reason, "underutilized")
		assert.Contains(t, dashboard.Reason, "5 days ago")
	})

	t.Run("premium recommendations need an adoption foundation", func(t *testing.T) {
		a := testAnalyzer()

		// Silent professional customer: no foundation, so no premium recs
		c := silentCustomer("cust_test", customer.TierProfessional, 120)
		recs := a.AnalyzeFeatureAdoption(c, testCatalog())
		for _, rec := range recs {
			assert.Less(t, rec.Priority, 3)
		}

		// Engaged customer adopts non-premium features, leaving premium gaps
		c = silentCustomer("cust_test", customer.TierProfessional, 120)
		for _, f := range testCatalog() {
			if !f.IsPremium {
				c.Features[f.ID] = usedFor("cust_test", f.ID, 90, 2, 0.9, 200)
			}
		}
		recs = a.AnalyzeFeatureAdoption(c, testCatalog())

		require.NotEmpty(t, recs)
		for _, rec := range recs {
			assert.Equal(t, 3, rec.Priority)
			assert.Equal(t, 0.6, rec.Confidence)
			// 15% of $2000 MRR
			assert.Equal(t, "Potential expansion revenue: $300/month", rec.ExpectedImpact)
		}
	})

	t.Run("basic plan never gets premium recommendations", func(t *testing.T) {
		a := testAnalyzer()
		c := silentCustomer("cust_test", customer.TierBasic, 120)
		for _, f := range testCatalog() {
			if !f.IsPremium {
				c.Features[f.ID] = usedFor("cust_test", f.ID, 90, 2, 0.9, 200)
			}
		}

		recs := a.AnalyzeFeatureAdoption(c, testCatalog())

		for _, rec := range recs {
			assert.NotEqual(t, 3, rec.Priority)
		}
	})

	t.Run("returns at most 5 recommendations sorted by priority", func(t *testing.T) {
		a := testAnalyzer()
		c := silentCustomer("cust_test", customer.TierEnterprise, 200)
		// Adopt three collaboration/integration features to open the premium gate
		for _, id := range []string{"feat_collab_teams", "feat_integration_api", "feat_core_dashboard"} {
			c.Features[id] = usedFor("cust_test", id, 100, 2, 0.9, 200)
		}

		recs := a.AnalyzeFeatureAdoption(c, testCatalog())

		assert.LessOrEqual(t, len(recs), 5)
		for i := 1; i < len(recs); i++ {
			assert.GreaterOrEqual(t, recs[i].Priority, recs[i-1].Priority,
				"recommendations must be sorted by non-decreasing priority")
		}
	})

	t.Run("fully adopted customer gets no recommendations", func(t *testing.T) {
		a := testAnalyzer()
		c := engagedCustomer("cust_test", customer.TierEnterprise, 365)

		recs := a.AnalyzeFeatureAdoption(c, testCatalog())

		assert.Empty(t, recs)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		a := testAnalyzer()
		c := silentCustomer("cust_test", customer.TierProfessional, 150)

		first := a.AnalyzeFeatureAdoption(c, testCatalog())
		second := a.AnalyzeFeatureAdoption(c, testCatalog())

		assert.Equal(t, first, second)
	})

	t.Run("re-engagement action for stale features", func(t *testing.T) {
		a := testAnalyzer()
		c := silentCustomer("cust_test", customer.TierBasic, 200)
		// Touched long ago, idle for 90 days
		c.Features["feat_core_reports"] = usedFor("cust_test", "feat_core_reports", 150, 90, 0.1, 20)

		recs := a.AnalyzeFeatureAdoption(c, testCatalog())

		var reports *Recommendation
		for i := range recs {
			if recs[i].FeatureID == "feat_core_reports" {
				reports = &recs[i]
			}
		}
		require.NotNil(t, reports)
		assert.True(t, strings.Contains(reports.SuggestedAction, "re-engagement"),
			"expected re-engagement outreach, got: %s", reports.SuggestedAction)
	})
}
