package customer

import (
	"context"
	"testing"
	"time"

	"github.com/FairForge/adoptly/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_GenerateCustomer(t *testing.T) {
	features := catalog.DefaultFeatures()

	newCustomer := func() *Customer {
		return &Customer{
			ID:                "cust_gen",
			PlanTier:          TierProfessional,
			SubscriptionStart: time.Now().AddDate(0, 0, -120),
		}
	}

	t.Run("every catalog feature gets a usage entry", func(t *testing.T) {
		g := NewGenerator(42)
		c := g.GenerateCustomer(newCustomer(), features, ProfileHealthy)

		require.Len(t, c.Features, len(features))
		for _, f := range features {
			u, ok := c.Features[f.ID]
			require.True(t, ok, "missing usage for %s", f.ID)
			assert.Equal(t, "cust_gen", u.CustomerID)
			assert.Equal(t, f.ID, u.FeatureID)
		}
	})

	t.Run("generated counters are internally consistent", func(t *testing.T) {
		g := NewGenerator(42)
		c := g.GenerateCustomer(newCustomer(), features, ProfileChampion)

		for id, u := range c.Features {
			if u.FirstUsed == nil {
				assert.Zero(t, u.TotalActions, "untouched feature %s must have no actions", id)
				assert.Nil(t, u.LastUsed)
				continue
			}
			assert.GreaterOrEqual(t, u.TotalActions, u.TotalSessions, "feature %s", id)
			assert.GreaterOrEqual(t, u.UsageFrequency, 0.0)
			assert.LessOrEqual(t, u.UsageFrequency, 1.0)
			assert.False(t, u.LastUsed.Before(*u.FirstUsed), "feature %s last use precedes first", id)
		}
	})

	t.Run("same seed reproduces the same usage", func(t *testing.T) {
		a := NewGenerator(7).GenerateUsage("cust_gen", "feat_core_dashboard", 120, 1.0, profileConfigs[ProfileNormal])
		b := NewGenerator(7).GenerateUsage("cust_gen", "feat_core_dashboard", 120, 1.0, profileConfigs[ProfileNormal])

		assert.Equal(t, a.TotalSessions, b.TotalSessions)
		assert.Equal(t, a.TotalActions, b.TotalActions)
		assert.Equal(t, a.UsageFrequency, b.UsageFrequency)
	})

	t.Run("unknown profile falls back to normal", func(t *testing.T) {
		g := NewGenerator(42)
		c := g.GenerateCustomer(newCustomer(), features, UsageProfile("bogus"))
		assert.Len(t, c.Features, len(features))
	})
}

func TestSeedDemoCustomers(t *testing.T) {
	store := NewMemoryStore()
	SeedDemoCustomers(store, catalog.DefaultFeatures(), 42)

	ids, err := store.ListIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"cust_001", "cust_002", "cust_003", "cust_004", "cust_005"}, ids)

	acme, err := store.Get(context.Background(), "cust_001")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corporation", acme.Name)
	assert.Equal(t, TierEnterprise, acme.PlanTier)
	assert.Len(t, acme.Features, 10)
}
