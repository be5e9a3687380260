package intelligence

import (
	"encoding/json"
	"testing"

	"github.com/FairForge/adoptly/internal/customer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_AssessChurnRisk(t *testing.T) {
	t.Run("dormant professional customer is high risk", func(t *testing.T) {
		a := testAnalyzer()
		// 200 days in, never touched anything, paying for professional
		c := silentCustomer("cust_test", customer.TierProfessional, 200)

		got := a.AssessChurnRisk(c, testCatalog())

		assert.Equal(t, RiskHigh, got.RiskLevel)
		assert.InDelta(t, 0.70, got.RiskScore, 0.001)
		assert.Equal(t, 7, got.UrgencyDays)
		assert.Contains(t, got.RecommendedIntervention, "Dana Reeves")
		assert.Contains(t, got.RecommendedIntervention, "within 7 days")

		require.Len(t, got.Signals, 3)
		assert.Contains(t, got.Signals[0], "Low core feature adoption (0/2")
		assert.Contains(t, got.Signals[1], "Low recent activity")
		assert.Contains(t, got.Signals[2], "no premium features adopted")
	})

	t.Run("healthy customer reports only the no-risk sentinel", func(t *testing.T) {
		a := testAnalyzer()
		c := engagedCustomer("cust_test", customer.TierEnterprise, 365)

		got := a.AssessChurnRisk(c, testCatalog())

		assert.Equal(t, RiskLow, got.RiskLevel)
		assert.Zero(t, got.RiskScore)
		assert.Equal(t, 90, got.UrgencyDays)
		assert.Equal(t, []string{NoRiskSignals}, got.Signals)
	})

	t.Run("score is clamped to 1.0 when every signal fires", func(t *testing.T) {
		a := testAnalyzer()
		// New premium customer whose trial activity has already gone stale:
		// touched everything once, 70 days ago, adopted nothing
		c := silentCustomer("cust_test", customer.TierProfessional, 80)
		for _, f := range testCatalog() {
			c.Features[f.ID] = usedFor("cust_test", f.ID, 75, 70, 0.01, 2)
		}

		got := a.AssessChurnRisk(c, testCatalog())

		// 0.30 + 0.25 + 0.20 + 0.15 + 0.10 = 1.00 before clamping
		assert.Equal(t, 1.0, got.RiskScore)
		assert.Equal(t, RiskHigh, got.RiskLevel)
		assert.Len(t, got.Signals, 5)
	})

	t.Run("partial signals land in the medium band", func(t *testing.T) {
		a := testAnalyzer()
		// Basic plan, 1 year in, core adopted but activity has dried up
		c := silentCustomer("cust_test", customer.TierBasic, 365)
		for _, f := range testCatalog() {
			if f.IsPremium {
				continue
			}
			c.Features[f.ID] = usedFor("cust_test", f.ID, 300, 65, 0.9, 200)
		}

		got := a.AssessChurnRisk(c, testCatalog())

		// Low recent activity (0.25) + stale features (0.20)
		assert.Equal(t, RiskMedium, got.RiskLevel)
		assert.InDelta(t, 0.45, got.RiskScore, 0.001)
		assert.Equal(t, 30, got.UrgencyDays)
	})

	t.Run("basic plan never triggers the plan mismatch signal", func(t *testing.T) {
		a := testAnalyzer()
		c := silentCustomer("cust_test", customer.TierBasic, 200)

		got := a.AssessChurnRisk(c, testCatalog())

		for _, s := range got.Signals {
			assert.NotContains(t, s, "premium features adopted")
		}
	})

	t.Run("assessment survives a JSON round trip", func(t *testing.T) {
		a := testAnalyzer()
		c := silentCustomer("cust_test", customer.TierProfessional, 200)

		got := a.AssessChurnRisk(c, testCatalog())

		data, err := json.Marshal(got)
		require.NoError(t, err)

		var decoded ChurnRiskAssessment
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, *got, decoded)
	})
}
