package copilot

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/FairForge/adoptly/internal/catalog"
	"github.com/FairForge/adoptly/internal/customer"
	"github.com/FairForge/adoptly/internal/intelligence"
	"github.com/FairForge/adoptly/internal/memory"
	"github.com/FairForge/adoptly/internal/question"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return testNow }

func newTestAgent(t *testing.T) *Agent {
	t.Helper()

	features := catalog.NewMemoryStore()
	catalog.SeedDefaults(features)

	customers := customer.NewMemoryStore()
	customers.Add(quietCustomer("cust_quiet", customer.TierProfessional, 200))

	analyzer := intelligence.NewAnalyzer(intelligence.DefaultConfig(), zap.NewNop()).WithClock(clock)
	mem := memory.NewStore().WithClock(clock)

	return NewAgent(customers, features, analyzer, mem, zap.NewNop()).WithClock(clock)
}

// quietCustomer signed up long ago and never engaged
func quietCustomer(id string, tier customer.PlanTier, tenureDays int) *customer.Customer {
	c := &customer.Customer{
		ID:                id,
		Name:              "Quiet Co",
		PlanTier:          tier,
		SubscriptionStart: testNow.AddDate(0, 0, -tenureDays),
		MRR:               2000,
		Industry:          "Logistics",
		CompanySize:       "200-500",
		AccountManager:    "Priya Nair",
		Features:          make(map[string]*customer.FeatureUsage),
	}
	for _, f := range catalog.DefaultFeatures() {
		c.Features[f.ID] = &customer.FeatureUsage{FeatureID: f.ID, CustomerID: id}
	}
	return c
}

func TestAgent_AnalyzeCustomer(t *testing.T) {
	t.Run("unknown customer", func(t *testing.T) {
		agent := newTestAgent(t)

		_, err := agent.AnalyzeCustomer(context.Background(), "cust_ghost")
		assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
	})

	t.Run("complete intelligence for a struggling customer", func(t *testing.T) {
		agent := newTestAgent(t)

		intel, err := agent.AnalyzeCustomer(context.Background(), "cust_quiet")
		require.NoError(t, err)

		assert.NotEmpty(t, intel.ID)
		assert.Equal(t, "cust_quiet", intel.CustomerID)
		assert.Equal(t, "Quiet Co", intel.CustomerName)
		assert.Equal(t, testNow, intel.GeneratedAt)

		require.NotNil(t, intel.ChurnRisk)
		assert.Equal(t, intelligence.RiskHigh, intel.ChurnRisk.RiskLevel)

		assert.NotEmpty(t, intel.AdoptionRecommendations)
		assert.LessOrEqual(t, len(intel.AdoptionRecommendations), 3)

		require.NotEmpty(t, intel.OnboardingPlaybook)
		assert.Equal(t, 1, intel.OnboardingPlaybook[0].StepNumber)
	})

	t.Run("every run lands in trend memory", func(t *testing.T) {
		agent := newTestAgent(t)

		_, err := agent.AnalyzeCustomer(context.Background(), "cust_quiet")
		require.NoError(t, err)

		profile, ok := agent.Memory().Context("cust_quiet")
		require.True(t, ok)
		assert.Equal(t, "professional", profile.PlanTier)
		assert.Equal(t, "Priya Nair", profile.AccountManager)

		assert.Len(t, agent.Memory().AssessmentHistory("cust_quiet", 0), 1)
		assert.Len(t, agent.Memory().RecommendationHistory("cust_quiet", 0), 1)

		_, err = agent.AnalyzeCustomer(context.Background(), "cust_quiet")
		require.NoError(t, err)
		assert.Len(t, agent.Memory().AssessmentHistory("cust_quiet", 0), 2)
	})

	t.Run("intelligence survives a JSON round trip", func(t *testing.T) {
		agent := newTestAgent(t)

		intel, err := agent.AnalyzeCustomer(context.Background(), "cust_quiet")
		require.NoError(t, err)

		data, err := json.Marshal(intel)
		require.NoError(t, err)

		var decoded intelligence.CustomerIntelligence
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.Equal(t, intel.CustomerID, decoded.CustomerID)
		assert.Equal(t, intel.ChurnRisk.RiskScore, decoded.ChurnRisk.RiskScore)
		for i, rec := range intel.AdoptionRecommendations {
			assert.Equal(t, rec.Confidence, decoded.AdoptionRecommendations[i].Confidence)
		}
		for i, step := range intel.OnboardingPlaybook {
			assert.Equal(t, step.StepNumber, decoded.OnboardingPlaybook[i].StepNumber)
		}
	})
}

func TestAgent_AnswerQuestion(t *testing.T) {
	agent := newTestAgent(t)

	t.Run("unknown customer", func(t *testing.T) {
		_, err := agent.AnswerQuestion(context.Background(), "cust_ghost", "why churn?")
		assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
	})

	t.Run("answers with classified domain and shape", func(t *testing.T) {
		ans, err := agent.AnswerQuestion(context.Background(), "cust_quiet",
			"Why is this customer at risk?")
		require.NoError(t, err)

		assert.Equal(t, question.IntentChurnRisk, ans.Domain)
		assert.Equal(t, question.ShapeWhy, ans.Shape)
		assert.Greater(t, ans.Confidence, 0.0)
		assert.NotEmpty(t, ans.Sections)
	})
}

func TestAgent_OpenSession(t *testing.T) {
	agent := newTestAgent(t)

	t.Run("unknown customer", func(t *testing.T) {
		_, err := agent.OpenSession(context.Background(), "cust_ghost")
		assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
	})

	t.Run("session is bound to the customer", func(t *testing.T) {
		s, err := agent.OpenSession(context.Background(), "cust_quiet")
		require.NoError(t, err)
		assert.Equal(t, "cust_quiet", s.CustomerID)

		ans, err := s.Ask(context.Background(), "What is the churn risk level?")
		require.NoError(t, err)
		assert.Equal(t, question.ShapeWhat, ans.Shape)
	})
}

func TestAgent_RiskTrend(t *testing.T) {
	agent := newTestAgent(t)

	t.Run("unknown customer", func(t *testing.T) {
		_, err := agent.RiskTrend(context.Background(), "cust_ghost")
		assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
	})

	t.Run("unknown until two analyses exist", func(t *testing.T) {
		trend, err := agent.RiskTrend(context.Background(), "cust_quiet")
		require.NoError(t, err)
		assert.Equal(t, memory.TrendUnknown, trend)

		for i := 0; i < 2; i++ {
			_, err = agent.AnalyzeCustomer(context.Background(), "cust_quiet")
			require.NoError(t, err)
		}

		trend, err = agent.RiskTrend(context.Background(), "cust_quiet")
		require.NoError(t, err)
		// Same inputs on both runs, so the score held steady
		assert.Equal(t, memory.TrendStable, trend)
	})
}
