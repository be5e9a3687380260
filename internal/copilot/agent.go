package copilot

import (
	"context"
	"fmt"
	"time"

	"github.com/FairForge/adoptly/internal/catalog"
	"github.com/FairForge/adoptly/internal/customer"
	"github.com/FairForge/adoptly/internal/intelligence"
	"github.com/FairForge/adoptly/internal/memory"
	"github.com/FairForge/adoptly/internal/question"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Agent orchestrates the analysis engine, data access, and trend memory
// to produce customer intelligence
type Agent struct {
	customers customer.Store
	features  catalog.Store
	analyzer  *intelligence.Analyzer
	memory    *memory.Store
	router    *question.Router
	logger    *zap.Logger
	now       func() time.Time
}

// NewAgent wires an agent from its collaborators
func NewAgent(customers customer.Store, features catalog.Store, analyzer *intelligence.Analyzer, mem *memory.Store, logger *zap.Logger) *Agent {
	return &Agent{
		customers: customers,
		features:  features,
		analyzer:  analyzer,
		memory:    mem,
		router:    question.NewRouter(analyzer, features, mem, logger),
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock overrides the agent's clock (for tests)
func (a *Agent) WithClock(now func() time.Time) *Agent {
	a.now = now
	return a
}

// Memory exposes the agent's trend memory
func (a *Agent) Memory() *memory.Store {
	return a.memory
}

// Customers exposes the agent's customer store
func (a *Agent) Customers() customer.Store {
	return a.customers
}

// Features exposes the agent's feature catalog
func (a *Agent) Features() catalog.Store {
	return a.features
}

// Analyzer exposes the agent's analysis engine
func (a *Agent) Analyzer() *intelligence.Analyzer {
	return a.analyzer
}

// AnalyzeCustomer generates complete intelligence for a customer: adoption
// recommendations, churn risk, and an onboarding playbook. Every run stores
// its results in trend memory before returning.
func (a *Agent) AnalyzeCustomer(ctx context.Context, customerID string) (*intelligence.CustomerIntelligence, error) {
	c, err := a.customers.Get(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("analyze customer %s: %w", customerID, err)
	}

	features, err := a.features.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load feature catalog: %w", err)
	}

	a.memory.StoreContext(customerID, memory.Context{
		PlanTier:       string(c.PlanTier),
		MRR:            c.MRR,
		Industry:       c.Industry,
		CompanySize:    c.CompanySize,
		AccountManager: c.AccountManager,
	})

	recs := a.analyzer.AnalyzeFeatureAdoption(c, features)
	a.memory.StoreRecommendations(customerID, recs)

	churnRisk := a.analyzer.AssessChurnRisk(c, features)
	a.memory.StoreAssessment(customerID, churnRisk)

	playbook := a.analyzer.BuildOnboardingPlaybook(c, recs)

	top := recs
	if len(top) > 3 {
		top = top[:3]
	}

	a.logger.Info("generated customer intelligence",
		zap.String("customer_id", customerID),
		zap.String("risk_level", string(churnRisk.RiskLevel)),
		zap.Int("recommendations", len(top)),
		zap.Int("playbook_steps", len(playbook)))

	return &intelligence.CustomerIntelligence{
		ID:                      uuid.New().String(),
		CustomerID:              c.ID,
		CustomerName:            c.Name,
		AdoptionRecommendations: top,
		OnboardingPlaybook:      playbook,
		ChurnRisk:               churnRisk,
		GeneratedAt:             a.now(),
	}, nil
}

// AnswerQuestion classifies a free-text question about a customer and
// composes a structured answer with a confidence score. Facts are gathered
// live from the analysis engine on every call.
func (a *Agent) AnswerQuestion(ctx context.Context, customerID, q string) (*question.Answer, error) {
	c, err := a.customers.Get(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("answer question for %s: %w", customerID, err)
	}
	return a.router.Answer(ctx, c, q)
}

// OpenSession starts an interactive question session for a customer
func (a *Agent) OpenSession(ctx context.Context, customerID string) (*question.Session, error) {
	c, err := a.customers.Get(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("open session for %s: %w", customerID, err)
	}
	return question.NewSession(a.router, c, a.logger), nil
}

// RiskTrend returns the stored risk direction for a customer. The customer
// must exist even when no history does.
func (a *Agent) RiskTrend(ctx context.Context, customerID string) (memory.Trend, error) {
	if _, err := a.customers.Get(ctx, customerID); err != nil {
		return memory.TrendUnknown, fmt.Errorf("risk trend for %s: %w", customerID, err)
	}
	return a.memory.RiskTrend(customerID), nil
}
