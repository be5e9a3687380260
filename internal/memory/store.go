package memory

import (
	"sync"
	"time"

	"github.com/FairForge/adoptly/internal/intelligence"
)

// Trend classifies the direction of a customer's churn risk over time
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
	TrendUnknown    Trend = "unknown"
)

// trendDelta is the minimum score movement treated as a real change
const trendDelta = 0.1

// defaultHistoryWindow is how many recent snapshots history queries return
// when no limit is given
const defaultHistoryWindow = 5

// Context is the profile snapshot stored alongside analysis history
type Context struct {
	PlanTier       string    `json:"plan_tier"`
	MRR            float64   `json:"mrr"`
	Industry       string    `json:"industry"`
	CompanySize    string    `json:"company_size"`
	AccountManager string    `json:"account_manager"`
	LastUpdated    time.Time `json:"last_updated"`
}

// AssessmentRecord is one stored churn assessment snapshot
type AssessmentRecord struct {
	At         time.Time                         `json:"at"`
	Assessment *intelligence.ChurnRiskAssessment `json:"assessment"`
}

// RecommendationRecord is one stored recommendation batch
type RecommendationRecord struct {
	At              time.Time                     `json:"at"`
	Recommendations []intelligence.Recommendation `json:"recommendations"`
}

// Store keeps per-customer analysis history in memory. History is append-only
// and unbounded; a production deployment would cap it.
type Store struct {
	mu              sync.RWMutex
	contexts        map[string]Context
	assessments     map[string][]AssessmentRecord
	recommendations map[string][]RecommendationRecord
	now             func() time.Time
}

// NewStore creates an empty memory store
func NewStore() *Store {
	return &Store{
		contexts:        make(map[string]Context),
		assessments:     make(map[string][]AssessmentRecord),
		recommendations: make(map[string][]RecommendationRecord),
		now:             time.Now,
	}
}

// WithClock overrides the store's clock (for tests)
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// StoreContext records the customer's profile snapshot
func (s *Store) StoreContext(customerID string, ctx Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx.LastUpdated = s.now()
	s.contexts[customerID] = ctx
}

// Context returns the stored profile snapshot, if any
func (s *Store) Context(customerID string) (Context, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, ok := s.contexts[customerID]
	return ctx, ok
}

// StoreAssessment appends a churn assessment snapshot
func (s *Store) StoreAssessment(customerID string, assessment *intelligence.ChurnRiskAssessment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assessments[customerID] = append(s.assessments[customerID], AssessmentRecord{
		At:         s.now(),
		Assessment: assessment,
	})
}

// AssessmentHistory returns up to limit recent assessment snapshots,
// oldest first. A non-positive limit uses the default window.
func (s *Store) AssessmentHistory(customerID string, limit int) []AssessmentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = defaultHistoryWindow
	}
	history := s.assessments[customerID]
	if len(history) > limit {
		history = history[len(history)-limit:]
	}
	out := make([]AssessmentRecord, len(history))
	copy(out, history)
	return out
}

// StoreRecommendations appends a recommendation batch
func (s *Store) StoreRecommendations(customerID string, recs []intelligence.Recommendation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recommendations[customerID] = append(s.recommendations[customerID], RecommendationRecord{
		At:              s.now(),
		Recommendations: recs,
	})
}

// RecommendationHistory returns up to limit recent recommendation batches,
// oldest first
func (s *Store) RecommendationHistory(customerID string, limit int) []RecommendationRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = defaultHistoryWindow
	}
	history := s.recommendations[customerID]
	if len(history) > limit {
		history = history[len(history)-limit:]
	}
	out := make([]RecommendationRecord, len(history))
	copy(out, history)
	return out
}

// RiskTrend compares the two most recent assessment snapshots. With fewer
// than two snapshots the trend is unknown.
func (s *Store) RiskTrend(customerID string) Trend {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.assessments[customerID]
	if len(history) < 2 {
		return TrendUnknown
	}

	recent := history[len(history)-1].Assessment.RiskScore
	previous := history[len(history)-2].Assessment.RiskScore

	switch {
	case recent > previous+trendDelta:
		return TrendIncreasing
	case recent < previous-trendDelta:
		return TrendDecreasing
	default:
		return TrendStable
	}
}
