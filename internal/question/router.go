package question

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/FairForge/adoptly/internal/catalog"
	"github.com/FairForge/adoptly/internal/customer"
	"github.com/FairForge/adoptly/internal/intelligence"
	"github.com/FairForge/adoptly/internal/memory"
	"go.uber.org/zap"
)

// Router classifies free-text questions and composes structured answers
// from live engine facts. Nothing is cached between questions.
type Router struct {
	analyzer *intelligence.Analyzer
	features catalog.Store
	memory   *memory.Store
	logger   *zap.Logger
	now      func() time.Time
}

// NewRouter creates a question router
func NewRouter(analyzer *intelligence.Analyzer, features catalog.Store, mem *memory.Store, logger *zap.Logger) *Router {
	return &Router{
		analyzer: analyzer,
		features: features,
		memory:   mem,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides the router's clock (for tests)
func (r *Router) WithClock(now func() time.Time) *Router {
	r.now = now
	return r
}

// facts holds the derived usage numbers composers draw from
type facts struct {
	customer    *customer.Customer
	features    []*catalog.Feature
	adopted     []string
	active      []string
	coreTotal   int
	coreAdopted int
	recent7     int
	recent30    int
	stale       int
	tenureDays  int
}

func (f *facts) coreAdoptionRate() float64 {
	if f.coreTotal == 0 {
		return 0
	}
	return float64(f.coreAdopted) / float64(f.coreTotal)
}

// Answer classifies a question and composes the response. Blank questions
// return ErrEmptyQuestion; a dangling feature reference returns RefusedError.
func (r *Router) Answer(ctx context.Context, c *customer.Customer, q string) (*Answer, error) {
	domain := ClassifyDomain(q)
	shape, note := ClassifyShape(q)

	f, err := r.gatherFacts(ctx, c)
	if err != nil {
		return nil, err
	}

	ans := &Answer{
		Question:  q,
		Domain:    domain,
		Shape:     shape,
		ShapeNote: note,
	}

	switch shape {
	case ShapeWhy:
		err = r.composeWhy(ctx, ans, f)
	case ShapeWhat:
		err = r.composeWhat(ans, f)
	case ShapeAction:
		err = r.composeAction(ctx, ans, f)
	default:
		err = fmt.Errorf("unhandled answer shape %q", shape)
	}
	if err != nil {
		return nil, err
	}

	r.logger.Debug("composed answer",
		zap.String("customer_id", c.ID),
		zap.String("domain_intent", string(ans.Domain)),
		zap.String("shape", string(ans.Shape)),
		zap.Float64("confidence", ans.Confidence))

	return ans, nil
}

func (r *Router) gatherFacts(ctx context.Context, c *customer.Customer) (*facts, error) {
	features, err := r.features.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load feature catalog: %w", err)
	}

	now := r.now()
	f := &facts{
		customer:   c,
		features:   features,
		adopted:    c.AdoptedFeatures(features, now),
		active:     c.ActiveFeatures(),
		tenureDays: c.TenureDays(now),
	}

	adopted := make(map[string]bool, len(f.adopted))
	for _, id := range f.adopted {
		adopted[id] = true
	}
	for _, feat := range features {
		if feat.Category == catalog.CategoryCore {
			f.coreTotal++
			if adopted[feat.ID] {
				f.coreAdopted++
			}
		}
	}

	for _, usage := range c.Features {
		if usage == nil || usage.LastUsed == nil {
			continue
		}
		days := int(now.Sub(*usage.LastUsed).Hours() / 24)
		if days <= 7 {
			f.recent7++
		}
		if days <= 30 {
			f.recent30++
		} else if days > 60 {
			f.stale++
		}
	}

	return f, nil
}

// requireFeature resolves a recommendation's feature reference, converting a
// catalog miss into a refusal rather than an internal error
func (r *Router) requireFeature(ctx context.Context, featureID string) (*catalog.Feature, error) {
	feat, err := r.features.Get(ctx, featureID)
	if errors.Is(err, catalog.ErrFeatureNotFound) {
		return nil, &RefusedError{Missing: featureID}
	}
	if err != nil {
		return nil, err
	}
	return feat, nil
}
