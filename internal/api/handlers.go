package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/FairForge/adoptly/internal/customer"
	"github.com/FairForge/adoptly/internal/metrics"
	"github.com/FairForge/adoptly/internal/question"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type customerSummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	PlanTier       string  `json:"plan_tier"`
	MRR            float64 `json:"mrr"`
	AccountManager string  `json:"account_manager"`
}

// handleListCustomers lists customers, optionally filtered by account manager
func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var customers []*customer.Customer
	if manager := r.URL.Query().Get("manager"); manager != "" {
		list, err := s.agent.Customers().ListByAccountManager(ctx, manager)
		if err != nil {
			s.respondError(w, http.StatusInternalServerError, err)
			return
		}
		customers = list
	} else {
		ids, err := s.agent.Customers().ListIDs(ctx)
		if err != nil {
			s.respondError(w, http.StatusInternalServerError, err)
			return
		}
		for _, id := range ids {
			c, err := s.agent.Customers().Get(ctx, id)
			if err != nil {
				continue
			}
			customers = append(customers, c)
		}
	}

	summaries := make([]customerSummary, 0, len(customers))
	for _, c := range customers {
		summaries = append(summaries, customerSummary{
			ID:             c.ID,
			Name:           c.Name,
			PlanTier:       string(c.PlanTier),
			MRR:            c.MRR,
			AccountManager: c.AccountManager,
		})
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"customers": summaries,
		"count":     len(summaries),
	})
}

// handleIntelligence generates complete intelligence for one customer
func (s *Server) handleIntelligence(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	start := time.Now()

	result, err := s.agent.AnalyzeCustomer(r.Context(), id)
	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			s.respondNotFound(w, r, id)
			return
		}
		metrics.ErrorsTotal.WithLabelValues("analysis").Inc()
		s.logger.Error("analysis failed", zap.String("customer_id", id), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, errors.New("analysis failed"))
		return
	}

	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	metrics.AnalysesTotal.WithLabelValues(string(result.ChurnRisk.RiskLevel)).Inc()

	s.respondJSON(w, http.StatusOK, result)
}

type questionRequest struct {
	Question string `json:"question"`
}

type questionResponse struct {
	*question.Answer
	ConfidenceLabel string `json:"confidence_label"`
}

// handleQuestion answers a free-text question about one customer
func (s *Server) handleQuestion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		s.respondError(w, http.StatusBadRequest, errors.New("question must not be empty"))
		return
	}

	ans, err := s.agent.AnswerQuestion(r.Context(), id, req.Question)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrCustomerNotFound):
			s.respondNotFound(w, r, id)
		case question.IsRefused(err):
			metrics.QuestionsRefused.Inc()
			s.respondJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":  "insufficient evidence in the current data to answer confidently",
				"detail": err.Error(),
				"fallback": []string{
					"Try asking about adoption, churn risk, or usage patterns",
				},
			})
		default:
			metrics.ErrorsTotal.WithLabelValues("question").Inc()
			s.logger.Error("question failed",
				zap.String("customer_id", id),
				zap.String("question", req.Question),
				zap.Error(err))
			s.respondError(w, http.StatusInternalServerError, errors.New("unable to process question"))
		}
		return
	}

	metrics.QuestionsTotal.WithLabelValues(string(ans.Domain), string(ans.Shape)).Inc()

	s.respondJSON(w, http.StatusOK, questionResponse{
		Answer:          ans,
		ConfidenceLabel: question.ConfidenceLabel(ans.Confidence),
	})
}

// handleTrend returns the stored churn-risk direction for one customer
func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	trend, err := s.agent.RiskTrend(r.Context(), id)
	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			s.respondNotFound(w, r, id)
			return
		}
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{
		"customer_id": id,
		"trend":       string(trend),
	})
}

// respondNotFound writes a 404 with up to 3 close-match id suggestions
func (s *Server) respondNotFound(w http.ResponseWriter, r *http.Request, id string) {
	var suggestions []string
	if ids, err := s.agent.Customers().ListIDs(r.Context()); err == nil {
		needle := strings.ToLower(id)
		for _, candidate := range ids {
			if strings.Contains(strings.ToLower(candidate), needle) {
				suggestions = append(suggestions, candidate)
			}
		}
		sort.Strings(suggestions)
		if len(suggestions) > 3 {
			suggestions = suggestions[:3]
		}
	}

	body := map[string]interface{}{
		"error": "customer not found",
		"id":    id,
	}
	if len(suggestions) > 0 {
		body["did_you_mean"] = suggestions
	}
	s.respondJSON(w, http.StatusNotFound, body)
}
