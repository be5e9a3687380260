package question

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/FairForge/adoptly/internal/customer"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is the session's position in the question lifecycle
type State string

const (
	StateAwaitingQuestion State = "awaiting_question"
	StateClassifying      State = "classifying"
	StateComposing        State = "composing"
	StateDisplayed        State = "displayed"
	StateRefused          State = "refused"
	StateErrored          State = "errored"
)

// maxTranscript bounds the per-session history buffer
const maxTranscript = 50

// Exchange is one question/outcome pair in the session transcript
type Exchange struct {
	At         time.Time    `json:"at"`
	Question   string       `json:"question"`
	Domain     DomainIntent `json:"domain_intent,omitempty"`
	Shape      Shape        `json:"shape,omitempty"`
	Outcome    State        `json:"outcome"`
	Confidence float64      `json:"confidence,omitempty"`
}

// Session is one interactive question session for a single customer. It is
// owned by a single caller and accessed sequentially; concurrent use needs
// external synchronization.
type Session struct {
	ID         string
	CustomerID string

	router     *Router
	customer   *customer.Customer
	logger     *zap.Logger
	state      State
	transcript []Exchange
	now        func() time.Time
}

// NewSession opens a question session for a customer
func NewSession(router *Router, c *customer.Customer, logger *zap.Logger) *Session {
	return &Session{
		ID:         uuid.New().String(),
		CustomerID: c.ID,
		router:     router,
		customer:   c,
		logger:     logger,
		state:      StateAwaitingQuestion,
		now:        time.Now,
	}
}

// State returns the session's current state
func (s *Session) State() State {
	return s.state
}

// Transcript returns the recorded exchanges, oldest first
func (s *Session) Transcript() []Exchange {
	out := make([]Exchange, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Ask runs one question through the classify/compose lifecycle. Blank
// questions return ErrEmptyQuestion without a state change. Refusals and
// internal errors are recorded, reported, and leave the session ready for
// the next question.
func (s *Session) Ask(ctx context.Context, q string) (*Answer, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, ErrEmptyQuestion
	}

	s.state = StateClassifying
	s.state = StateComposing

	ans, err := s.router.Answer(ctx, s.customer, q)
	if err != nil {
		outcome := StateErrored
		if IsRefused(err) {
			outcome = StateRefused
		} else {
			err = fmt.Errorf("compose answer: %w", err)
		}
		s.state = outcome
		s.record(Exchange{At: s.now(), Question: q, Outcome: outcome})
		s.logger.Warn("question not answered",
			zap.String("session_id", s.ID),
			zap.String("customer_id", s.CustomerID),
			zap.String("outcome", string(outcome)),
			zap.Error(err))
		s.state = StateAwaitingQuestion
		return nil, err
	}

	s.state = StateDisplayed
	s.record(Exchange{
		At:         s.now(),
		Question:   q,
		Domain:     ans.Domain,
		Shape:      ans.Shape,
		Outcome:    StateDisplayed,
		Confidence: ans.Confidence,
	})
	s.state = StateAwaitingQuestion
	return ans, nil
}

func (s *Session) record(e Exchange) {
	s.transcript = append(s.transcript, e)
	if len(s.transcript) > maxTranscript {
		s.transcript = s.transcript[len(s.transcript)-maxTranscript:]
	}
}
