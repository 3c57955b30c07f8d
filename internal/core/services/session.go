package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AceRider75/moodfood/internal/core/domain"
	"github.com/AceRider75/moodfood/internal/core/ports"
	"github.com/AceRider75/moodfood/internal/logging"
)

// Ticket identifies one resolution request. Tokens increase monotonically
// within a Session.
type Ticket struct {
	Token     uint64
	RequestID string
	Mood      domain.Mood
	Filters   domain.FilterSet
	IssuedAt  time.Time
}

// Display is what the renderer should currently show.
type Display struct {
	Token     uint64           `json:"token"`
	RequestID string           `json:"request_id,omitempty"`
	Mood      domain.Mood      `json:"mood,omitempty"`
	Filters   domain.FilterSet `json:"filters"`
	Outcome   *domain.Outcome  `json:"outcome,omitempty"`
	Loading   bool             `json:"loading"`
}

// Session owns the displayed-recipe slot and the loading flag. Only the
// completion of the newest ticket may write either of them.
type Session struct {
	resolver ports.Resolver

	mu     sync.Mutex
	latest uint64
	shown  Display
}

// NewSession creates an empty session.
func NewSession(resolver ports.Resolver) *Session {
	return &Session{resolver: resolver}
}

// Begin issues a new ticket, superseding any in-flight request.
func (s *Session) Begin(mood domain.Mood, filters domain.FilterSet) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest++
	s.shown.Loading = true
	return Ticket{
		Token:     s.latest,
		RequestID: uuid.NewString(),
		Mood:      mood,
		Filters:   filters,
		IssuedAt:  time.Now(),
	}
}

// Complete publishes out if t is still the newest ticket and reports whether
// it did. Superseded completions are discarded.
func (s *Session) Complete(t Ticket, out domain.Outcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.Token != s.latest {
		return false
	}
	s.shown = Display{
		Token:     t.Token,
		RequestID: t.RequestID,
		Mood:      t.Mood,
		Filters:   t.Filters,
		Outcome:   &out,
		Loading:   false,
	}
	return true
}

// Abandon clears the loading flag for a ticket that will never complete.
func (s *Session) Abandon(t Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.Token == s.latest {
		s.shown.Loading = false
	}
}

// Current returns a copy of the display slot.
func (s *Session) Current() Display {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shown
}

// Run resolves t and publishes the outcome. The bool reports whether the
// outcome was published.
func (s *Session) Run(ctx context.Context, t Ticket) (domain.Outcome, bool) {
	log := logging.FromContext(ctx).
		WithField("request_id", t.RequestID).
		WithField("token", t.Token)
	ctx = logging.WithLogger(ctx, log)

	out := s.resolver.Resolve(ctx, t.Mood, t.Filters)
	published := s.Complete(t, out)
	if !published {
		log.Debug("session: discarded superseded outcome")
	}
	return out, published
}

// Resolve is Begin followed by Run.
func (s *Session) Resolve(ctx context.Context, mood domain.Mood, filters domain.FilterSet) (Ticket, domain.Outcome, bool) {
	t := s.Begin(mood, filters)
	out, published := s.Run(ctx, t)
	return t, out, published
}
