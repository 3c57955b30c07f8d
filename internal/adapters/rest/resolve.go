package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/AceRider75/moodfood/internal/core/domain"
	"github.com/AceRider75/moodfood/internal/core/services"
	"github.com/AceRider75/moodfood/internal/logging"
	"github.com/AceRider75/moodfood/internal/render"
	"github.com/AceRider75/moodfood/internal/worker"
)

const (
	errCodeQueueFull = "QUEUE_FULL"
	errCodeBadFilter = "INVALID_FILTER"
)

// resolveRequest defines what the client sends us
type resolveRequest struct {
	Mood string `json:"mood"`
	domain.FilterSet
}

type resolveResponse struct {
	Token     uint64         `json:"token"`
	RequestID string         `json:"request_id"`
	Published bool           `json:"published"`
	Outcome   domain.Outcome `json:"outcome"`
	View      render.View    `json:"view"`
}

type submitResponse struct {
	Token     uint64 `json:"token"`
	RequestID string `json:"request_id"`
}

type displayResponse struct {
	Token     uint64          `json:"token"`
	RequestID string          `json:"request_id,omitempty"`
	Loading   bool            `json:"loading"`
	Outcome   *domain.Outcome `json:"outcome,omitempty"`
	View      *render.View    `json:"view,omitempty"`
}

type moodResponse struct {
	Mood  domain.Mood `json:"mood"`
	Theme string      `json:"theme"`
}

// ListMoods handles GET /moods
func (h *Handler) ListMoods(w http.ResponseWriter, r *http.Request) {
	moods := make([]moodResponse, 0, len(domain.AllMoods))
	for _, m := range domain.AllMoods {
		moods = append(moods, moodResponse{Mood: m, Theme: m.Theme()})
	}
	writeJSON(w, http.StatusOK, moods)
}

// Resolve handles POST /resolve. It runs the resolution on the request
// goroutine and answers with this request's own outcome, whether or not a
// newer request superseded it on the display. The resolution outlives a
// client disconnect so a cancelled request never publishes a failure to the
// shared display.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	mood, filters, ok := decodeResolveRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), h.resolveTimeout)
	defer cancel()

	ticket := h.session.Begin(mood, filters)
	out, published := h.session.Run(ctx, ticket)

	writeJSON(w, outcomeStatus(out), resolveResponse{
		Token:     ticket.Token,
		RequestID: ticket.RequestID,
		Published: published,
		Outcome:   out,
		View:      render.Render(mood, filters, out),
	})
}

// SubmitRequest handles POST /requests
func (h *Handler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	if h.pool == nil {
		writeError(w, http.StatusNotImplemented, "async resolution not configured")
		return
	}
	mood, filters, ok := decodeResolveRequest(w, r)
	if !ok {
		return
	}

	ticket := h.session.Begin(mood, filters)
	job := worker.Job{
		Ticket: ticket,
		Log:    h.log.WithField("request_id", ticket.RequestID),
	}
	if err := h.pool.Submit(job); err != nil {
		if errors.Is(err, worker.ErrQueueFull) || errors.Is(err, worker.ErrStopped) {
			writeErrorWithCode(w, http.StatusServiceUnavailable, err.Error(), errCodeQueueFull)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Location", "/display")
	writeJSON(w, http.StatusAccepted, submitResponse{Token: ticket.Token, RequestID: ticket.RequestID})
}

// GetDisplay handles GET /display
func (h *Handler) GetDisplay(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, displayFrom(h.session.Current()))
}

func displayFrom(d services.Display) displayResponse {
	resp := displayResponse{
		Token:     d.Token,
		RequestID: d.RequestID,
		Loading:   d.Loading,
		Outcome:   d.Outcome,
	}
	if d.Outcome != nil {
		v := render.Render(d.Mood, d.Filters, *d.Outcome)
		resp.View = &v
	}
	return resp
}

func decodeResolveRequest(w http.ResponseWriter, r *http.Request) (domain.Mood, domain.FilterSet, bool) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return "", domain.FilterSet{}, false
	}

	// 1. Decode the Request Body
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return "", domain.FilterSet{}, false
	}

	// 2. Validate Input
	if strings.TrimSpace(req.Mood) == "" {
		writeError(w, http.StatusBadRequest, "mood is required")
		return "", domain.FilterSet{}, false
	}
	if err := req.FilterSet.Validate(); err != nil {
		writeErrorWithCode(w, http.StatusBadRequest, err.Error(), errCodeBadFilter)
		return "", domain.FilterSet{}, false
	}

	mood := domain.ParseMood(req.Mood)
	if !mood.Known() {
		logging.FromContext(r.Context()).WithField("mood", req.Mood).Info("unknown mood, resolving as random")
	}
	return mood, req.FilterSet, true
}

func outcomeStatus(out domain.Outcome) int {
	switch {
	case out.OK():
		return http.StatusOK
	case out.Failure.Kind == domain.FailureNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
