package rest

import (
	"encoding/json"
	"mime"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AceRider75/moodfood/internal/core/services"
	"github.com/AceRider75/moodfood/internal/worker"
)

// Dispatcher queues background resolutions. *worker.Pool satisfies it.
type Dispatcher interface {
	Submit(job worker.Job) error
}

// DefaultResolveTimeout bounds a synchronous resolution.
const DefaultResolveTimeout = 30 * time.Second

// Handler manages the HTTP interface for our application.
type Handler struct {
	session        *services.Session // Dependency on the Core Service
	pool           Dispatcher
	log            logrus.FieldLogger
	resolveTimeout time.Duration
	router         *http.ServeMux // Standard library router
}

// NewHandler initializes the HTTP adapter and sets up routes. pool may be
// nil, in which case async submission is disabled.
func NewHandler(session *services.Session, pool Dispatcher, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	h := &Handler{
		session:        session,
		pool:           pool,
		log:            log,
		resolveTimeout: DefaultResolveTimeout,
		router:         http.NewServeMux(),
	}

	// Register Routes
	h.routes()

	return h
}

// WithResolveTimeout sets the bound for POST /resolve. Non-positive values
// keep the default.
func (h *Handler) WithResolveTimeout(d time.Duration) *Handler {
	if d > 0 {
		h.resolveTimeout = d
	}
	return h
}

// ServeHTTP satisfies the http.Handler interface. Every request passes
// through the request logger before reaching the router.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.withRequestLog(h.router).ServeHTTP(w, r)
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes() {
	// Health Check
	h.router.HandleFunc("GET /health", h.HealthCheck)
	// Moods
	h.router.HandleFunc("GET /moods", h.ListMoods)
	// Resolution
	h.router.HandleFunc("POST /resolve", h.Resolve)
	h.router.HandleFunc("POST /requests", h.SubmitRequest)
	h.router.HandleFunc("GET /display", h.GetDisplay)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "message": "Moodfood is cooking"})
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeErrorWithCode(w http.ResponseWriter, status int, msg, code string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}

func isJSONContentType(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}
