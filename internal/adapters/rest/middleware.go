package rest

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AceRider75/moodfood/internal/logging"
)

type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// withRequestLog puts a request-scoped logger in the context and logs the
// response once the handler returns.
func (h *Handler) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := h.log.WithFields(logrus.Fields{
			"http.req.method": r.Method,
			"http.req.path":   r.URL.Path,
		})
		rec := &responseRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r.WithContext(logging.WithLogger(r.Context(), log)))

		log.WithFields(logrus.Fields{
			"http.resp.status":  rec.status,
			"http.resp.bytes":   rec.bytes,
			"http.resp.took_ms": time.Since(start).Milliseconds(),
		}).Debug("request complete")
	})
}
