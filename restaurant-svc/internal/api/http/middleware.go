package httpapi

import (
	"net/http"
	"time"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type authorizedFunc func(w http.ResponseWriter, r *http.Request, p *domain.Principal)

// authorize runs the guard with the route's allow-list before next. Nothing
// in next executes on rejection.
func (h *Handler) authorize(allowed domain.RoleSet, next authorizedFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := h.Guard.Authorize(r.Context(), r.Header.Get("Authorization"), allowed)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		next(w, r, p)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func accessLog(log *logrus.Entry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			log.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   rec.status,
				"duration": time.Since(start).String(),
			}).Info("request")
		})
	}
}
