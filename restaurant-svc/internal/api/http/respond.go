package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type errorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusFor maps domain errors to HTTP statuses. Every authentication and
// authorization failure is a 401.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInactiveMember),
		errors.Is(err, domain.ErrRoleNotPermitted),
		errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		h.Log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).WithError(err).Error("request failed")
		message = "internal server error"
	}
	writeJSON(w, status, errorBody{StatusCode: status, Message: strings.TrimSpace(message)})
}
