package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"kuchi/restaurant-svc/internal/domain"
)

type roleRequest struct {
	Name string `json:"name" validate:"required,max=60"`
}

func (h *Handler) createRole(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	var req roleRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	role, err := h.Roles.Create(r.Context(), p, req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, role)
}

func (h *Handler) listRoles(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	roles, err := h.Roles.List(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, roles)
}

func (h *Handler) menuQRCode(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	size := 0
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: size must be an integer", domain.ErrInvalidInput))
			return
		}
		size = n
	}
	png, err := h.QR.Generate(p.RestaurantID, size)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Menu-URL", h.QR.MenuURL(p.RestaurantID))
	w.Write(png)
}

func (h *Handler) activity(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	day := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput))
			return
		}
		day = parsed
	}
	summary, err := h.Activity.Summary(r.Context(), p, day)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
