package httpapi

import (
	"net/http"

	"kuchi/restaurant-svc/internal/domain"
	"kuchi/restaurant-svc/internal/service"
)

type optionRequest struct {
	Name  string        `json:"name" validate:"required,max=120"`
	Price *domain.Money `json:"price" validate:"required"`
}

type statusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

func (h *Handler) decodeOption(w http.ResponseWriter, r *http.Request) (service.OptionInput, error) {
	var req optionRequest
	if err := decode(w, r, &req); err != nil {
		return service.OptionInput{}, err
	}
	if err := validMoney(req.Price); err != nil {
		return service.OptionInput{}, err
	}
	return service.OptionInput{Name: req.Name, Price: *req.Price}, nil
}

func (h *Handler) createOption(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	in, err := h.decodeOption(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	option, err := h.Options.Create(r.Context(), p, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, option)
}

func (h *Handler) listOptions(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	q, err := listQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.Options.List(r.Context(), p, q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"complements": page.Items,
		"totalPages":  page.TotalPages,
	})
}

func (h *Handler) listActiveOptions(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	options, err := h.Options.ListActive(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, options)
}

func (h *Handler) getOption(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	option, err := h.Options.Get(r.Context(), p, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, option)
}

func (h *Handler) updateOption(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	in, err := h.decodeOption(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Options.Update(r.Context(), p, id, in); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setOptionStatus(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req statusRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Options.SetActive(r.Context(), p, id, *req.IsActive); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteOption(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Options.Delete(r.Context(), p, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
