package httpapi

import (
	"net/http"

	"kuchi/restaurant-svc/internal/domain"
	"kuchi/restaurant-svc/internal/service"
)

type menuItemRequest struct {
	Name          string        `json:"name" validate:"required,max=120"`
	Description   string        `json:"description" validate:"max=1000"`
	Price         *domain.Money `json:"price" validate:"required"`
	CategoryID    string        `json:"categoryId" validate:"required,uuid"`
	ImageBase64   string        `json:"imageBase64"`
	ComplementIDs *[]string     `json:"complementIds"`
}

func (req menuItemRequest) input() service.MenuItemInput {
	in := service.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		CategoryID:  req.CategoryID,
		ImageBase64: req.ImageBase64,
	}
	if req.ComplementIDs != nil {
		in.ComplementIDs = *req.ComplementIDs
		in.ReplaceComplements = true
	}
	return in
}

type menuItemStatusRequest struct {
	MenuItemID string `json:"menuItemId" validate:"required,uuid"`
	IsActive   *bool  `json:"isActive" validate:"required"`
}

func (h *Handler) decodeMenuItem(w http.ResponseWriter, r *http.Request) (service.MenuItemInput, error) {
	var req menuItemRequest
	if err := decode(w, r, &req); err != nil {
		return service.MenuItemInput{}, err
	}
	if err := validMoney(req.Price); err != nil {
		return service.MenuItemInput{}, err
	}
	return req.input(), nil
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	in, err := h.decodeMenuItem(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	item, err := h.MenuItems.Create(r.Context(), p, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	q, err := listQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.MenuItems.List(r.Context(), p, q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"menuItems":  page.Items,
		"totalPages": page.TotalPages,
	})
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	item, err := h.MenuItems.Get(r.Context(), p, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	in, err := h.decodeMenuItem(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.MenuItems.Update(r.Context(), p, id, in); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setMenuItemStatus(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	var req menuItemStatusRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.MenuItems.SetActive(r.Context(), p, req.MenuItemID, *req.IsActive); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.MenuItems.Delete(r.Context(), p, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
