package httpapi

import (
	"net/http"

	"kuchi/restaurant-svc/internal/domain"
)

type categoryRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

type updateCategoryRequest struct {
	CategoryID string `json:"categoryId" validate:"required,uuid"`
	Name       string `json:"name" validate:"required,max=80"`
	IsActive   *bool  `json:"isActive" validate:"required"`
}

type deleteCategoryRequest struct {
	CategoryID string `json:"categoryId" validate:"required,uuid"`
}

type categoryStatusRequest struct {
	CategoryID string `json:"categoryId" validate:"required,uuid"`
	IsActive   *bool  `json:"isActive" validate:"required"`
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	var req categoryRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	category, err := h.Categories.Create(r.Context(), p, req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	q, err := listQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.Categories.List(r.Context(), p, q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": page.Items,
		"totalPages": page.TotalPages,
	})
}

func (h *Handler) listActiveCategories(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	refs, err := h.Categories.ListActive(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, refs)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	category, err := h.Categories.Get(r.Context(), p, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) renameCategory(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req categoryRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Categories.Rename(r.Context(), p, id, req.Name); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	var req updateCategoryRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Categories.Update(r.Context(), p, req.CategoryID, req.Name, *req.IsActive); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setCategoryStatus(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	var req categoryStatusRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Categories.SetActive(r.Context(), p, req.CategoryID, *req.IsActive); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Categories.Delete(r.Context(), p, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deleteCategoryByBody serves DELETE /restaurant/categories with {categoryId}.
func (h *Handler) deleteCategoryByBody(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	var req deleteCategoryRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Categories.Delete(r.Context(), p, req.CategoryID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
