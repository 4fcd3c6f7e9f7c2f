package httpapi

import (
	"net/http"

	"kuchi/restaurant-svc/internal/domain"
	"kuchi/restaurant-svc/internal/service"
)

type createMemberRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	RoleID   string `json:"roleId" validate:"required,uuid"`
}

type updateMemberRequest struct {
	Name            string `json:"name" validate:"required,max=120"`
	Email           string `json:"email" validate:"required,email"`
	RoleID          string `json:"roleId" validate:"required,uuid"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" validate:"omitempty,min=8,max=72"`
}

func (h *Handler) createMember(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	var req createMemberRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	member, err := h.Members.Create(r.Context(), p, service.NewMemberInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	q, err := listQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.Members.List(r.Context(), p, q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"members":    page.Items,
		"totalPages": page.TotalPages,
	})
}

func (h *Handler) getMember(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	member, err := h.Members.Get(r.Context(), p, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *Handler) updateMember(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req updateMemberRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	err = h.Members.Update(r.Context(), p, id, service.UpdateMemberInput{
		Name:            req.Name,
		Email:           req.Email,
		RoleID:          req.RoleID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setMemberStatus(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
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
	if err := h.Members.SetActive(r.Context(), p, id, *req.IsActive); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteMember(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Members.Delete(r.Context(), p, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deleteMemberByQuery serves DELETE /restaurant/member?memberId=.
func (h *Handler) deleteMemberByQuery(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	id, err := queryID(r, "memberId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Members.Delete(r.Context(), p, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
