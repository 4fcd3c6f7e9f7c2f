package httpapi

import (
	"net/http"

	"kuchi/restaurant-svc/internal/domain"
)

type signUpRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type memberSignInRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	RestaurantID string `json:"restaurantId" validate:"required,uuid"`
}

type googleSignInRequest struct {
	IDToken      string `json:"idToken" validate:"required"`
	RestaurantID string `json:"restaurantId" validate:"required,uuid"`
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	rest, err := h.Credentials.SignUp(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, domain.Session{ID: rest.ID, Email: rest.Email, Name: rest.Name})
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	session, err := h.Credentials.AuthenticateRestaurant(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) memberSignIn(w http.ResponseWriter, r *http.Request) {
	var req memberSignInRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	session, err := h.Credentials.AuthenticateMember(r.Context(), req.Email, req.Password, req.RestaurantID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) memberGoogleSignIn(w http.ResponseWriter, r *http.Request) {
	var req googleSignInRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	session, err := h.Credentials.SignInWithIDToken(r.Context(), req.IDToken, req.RestaurantID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	writeJSON(w, http.StatusOK, p.Member)
}
