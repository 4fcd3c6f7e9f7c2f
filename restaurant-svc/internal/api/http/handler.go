package httpapi

import (
	"net/http"
	"time"

	"kuchi/restaurant-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Guard       *service.Guard
	Credentials service.CredentialServiceInterface
	Categories  service.CategoryServiceInterface
	MenuItems   service.MenuItemServiceInterface
	Options     service.OptionServiceInterface
	Members     service.MemberServiceInterface
	Roles       service.RoleServiceInterface
	Activity    service.ActivityServiceInterface
	QR          service.QRGenerator
	Log         *logrus.Entry
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/healthz", h.healthCheck).Methods(http.MethodGet)

	r.HandleFunc("/restaurant/sign-up", h.signUp).Methods(http.MethodPost)
	r.HandleFunc("/restaurant/sign-in", h.signIn).Methods(http.MethodPost)
	r.HandleFunc("/restaurant/member/sign-in", h.memberSignIn).Methods(http.MethodPost)
	if h.Credentials.FederatedEnabled() {
		r.HandleFunc("/restaurant/member/google", h.memberGoogleSignIn).Methods(http.MethodPost)
	}

	r.Handle("/restaurant/me", h.authorize(service.AnyActiveMember, h.me)).Methods(http.MethodGet)

	// Both the paths existing clients call (/restaurant/role, POST /restaurant/members,
	// GET /restaurant/menu-item, id-less deletes) and their REST-style aliases are served.
	for _, path := range []string{"/restaurant/role", "/restaurant/roles"} {
		r.Handle(path, h.authorize(service.ManagementRoles, h.createRole)).Methods(http.MethodPost)
		r.Handle(path, h.authorize(service.AnyActiveMember, h.listRoles)).Methods(http.MethodGet)
	}

	r.Handle("/restaurant/members", h.authorize(service.ManagementRoles, h.createMember)).Methods(http.MethodPost)
	r.Handle("/restaurant/member", h.authorize(service.ManagementRoles, h.createMember)).Methods(http.MethodPost)
	r.Handle("/restaurant/members", h.authorize(service.AnyActiveMember, h.listMembers)).Methods(http.MethodGet)
	r.Handle("/restaurant/member", h.authorize(service.ManagementRoles, h.deleteMemberByQuery)).Methods(http.MethodDelete)
	r.Handle("/restaurant/member/{id}", h.authorize(service.ManagementRoles, h.getMember)).Methods(http.MethodGet)
	r.Handle("/restaurant/member/{id}", h.authorize(service.ManagementRoles, h.updateMember)).Methods(http.MethodPatch)
	r.Handle("/restaurant/members/{id}/status", h.authorize(service.ManagementRoles, h.setMemberStatus)).Methods(http.MethodPatch)
	r.Handle("/restaurant/member/{id}", h.authorize(service.ManagementRoles, h.deleteMember)).Methods(http.MethodDelete)

	r.Handle("/restaurant/categories", h.authorize(service.ManagementRoles, h.createCategory)).Methods(http.MethodPost)
	r.Handle("/restaurant/categories", h.authorize(service.AnyActiveMember, h.listCategories)).Methods(http.MethodGet)
	r.Handle("/restaurant/categories", h.authorize(service.ManagementRoles, h.updateCategory)).Methods(http.MethodPatch)
	r.Handle("/restaurant/categories", h.authorize(service.ManagementRoles, h.deleteCategoryByBody)).Methods(http.MethodDelete)
	r.Handle("/restaurant/categories-active", h.authorize(service.AnyActiveMember, h.listActiveCategories)).Methods(http.MethodGet)
	r.Handle("/restaurant/categories-status", h.authorize(service.ManagementRoles, h.setCategoryStatus)).Methods(http.MethodPatch)
	r.Handle("/restaurant/categories/{id}", h.authorize(service.ManagementRoles, h.getCategory)).Methods(http.MethodGet)
	r.Handle("/restaurant/categories/{id}", h.authorize(service.ManagementRoles, h.renameCategory)).Methods(http.MethodPatch)
	r.Handle("/restaurant/categories/{id}", h.authorize(service.ManagementRoles, h.deleteCategory)).Methods(http.MethodDelete)

	r.Handle("/restaurant/menu-item", h.authorize(service.MenuEditorRoles, h.createMenuItem)).Methods(http.MethodPost)
	r.Handle("/restaurant/menu-item", h.authorize(service.AnyActiveMember, h.listMenuItems)).Methods(http.MethodGet)
	r.Handle("/restaurant/menu-items", h.authorize(service.AnyActiveMember, h.listMenuItems)).Methods(http.MethodGet)
	r.Handle("/restaurant/status-menu-item", h.authorize(service.MenuEditorRoles, h.setMenuItemStatus)).Methods(http.MethodPatch)
	r.Handle("/restaurant/menu-item/{id}", h.authorize(service.ManagementRoles, h.getMenuItem)).Methods(http.MethodGet)
	r.Handle("/restaurant/menu-item/{id}", h.authorize(service.MenuEditorRoles, h.updateMenuItem)).Methods(http.MethodPatch)
	r.Handle("/restaurant/menu-item/{id}", h.authorize(service.ManagementRoles, h.deleteMenuItem)).Methods(http.MethodDelete)

	r.Handle("/restaurant/menu-item-option", h.authorize(service.MenuEditorRoles, h.createOption)).Methods(http.MethodPost)
	r.Handle("/restaurant/menu-item-option", h.authorize(service.AnyActiveMember, h.listOptions)).Methods(http.MethodGet)
	r.Handle("/restaurant/menu-item-options", h.authorize(service.AnyActiveMember, h.listOptions)).Methods(http.MethodGet)
	r.Handle("/restaurant/all-menu-item-option", h.authorize(service.AnyActiveMember, h.listActiveOptions)).Methods(http.MethodGet)
	r.Handle("/restaurant/menu-item-option/{id}", h.authorize(service.ManagementRoles, h.getOption)).Methods(http.MethodGet)
	r.Handle("/restaurant/menu-item-option/{id}", h.authorize(service.ManagementRoles, h.updateOption)).Methods(http.MethodPatch)
	r.Handle("/restaurant/menu-item-option/{id}/status", h.authorize(service.ManagementRoles, h.setOptionStatus)).Methods(http.MethodPatch)
	r.Handle("/restaurant/menu-item-option/{id}", h.authorize(service.ManagementRoles, h.deleteOption)).Methods(http.MethodDelete)

	r.Handle("/restaurant/qrcode", h.authorize(service.AnyActiveMember, h.menuQRCode)).Methods(http.MethodGet)
	r.Handle("/restaurant/activity", h.authorize(service.ManagementRoles, h.activity)).Methods(http.MethodGet)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "restaurant-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
