package domain

const (
	RoleAdmin            = "Admin"
	RoleManager          = "Gerente"
	RoleTechnicalSupport = "Suporte Técnico"
	RoleMarketing        = "Marketing"
)

// DefaultRoles are seeded at schema creation.
var DefaultRoles = []string{RoleAdmin, RoleManager, RoleTechnicalSupport, RoleMarketing}

// RoleSet is the allow-list of role names an endpoint accepts.
// A nil RoleSet admits any active member.
type RoleSet map[string]struct{}

func NewRoleSet(names ...string) RoleSet {
	set := make(RoleSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func (s RoleSet) Allows(role string) bool {
	if s == nil {
		return true
	}
	_, ok := s[role]
	return ok
}

// With returns a copy of s extended with names.
func (s RoleSet) With(names ...string) RoleSet {
	out := make(RoleSet, len(s)+len(names))
	for n := range s {
		out[n] = struct{}{}
	}
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}
