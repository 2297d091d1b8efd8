package auth

// Principal represents an authenticated session with its current role.
type Principal struct {
	SessionID   string
	Role        Role
	Permissions map[Action]struct{}
}

// NewPrincipal resolves the permission set for role from the role table.
func NewPrincipal(sessionID string, role Role) Principal {
	allowed := AllowedActions(role)
	set := make(map[Action]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return Principal{SessionID: sessionID, Role: role, Permissions: set}
}

// HasPermission reports whether the principal can execute action.
func (p Principal) HasPermission(action Action) bool {
	_, ok := p.Permissions[action]
	return ok
}
