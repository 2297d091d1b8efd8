package nav

import "verifind.org/internal/auth"

// Controller owns one session's State. It is the only writer; callers get
// copies. It does no locking: every transition completes synchronously and
// callers that share a Controller across goroutines must serialise access.
type Controller struct {
	state State
}

// NewController returns a controller in the initial state.
func NewController() *Controller {
	return &Controller{state: Initial()}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Role returns the current role.
func (c *Controller) Role() auth.Role { return c.state.Role }

// Section returns the current section.
func (c *Controller) Section() Section { return c.state.Section }

// SelectRole switches role. Non-visitor roles land on their default section.
// Values outside the enumeration are ignored.
func (c *Controller) SelectRole(role auth.Role) {
	if !role.Valid() {
		return
	}
	c.state.Role = role
	if role != auth.RoleVisitor {
		c.state.Section = Section(auth.Profile(role).DefaultSection)
	}
}

// ChangeSection moves to section. It is a no-op for visitors, since the
// role-selection screen wins regardless of section.
func (c *Controller) ChangeSection(section Section) {
	if c.state.Role == auth.RoleVisitor {
		return
	}
	c.state.Section = section
}

// Logout returns the session to the initial state.
func (c *Controller) Logout() {
	c.state = Initial()
}

// View resolves the screen for the current state.
func (c *Controller) View() View {
	return ResolveView(c.state.Role, c.state.Section)
}

// CanPerform evaluates action against the current role.
func (c *Controller) CanPerform(action auth.Action) bool {
	return auth.CanPerform(action, c.state.Role)
}
