package auth

import (
	"fmt"
	"strings"
)

// Role is the identity a session operates as.
type Role string

const (
	RoleVisitor        Role = "visitor"
	RoleLawEnforcement Role = "law_enforcement"
	RoleFamily         Role = "family"
	RoleCommunity      Role = "community"
)

// Action is a gated capability evaluated against a role.
type Action string

const (
	ActionCreateCase Action = "create_case"
	ActionSubmitTip  Action = "submit_tip"
)

// Roles lists every role in presentation order.
var Roles = []Role{RoleVisitor, RoleLawEnforcement, RoleFamily, RoleCommunity}

// Actions lists every gated action.
var Actions = []Action{ActionCreateCase, ActionSubmitTip}

// RoleProfile carries everything the service varies per role: copy,
// permissions and the section a role lands on after selection.
type RoleProfile struct {
	Role              Role     `json:"role"`
	Label             string   `json:"label"`
	Permissions       []Action `json:"permissions"`
	DefaultSection    string   `json:"default_section"`
	DashboardTitle    string   `json:"dashboard_title"`
	AnalyticsTitle    string   `json:"analytics_title"`
	PortalTitle       string   `json:"portal_title,omitempty"`
	PortalDescription string   `json:"portal_description,omitempty"`
}

var profiles = map[Role]RoleProfile{
	RoleVisitor: {
		Role:           RoleVisitor,
		Label:          "User",
		DefaultSection: "home",
		DashboardTitle: "Dashboard",
		AnalyticsTitle: "System Analytics",
	},
	RoleLawEnforcement: {
		Role:              RoleLawEnforcement,
		Label:             "Law Enforcement",
		Permissions:       []Action{ActionCreateCase},
		DefaultSection:    "dashboard",
		DashboardTitle:    "Law Enforcement Dashboard",
		AnalyticsTitle:    "Investigation Analytics",
		PortalTitle:       "Law Enforcement Portal",
		PortalDescription: "Register cases, verify tips, manage investigations with full blockchain transparency",
	},
	RoleFamily: {
		Role:              RoleFamily,
		Label:             "Family Member",
		Permissions:       []Action{ActionCreateCase, ActionSubmitTip},
		DefaultSection:    "dashboard",
		DashboardTitle:    "Family Member Dashboard",
		AnalyticsTitle:    "Case Progress Analytics",
		PortalTitle:       "Family Member Portal",
		PortalDescription: "Submit missing person cases, track progress, receive real-time updates",
	},
	RoleCommunity: {
		Role:              RoleCommunity,
		Label:             "Community Member",
		Permissions:       []Action{ActionSubmitTip},
		DefaultSection:    "dashboard",
		DashboardTitle:    "Community Member Dashboard",
		AnalyticsTitle:    "Community Impact Analytics",
		PortalTitle:       "Community Member Portal",
		PortalDescription: "Receive alerts, submit tips, earn rewards for verified contributions",
	},
}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	_, ok := profiles[r]
	return ok
}

func (r Role) String() string { return string(r) }

// Valid reports whether a is one of the enumerated actions.
func (a Action) Valid() bool {
	return a == ActionCreateCase || a == ActionSubmitTip
}

// ParseRole normalises raw input into a Role.
func ParseRole(raw string) (Role, error) {
	r := Role(strings.TrimSpace(strings.ToLower(raw)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: unsupported role %q", ErrInvalidInput, raw)
	}
	return r, nil
}

// ParseAction normalises raw input into an Action.
func ParseAction(raw string) (Action, error) {
	a := Action(strings.TrimSpace(strings.ToLower(raw)))
	if !a.Valid() {
		return "", fmt.Errorf("%w: unsupported action %q", ErrInvalidInput, raw)
	}
	return a, nil
}

// Profile returns the table entry for r. Unknown roles get the visitor profile.
func Profile(r Role) RoleProfile {
	p, ok := profiles[r]
	if !ok {
		p = profiles[RoleVisitor]
	}
	p.Permissions = append([]Action(nil), p.Permissions...)
	return p
}

// PortalProfiles returns the profiles offered on the role-selection screen.
func PortalProfiles() []RoleProfile {
	out := make([]RoleProfile, 0, len(Roles)-1)
	for _, r := range Roles {
		if r == RoleVisitor {
			continue
		}
		out = append(out, Profile(r))
	}
	return out
}

// CanPerform reports whether role may perform action. Only UI affordance:
// nothing downstream stores the result.
func CanPerform(action Action, role Role) bool {
	p, ok := profiles[role]
	if !ok {
		return false
	}
	for _, granted := range p.Permissions {
		if granted == action {
			return true
		}
	}
	return false
}

// AllowedActions lists the actions role may perform, in catalog order.
func AllowedActions(role Role) []Action {
	var out []Action
	for _, a := range Actions {
		if CanPerform(a, role) {
			out = append(out, a)
		}
	}
	return out
}
