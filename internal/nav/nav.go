// Package nav holds the role and navigation state machine that decides
// which screen a session sees and which actions it may take.
package nav

import (
	"fmt"
	"strings"

	"verifind.org/internal/auth"
)

// Section selects the screen inside a non-visitor session.
type Section string

const (
	SectionHome      Section = "home"
	SectionDashboard Section = "dashboard"
	SectionCases     Section = "cases"
	SectionTips      Section = "tips"
	SectionAlerts    Section = "alerts"
	SectionAnalytics Section = "analytics"
)

// View identifies the screen to render.
type View string

const (
	ViewRoleSelection View = "role-selection"
	ViewDashboard     View = View(SectionDashboard)
	ViewCases         View = View(SectionCases)
	ViewTips          View = View(SectionTips)
	ViewAlerts        View = View(SectionAlerts)
	ViewAnalytics     View = View(SectionAnalytics)
)

// navigable sections in header order, with their labels.
var navigable = []struct {
	section Section
	label   string
}{
	{SectionDashboard, "Dashboard"},
	{SectionCases, "Cases"},
	{SectionTips, "Tips"},
	{SectionAlerts, "Alerts"},
	{SectionAnalytics, "Analytics"},
}

// Navigable reports whether s is one of the five screens a role can open.
func (s Section) Navigable() bool {
	for _, n := range navigable {
		if n.section == s {
			return true
		}
	}
	return false
}

// Valid reports whether s is any enumerated section, home included.
func (s Section) Valid() bool {
	return s == SectionHome || s.Navigable()
}

// ParseSection normalises raw input into a Section.
func ParseSection(raw string) (Section, error) {
	s := Section(strings.TrimSpace(strings.ToLower(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: unsupported section %q", auth.ErrInvalidInput, raw)
	}
	return s, nil
}

// State is the (role, section) pair a session is in.
type State struct {
	Role    auth.Role `json:"role"`
	Section Section   `json:"section"`
}

// Initial is the state of a fresh or logged-out session.
func Initial() State {
	return State{Role: auth.RoleVisitor, Section: SectionHome}
}

// ResolveView returns the screen for the given state. Visitors always land
// on role selection; anything outside the navigable set degrades to the
// dashboard.
func ResolveView(role auth.Role, section Section) View {
	if role == auth.RoleVisitor {
		return ViewRoleSelection
	}
	if section.Navigable() {
		return View(section)
	}
	return ViewDashboard
}

// NavItem is one header navigation entry.
type NavItem struct {
	ID     Section `json:"id"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// NavItems builds the header navigation for st. Visitors have none.
func NavItems(st State) []NavItem {
	if st.Role == auth.RoleVisitor {
		return []NavItem{}
	}
	items := make([]NavItem, 0, len(navigable))
	for _, n := range navigable {
		items = append(items, NavItem{ID: n.section, Label: n.label, Active: st.Section == n.section})
	}
	return items
}
