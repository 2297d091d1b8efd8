package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verifind.org/internal/auth"
)

var allSections = []Section{SectionHome, SectionDashboard, SectionCases, SectionTips, SectionAlerts, SectionAnalytics}

func TestResolveViewNonVisitor(t *testing.T) {
	for _, role := range []auth.Role{auth.RoleLawEnforcement, auth.RoleFamily, auth.RoleCommunity} {
		for _, s := range []Section{SectionDashboard, SectionCases, SectionTips, SectionAlerts, SectionAnalytics} {
			assert.Equal(t, View(s), ResolveView(role, s), "role=%s section=%s", role, s)
		}
		assert.Equal(t, ViewDashboard, ResolveView(role, SectionHome))
		assert.Equal(t, ViewDashboard, ResolveView(role, Section("settings")))
		assert.Equal(t, ViewDashboard, ResolveView(role, Section("")))
	}
}

func TestResolveViewVisitor(t *testing.T) {
	for _, s := range append(allSections, Section("bogus")) {
		assert.Equal(t, ViewRoleSelection, ResolveView(auth.RoleVisitor, s), "section=%s", s)
	}
}

func TestParseSection(t *testing.T) {
	s, err := ParseSection(" Alerts ")
	require.NoError(t, err)
	assert.Equal(t, SectionAlerts, s)

	s, err = ParseSection("home")
	require.NoError(t, err)
	assert.Equal(t, SectionHome, s)

	_, err = ParseSection("settings")
	assert.ErrorIs(t, err, auth.ErrInvalidInput)
}

func TestNavItems(t *testing.T) {
	assert.Empty(t, NavItems(Initial()))

	items := NavItems(State{Role: auth.RoleFamily, Section: SectionTips})
	require.Len(t, items, 5)
	for _, it := range items {
		assert.Equal(t, it.ID == SectionTips, it.Active, "item %s", it.ID)
	}
	assert.Equal(t, "Dashboard", items[0].Label)
}
