package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanPerformCreateCase(t *testing.T) {
	cases := map[Role]bool{
		RoleVisitor:        false,
		RoleLawEnforcement: true,
		RoleFamily:         true,
		RoleCommunity:      false,
	}
	for role, want := range cases {
		assert.Equalf(t, want, CanPerform(ActionCreateCase, role), "create_case for %s", role)
	}
}

func TestCanPerformSubmitTip(t *testing.T) {
	cases := map[Role]bool{
		RoleVisitor:        false,
		RoleLawEnforcement: false,
		RoleFamily:         true,
		RoleCommunity:      true,
	}
	for role, want := range cases {
		assert.Equalf(t, want, CanPerform(ActionSubmitTip, role), "submit_tip for %s", role)
	}
}

func TestCanPerformDeniesUnknown(t *testing.T) {
	assert.False(t, CanPerform(Action("delete_case"), RoleFamily))
	assert.False(t, CanPerform(ActionCreateCase, Role("admin")))
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("  Law_Enforcement ")
	require.NoError(t, err)
	assert.Equal(t, RoleLawEnforcement, r)

	_, err = ParseRole("sheriff")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("SUBMIT_TIP")
	require.NoError(t, err)
	assert.Equal(t, ActionSubmitTip, a)

	_, err = ParseAction("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProfileTable(t *testing.T) {
	assert.Equal(t, "Law Enforcement", Profile(RoleLawEnforcement).Label)
	assert.Equal(t, "Family Member", Profile(RoleFamily).Label)
	assert.Equal(t, "Community Member", Profile(RoleCommunity).Label)
	assert.Equal(t, "User", Profile(RoleVisitor).Label)
	assert.Equal(t, "User", Profile(Role("ghost")).Label)

	for _, r := range Roles {
		if r == RoleVisitor {
			continue
		}
		assert.Equalf(t, "dashboard", Profile(r).DefaultSection, "default section for %s", r)
	}
}

func TestProfileReturnsCopy(t *testing.T) {
	p := Profile(RoleFamily)
	p.Permissions[0] = Action("tampered")
	assert.True(t, CanPerform(ActionCreateCase, RoleFamily))
}

func TestPortalProfilesExcludeVisitor(t *testing.T) {
	portals := PortalProfiles()
	require.Len(t, portals, 3)
	for _, p := range portals {
		assert.NotEqual(t, RoleVisitor, p.Role)
		assert.NotEmpty(t, p.PortalTitle)
	}
}

func TestAllowedActions(t *testing.T) {
	assert.Equal(t, []Action{ActionCreateCase, ActionSubmitTip}, AllowedActions(RoleFamily))
	assert.Empty(t, AllowedActions(RoleVisitor))
}
