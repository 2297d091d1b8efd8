package auth

import (
	"context"
	"testing"
)

func TestPrincipalPermissions(t *testing.T) {
	principal := NewPrincipal("s1", RoleCommunity)

	if !principal.HasPermission(ActionSubmitTip) {
		t.Fatalf("expected permission")
	}
	if principal.HasPermission(ActionCreateCase) {
		t.Fatalf("unexpected permission")
	}
}

func TestPrincipalContextRoundTrip(t *testing.T) {
	ctx := ContextWithPrincipal(context.Background(), NewPrincipal("s-42", RoleFamily))

	got, ok := PrincipalFromContext(ctx)
	if !ok {
		t.Fatal("principal missing from context")
	}
	if got.Role != RoleFamily || got.SessionID != "s-42" {
		t.Fatalf("unexpected principal: %+v", got)
	}
	if id, ok := SessionIDFromContext(ctx); !ok || id != "s-42" {
		t.Fatalf("unexpected session id: %q", id)
	}
	if _, ok := PrincipalFromContext(context.Background()); ok {
		t.Fatal("expected no principal on empty context")
	}
}
