package httpapi

import (
	"context"
	"net/http"
	"time"

	"verifind.org/internal/audit"
	"verifind.org/internal/auth"
	"verifind.org/internal/nav"
	"verifind.org/internal/obs"
	"verifind.org/internal/session"
	"verifind.org/internal/stream"
)

type sessionResponse struct {
	SessionID string          `json:"session_id"`
	Token     string          `json:"token,omitempty"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
	Role      auth.Role       `json:"role"`
	RoleLabel string          `json:"role_label"`
	Section   nav.Section     `json:"section"`
	View      nav.View        `json:"view"`
	Nav       []nav.NavItem   `json:"nav"`
	Actions   []auth.Action   `json:"actions"`
	Portals   []portalSummary `json:"portals,omitempty"`
}

type portalSummary struct {
	Role        auth.Role `json:"role"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

type selectRoleRequest struct {
	Role string `json:"role"`
}

type changeSectionRequest struct {
	Section string `json:"section"`
}

func newSessionResponse(snap session.Snapshot) sessionResponse {
	st := snap.State
	resp := sessionResponse{
		SessionID: snap.ID,
		Role:      st.Role,
		RoleLabel: auth.Profile(st.Role).Label,
		Section:   st.Section,
		View:      nav.ResolveView(st.Role, st.Section),
		Nav:       nav.NavItems(st),
		Actions:   auth.AllowedActions(st.Role),
	}
	if resp.Actions == nil {
		resp.Actions = []auth.Action{}
	}
	if st.Role == auth.RoleVisitor {
		for _, p := range auth.PortalProfiles() {
			resp.Portals = append(resp.Portals, portalSummary{Role: p.Role, Title: p.PortalTitle, Description: p.PortalDescription})
		}
	}
	return resp
}

func (a *API) handleSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	snap := a.sessions.Create()
	token, expires, err := a.signer.GenerateToken(snap.ID, a.tokenTTL)
	if err != nil {
		_ = a.sessions.Delete(snap.ID)
		writeError(w, r, http.StatusInternalServerError, "token issuance failed")
		return
	}
	ctx := auth.ContextWithSession(r.Context(), snap.ID)
	a.audit(ctx, "session.create", nil)

	resp := newSessionResponse(snap)
	resp.Token = token
	resp.ExpiresAt = &expires
	w.Header().Set("Location", "/v1/session")
	writeJSON(w, http.StatusCreated, resp)
}

func (a *API) handleSession(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		snap, err := a.sessions.Get(p.SessionID)
		if err != nil {
			handleSessionError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, newSessionResponse(snap))
	case http.MethodDelete:
		if err := a.sessions.Delete(p.SessionID); err != nil {
			handleSessionError(w, r, err)
			return
		}
		a.audit(r.Context(), "session.delete", nil)
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodDelete)
	}
}

func (a *API) handleSelectRole(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var req selectRoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	role, err := auth.ParseRole(req.Role)
	if err != nil {
		handleSessionError(w, r, err)
		return
	}
	snap, err := a.sessions.Update(p.SessionID, func(c *nav.Controller) {
		c.SelectRole(role)
	})
	if err != nil {
		handleSessionError(w, r, err)
		return
	}
	obs.RoleSelected(role.String())
	ctx := auth.ContextWithPrincipal(r.Context(), auth.NewPrincipal(snap.ID, snap.State.Role))
	a.audit(ctx, "session.role_selected", map[string]any{
		"previous_role": p.Role.String(),
		"section":       string(snap.State.Section),
	})
	a.publishState(stream.KindRoleSelected, snap)
	writeJSON(w, http.StatusOK, newSessionResponse(snap))
}

func (a *API) handleChangeSection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var req changeSectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	section, err := nav.ParseSection(req.Section)
	if err != nil {
		handleSessionError(w, r, err)
		return
	}
	var before nav.State
	snap, err := a.sessions.Update(p.SessionID, func(c *nav.Controller) {
		before = c.State()
		c.ChangeSection(section)
	})
	if err != nil {
		handleSessionError(w, r, err)
		return
	}
	if snap.State != before {
		a.audit(r.Context(), "session.section_changed", map[string]any{
			"from": string(before.Section),
			"to":   string(snap.State.Section),
		})
		a.publishState(stream.KindSectionChanged, snap)
	}
	writeJSON(w, http.StatusOK, newSessionResponse(snap))
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}
	snap, err := a.sessions.Update(p.SessionID, func(c *nav.Controller) {
		c.Logout()
	})
	if err != nil {
		handleSessionError(w, r, err)
		return
	}
	a.audit(r.Context(), "session.logout", nil)
	a.publishState(stream.KindLogout, snap)
	writeJSON(w, http.StatusOK, newSessionResponse(snap))
}

func (a *API) publishState(kind stream.Kind, snap session.Snapshot) {
	if a.stream == nil {
		return
	}
	a.stream.Publish(stream.Event{
		Kind:    kind,
		Role:    snap.State.Role.String(),
		Section: string(snap.State.Section),
		View:    string(nav.ResolveView(snap.State.Role, snap.State.Section)),
	})
}

func (a *API) audit(ctx context.Context, event string, fields map[string]any) {
	_ = audit.LogEvent(ctx, event, fields)
}
