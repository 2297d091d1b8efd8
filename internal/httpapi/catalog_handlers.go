package httpapi

import (
	"net/http"
	"net/url"
	"time"

	"verifind.org/internal/auth"
	"verifind.org/internal/catalog"
	"verifind.org/internal/filter"
	"verifind.org/internal/ids"
	"verifind.org/internal/nav"
	"verifind.org/internal/obs"
	"verifind.org/internal/stream"
)

type casesPayload struct {
	filter.Result[catalog.Case]
	CanCreateCase bool `json:"can_create_case"`
}

type tipsPayload struct {
	filter.Result[catalog.Tip]
	Targets      []catalog.TipTarget `json:"targets"`
	CanSubmitTip bool                `json:"can_submit_tip"`
}

type alertsPayload struct {
	filter.Result[catalog.Alert]
	Summary catalog.AlertSummary `json:"summary"`
}

type viewResponse struct {
	View    nav.View      `json:"view"`
	State   nav.State     `json:"state"`
	Nav     []nav.NavItem `json:"nav"`
	Payload any           `json:"payload"`
}

type submissionResponse struct {
	SubmissionID string             `json:"submission_id"`
	Status       string             `json:"status"`
	Digest       string             `json:"digest"`
	ReceivedAt   time.Time          `json:"received_at"`
	Case         *catalog.CaseDraft `json:"case,omitempty"`
	Tip          *catalog.TipDraft  `json:"tip,omitempty"`
	Target       *catalog.TipTarget `json:"target,omitempty"`
}

// handleView resolves the session's screen and returns its payload. Query
// parameters feed the list filters of the cases, tips and alerts views.
func (a *API) handleView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}
	snap, err := a.sessions.Get(p.SessionID)
	if err != nil {
		handleSessionError(w, r, err)
		return
	}
	st := snap.State
	view := nav.ResolveView(st.Role, st.Section)
	obs.ViewResolved(string(view))

	payload, err := a.viewPayload(r, view, st.Role, r.URL.Query())
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, viewResponse{
		View:    view,
		State:   st,
		Nav:     nav.NavItems(st),
		Payload: payload,
	})
}

func (a *API) viewPayload(r *http.Request, view nav.View, role auth.Role, q url.Values) (any, error) {
	switch view {
	case nav.ViewRoleSelection:
		return catalog.Landing(), nil
	case nav.ViewCases:
		return a.casesPayload(r, role, q)
	case nav.ViewTips:
		return a.tipsPayload(r, role, q)
	case nav.ViewAlerts:
		return a.alertsPayload(r, q)
	case nav.ViewAnalytics:
		return catalog.Analytics(role), nil
	default:
		return catalog.Dashboard(role), nil
	}
}

func (a *API) casesPayload(r *http.Request, role auth.Role, q url.Values) (casesPayload, error) {
	res, err := a.catalog.Cases(r.Context(), filter.FromQuery(q, catalog.CaseSchema))
	if err != nil {
		return casesPayload{}, err
	}
	return casesPayload{Result: res, CanCreateCase: auth.CanPerform(auth.ActionCreateCase, role)}, nil
}

func (a *API) tipsPayload(r *http.Request, role auth.Role, q url.Values) (tipsPayload, error) {
	res, err := a.catalog.Tips(r.Context(), filter.FromQuery(q, catalog.TipSchema))
	if err != nil {
		return tipsPayload{}, err
	}
	targets, err := a.catalog.TipTargets(r.Context())
	if err != nil {
		return tipsPayload{}, err
	}
	if targets == nil {
		targets = []catalog.TipTarget{}
	}
	return tipsPayload{Result: res, Targets: targets, CanSubmitTip: auth.CanPerform(auth.ActionSubmitTip, role)}, nil
}

func (a *API) alertsPayload(r *http.Request, q url.Values) (alertsPayload, error) {
	res, err := a.catalog.Alerts(r.Context(), filter.FromQuery(q, catalog.AlertSchema))
	if err != nil {
		return alertsPayload{}, err
	}
	all, err := a.catalog.Alerts(r.Context(), filter.Criteria{})
	if err != nil {
		return alertsPayload{}, err
	}
	return alertsPayload{Result: res, Summary: catalog.SummarizeAlerts(all.Items)}, nil
}

func (a *API) handleLanding(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, catalog.Landing())
}

func (a *API) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	p, ok := requireRole(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, catalog.Dashboard(p.Role))
}

func (a *API) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	p, ok := requireRole(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, catalog.Analytics(p.Role))
}

func (a *API) handleAlerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	if _, ok := requireRole(w, r); !ok {
		return
	}
	payload, err := a.alertsPayload(r, r.URL.Query())
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (a *API) handleCases(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		p, ok := requireRole(w, r)
		if !ok {
			return
		}
		payload, err := a.casesPayload(r, p.Role, r.URL.Query())
		if err != nil {
			handleCatalogError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, payload)
	case http.MethodPost:
		a.submitCase(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handleTips(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		p, ok := requireRole(w, r)
		if !ok {
			return
		}
		payload, err := a.tipsPayload(r, p.Role, r.URL.Query())
		if err != nil {
			handleCatalogError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, payload)
	case http.MethodPost:
		a.submitTip(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

// submitCase validates and acknowledges a case draft. Drafts are not stored.
func (a *API) submitCase(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, auth.ActionCreateCase); !ok {
		return
	}
	var draft catalog.CaseDraft
	if err := decodeJSON(w, r, &draft); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	draft, err := draft.Normalize()
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}

	resp := submissionResponse{
		SubmissionID: ids.New(),
		Status:       "accepted",
		Digest:       draft.Digest(),
		ReceivedAt:   time.Now().UTC(),
		Case:         &draft,
	}
	obs.Submitted("case")
	a.audit(r.Context(), "case.submitted", map[string]any{
		"submission_id": resp.SubmissionID,
		"digest":        resp.Digest,
		"location":      draft.Location,
		"reward":        draft.Reward,
	})
	a.publishSubmission(r, stream.KindCaseSubmitted, resp.SubmissionID)
	writeJSON(w, http.StatusAccepted, resp)
}

// submitTip validates a tip against the cases currently seeking tips.
func (a *API) submitTip(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePermission(w, r, auth.ActionSubmitTip); !ok {
		return
	}
	var draft catalog.TipDraft
	if err := decodeJSON(w, r, &draft); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	draft, err := draft.Normalize()
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}
	target, err := catalog.ResolveTipTarget(r.Context(), a.catalog, draft.CaseID)
	if err != nil {
		handleCatalogError(w, r, err)
		return
	}

	resp := submissionResponse{
		SubmissionID: ids.New(),
		Status:       "accepted",
		Digest:       draft.Digest(),
		ReceivedAt:   time.Now().UTC(),
		Tip:          &draft,
		Target:       &target,
	}
	obs.Submitted("tip")
	a.audit(r.Context(), "tip.submitted", map[string]any{
		"submission_id": resp.SubmissionID,
		"case_id":       draft.CaseID,
	})
	a.publishSubmission(r, stream.KindTipSubmitted, draft.CaseID)
	writeJSON(w, http.StatusAccepted, resp)
}

func (a *API) publishSubmission(r *http.Request, kind stream.Kind, subject string) {
	if a.stream == nil {
		return
	}
	evt := stream.Event{Kind: kind, Subject: subject}
	if p, ok := auth.PrincipalFromContext(r.Context()); ok {
		evt.Role = p.Role.String()
	}
	a.stream.Publish(evt)
}
