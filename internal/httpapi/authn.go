package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"verifind.org/internal/auth"
)

const (
	authHeader = "Authorization"
	bearer     = "Bearer "
	// EventSource cannot set headers, so the stream also accepts the token
	// as a query parameter.
	streamTokenParam = "access_token"
)

var publicPaths = []string{
	"/v1/sessions",
	"/v1/landing",
	"/v1/info",
	"/metrics",
	"/healthz",
	"/readyz",
}

// withAuth resolves the bearer token to a live session and attaches the
// session's principal, built from its current role, to the request context.
func (a *API) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions || isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		raw := r.Header.Get(authHeader)
		if raw == "" && r.URL.Path == "/v1/stream" {
			if q := r.URL.Query().Get(streamTokenParam); q != "" {
				raw = bearer + q
			}
		}
		token, err := extractBearerToken(raw)
		if err != nil {
			writeError(w, r, http.StatusUnauthorized, err.Error())
			return
		}

		claims, err := a.signer.ParseAndValidate(token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				writeError(w, r, http.StatusUnauthorized, "invalid token")
				return
			}
			writeError(w, r, http.StatusInternalServerError, "authentication error")
			return
		}

		snap, err := a.sessions.Get(claims.Subject)
		if err != nil {
			handleSessionError(w, r, err)
			return
		}

		ctx := auth.ContextWithPrincipal(r.Context(), auth.NewPrincipal(snap.ID, snap.State.Role))
		ctx = auth.ContextWithToken(ctx, token)
		ctx = auth.ContextWithSession(ctx, snap.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// principal returns the request principal or writes 401.
func principal(w http.ResponseWriter, r *http.Request) (auth.Principal, bool) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, auth.ErrUnauthorized.Error())
		return auth.Principal{}, false
	}
	return p, true
}

// requireRole rejects visitors, who can only reach role selection.
func requireRole(w http.ResponseWriter, r *http.Request) (auth.Principal, bool) {
	p, ok := principal(w, r)
	if !ok {
		return p, false
	}
	if p.Role == auth.RoleVisitor {
		writeError(w, r, http.StatusForbidden, "select a role first")
		return p, false
	}
	return p, true
}

// requirePermission rejects principals whose role lacks action.
func requirePermission(w http.ResponseWriter, r *http.Request, action auth.Action) (auth.Principal, bool) {
	p, ok := principal(w, r)
	if !ok {
		return p, false
	}
	if !p.HasPermission(action) {
		writeError(w, r, http.StatusForbidden, auth.ErrForbidden.Error()+": "+string(action)+" not allowed for "+auth.Profile(p.Role).Label)
		return p, false
	}
	return p, true
}

func extractBearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", errors.New("missing bearer token")
	}
	if !strings.HasPrefix(strings.ToLower(header), strings.ToLower(bearer)) {
		return "", errors.New("invalid authorization scheme")
	}
	token := strings.TrimSpace(header[len(bearer):])
	if token == "" {
		return "", errors.New("missing bearer token")
	}
	return token, nil
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	return false
}
