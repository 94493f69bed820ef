package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dkraev/inkpress/internal/common"
	serverm "github.com/dkraev/inkpress/internal/server/models"
)

type contextKey string

const (
	userContextKey    contextKey = "user"
	sessionContextKey contextKey = "session"
)

// requireAuth resolves the bearer token to a user and session and stores
// both in the request context. Requests without a valid, unrevoked session
// are rejected with 401.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			h.writeError(w, r, fmt.Errorf("missing bearer token: %w", common.ErrUnauthorized))
			return
		}
		token := strings.TrimSpace(header[7:])

		user, sessionID, err := h.accounts.Authenticate(r.Context(), token)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		ctx = context.WithValue(ctx, sessionContextKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func currentUser(r *http.Request) *serverm.User {
	user, _ := r.Context().Value(userContextKey).(*serverm.User)
	return user
}

func currentSessionID(r *http.Request) string {
	id, _ := r.Context().Value(sessionContextKey).(string)
	return id
}
