package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"atn-virtual/crewcenter/internal/auth"
	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/logging"
)

// AuthMiddleware accepts requests carrying a valid session token and stores
// the caller's claims in the request context
func AuthMiddleware(signer *common.TokenSigner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			authHeader := r.Header.Get("Authorization")

			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				common.RespondError(w, start, errors.New("Unauthorized. Missing session token"), "", http.StatusUnauthorized)
				return
			}

			session, err := signer.Validate(strings.TrimSpace(token))
			if err != nil {
				logging.Debug("Rejected session token", "error", err.Error(), "path", r.URL.Path)
				common.RespondError(w, start, errors.New("Unauthorized. Invalid session token"), "", http.StatusUnauthorized)
				return
			}

			claims := &auth.SessionClaims{
				Username:  session.Username,
				RoleValue: constants.ParsePilotRole(session.Role),
				TokenID:   session.TokenID,
				ExpiresAt: session.ExpiresAt,
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
