package middleware

import (
	"errors"
	"net/http"
	"time"

	"atn-virtual/crewcenter/internal/auth"
	"atn-virtual/crewcenter/internal/common"
)

func IsStaffMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetUserClaims(r.Context())

			if claims != nil && claims.IsStaff() {
				next.ServeHTTP(w, r)
				return
			}
			common.RespondError(w, time.Now(), errors.New("Forbidden. Need staff perms"), "", http.StatusForbidden)
		})
	}
}
