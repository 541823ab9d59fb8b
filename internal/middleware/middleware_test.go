package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atn-virtual/crewcenter/internal/auth"
	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/constants"
)

func echoUser(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUserClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	w.Write([]byte(claims.UserID()))
}

func TestAuthMiddleware(t *testing.T) {
	signer := common.NewTokenSigner([]byte("secret"), time.Hour)
	handler := AuthMiddleware(signer)(http.HandlerFunc(echoUser))
	token, _, _ := signer.Issue("THT1004", "regular")

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/roster", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.status {
				t.Errorf("Expected %d, got %d", tt.status, rr.Code)
			}
			if tt.status == http.StatusOK && rr.Body.String() != "THT1004" {
				t.Errorf("Expected claims in context, got %q", rr.Body.String())
			}
		})
	}
}

func TestIsStaffMiddleware(t *testing.T) {
	handler := IsStaffMiddleware()(http.HandlerFunc(echoUser))

	for role, want := range map[string]int{"staff": http.StatusOK, "regular": http.StatusForbidden} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := auth.SetUserClaims(req.Context(), &auth.SessionClaims{Username: "x", RoleValue: constants.PilotRole(role)})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req.WithContext(ctx))
		if rr.Code != want {
			t.Errorf("role %s: expected %d, got %d", role, want, rr.Code)
		}
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", nil)
		req.RemoteAddr = "192.0.2.10:5000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	if codes[0] != http.StatusAccepted || codes[1] != http.StatusAccepted || codes[2] != http.StatusTooManyRequests {
		t.Errorf("Unexpected status sequence %v", codes)
	}

	other := httptest.NewRequest(http.MethodPost, "/api/v1/contact", nil)
	other.RemoteAddr = "192.0.2.11:5000"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, other)
	if rr.Code != http.StatusAccepted {
		t.Errorf("Expected separate bucket per IP, got %d", rr.Code)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = auth.GetRequestID(r.Context())
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rr.Header().Get("X-Request-ID") != seen {
		t.Errorf("Expected generated request id, got %q / %q", seen, rr.Header().Get("X-Request-ID"))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "given")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "given" {
		t.Errorf("Expected caller request id, got %q", seen)
	}
}
