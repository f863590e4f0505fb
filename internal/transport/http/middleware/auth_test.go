package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"paycalc/internal/domain/auth"
)

func TestAuthMiddlewareSetsUser(t *testing.T) {
	secret := "test-secret"
	token, err := auth.GenerateToken(secret, "alice", []string{auth.PermPayrollReport}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	called := false
	handler := Auth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		user, ok := GetUser(r.Context())
		if !ok {
			t.Fatal("expected user in context")
		}
		if user.Subject != "alice" || !user.Has(auth.PermPayrollReport) {
			t.Fatalf("unexpected user: %+v", user)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if !called {
		t.Fatal("expected handler to run")
	}
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	handler := Auth("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); ok {
			t.Fatal("did not expect user in context")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestRequirePermission(t *testing.T) {
	secret := "test-secret"
	reportOnly, err := auth.GenerateToken(secret, "bob", []string{auth.PermPayrollReport}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	cases := []struct {
		name    string
		enforce bool
		token   string
		want    int
	}{
		{"not enforced", false, "", http.StatusNoContent},
		{"anonymous", true, "", http.StatusUnauthorized},
		{"missing permission", true, reportOnly, http.StatusForbidden},
	}
	for _, tc := range cases {
		handler := Auth(secret)(RequirePermission(auth.PermPayrollExport, tc.enforce)(noContent()))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/report.pdf", nil)
		if tc.token != "" {
			req.Header.Set("Authorization", "Bearer "+tc.token)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, rec.Code)
		}
	}
}
