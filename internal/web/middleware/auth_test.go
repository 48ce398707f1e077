package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/summitops/regdesk/internal/config"
)

func gateConfig() *config.SecurityConfig {
	return &config.SecurityConfig{
		Passcode:      "sesame",
		RolePasscodes: []string{"lodging-desk:room42"},
	}
}

func TestValidPasscode(t *testing.T) {
	tests := []struct {
		name     string
		passcode string
		role     string
		want     bool
	}{
		{"global passcode", "sesame", "", true},
		{"global passcode with role", "sesame", "lodging-desk", true},
		{"role secret", "room42", "lodging-desk", true},
		{"role secret without role", "room42", "", false},
		{"role secret against wrong role", "room42", "transit-desk", false},
		{"wrong passcode", "guess", "", false},
		{"empty passcode", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidPasscode(tt.passcode, tt.role, gateConfig())
			if got != tt.want {
				t.Errorf("ValidPasscode(%q, %q) = %v, want %v", tt.passcode, tt.role, got, tt.want)
			}
		})
	}
}

func TestValidPasscode_NoSecretsConfigured(t *testing.T) {
	cfg := &config.SecurityConfig{}
	if ValidPasscode("", "", cfg) {
		t.Error("ValidPasscode accepted an empty passcode against no configured secrets")
	}
}

func TestPasscodeAuth(t *testing.T) {
	handler := PasscodeAuth(gateConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		passcode   string
		role       string
		wantStatus int
	}{
		{"valid", "sesame", "", http.StatusOK},
		{"valid role secret", "room42", "lodging-desk", http.StatusOK},
		{"missing", "", "", http.StatusUnauthorized},
		{"invalid", "guess", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
			if tt.passcode != "" {
				req.Header.Set("X-Access-Passcode", tt.passcode)
			}
			if tt.role != "" {
				req.Header.Set("X-Desk-Role", tt.role)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
