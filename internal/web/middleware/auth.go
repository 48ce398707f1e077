package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/summitops/regdesk/internal/config"
)

// PasscodeAuth returns middleware that validates the X-Access-Passcode
// header against the configured secrets. An X-Desk-Role header selects a
// per-role secret; the global passcode is accepted for any role.
func PasscodeAuth(cfg *config.SecurityConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passcode := r.Header.Get("X-Access-Passcode")
			if passcode == "" {
				slog.Warn("auth: missing passcode",
					"path", r.URL.Path,
					"method", r.Method,
					"remote_addr", r.RemoteAddr,
				)
				http.Error(w, `{"error":"missing passcode","code":"AUTH001"}`, http.StatusUnauthorized)
				return
			}

			if !ValidPasscode(passcode, r.Header.Get("X-Desk-Role"), cfg) {
				slog.Warn("auth: invalid passcode",
					"path", r.URL.Path,
					"method", r.Method,
					"remote_addr", r.RemoteAddr,
				)
				http.Error(w, `{"error":"incorrect passcode","code":"AUTH001"}`, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ValidPasscode checks the presented secret against the global passcode and
// the role's secret, when a role is given. All candidates are compared in
// constant time and every candidate is always checked, so comparison time
// does not reveal which secret matched.
func ValidPasscode(passcode, role string, cfg *config.SecurityConfig) bool {
	candidates := make([]string, 0, 2)
	if cfg.Passcode != "" {
		candidates = append(candidates, cfg.Passcode)
	}
	if role != "" {
		if secret, ok := cfg.RolePasscodeMap()[role]; ok {
			candidates = append(candidates, secret)
		}
	}

	valid := 0
	for _, candidate := range candidates {
		valid |= subtle.ConstantTimeCompare([]byte(passcode), []byte(candidate))
	}
	return valid == 1
}
