package web

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/summitops/regdesk/internal/core"
	"github.com/summitops/regdesk/internal/logging"
	"github.com/summitops/regdesk/internal/store"
	"github.com/summitops/regdesk/internal/web/middleware"
)

// handleIndex serves the embedded lookup page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// handleSearch resolves a single registrant, by submission ID or by name,
// and returns the projection for the caller's role.
//
// Query parameters: submission_id, or first_name+last_name with optional
// middle_name, birthday, and fuzzy (0-100 tolerance override); role selects
// the projection.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	role := strings.TrimSpace(q.Get("role"))

	var (
		rec core.ProjectedRecord
		err error
	)
	if id := strings.TrimSpace(q.Get("submission_id")); id != "" {
		rec, err = s.service.LookupByID(r.Context(), id, role)
	} else {
		tolerance := 0
		if f := q.Get("fuzzy"); f != "" {
			tolerance, err = strconv.Atoi(f)
			if err != nil || tolerance < 0 || tolerance > 100 {
				s.respondError(w, r, core.ErrBadRequest)
				return
			}
		}
		rec, err = s.service.LookupByName(r.Context(), core.NameQuery{
			First:     q.Get("first_name"),
			Middle:    q.Get("middle_name"),
			Last:      q.Get("last_name"),
			Birthday:  q.Get("birthday"),
			Tolerance: tolerance,
		}, role)
	}
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("registrant resolved", "role", rec.Role)
	writeJSON(w, r, rec)
}

// handleSuggest returns typeahead candidates for a partial name query.
// Always 200 with a possibly empty list, unless the source itself fails.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	suggestions, err := s.service.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, r, suggestions)
}

// handleAttachment resolves and streams one attachment. The fetch handle is
// released on every exit path; a failing store surfaces as 502, distinct
// from a missing record or attachment (404).
func (s *Server) handleAttachment(w http.ResponseWriter, r *http.Request) {
	submissionID := chi.URLParam(r, "submissionID")
	category := chi.URLParam(r, "category")

	ref, err := s.service.Attachment(r.Context(), submissionID, category)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	var obj *store.Object
	if ref.IsDirect() {
		obj, err = s.store.Fetch(r.Context(), ref.Direct)
	} else {
		obj, err = s.store.Search(r.Context(), ref.Query)
	}
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	defer obj.Close()

	w.Header().Set("Content-Type", obj.ContentType)
	if obj.Name != "" {
		w.Header().Set("Content-Disposition", `inline; filename="`+obj.Name+`"`)
	}
	if _, err := io.Copy(w, obj.Body); err != nil {
		// Headers are gone; all we can do is log the broken stream.
		logging.FromContext(r.Context()).Error("attachment stream interrupted",
			"category", category,
			"error", err,
		)
	}
}

// passcodeRequest is the body of a validate_passcode call.
type passcodeRequest struct {
	Passcode string `json:"passcode"`
	Role     string `json:"role,omitempty"`
}

// handleValidatePasscode answers the access gate: success or failure only,
// no session state. With a role, the role's secret is checked first, then
// the global passcode.
func (s *Server) handleValidatePasscode(w http.ResponseWriter, r *http.Request) {
	var req passcodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, core.ErrBadRequest)
		return
	}

	if !middleware.ValidPasscode(req.Passcode, req.Role, &s.cfg.Security) {
		s.respondError(w, r, core.ErrForbidden)
		return
	}

	writeJSON(w, r, map[string]string{"status": "success"})
}
