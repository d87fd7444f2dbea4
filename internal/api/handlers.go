// Package api exposes HTTP handlers for the extracurricular activities service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"example.com/extracurricular/internal/domain"
)

const (
	landingPage      = "/static/index.html"
	activitiesPrefix = "/activities/"

	actionSignUp     = "signup"
	actionUnregister = "unregister"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.root)
	mux.HandleFunc("/activities", h.activities)
	mux.HandleFunc(activitiesPrefix, h.activityAction)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// root sends browsers to the landing page. "/" also catches every unmatched path.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not_found", "not found")
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	http.Redirect(w, r, landingPage, http.StatusTemporaryRedirect)
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	catalog, err := h.service.ListActivities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}

func (h *Handler) activityAction(w http.ResponseWriter, r *http.Request) {
	activityName, action, ok := parseActionPath(r.URL.EscapedPath())
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "not found")
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	query := r.URL.Query()
	if !query.Has("email") {
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", "missing email parameter")
		return
	}
	email := query.Get("email")

	switch action {
	case actionSignUp:
		if _, err := h.service.SignUp(r.Context(), activityName, email); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{
			Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
		})
	case actionUnregister:
		if _, err := h.service.Unregister(r.Context(), activityName, email); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{
			Message: fmt.Sprintf("Unregistered %s from %s", email, activityName),
		})
	}
}

// parseActionPath splits /activities/{name}/{action}. The name is unescaped after splitting
// so an encoded slash stays part of the name.
func parseActionPath(escaped string) (name, action string, ok bool) {
	rest, found := strings.CutPrefix(escaped, activitiesPrefix)
	if !found {
		return "", "", false
	}
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 {
		return "", "", false
	}
	action = rest[idx+1:]
	if action != actionSignUp && action != actionUnregister {
		return "", "", false
	}
	name, err := url.PathUnescape(rest[:idx])
	if err != nil || name == "" {
		return "", "", false
	}
	return name, action, true
}

// MessageResponse is the body of a successful signup or unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Activity not found")
	case errors.Is(err, domain.ErrAlreadyEnrolled):
		writeError(w, http.StatusBadRequest, "already_enrolled", "Student already signed up for this activity")
	case errors.Is(err, domain.ErrNotEnrolled):
		writeError(w, http.StatusBadRequest, "not_enrolled", "Student is not signed up for this activity")
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
