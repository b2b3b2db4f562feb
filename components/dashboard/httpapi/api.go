package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	gocommand "github.com/goliatone/go-command"
	"github.com/hadiant/go-admin-dashboard/components/dashboard"
	"github.com/hadiant/go-admin-dashboard/components/dashboard/commands"
	"github.com/hadiant/go-admin-dashboard/pkg/settings"
	"github.com/hadiant/go-admin-dashboard/pkg/tenants"
)

const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("httpapi: body must be a JSON object of strings")

// Handlers exposes HTTP endpoints backed by shared commands and queries.
type Handlers struct {
	Page          gocommand.Querier[dashboard.AppState, dashboard.PageView]
	Tenants       gocommand.Querier[tenants.Criteria, tenants.View]
	SaveSettings  gocommand.Commander[commands.SaveSettingsInput]
	UpdateProfile gocommand.Commander[commands.UpdateProfileInput]
}

// HandlePage writes the JSON payload of page.
func (h *Handlers) HandlePage(w http.ResponseWriter, r *http.Request, page string) {
	state := StateFromQuery(page, r.URL.Query().Get, RequestLocale(r))
	view, err := h.Page.Query(r.Context(), state)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// HandleTenants filters the tenant directory by the search, plan and status
// query parameters.
func (h *Handlers) HandleTenants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	view, err := h.Tenants.Query(r.Context(), tenants.Criteria{
		Search: query.Get("search"),
		Plan:   query.Get("plan"),
		Status: query.Get("status"),
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// HandleSaveSettings accepts a JSON object or a form of field key -> value.
func (h *Handlers) HandleSaveSettings(w http.ResponseWriter, r *http.Request) {
	values, err := decodeRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	notice, err := h.Save(r.Context(), values, RequestLocale(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notice)
}

// HandleUpdateProfile accepts full_name and email as JSON or form fields.
func (h *Handlers) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	values, err := decodeRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	notice, err := h.Profile(r.Context(), values, RequestLocale(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notice)
}

// Save runs the save settings command and returns its notice.
func (h *Handlers) Save(ctx context.Context, values map[string]string, locale string) (dashboard.Notice, error) {
	var notice dashboard.Notice
	err := h.SaveSettings.Execute(ctx, commands.SaveSettingsInput{
		Values: values,
		Locale: locale,
		Result: &notice,
	})
	return notice, err
}

// Profile runs the profile update command and returns its notice.
func (h *Handlers) Profile(ctx context.Context, values map[string]string, locale string) (dashboard.Notice, error) {
	var notice dashboard.Notice
	err := h.UpdateProfile.Execute(ctx, commands.UpdateProfileInput{
		FullName: values["full_name"],
		Email:    values["email"],
		Locale:   locale,
		Result:   &notice,
	})
	return notice, err
}

// StateFromQuery builds navigation state from a page segment and query lookup.
func StateFromQuery(page string, get func(string) string, locale string) dashboard.AppState {
	parsed, _ := dashboard.ParsePage(page)
	return dashboard.AppState{
		Page: parsed,
		Tab:  get("tab"),
		Criteria: tenants.Criteria{
			Search: get("search"),
			Plan:   get("plan"),
			Status: get("status"),
		},
		Viewer: dashboard.ViewerContext{Locale: locale},
	}.Normalize()
}

// RequestLocale prefers the locale query parameter over Accept-Language.
func RequestLocale(r *http.Request) string {
	if locale := r.URL.Query().Get("locale"); locale != "" {
		return locale
	}
	return PreferredLanguage(r.Header.Get("Accept-Language"))
}

// PreferredLanguage returns the first tag of an Accept-Language header.
func PreferredLanguage(header string) string {
	first, _, _ := strings.Cut(header, ",")
	tag, _, _ := strings.Cut(first, ";")
	return strings.TrimSpace(tag)
}

// StatusFor maps command and query errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, settings.ErrInvalid), errors.Is(err, dashboard.ErrInvalidConfig):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err as {"error": "..."} with the matching status.
func WriteError(w http.ResponseWriter, err error) {
	writeJSON(w, StatusFor(err), errorBody{Error: err.Error()})
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeRequest(r *http.Request) (map[string]string, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	return DecodeValues(r.Header.Get("Content-Type"), body)
}

// DecodeValues reads a flat string map from a JSON object or an urlencoded
// form body.
func DecodeValues(contentType string, body []byte) (map[string]string, error) {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType == "application/x-www-form-urlencoded" {
		form, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, fmt.Errorf("httpapi: decode form: %w", err)
		}
		values := make(map[string]string, len(form))
		for key := range form {
			values[key] = form.Get(key)
		}
		return values, nil
	}
	values := map[string]string{}
	if err := json.Unmarshal(body, &values); err != nil {
		return nil, errInvalidBody
	}
	return values, nil
}
