package api

import (
	"encoding/json"
	"net/http"

	"imodocs/internal/auth"
	"imodocs/internal/service"

	"github.com/go-chi/chi/v5"
)

func (d Dependencies) createCustomTemplate(w http.ResponseWriter, r *http.Request) {
	var input service.CustomTemplateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}
	tmpl, err := d.CustomTemplates.CreateTemplate(r.Context(), auth.GetUserID(r.Context()), input)
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, "invalid_template", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusCreated, tmpl)
}

func (d Dependencies) getCustomTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl, err := d.CustomTemplates.GetTemplate(r.Context(), auth.GetUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Template not found", d.Log)
		return
	}
	writeJSON(w, http.StatusOK, tmpl)
}

func (d Dependencies) listCustomTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := d.CustomTemplates.ListTemplates(r.Context(), auth.GetUserID(r.Context()))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "list_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"templates": templates})
}

func (d Dependencies) deleteCustomTemplate(w http.ResponseWriter, r *http.Request) {
	if err := d.CustomTemplates.DeleteTemplate(r.Context(), auth.GetUserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Template not found", d.Log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type RenderTemplateRequest struct {
	Values map[string]string `json:"values"`
}

func (d Dependencies) renderCustomTemplate(w http.ResponseWriter, r *http.Request) {
	var req RenderTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}
	text, err := d.CustomTemplates.Render(r.Context(), auth.GetUserID(r.Context()), chi.URLParam(r, "id"), req.Values)
	if err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Template not found", d.Log)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"text": text})
}
