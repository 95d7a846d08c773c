package api

import (
	"encoding/json"
	"net/http"

	"imodocs/internal/auth"

	"github.com/go-chi/chi/v5"
)

type StartWizardRequest struct {
	TemplateID string `json:"templateId"`
}

func (d Dependencies) startWizard(w http.ResponseWriter, r *http.Request) {
	var req StartWizardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	sess, err := d.Wizard.StartSession(r.Context(), chi.URLParam(r, "sessionId"), req.TemplateID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "session_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (d Dependencies) getWizard(w http.ResponseWriter, r *http.Request) {
	sess, err := d.Wizard.GetSession(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "session_failed", err.Error(), d.Log)
		return
	}
	if sess == nil {
		WriteError(w, http.StatusNotFound, "no_session", "No active session", d.Log)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

type SetFieldsRequest struct {
	Values map[string]string `json:"values"`
}

func (d Dependencies) setWizardFields(w http.ResponseWriter, r *http.Request) {
	var req SetFieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	sess, err := d.Wizard.SetFields(r.Context(), chi.URLParam(r, "sessionId"), req.Values)
	if err != nil {
		WriteError(w, http.StatusNotFound, "no_session", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (d Dependencies) advanceWizard(w http.ResponseWriter, r *http.Request) {
	sess, result, err := d.Wizard.Advance(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		WriteError(w, http.StatusNotFound, "no_session", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session":    sess,
		"validation": result,
	})
}

func (d Dependencies) retreatWizard(w http.ResponseWriter, r *http.Request) {
	sess, err := d.Wizard.Retreat(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		WriteError(w, http.StatusNotFound, "no_session", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (d Dependencies) resetWizard(w http.ResponseWriter, r *http.Request) {
	sess, err := d.Wizard.ResetSession(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		WriteError(w, http.StatusNotFound, "no_session", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (d Dependencies) fillPersona(w http.ResponseWriter, r *http.Request) {
	sess, filled, err := d.Wizard.ApplyPersonaFill(r.Context(),
		chi.URLParam(r, "sessionId"), auth.GetUserID(r.Context()), chi.URLParam(r, "personaId"))
	if err != nil {
		WriteError(w, http.StatusNotFound, "fill_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session": sess,
		"filled":  filled,
	})
}

func (d Dependencies) fillProperty(w http.ResponseWriter, r *http.Request) {
	sess, filled, err := d.Wizard.ApplyPropertyFill(r.Context(),
		chi.URLParam(r, "sessionId"), auth.GetUserID(r.Context()), chi.URLParam(r, "propertyId"))
	if err != nil {
		WriteError(w, http.StatusNotFound, "fill_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session": sess,
		"filled":  filled,
	})
}

type FinalizeRequest struct {
	Title string `json:"title,omitempty"`
}

func (d Dependencies) finalizeWizard(w http.ResponseWriter, r *http.Request) {
	var req FinalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	doc, result, err := d.Wizard.Finalize(r.Context(),
		chi.URLParam(r, "sessionId"), auth.GetUserID(r.Context()), req.Title)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "finalize_failed", err.Error(), d.Log)
		return
	}
	if doc == nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"validation": result,
		})
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}
