package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"imodocs/internal/generator"
	"imodocs/internal/registry"
	"imodocs/internal/validate"

	"github.com/go-chi/chi/v5"
)

func (d Dependencies) listTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"templates": d.Registry.List(),
	})
}

// getTemplate resolves a template by id; an unknown id silently falls back
// to the default template so a stale frontend link still renders a wizard
func (d Dependencies) getTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	schema, ok := d.Registry.Get(id)
	if !ok {
		schema, _ = d.Registry.Get(registry.DefaultTemplateID)
	}
	writeJSON(w, http.StatusOK, schema)
}

func (d Dependencies) templateFields(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	body, ok := d.Registry.Body(id)
	if !ok {
		WriteError(w, http.StatusNotFound, "template_not_found", "Unknown template", d.Log)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"templateId": id,
		"fields":     generator.ExtractFields(body),
	})
}

type GenerateRequest struct {
	Values map[string]interface{} `json:"values"`
}

func (d Dependencies) generateDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	values := generator.CoerceValues(req.Values)
	text := d.Generator.Generate(id, values)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"templateId": id,
		"text":       text,
	})
}

type ValidateStepRequest struct {
	Values map[string]string `json:"values"`
}

func (d Dependencies) validateStep(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	stepParam := chi.URLParam(r, "step")

	schema, ok := d.Registry.Get(id)
	if !ok {
		WriteError(w, http.StatusNotFound, "template_not_found", "Unknown template", d.Log)
		return
	}
	stepIndex, err := strconv.Atoi(stepParam)
	if err != nil || stepIndex < 0 || stepIndex >= len(schema.Steps) {
		WriteError(w, http.StatusBadRequest, "invalid_step", "Step index out of range", d.Log)
		return
	}

	var req ValidateStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	result := validate.Build(schema.Steps[stepIndex].Fields).Validate(req.Values)
	writeJSON(w, http.StatusOK, result)
}
