package api

import (
	"encoding/json"
	"net/http"
)

type AskRequest struct {
	Question string `json:"question"`
}

// askAssistant proxies a legal-drafting question to the configured assistant
// backend
func (d Dependencies) askAssistant(w http.ResponseWriter, r *http.Request) {
	if d.Assistant == nil {
		WriteError(w, http.StatusServiceUnavailable, "assistant_unavailable", "Assistant is not configured", d.Log)
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}

	answer, err := d.Assistant.Ask(r.Context(), req.Question)
	if err != nil {
		WriteError(w, http.StatusBadGateway, "assistant_failed", err.Error(), d.Log)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"answer": answer})
}
