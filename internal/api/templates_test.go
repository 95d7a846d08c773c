package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"imodocs/internal/generator"
	"imodocs/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func testRouter() http.Handler {
	reg := registry.New()
	return Routes(Dependencies{
		Registry:  reg,
		Generator: generator.New(reg),
		Log:       zap.NewNop(),
	})
}

func TestListTemplates(t *testing.T) {
	r := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/templates", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Templates []struct {
			ID string `json:"id"`
		} `json:"templates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Templates, 8)
}

func TestGetTemplate_FallbackOnUnknown(t *testing.T) {
	r := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/templates/nao_existe", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, registry.DefaultTemplateID, resp.ID)
}

func TestGenerateDocument(t *testing.T) {
	r := testRouter()

	body := strings.NewReader(`{"values":{"valor_pagamento":"1500,50"}}`)
	req := httptest.NewRequest(http.MethodPost, "/templates/recibo_pagamento/generate", body)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Text, "R$ 1.500,50")
	assert.Contains(t, resp.Text, generator.BlankToken, "missing fields render as blanks")
}

func TestValidateStep(t *testing.T) {
	r := testRouter()

	body := strings.NewReader(`{"values":{"vendedor_nome":"Ana","vendedor_cpf_cnpj":"12"}}`)
	req := httptest.NewRequest(http.MethodPost, "/templates/contrato_compra_venda/steps/0/validate", body)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Valid  bool              `json:"valid"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.Contains(t, resp.Errors, "vendedor_cpf_cnpj")
}

func TestValidateStep_BadIndex(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/templates/contrato_compra_venda/steps/99/validate",
		strings.NewReader(`{"values":{}}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
