package generator

import (
	"testing"

	"imodocs/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_UnknownTemplate(t *testing.T) {
	gen := New(registry.New())

	out := gen.Generate("nao_existe", map[string]string{"x": "y"})
	assert.Contains(t, out, "Modelo não encontrado")
}

func TestGenerateBody_BlankToken(t *testing.T) {
	out := GenerateBody("Nome: {{ nome }}", map[string]string{})
	assert.Equal(t, "Nome: "+BlankToken, out)

	// Whitespace-only values are treated as absent
	out = GenerateBody("Nome: {{ nome }}", map[string]string{"nome": "   "})
	assert.Equal(t, "Nome: "+BlankToken, out)
}

func TestGenerateBody_RepeatedPlaceholder(t *testing.T) {
	body := "{{ nome }} assina. {{ nome }} confirma."
	out := GenerateBody(body, map[string]string{"nome": "Maria"})
	assert.Equal(t, "Maria assina. Maria confirma.", out)
}

func TestGenerateBody_Idempotent(t *testing.T) {
	body := "Valor: {{ valor_total }}, Estado: {{ vendedor_estado_civil }}"
	values := map[string]string{
		"valor_total":           "1500,50",
		"vendedor_estado_civil": "casado",
	}
	once := GenerateBody(body, values)
	twice := GenerateBody(once, values)
	assert.Equal(t, once, twice)
}

func TestGenerateBody_EnumLabel(t *testing.T) {
	out := GenerateBody("{{ vendedor_estado_civil }}", map[string]string{
		"vendedor_estado_civil": "casado",
	})
	assert.Equal(t, "casado(a)", out)

	out = GenerateBody("{{ regime_bens }}", map[string]string{
		"regime_bens": "comunhao_parcial",
	})
	assert.Equal(t, "comunhão parcial de bens", out)

	out = GenerateBody("{{ forma_pagamento }}", map[string]string{
		"forma_pagamento": "avista",
	})
	assert.Equal(t, "à vista", out)
}

// A value outside the enum table passes through raw rather than erroring
func TestGenerateBody_EnumUnknownCode(t *testing.T) {
	out := GenerateBody("{{ vendedor_estado_civil }}", map[string]string{
		"vendedor_estado_civil": "amasiado",
	})
	assert.Equal(t, "amasiado", out)
}

func TestGenerateBody_Currency(t *testing.T) {
	out := GenerateBody("{{ valor_total }}", map[string]string{"valor_total": "1500,50"})
	assert.Equal(t, "R$ 1.500,50", out)

	out = GenerateBody("{{ valor_aluguel }}", map[string]string{"valor_aluguel": "950"})
	assert.Equal(t, "R$ 950,00", out)

	// Unparsable currency falls through to raw passthrough
	out = GenerateBody("{{ valor_total }}", map[string]string{"valor_total": "mil e quinhentos"})
	assert.Equal(t, "mil e quinhentos", out)
}

func TestGenerateBody_RawPassthrough(t *testing.T) {
	out := GenerateBody("{{ observacoes }}", map[string]string{"observacoes": "entrega em 30 dias"})
	assert.Equal(t, "entrega em 30 dias", out)
}

func TestExtractFields(t *testing.T) {
	body := "{{ nome }} e {{ cpf }}, novamente {{ nome }}, enfim {{cidade}}"
	fields := ExtractFields(body)
	assert.Equal(t, []string{"nome", "cpf", "cidade"}, fields)
}

func TestParseDecimal(t *testing.T) {
	v, err := ParseDecimal("1.500,50")
	require.NoError(t, err)
	assert.InDelta(t, 1500.50, v, 0.001)

	v, err = ParseDecimal("R$ 2.000,00")
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, v, 0.001)

	v, err = ParseDecimal("950")
	require.NoError(t, err)
	assert.InDelta(t, 950.0, v, 0.001)

	_, err = ParseDecimal("abc")
	assert.Error(t, err)
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 1.500,50", FormatBRL(1500.50))
	assert.Equal(t, "R$ 950,00", FormatBRL(950))
	assert.Equal(t, "R$ 1.234.567,89", FormatBRL(1234567.89))
	assert.Equal(t, "-R$ 10,00", FormatBRL(-10))
}

func TestCoerceValues(t *testing.T) {
	out := CoerceValues(map[string]interface{}{
		"nome":  "Maria",
		"valor": 1500.5,
		"ativo": true,
		"vazio": nil,
	})
	assert.Equal(t, "Maria", out["nome"])
	assert.Equal(t, "1500.5", out["valor"])
	assert.Equal(t, "true", out["ativo"])
	assert.Equal(t, "", out["vazio"])
}
