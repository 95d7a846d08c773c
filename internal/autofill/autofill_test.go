package autofill

import (
	"testing"

	"imodocs/internal/model"

	"github.com/stretchr/testify/assert"
)

func testPersona() model.Persona {
	return model.Persona{
		Nome:        "Maria Silva",
		CpfCnpj:     "123.456.789-01",
		RG:          "12.345.678-9",
		EstadoCivil: "casado",
		Profissao:   "engenheira",
		Endereco:    "Rua das Flores, 100",
		RegimeBens:  "comunhao_parcial",
		Telefone:    "(11) 98765-4321",
		Email:       "maria@example.com",
	}
}

func testProperty() model.Property {
	return model.Property{
		Endereco:  "Av. Paulista, 1000, ap 42",
		Bairro:    "Bela Vista",
		Cidade:    "São Paulo",
		Estado:    "SP",
		CEP:       "01310-100",
		Tipo:      "apartamento",
		AreaTotal: "85",
		Matricula: "45.678",
	}
}

func TestResolvePersonaFill(t *testing.T) {
	fields := []string{
		"vendedor_nome", "vendedor_cpf_cnpj", "vendedor_rg",
		"vendedor_estado_civil", "vendedor_profissao", "vendedor_endereco",
	}
	fill := ResolvePersonaFill(fields, testPersona())

	assert.Equal(t, "Maria Silva", fill["vendedor_nome"])
	assert.Equal(t, "123.456.789-01", fill["vendedor_cpf_cnpj"])
	assert.Equal(t, "12.345.678-9", fill["vendedor_rg"])
	assert.Equal(t, "casado", fill["vendedor_estado_civil"])
	assert.Equal(t, "Rua das Flores, 100", fill["vendedor_endereco"])
}

// A plain _cpf field still receives the persona's cpf_cnpj attribute
func TestResolvePersonaFill_CpfAlias(t *testing.T) {
	fill := ResolvePersonaFill([]string{"locatario_cpf"}, testPersona())
	assert.Equal(t, "123.456.789-01", fill["locatario_cpf"])
}

// _estado_civil must not be captured by the property _estado suffix, and
// fields that match no rule are left untouched
func TestResolvePersonaFill_NoFalseMatches(t *testing.T) {
	fill := ResolvePersonaFill([]string{"finalidade_locacao", "prazo_meses"}, testPersona())
	assert.Empty(t, fill)
}

func TestResolvePersonaFill_SkipsEmptyAttributes(t *testing.T) {
	p := testPersona()
	p.RG = ""
	fill := ResolvePersonaFill([]string{"vendedor_rg", "vendedor_nome"}, p)

	_, ok := fill["vendedor_rg"]
	assert.False(t, ok, "empty attributes are never projected")
	assert.Equal(t, "Maria Silva", fill["vendedor_nome"])
}

func TestResolvePropertyFill(t *testing.T) {
	fields := []string{
		"imovel_endereco", "imovel_bairro", "imovel_cidade", "imovel_estado",
		"imovel_cep", "imovel_tipo", "imovel_area_total", "imovel_matricula",
	}
	fill := ResolvePropertyFill(fields, testProperty())

	assert.Equal(t, "Av. Paulista, 1000, ap 42", fill["imovel_endereco"])
	assert.Equal(t, "Bela Vista", fill["imovel_bairro"])
	assert.Equal(t, "SP", fill["imovel_estado"])
	assert.Equal(t, "apartamento", fill["imovel_tipo"])
	assert.Equal(t, "85", fill["imovel_area_total"])
	assert.Equal(t, "45.678", fill["imovel_matricula"])
}

// A step describing a person (carries _cpf/_rg/_estado_civil fields) must not
// have its address-like fields filled from the imóvel record
func TestResolvePropertyFill_PersonStepSkipsAddress(t *testing.T) {
	fields := []string{
		"locatario_nome", "locatario_cpf", "locatario_rg",
		"locatario_estado_civil", "locatario_endereco",
	}
	fill := ResolvePropertyFill(fields, testProperty())

	_, ok := fill["locatario_endereco"]
	assert.False(t, ok, "person step address must not come from the property")
	assert.Empty(t, fill)
}

// Without person-identifying fields the same address suffixes do get filled
func TestResolvePropertyFill_PropertyStepFillsAddress(t *testing.T) {
	fields := []string{"imovel_endereco", "imovel_cidade"}
	fill := ResolvePropertyFill(fields, testProperty())

	assert.Equal(t, "Av. Paulista, 1000, ap 42", fill["imovel_endereco"])
	assert.Equal(t, "São Paulo", fill["imovel_cidade"])
}
