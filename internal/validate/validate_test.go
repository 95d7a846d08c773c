package validate

import (
	"testing"

	"imodocs/internal/model"

	"github.com/stretchr/testify/assert"
)

func field(id string, typ model.FieldType, required bool) model.SchemaField {
	return model.SchemaField{ID: id, Label: id, Type: typ, Required: required}
}

func TestValidate_Required(t *testing.T) {
	v := Build([]model.SchemaField{field("nome", model.FieldText, true)})

	r := v.Validate(map[string]string{})
	assert.False(t, r.Valid)
	assert.Equal(t, "Campo obrigatório", r.Errors["nome"])

	r = v.Validate(map[string]string{"nome": "   "})
	assert.False(t, r.Valid)

	r = v.Validate(map[string]string{"nome": "Maria"})
	assert.True(t, r.Valid)
	assert.Empty(t, r.Errors)
}

func TestValidate_OptionalEmpty(t *testing.T) {
	v := Build([]model.SchemaField{field("obs", model.FieldText, false)})

	r := v.Validate(map[string]string{})
	assert.True(t, r.Valid)
}

// cpf_cnpj must match before the narrower cpf rule: a masked CNPJ in a
// cpf_cnpj field is valid even though its length fails the plain cpf rule
func TestValidate_CpfCnpjOverride(t *testing.T) {
	v := Build([]model.SchemaField{field("vendedor_cpf_cnpj", model.FieldText, true)})

	r := v.Validate(map[string]string{"vendedor_cpf_cnpj": "123.456.789-01"})
	assert.True(t, r.Valid, "masked CPF (14 chars)")

	r = v.Validate(map[string]string{"vendedor_cpf_cnpj": "12.345.678/0001-90"})
	assert.True(t, r.Valid, "masked CNPJ (18 chars)")

	r = v.Validate(map[string]string{"vendedor_cpf_cnpj": "12345678901"})
	assert.False(t, r.Valid)
	assert.Equal(t, "CPF ou CNPJ inválido", r.Errors["vendedor_cpf_cnpj"])
}

func TestValidate_CpfOverride(t *testing.T) {
	v := Build([]model.SchemaField{field("locatario_cpf", model.FieldText, true)})

	r := v.Validate(map[string]string{"locatario_cpf": "123.456.789-01"})
	assert.True(t, r.Valid)

	r = v.Validate(map[string]string{"locatario_cpf": "12.345.678/0001-90"})
	assert.False(t, r.Valid)
	assert.Equal(t, "CPF inválido", r.Errors["locatario_cpf"])
}

func TestValidate_CnpjOverride(t *testing.T) {
	v := Build([]model.SchemaField{field("empresa_cnpj", model.FieldText, true)})

	r := v.Validate(map[string]string{"empresa_cnpj": "12.345.678/0001-90"})
	assert.True(t, r.Valid)

	r = v.Validate(map[string]string{"empresa_cnpj": "123.456.789-01"})
	assert.False(t, r.Valid)
}

func TestValidate_RgOverride(t *testing.T) {
	v := Build([]model.SchemaField{field("vendedor_rg", model.FieldText, true)})

	r := v.Validate(map[string]string{"vendedor_rg": "12.345.678-9"})
	assert.True(t, r.Valid)

	r = v.Validate(map[string]string{"vendedor_rg": "123"})
	assert.False(t, r.Valid)
	assert.Equal(t, "RG inválido", r.Errors["vendedor_rg"])
}

// The override replaces the base type rule entirely: a number-typed cpf field
// is judged by length, not numeric parsing
func TestValidate_OverrideReplacesBaseRule(t *testing.T) {
	v := Build([]model.SchemaField{field("titular_cpf", model.FieldNumber, true)})

	r := v.Validate(map[string]string{"titular_cpf": "123.456.789-01"})
	assert.True(t, r.Valid)
}

func TestValidate_Number(t *testing.T) {
	v := Build([]model.SchemaField{field("area", model.FieldNumber, true)})

	assert.True(t, v.Validate(map[string]string{"area": "120.5"}).Valid)
	assert.True(t, v.Validate(map[string]string{"area": "120,5"}).Valid)
	assert.False(t, v.Validate(map[string]string{"area": "cem"}).Valid)
}

func TestValidate_Email(t *testing.T) {
	v := Build([]model.SchemaField{field("contato_email", model.FieldEmail, true)})

	assert.True(t, v.Validate(map[string]string{"contato_email": "a@b.com"}).Valid)
	assert.False(t, v.Validate(map[string]string{"contato_email": "sem-arroba"}).Valid)
}

func TestValidate_SelectMembership(t *testing.T) {
	f := model.SchemaField{
		ID:       "estado_civil_campo",
		Type:     model.FieldSelect,
		Required: true,
		Options: []model.FieldOption{
			{Label: "Solteiro(a)", Value: "solteiro"},
			{Label: "Casado(a)", Value: "casado"},
		},
	}
	v := Build([]model.SchemaField{f})

	assert.True(t, v.Validate(map[string]string{"estado_civil_campo": "casado"}).Valid)
	assert.False(t, v.Validate(map[string]string{"estado_civil_campo": "amasiado"}).Valid)
}

func TestValidate_MultipleErrors(t *testing.T) {
	v := Build([]model.SchemaField{
		field("nome", model.FieldText, true),
		field("titular_cpf", model.FieldText, true),
	})

	r := v.Validate(map[string]string{"titular_cpf": "12"})
	assert.False(t, r.Valid)
	assert.Len(t, r.Errors, 2)
}
