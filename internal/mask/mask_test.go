package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPF(t *testing.T) {
	assert.Equal(t, "123.456.789-01", CPF("12345678901"))
	assert.Equal(t, "123.456.789-01", CPF("123.456.789-01"), "already masked stays stable")
	assert.Equal(t, "1234", CPF("1234"), "wrong length passes through")
}

func TestCNPJ(t *testing.T) {
	assert.Equal(t, "12.345.678/0001-90", CNPJ("12345678000190"))
	assert.Equal(t, "12.345.678/0001-90", CNPJ("12.345.678/0001-90"))
	assert.Equal(t, "12345", CNPJ("12345"))
}

func TestCpfCnpj(t *testing.T) {
	assert.Equal(t, "123.456.789-01", CpfCnpj("12345678901"))
	assert.Equal(t, "12.345.678/0001-90", CpfCnpj("12345678000190"))
	assert.Equal(t, "", CpfCnpj(""))
	assert.Equal(t, "isento", CpfCnpj("isento"))
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "(11) 3456-7890", Phone("1134567890"))
	assert.Equal(t, "(11) 98765-4321", Phone("11987654321"))
	assert.Equal(t, "123", Phone("123"))
	assert.Equal(t, "113456789", Phone("113456789"))
	assert.Equal(t, "119876543210", Phone("119876543210"))
}

func TestApply(t *testing.T) {
	assert.Equal(t, "123.456.789-01", Apply("12345678901", "cpf"))
	assert.Equal(t, "(11) 98765-4321", Apply("11987654321", "telefone"))
	assert.Equal(t, "qualquer", Apply("qualquer", "desconhecido"))
}
