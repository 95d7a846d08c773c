// Package autofill projects attributes of saved persona and property records
// onto wizard field ids by suffix matching. The suffix tables are the central
// statement of the field-id naming convention; validation and templates rely
// on the same vocabulary.
package autofill

import (
	"strings"

	"imodocs/internal/model"
)

// fillRule maps a field-id suffix to a source record attribute. Rules are
// checked in declaration order and the first match wins, so wider suffixes
// (_cpf_cnpj) come before the narrower ones they contain (_cnpj).
type fillRule struct {
	suffix string
	attr   string
}

var personaRules = []fillRule{
	{suffix: "_nome", attr: "nome"},
	{suffix: "_cpf_cnpj", attr: "cpf_cnpj"},
	{suffix: "_cpf", attr: "cpf_cnpj"},
	{suffix: "_cnpj", attr: "cpf_cnpj"},
	{suffix: "_rg", attr: "rg"},
	{suffix: "_estado_civil", attr: "estado_civil"},
	{suffix: "_profissao", attr: "profissao"},
	{suffix: "_endereco", attr: "endereco"},
	{suffix: "_regime_bens", attr: "regime_bens"},
	{suffix: "_telefone", attr: "telefone"},
	{suffix: "_email", attr: "email"},
}

var propertyRules = []fillRule{
	{suffix: "_endereco", attr: "endereco"},
	{suffix: "_bairro", attr: "bairro"},
	{suffix: "_cidade", attr: "cidade"},
	{suffix: "_estado", attr: "estado"},
	{suffix: "_cep", attr: "cep"},
	{suffix: "_tipo", attr: "tipo"},
	{suffix: "_area_total", attr: "area_total"},
	{suffix: "_area_construida", attr: "area_construida"},
	{suffix: "_matricula", attr: "matricula"},
	{suffix: "_iptu", attr: "iptu"},
	{suffix: "_descricao", attr: "descricao"},
}

// addressLikeSuffixes are shared between person and property vocabulary;
// personIDSuffixes disambiguate: a step carrying any of them is describing a
// person, and the property resolver must not fill its address-like fields.
var addressLikeSuffixes = []string{"_endereco", "_cidade", "_estado", "_cep", "_bairro"}
var personIDSuffixes = []string{"_cpf", "_rg", "_estado_civil"}

// ResolvePersonaFill maps step field ids to values from a saved persona.
// Only non-empty source attributes are projected; auto-fill never writes
// empty strings over existing input.
func ResolvePersonaFill(stepFields []string, p model.Persona) map[string]string {
	return resolve(stepFields, personaRules, personaAttributes(p), nil)
}

// ResolvePropertyFill maps step field ids to values from a saved property.
// When the step also contains person-identifying fields, address-like ids are
// skipped: the step is about a person's own address, not the imóvel.
func ResolvePropertyFill(stepFields []string, prop model.Property) map[string]string {
	var skip []string
	if hasPersonFields(stepFields) {
		skip = addressLikeSuffixes
	}
	return resolve(stepFields, propertyRules, propertyAttributes(prop), skip)
}

func resolve(stepFields []string, rules []fillRule, attrs map[string]string, skipSuffixes []string) map[string]string {
	fill := make(map[string]string)
	for _, fieldID := range stepFields {
		if hasAnySuffix(fieldID, skipSuffixes) {
			continue
		}
		for _, r := range rules {
			if !strings.HasSuffix(fieldID, r.suffix) {
				continue
			}
			if v := strings.TrimSpace(attrs[r.attr]); v != "" {
				fill[fieldID] = v
			}
			break // first matching suffix wins
		}
	}
	return fill
}

func hasPersonFields(stepFields []string) bool {
	for _, fieldID := range stepFields {
		if hasAnySuffix(fieldID, personIDSuffixes) {
			return true
		}
	}
	return false
}

func hasAnySuffix(fieldID string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(fieldID, s) {
			return true
		}
	}
	return false
}

func personaAttributes(p model.Persona) map[string]string {
	return map[string]string{
		"nome":         p.Nome,
		"cpf_cnpj":     p.CpfCnpj,
		"rg":           p.RG,
		"estado_civil": p.EstadoCivil,
		"profissao":    p.Profissao,
		"endereco":     p.Endereco,
		"regime_bens":  p.RegimeBens,
		"telefone":     p.Telefone,
		"email":        p.Email,
	}
}

func propertyAttributes(p model.Property) map[string]string {
	return map[string]string{
		"endereco":        p.Endereco,
		"bairro":          p.Bairro,
		"cidade":          p.Cidade,
		"estado":          p.Estado,
		"cep":             p.CEP,
		"tipo":            p.Tipo,
		"area_total":      p.AreaTotal,
		"area_construida": p.AreaConstruida,
		"matricula":       p.Matricula,
		"iptu":            p.IPTU,
		"descricao":       p.Descricao,
	}
}
