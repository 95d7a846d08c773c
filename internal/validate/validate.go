// Package validate builds structural validators for wizard steps from field
// definitions. Building is a pure function of the field list; no validation
// library is involved, so rule construction can be unit-tested in isolation.
package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"imodocs/internal/model"
)

// overridePattern replaces a field's base type rule when its id contains the
// pattern substring. Patterns are checked in declaration order; the order is
// load-bearing: cpf_cnpj must match before the narrower cpf and cnpj rules,
// since an id containing cpf_cnpj contains both.
type overridePattern struct {
	substr  string
	minLen  int
	maxLen  int
	altLen  int // second accepted exact length, 0 when unused
	message string
}

var overridePatterns = []overridePattern{
	{substr: "cpf_cnpj", minLen: 14, maxLen: 14, altLen: 18, message: "CPF ou CNPJ inválido"},
	{substr: "cpf", minLen: 14, maxLen: 14, message: "CPF inválido"},
	{substr: "cnpj", minLen: 18, maxLen: 18, message: "CNPJ inválido"},
	{substr: "rg", minLen: 5, maxLen: 15, message: "RG inválido"},
}

// Result holds the outcome of validating one step's values
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Validator validates a flat value map against the rules built from one
// step's field list
type Validator struct {
	fields []model.SchemaField
}

// Build constructs a validator for a step's fields
func Build(fields []model.SchemaField) *Validator {
	return &Validator{fields: fields}
}

// Validate checks values against the per-field rules. Data-level problems are
// reported in the result, never as an error.
func (v *Validator) Validate(values map[string]string) Result {
	errors := make(map[string]string)
	for _, f := range v.fields {
		if msg := checkField(f, values[f.ID]); msg != "" {
			errors[f.ID] = msg
		}
	}
	if len(errors) == 0 {
		return Result{Valid: true}
	}
	return Result{Valid: false, Errors: errors}
}

func checkField(f model.SchemaField, raw string) string {
	value := strings.TrimSpace(raw)

	if value == "" {
		if f.Required {
			return "Campo obrigatório"
		}
		return ""
	}

	// Pattern overrides replace the base type rule when matched
	for _, p := range overridePatterns {
		if strings.Contains(f.ID, p.substr) {
			n := len(value)
			if n == p.altLen || (n >= p.minLen && n <= p.maxLen) {
				return ""
			}
			return p.message
		}
	}

	switch f.Type {
	case model.FieldNumber:
		n, err := strconv.ParseFloat(strings.Replace(value, ",", ".", 1), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return "Valor numérico inválido"
		}
	case model.FieldEmail:
		if !strings.Contains(value, "@") {
			return "E-mail inválido"
		}
	case model.FieldSelect, model.FieldRadio:
		if len(f.Options) > 0 && !hasOption(f.Options, value) {
			return fmt.Sprintf("Opção inválida: %s", value)
		}
	}
	return ""
}

func hasOption(opts []model.FieldOption, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}
