package generator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"imodocs/internal/registry"
)

// BlankToken is emitted for placeholders whose value is absent, so the
// generated contract shows a visible unfilled blank instead of the raw
// placeholder syntax.
const BlankToken = "_____________________"

// notFoundDocument is the terminal, user-visible error document returned for
// an unknown template id. The generator never returns an error.
const notFoundDocument = `# Modelo não encontrado

O modelo de documento solicitado não está disponível. Selecione outro modelo e tente novamente.`

var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// enumTable maps raw option codes to the human-readable labels emitted in the
// generated document. Tables are matched against the field id by substring,
// in declaration order.
type enumTable struct {
	key    string
	labels map[string]string
}

var enumTables = []enumTable{
	{key: "estado_civil", labels: map[string]string{
		"solteiro":      "solteiro(a)",
		"casado":        "casado(a)",
		"divorciado":    "divorciado(a)",
		"viuvo":         "viúvo(a)",
		"uniao_estavel": "em união estável",
	}},
	{key: "regime_bens", labels: map[string]string{
		"comunhao_parcial":   "comunhão parcial de bens",
		"comunhao_universal": "comunhão universal de bens",
		"separacao_total":    "separação total de bens",
		"participacao_final": "participação final nos aquestos",
	}},
	{key: "forma_pagamento", labels: map[string]string{
		"avista":        "à vista",
		"parcelado":     "parcelado",
		"financiamento": "financiamento bancário",
		"pix":           "PIX",
		"transferencia": "transferência bancária",
		"boleto":        "boleto bancário",
		"dinheiro":      "dinheiro",
		"cheque":        "cheque",
	}},
	{key: "imovel_tipo", labels: map[string]string{
		"casa":           "casa",
		"apartamento":    "apartamento",
		"terreno":        "terreno",
		"sala_comercial": "sala comercial",
		"galpao":         "galpão",
		"chacara":        "chácara",
	}},
}

// currencyFields are the field ids rendered as Brazilian currency. The table
// is hand-maintained; ids outside it fall through to raw passthrough.
var currencyFields = map[string]bool{
	"valor_total":      true,
	"valor_sinal":      true,
	"valor_aluguel":    true,
	"valor_proposta":   true,
	"valor_venda":      true,
	"valor_pagamento":  true,
	"valor_caucao":     true,
	"valor_condominio": true,
}

// Generator renders markdown documents from the built-in template catalog
type Generator struct {
	reg *registry.Registry
}

func New(reg *registry.Registry) *Generator {
	return &Generator{reg: reg}
}

// Generate renders the template body for templateID with the supplied values.
// Unknown template ids produce a fixed error document, never an error. The
// render is a pure function of its inputs.
func (g *Generator) Generate(templateID string, values map[string]string) string {
	body, ok := g.reg.Body(templateID)
	if !ok {
		return notFoundDocument
	}
	return GenerateBody(body, values)
}

// GenerateBody substitutes every {{ identifier }} occurrence in body. Every
// occurrence of the same identifier resolves to the same output.
func GenerateBody(body string, values map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(body, func(match string) string {
		id := placeholderRe.FindStringSubmatch(match)[1]
		return resolve(id, values[id])
	})
}

// resolve applies the replacement precedence for one placeholder:
// blank token, enum label, currency formatting, raw passthrough.
func resolve(fieldID, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return BlankToken
	}
	if label, ok := enumLabel(fieldID, trimmed); ok {
		return label
	}
	if currencyFields[fieldID] {
		if v, err := ParseDecimal(trimmed); err == nil {
			return FormatBRL(v)
		}
		// Unparsable currency never aborts the render
		return trimmed
	}
	return trimmed
}

func enumLabel(fieldID, raw string) (string, bool) {
	for _, t := range enumTables {
		if !strings.Contains(fieldID, t.key) {
			continue
		}
		if label, ok := t.labels[raw]; ok {
			return label, true
		}
		return "", false
	}
	return "", false
}

// ExtractFields returns the unique placeholder identifiers in body, in
// first-seen order
func ExtractFields(body string) []string {
	seen := make(map[string]bool)
	var fields []string
	for _, m := range placeholderRe.FindAllStringSubmatch(body, -1) {
		id := m[1]
		if seen[id] {
			continue
		}
		seen[id] = true
		fields = append(fields, id)
	}
	return fields
}

// ParseDecimal parses a numeric string under the regional convention: when a
// comma is present, dots are thousands separators and the comma is the
// decimal point; otherwise the string parses directly.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return strconv.ParseFloat(s, 64)
}

// FormatBRL formats a value as Brazilian currency, e.g. R$ 1.500,50
func FormatBRL(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)
	intPart, decPart := parts[0], parts[1]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := fmt.Sprintf("R$ %s,%s", b.String(), decPart)
	if neg {
		return "-" + out
	}
	return out
}

// CoerceValues flattens a decoded JSON object into the string value map the
// generator and validator consume. Null values become empty strings; numbers
// keep their literal form.
func CoerceValues(in map[string]interface{}) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		switch t := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = t
		case float64:
			out[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(t)
		default:
			out[k] = fmt.Sprintf("%v", t)
		}
	}
	return out
}
