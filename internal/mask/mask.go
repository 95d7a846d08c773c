// Package mask applies Brazilian display masks to document numbers and
// phone numbers. Formatting only; no validation of check digits.
package mask

import (
	"strings"
)

// Apply formats value under the named mask: cpf, cnpj or telefone. Unknown
// kinds return the value unchanged.
func Apply(value, kind string) string {
	switch kind {
	case "cpf":
		return CPF(value)
	case "cnpj":
		return CNPJ(value)
	case "telefone", "phone":
		return Phone(value)
	}
	return value
}

// CPF formats 11 digits as NNN.NNN.NNN-NN
func CPF(value string) string {
	d := digits(value)
	if len(d) != 11 {
		return value
	}
	return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
}

// CNPJ formats 14 digits as NN.NNN.NNN/NNNN-NN
func CNPJ(value string) string {
	d := digits(value)
	if len(d) != 14 {
		return value
	}
	return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:]
}

// CpfCnpj picks the CPF or CNPJ mask by digit count; anything else is
// returned unchanged
func CpfCnpj(value string) string {
	switch len(digits(value)) {
	case 11:
		return CPF(value)
	case 14:
		return CNPJ(value)
	}
	return value
}

// Phone formats exactly 10 digits as (NN) NNNN-NNNN and exactly 11 as
// (NN) NNNNN-NNNN (mobile with ninth digit). Any other digit count is
// returned unchanged; partial input is never padded into a mask.
func Phone(value string) string {
	d := digits(value)
	switch {
	case len(d) == 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	case len(d) == 11:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
	return value
}

func digits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
