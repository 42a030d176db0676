package util

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

func onlyDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCPF aplica a máscara ddd.ddd.ddd-dd sobre os dígitos presentes,
// truncando em 11 dígitos. Idempotente sobre entrada já formatada.
func FormatCPF(value string) string {
	digits := onlyDigits(value)
	if len(digits) > 11 {
		digits = digits[:11]
	}

	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return digits[:3] + "." + digits[3:]
	case len(digits) <= 9:
		return digits[:3] + "." + digits[3:6] + "." + digits[6:]
	default:
		return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
	}
}

// FormatWhatsApp aplica a máscara (dd) ddddd-dddd, com variante de quatro
// dígitos no prefixo para números de dez dígitos. Idempotente.
func FormatWhatsApp(value string) string {
	digits := onlyDigits(value)
	if len(digits) > 11 {
		digits = digits[:11]
	}

	switch {
	case len(digits) <= 2:
		return digits
	case len(digits) <= 7:
		return "(" + digits[:2] + ") " + digits[2:]
	case len(digits) <= 10:
		return "(" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:]
	default:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	}
}

// NormalizeWhatsApp converte o número para E.164 assumindo números
// brasileiros quando não há código de país. Útil para montar links wa.me.
func NormalizeWhatsApp(value string) (string, error) {
	value = strings.TrimSpace(value)

	num, err := phonenumbers.Parse(value, "BR")
	if err != nil {
		return "", err
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", phonenumbers.ErrNotANumber
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// WhatsAppLink monta o link wa.me do número. Vazio quando o número não é
// válido o bastante para discagem.
func WhatsAppLink(value string) string {
	e164, err := NormalizeWhatsApp(value)
	if err != nil {
		return ""
	}
	return "https://wa.me/" + strings.TrimPrefix(e164, "+")
}
