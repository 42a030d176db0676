package util

import "testing"

func TestFormatCPF(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"123", "123"},
		{"12345", "123.45"},
		{"123456789", "123.456.789"},
		{"12345678901", "123.456.789-01"},
		{"123456789012345", "123.456.789-01"},
		{"123.456.789-01", "123.456.789-01"},
		{"abc123def456", "123.456"},
	}

	for _, tc := range cases {
		if got := FormatCPF(tc.in); got != tc.want {
			t.Errorf("FormatCPF(%q) = %q, esperado %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCPFIdempotente(t *testing.T) {
	once := FormatCPF("98765432100")
	twice := FormatCPF(once)
	if once != twice {
		t.Errorf("reaplicar máscara alterou o valor: %q != %q", once, twice)
	}
}

func TestFormatWhatsApp(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"11", "11"},
		{"119876", "(11) 9876"},
		{"1198765432", "(11) 9876-5432"},
		{"11987654321", "(11) 98765-4321"},
		{"119876543210000", "(11) 98765-4321"},
		{"(11) 98765-4321", "(11) 98765-4321"},
	}

	for _, tc := range cases {
		if got := FormatWhatsApp(tc.in); got != tc.want {
			t.Errorf("FormatWhatsApp(%q) = %q, esperado %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeWhatsApp(t *testing.T) {
	got, err := NormalizeWhatsApp("(11) 98765-4321")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if got != "+5511987654321" {
		t.Errorf("NormalizeWhatsApp = %q, esperado +5511987654321", got)
	}

	if _, err := NormalizeWhatsApp("abc"); err == nil {
		t.Error("esperado erro para entrada não numérica")
	}
}

func TestWhatsAppLink(t *testing.T) {
	if got := WhatsAppLink("(11) 98765-4321"); got != "https://wa.me/5511987654321" {
		t.Errorf("WhatsAppLink = %q", got)
	}
	if got := WhatsAppLink("abc"); got != "" {
		t.Errorf("número inválido deveria dar link vazio, obtido %q", got)
	}
}
