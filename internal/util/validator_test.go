package util

import "testing"

func TestValidateFullName(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"Maria Souza", true},
		{"Maria da Silva Souza", true},
		{"  Maria   Souza  ", true},
		{"Maria", false},
		{"", false},
		{"   ", false},
	}

	for _, tc := range cases {
		if got := ValidateFullName(tc.in); got != tc.want {
			t.Errorf("ValidateFullName(%q) = %v, esperado %v", tc.in, got, tc.want)
		}
	}
}

func TestSplitFullName(t *testing.T) {
	cases := []struct {
		in        string
		wantFirst string
		wantLast  string
	}{
		{"Maria Souza", "Maria", "Souza"},
		{"Maria da Silva Souza", "Maria", "da Silva Souza"},
		{"Maria", "Maria", ""},
		{"", "", ""},
	}

	for _, tc := range cases {
		first, last := SplitFullName(tc.in)
		if first != tc.wantFirst || last != tc.wantLast {
			t.Errorf("SplitFullName(%q) = (%q, %q), esperado (%q, %q)",
				tc.in, first, last, tc.wantFirst, tc.wantLast)
		}
	}
}
