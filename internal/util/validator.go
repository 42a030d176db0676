package util

import (
	"strings"
)

// ValidateFullName exige pelo menos nome e sobrenome (dois tokens).
func ValidateFullName(name string) bool {
	return len(strings.Fields(name)) >= 2
}

// SplitFullName separa o primeiro nome do restante (sobrenome composto
// permanece junto). Pressupõe nome já validado; com um único token o
// sobrenome volta vazio.
func SplitFullName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
