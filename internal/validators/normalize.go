package validators

import "strings"

// Digits descarta tudo que não for dígito. A normalização serve só
// para validar e comparar; o valor gravado é o que o usuário digitou.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
