package validators

// IsRepeatedDigits detecta CPFs do tipo 111.111.111-11, que passam
// no checksum mas são inválidos.
func IsRepeatedDigits(digits string) bool {
	if digits == "" {
		return false
	}
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

// CPFChecksumValid confere os dois dígitos verificadores: soma
// ponderada das posições 1–9 (pesos 10..2) gera o décimo dígito e
// das posições 1–10 (pesos 11..2) gera o décimo primeiro.
// Exposto como modo estrito opcional (CPF_STRICT_CHECK).
func CPFChecksumValid(digits string) bool {
	if len(digits) != 11 {
		return false
	}

	calc := func(n int) byte {
		sum := 0
		for i := 0; i < n; i++ {
			sum += int(digits[i]-'0') * (n + 1 - i)
		}
		rest := (sum * 10) % 11
		if rest == 10 {
			rest = 0
		}
		return byte('0' + rest)
	}

	return calc(9) == digits[9] && calc(10) == digits[10]
}
