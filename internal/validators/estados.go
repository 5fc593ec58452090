package validators

// As 27 unidades federativas.
var estadosValidos = map[string]bool{
	"AC": true, "AL": true, "AP": true, "AM": true,
	"BA": true, "CE": true, "DF": true, "ES": true,
	"GO": true, "MA": true, "MT": true, "MS": true,
	"MG": true, "PA": true, "PB": true, "PR": true,
	"PE": true, "PI": true, "RJ": true, "RN": true,
	"RS": true, "RO": true, "RR": true, "SC": true,
	"SP": true, "SE": true, "TO": true,
}

func IsValidEstado(uf string) bool {
	return estadosValidos[uf]
}
