package validators

// FieldErrors acumula os motivos de rejeição por campo. Todos os
// validadores rodam até o fim; nada de fail-fast.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, reason string) {
	fe[field] = append(fe[field], reason)
}

func (fe FieldErrors) Has(field string) bool {
	return len(fe[field]) > 0
}

func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}
