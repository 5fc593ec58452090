package validators

import (
	"strings"
	"testing"
)

func validClienteForm() *ClienteForm {
	return &ClienteForm{
		Nome:       "Maria da Silva",
		Email:      "maria@exemplo.com.br",
		Telefone:   "(11) 99999-8888",
		CPF:        "529.982.247-25",
		CEP:        "01310-100",
		Logradouro: "Avenida Paulista",
		Numero:     "1000",
		Bairro:     "Bela Vista",
		Cidade:     "São Paulo",
		Estado:     "SP",
	}
}

func TestValidateCliente_OK(t *testing.T) {
	fe, err := ValidateCliente(validClienteForm(), ClienteOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fe.Empty() {
		t.Fatalf("expected no field errors, got %v", fe)
	}
}

func TestValidateCliente_CPFAllSameDigits(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		form := validClienteForm()
		form.CPF = strings.Repeat(string(d), 11)

		fe, err := ValidateCliente(form, ClienteOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !contains(fe["cpf"], "invalid_cpf_format") {
			t.Fatalf("cpf %q: expected invalid_cpf_format, got %v", form.CPF, fe["cpf"])
		}
	}
}

func TestValidateCliente_CPFWrongLength(t *testing.T) {
	for _, cpf := range []string{"123", "1234567890", "123456789012", "abc"} {
		form := validClienteForm()
		form.CPF = cpf

		fe, _ := ValidateCliente(form, ClienteOptions{})
		if !contains(fe["cpf"], "invalid_cpf_format") {
			t.Fatalf("cpf %q: expected invalid_cpf_format, got %v", cpf, fe["cpf"])
		}
	}
}

func TestValidateCliente_CPFMaskStripped(t *testing.T) {
	form := validClienteForm()
	form.CPF = "529.982.247-25"

	fe, _ := ValidateCliente(form, ClienteOptions{})
	if fe.Has("cpf") {
		t.Fatalf("masked cpf should normalize to 11 digits, got %v", fe["cpf"])
	}
	if got := form.CPFDigits(); got != "52998224725" {
		t.Fatalf("expected digits 52998224725, got %q", got)
	}
}

func TestValidateCliente_StrictCPFChecksum(t *testing.T) {
	form := validClienteForm()
	form.CPF = "529.982.247-24" // dígito verificador errado

	fe, _ := ValidateCliente(form, ClienteOptions{StrictCPF: true})
	if !contains(fe["cpf"], "invalid_cpf_format") {
		t.Fatalf("expected strict mode to reject bad checksum, got %v", fe["cpf"])
	}

	// Sem modo estrito o mesmo CPF passa.
	fe, _ = ValidateCliente(form, ClienteOptions{})
	if fe.Has("cpf") {
		t.Fatalf("expected default mode to accept, got %v", fe["cpf"])
	}
}

func TestCPFChecksumValid(t *testing.T) {
	for cpf, want := range map[string]bool{
		"52998224725": true,
		"11144477735": true,
		"52998224724": false,
		"11144477734": false,
		"123":         false,
	} {
		if got := CPFChecksumValid(cpf); got != want {
			t.Fatalf("CPFChecksumValid(%q) = %v, want %v", cpf, got, want)
		}
	}
}

func TestValidateCliente_Telefone(t *testing.T) {
	cases := map[string]bool{
		"(11) 99999-8888":  true,  // 11 dígitos
		"(11) 3333-4444":   true,  // 10 dígitos
		"11999998888":      true,
		"999-8888":         false, // 7 dígitos
		"(11) 99999-88889": false, // 12 dígitos
	}

	for telefone, ok := range cases {
		form := validClienteForm()
		form.Telefone = telefone

		fe, _ := ValidateCliente(form, ClienteOptions{})
		if ok && fe.Has("telefone") {
			t.Fatalf("telefone %q: expected valid, got %v", telefone, fe["telefone"])
		}
		if !ok && !contains(fe["telefone"], "invalid_phone_format") {
			t.Fatalf("telefone %q: expected invalid_phone_format, got %v", telefone, fe["telefone"])
		}
	}
}

func TestValidateCliente_CEP(t *testing.T) {
	form := validClienteForm()
	form.CEP = "1310-100"

	fe, _ := ValidateCliente(form, ClienteOptions{})
	if !contains(fe["cep"], "invalid_cep_format") {
		t.Fatalf("expected invalid_cep_format, got %v", fe["cep"])
	}
}

func TestValidateCliente_Estado(t *testing.T) {
	for _, uf := range []string{
		"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO",
		"MA", "MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI",
		"RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
	} {
		form := validClienteForm()
		form.Estado = uf
		fe, _ := ValidateCliente(form, ClienteOptions{})
		if fe.Has("estado") {
			t.Fatalf("uf %q: expected valid, got %v", uf, fe["estado"])
		}
	}

	form := validClienteForm()
	form.Estado = "XX"
	fe, _ := ValidateCliente(form, ClienteOptions{})
	if !contains(fe["estado"], "invalid_state_code") {
		t.Fatalf("expected invalid_state_code, got %v", fe["estado"])
	}
}

func TestValidateCliente_EmailFormat(t *testing.T) {
	for _, email := range []string{"not-an-email", "a@", "@b.com", "a b@c.com"} {
		form := validClienteForm()
		form.Email = email

		fe, _ := ValidateCliente(form, ClienteOptions{})
		if !contains(fe["email"], "invalid_email_format") {
			t.Fatalf("email %q: expected invalid_email_format, got %v", email, fe["email"])
		}
	}
}

func TestValidateCliente_CollectsAllErrors(t *testing.T) {
	form := &ClienteForm{} // tudo vazio

	fe, _ := ValidateCliente(form, ClienteOptions{})

	for _, campo := range []string{
		"nome", "email", "telefone", "cpf", "cep",
		"logradouro", "numero", "bairro", "cidade", "estado",
	} {
		if !fe.Has(campo) {
			t.Fatalf("expected error for %q, got %v", campo, fe)
		}
	}
	if fe.Has("complemento") {
		t.Fatalf("complemento is optional, got %v", fe["complemento"])
	}
}

// ---------------- unicidade ----------------

type fakeUniqueness struct {
	emails map[string]uint // email normalizado -> id do dono
	cpfs   map[string]uint
}

func (f fakeUniqueness) EmailTaken(email string, excludeID uint) (bool, error) {
	id, ok := f.emails[email]
	return ok && id != excludeID, nil
}

func (f fakeUniqueness) CPFTaken(cpfDigits string, excludeID uint) (bool, error) {
	id, ok := f.cpfs[cpfDigits]
	return ok && id != excludeID, nil
}

func TestValidateCliente_DuplicateEmailAndCPF(t *testing.T) {
	uniq := fakeUniqueness{
		emails: map[string]uint{"maria@exemplo.com.br": 7},
		cpfs:   map[string]uint{"52998224725": 7},
	}

	fe, err := ValidateCliente(validClienteForm(), ClienteOptions{Uniqueness: uniq})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !contains(fe["email"], "duplicate_email") {
		t.Fatalf("expected duplicate_email, got %v", fe["email"])
	}
	if !contains(fe["cpf"], "duplicate_cpf") {
		t.Fatalf("expected duplicate_cpf, got %v", fe["cpf"])
	}
}

func TestValidateCliente_SelfExclusionOnUpdate(t *testing.T) {
	uniq := fakeUniqueness{
		emails: map[string]uint{"maria@exemplo.com.br": 7},
		cpfs:   map[string]uint{"52998224725": 7},
	}

	// Atualizar o próprio registro com os próprios valores não é duplicata.
	fe, err := ValidateCliente(validClienteForm(), ClienteOptions{
		Uniqueness: uniq,
		ExcludeID:  7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fe.Empty() {
		t.Fatalf("expected self-exclusion to pass, got %v", fe)
	}
}

func TestValidateCliente_NormalizedCPFCollision(t *testing.T) {
	uniq := fakeUniqueness{
		emails: map[string]uint{},
		cpfs:   map[string]uint{"52998224725": 3},
	}

	// Mesmo CPF com máscara diferente colide pela forma normalizada.
	form := validClienteForm()
	form.CPF = "52998224725"

	fe, _ := ValidateCliente(form, ClienteOptions{Uniqueness: uniq})
	if !contains(fe["cpf"], "duplicate_cpf") {
		t.Fatalf("expected duplicate_cpf, got %v", fe["cpf"])
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
