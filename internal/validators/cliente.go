package validators

import (
	"net/mail"
	"strings"
)

// ClienteForm carrega os valores crus enviados pelo chamador.
type ClienteForm struct {
	Nome        string
	Email       string
	Telefone    string
	CPF         string
	CEP         string
	Logradouro  string
	Numero      string
	Complemento string
	Bairro      string
	Cidade      string
	Estado      string
}

func (f *ClienteForm) EmailNormalized() string {
	return strings.ToLower(strings.TrimSpace(f.Email))
}

func (f *ClienteForm) CPFDigits() string {
	return Digits(f.CPF)
}

// ClienteUniqueness responde se email/cpf já pertencem a outro
// cliente. ExcludeID exclui o próprio registro numa atualização.
type ClienteUniqueness interface {
	EmailTaken(email string, excludeID uint) (bool, error)
	CPFTaken(cpfDigits string, excludeID uint) (bool, error)
}

type ClienteOptions struct {
	StrictCPF  bool
	Uniqueness ClienteUniqueness
	ExcludeID  uint
}

type clienteValidator func(*ClienteForm, ClienteOptions, FieldErrors)

// Ordem fixa; todos rodam e cada um só escreve no próprio campo.
var clienteValidators = []clienteValidator{
	validateNome,
	validateEmailFormat,
	validateTelefone,
	validateCPFFormat,
	validateCEP,
	validateEndereco,
	validateEstado,
}

// ValidateCliente roda todos os validadores de campo e, por último,
// os checks de unicidade. O error de retorno é só falha de consulta;
// rejeições ficam em FieldErrors.
func ValidateCliente(f *ClienteForm, opts ClienteOptions) (FieldErrors, error) {
	fe := FieldErrors{}

	for _, v := range clienteValidators {
		v(f, opts, fe)
	}

	if opts.Uniqueness != nil {
		if !fe.Has("email") {
			taken, err := opts.Uniqueness.EmailTaken(f.EmailNormalized(), opts.ExcludeID)
			if err != nil {
				return fe, err
			}
			if taken {
				fe.Add("email", "duplicate_email")
			}
		}
		if !fe.Has("cpf") {
			taken, err := opts.Uniqueness.CPFTaken(f.CPFDigits(), opts.ExcludeID)
			if err != nil {
				return fe, err
			}
			if taken {
				fe.Add("cpf", "duplicate_cpf")
			}
		}
	}

	return fe, nil
}

func validateNome(f *ClienteForm, _ ClienteOptions, fe FieldErrors) {
	nome := strings.TrimSpace(f.Nome)
	if nome == "" {
		fe.Add("nome", "required")
		return
	}
	if len(nome) > 100 {
		fe.Add("nome", "max_length_exceeded")
	}
}

func validateEmailFormat(f *ClienteForm, _ ClienteOptions, fe FieldErrors) {
	email := f.EmailNormalized()
	if email == "" {
		fe.Add("email", "required")
		return
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		fe.Add("email", "invalid_email_format")
	}
}

func validateTelefone(f *ClienteForm, _ ClienteOptions, fe FieldErrors) {
	if strings.TrimSpace(f.Telefone) == "" {
		fe.Add("telefone", "required")
		return
	}
	d := Digits(f.Telefone)
	if len(d) != 10 && len(d) != 11 {
		fe.Add("telefone", "invalid_phone_format")
	}
}

func validateCPFFormat(f *ClienteForm, opts ClienteOptions, fe FieldErrors) {
	if strings.TrimSpace(f.CPF) == "" {
		fe.Add("cpf", "required")
		return
	}

	d := f.CPFDigits()
	if len(d) != 11 {
		fe.Add("cpf", "invalid_cpf_format")
		return
	}
	if IsRepeatedDigits(d) {
		fe.Add("cpf", "invalid_cpf_format")
		return
	}
	if opts.StrictCPF && !CPFChecksumValid(d) {
		fe.Add("cpf", "invalid_cpf_format")
	}
}

func validateCEP(f *ClienteForm, _ ClienteOptions, fe FieldErrors) {
	if strings.TrimSpace(f.CEP) == "" {
		fe.Add("cep", "required")
		return
	}
	if len(Digits(f.CEP)) != 8 {
		fe.Add("cep", "invalid_cep_format")
	}
}

func validateEndereco(f *ClienteForm, _ ClienteOptions, fe FieldErrors) {
	type campo struct {
		nome     string
		valor    string
		max      int
		required bool
	}

	for _, c := range []campo{
		{"logradouro", f.Logradouro, 200, true},
		{"numero", f.Numero, 10, true},
		{"complemento", f.Complemento, 100, false},
		{"bairro", f.Bairro, 100, true},
		{"cidade", f.Cidade, 100, true},
	} {
		v := strings.TrimSpace(c.valor)
		if v == "" {
			if c.required {
				fe.Add(c.nome, "required")
			}
			continue
		}
		if len(v) > c.max {
			fe.Add(c.nome, "max_length_exceeded")
		}
	}
}

func validateEstado(f *ClienteForm, _ ClienteOptions, fe FieldErrors) {
	uf := strings.ToUpper(strings.TrimSpace(f.Estado))
	if uf == "" {
		fe.Add("estado", "required")
		return
	}
	if !IsValidEstado(uf) {
		fe.Add("estado", "invalid_state_code")
	}
}
