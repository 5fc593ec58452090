package validators

import (
	"strings"
	"time"

	domain "github.com/gestaodeatendimentos/crm-atendimentos/internal/domain/atendimento"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/timezone"
)

// AtendimentoForm carrega os valores crus do agendamento. DataHora
// chega como string e só é aceita depois de ParseDateTime.
type AtendimentoForm struct {
	ClienteID uint
	DataHora  string
	Descricao string
	Status    string

	parsed time.Time
}

// DataHoraParsed vale depois de ValidateAtendimento aceitar o campo.
func (f *AtendimentoForm) DataHoraParsed() time.Time {
	return f.parsed
}

func (f *AtendimentoForm) StatusOrDefault() string {
	if strings.TrimSpace(f.Status) == "" {
		return string(domain.InitialStatus())
	}
	return f.Status
}

type atendimentoValidator func(*AtendimentoForm, time.Time, FieldErrors)

var atendimentoValidators = []atendimentoValidator{
	validateClienteRef,
	validateDataHora,
	validateDescricao,
	validateStatus,
}

// ValidateAtendimento roda todos os validadores contra o instante
// `now` (injetável para teste).
func ValidateAtendimento(f *AtendimentoForm, now time.Time) FieldErrors {
	fe := FieldErrors{}
	for _, v := range atendimentoValidators {
		v(f, now, fe)
	}
	return fe
}

func validateClienteRef(f *AtendimentoForm, _ time.Time, fe FieldErrors) {
	if f.ClienteID == 0 {
		fe.Add("cliente", "required")
	}
}

func validateDataHora(f *AtendimentoForm, now time.Time, fe FieldErrors) {
	if strings.TrimSpace(f.DataHora) == "" {
		fe.Add("data_hora", "required")
		return
	}

	t, err := timezone.ParseDateTime(f.DataHora)
	if err != nil {
		fe.Add("data_hora", "invalid_datetime")
		return
	}
	f.parsed = t

	if t.Before(now) {
		fe.Add("data_hora", "past_datetime")
	}
}

func validateDescricao(f *AtendimentoForm, _ time.Time, fe FieldErrors) {
	if strings.TrimSpace(f.Descricao) == "" {
		fe.Add("descricao", "required")
	}
}

func validateStatus(f *AtendimentoForm, _ time.Time, fe FieldErrors) {
	if !domain.IsValid(domain.Status(f.StatusOrDefault())) {
		fe.Add("status", "invalid_status")
	}
}
