package validators

import (
	"testing"
	"time"

	"github.com/gestaodeatendimentos/crm-atendimentos/internal/timezone"
)

func TestValidateAtendimento_OK(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, timezone.Location())

	form := &AtendimentoForm{
		ClienteID: 1,
		DataHora:  "2025-06-01 14:00",
		Descricao: "Revisão cadastral",
		Status:    "agendado",
	}

	fe := ValidateAtendimento(form, now)
	if !fe.Empty() {
		t.Fatalf("expected no errors, got %v", fe)
	}

	want := time.Date(2025, 6, 1, 14, 0, 0, 0, timezone.Location())
	if !form.DataHoraParsed().Equal(want) {
		t.Fatalf("expected parsed %v, got %v", want, form.DataHoraParsed())
	}
}

func TestValidateAtendimento_PastDateTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, timezone.Location())

	form := &AtendimentoForm{
		ClienteID: 1,
		DataHora:  "2025-06-01 09:59",
		Descricao: "x",
	}

	fe := ValidateAtendimento(form, now)
	if !contains(fe["data_hora"], "past_datetime") {
		t.Fatalf("expected past_datetime, got %v", fe["data_hora"])
	}
}

func TestValidateAtendimento_DatetimeLocalFormat(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, timezone.Location())

	form := &AtendimentoForm{
		ClienteID: 1,
		DataHora:  "2025-06-01T14:00",
		Descricao: "x",
	}

	fe := ValidateAtendimento(form, now)
	if fe.Has("data_hora") {
		t.Fatalf("expected datetime-local format accepted, got %v", fe["data_hora"])
	}
}

func TestValidateAtendimento_InvalidDatetime(t *testing.T) {
	form := &AtendimentoForm{
		ClienteID: 1,
		DataHora:  "01/06/2025 14h",
		Descricao: "x",
	}

	fe := ValidateAtendimento(form, timezone.Now())
	if !contains(fe["data_hora"], "invalid_datetime") {
		t.Fatalf("expected invalid_datetime, got %v", fe["data_hora"])
	}
}

func TestValidateAtendimento_CollectsAllErrors(t *testing.T) {
	form := &AtendimentoForm{Status: "pendente"}

	fe := ValidateAtendimento(form, timezone.Now())

	if !fe.Has("cliente") || !fe.Has("data_hora") || !fe.Has("descricao") {
		t.Fatalf("expected errors for cliente, data_hora and descricao, got %v", fe)
	}
	if !contains(fe["status"], "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", fe["status"])
	}
}

func TestValidateAtendimento_StatusDefault(t *testing.T) {
	form := &AtendimentoForm{}
	if got := form.StatusOrDefault(); got != "agendado" {
		t.Fatalf("expected default status agendado, got %q", got)
	}

	fe := ValidateAtendimento(form, timezone.Now())
	if fe.Has("status") {
		t.Fatalf("empty status should default, got %v", fe["status"])
	}
}
