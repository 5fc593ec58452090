package atendimento

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gestaodeatendimentos/crm-atendimentos/internal/audit"
	domain "github.com/gestaodeatendimentos/crm-atendimentos/internal/domain/atendimento"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/models"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/timezone"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAtendimentoInput struct {
	UsuarioID uint

	ClienteID uint
	DataHora  string
	Descricao string
	Status    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAtendimento struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAtendimento(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAtendimento {
	return &CreateAtendimento{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute valida o formulário inteiro (acumulando erros por campo),
// confere o cliente e delega ao repositório a criação atômica com o
// check de conflito de horário.
func (uc *CreateAtendimento) Execute(
	ctx context.Context,
	in CreateAtendimentoInput,
) (*models.Atendimento, validators.FieldErrors, error) {

	form := &validators.AtendimentoForm{
		ClienteID: in.ClienteID,
		DataHora:  in.DataHora,
		Descricao: in.Descricao,
		Status:    in.Status,
	}

	fe := validators.ValidateAtendimento(form, timezone.Now())

	if !fe.Has("cliente") {
		if _, err := uc.repo.GetCliente(ctx, in.ClienteID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				fe.Add("cliente", "not_found")
			} else {
				return nil, nil, err
			}
		}
	}

	if !fe.Empty() {
		return nil, fe, nil
	}

	ap := &models.Atendimento{
		ClienteID: in.ClienteID,
		UsuarioID: in.UsuarioID,
		DataHora:  form.DataHoraParsed(),
		Descricao: in.Descricao,
		Status:    form.StatusOrDefault(),
	}

	if err := uc.repo.CreateScheduled(ctx, ap); err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &in.UsuarioID,
		Action:    "atendimento_created",
		Entity:    "atendimento",
		EntityID:  &ap.ID,
	})

	return ap, nil, nil
}
