package atendimento

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gestaodeatendimentos/crm-atendimentos/internal/audit"
	domain "github.com/gestaodeatendimentos/crm-atendimentos/internal/domain/atendimento"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/httperr"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/models"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/timezone"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/validators"
)

type UpdateAtendimentoInput struct {
	ID        uint
	UsuarioID uint

	ClienteID uint
	DataHora  string
	Descricao string
	Status    string
}

type UpdateAtendimento struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAtendimento(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAtendimento {
	return &UpdateAtendimento{
		repo:  repo,
		audit: audit,
	}
}

// Execute re-roda a validação de campos (inclusive data no passado),
// mas NÃO o check de conflito de horário: a edição pode mover um
// atendimento para um horário ocupado, como no fluxo original.
func (uc *UpdateAtendimento) Execute(
	ctx context.Context,
	in UpdateAtendimentoInput,
) (*models.Atendimento, validators.FieldErrors, error) {

	ap, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, httperr.ErrBusiness("not_found")
		}
		return nil, nil, err
	}

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

	ap.ClienteID = in.ClienteID
	ap.DataHora = form.DataHoraParsed()
	ap.Descricao = in.Descricao
	ap.Status = form.StatusOrDefault()

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &in.UsuarioID,
		Action:    "atendimento_updated",
		Entity:    "atendimento",
		EntityID:  &ap.ID,
	})

	return ap, nil, nil
}
