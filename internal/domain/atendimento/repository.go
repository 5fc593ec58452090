package atendimento

import (
	"context"

	"github.com/gestaodeatendimentos/crm-atendimentos/internal/models"
)

type Repository interface {
	// -------- Cliente --------
	GetCliente(
		ctx context.Context,
		id uint,
	) (*models.Cliente, error)

	// DeleteClienteCascade remove o cliente e todos os seus
	// atendimentos na mesma transação.
	DeleteClienteCascade(
		ctx context.Context,
		cliente *models.Cliente,
	) error

	// -------- Atendimento (create / conflito) --------

	// CreateScheduled grava o atendimento numa transação que
	// primeiro trava e conta agendados no mesmo data_hora exato;
	// conflito devolve ErrBusiness("scheduling_conflict").
	CreateScheduled(
		ctx context.Context,
		ap *models.Atendimento,
	) error

	// -------- Atendimento (leitura / mutação) --------
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Atendimento, error)

	Update(
		ctx context.Context,
		ap *models.Atendimento,
	) error

	Delete(
		ctx context.Context,
		ap *models.Atendimento,
	) error
}
