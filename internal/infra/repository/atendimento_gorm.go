package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/gestaodeatendimentos/crm-atendimentos/internal/domain/atendimento"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/httperr"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/models"
)

type AtendimentoGormRepository struct {
	db *gorm.DB
}

func NewAtendimentoGormRepository(db *gorm.DB) *AtendimentoGormRepository {
	return &AtendimentoGormRepository{db: db}
}

// --------------------------------------------------
// Cliente
// --------------------------------------------------

func (r *AtendimentoGormRepository) GetCliente(
	ctx context.Context,
	id uint,
) (*models.Cliente, error) {

	var cliente models.Cliente
	if err := r.db.WithContext(ctx).First(&cliente, id).Error; err != nil {
		return nil, err
	}
	return &cliente, nil
}

// DeleteClienteCascade remove primeiro os atendimentos do cliente e
// depois o próprio registro, na mesma transação: ou some tudo, ou
// nada.
func (r *AtendimentoGormRepository) DeleteClienteCascade(
	ctx context.Context,
	cliente *models.Cliente,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("cliente_id = ?", cliente.ID).
			Delete(&models.Atendimento{}).Error; err != nil {
			return err
		}
		return tx.Delete(cliente).Error
	})
}

// --------------------------------------------------
// Atendimento (create + conflito)
// --------------------------------------------------

// CreateScheduled confere o horário e grava na mesma transação. O
// SELECT ... FOR UPDATE só serializa quando o instante já tem linha;
// com o slot vago, duas transações simultâneas passam ambas no count
// e quem decide é o índice único parcial (status = 'agendado'): a
// segunda quebra em 23505 e vira scheduling_conflict. Comparação
// exata no segundo: um minuto de diferença não conflita.
func (r *AtendimentoGormRepository) CreateScheduled(
	ctx context.Context,
	ap *models.Atendimento,
) error {

	when := ap.DataHora.Truncate(time.Second)
	ap.DataHora = when

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Atendimento
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"status = ? AND data_hora = ?",
				string(domain.StatusAgendado), when,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("scheduling_conflict")
		}

		return conflictFromCreate(tx.Create(ap).Error)
	})
}

// conflictFromCreate traduz a quebra do índice único parcial de
// agendados no mesmo erro de negócio do pré-check.
func conflictFromCreate(err error) error {
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("scheduling_conflict")
	}
	return err
}

// --------------------------------------------------
// Atendimento (leitura / mutação)
// --------------------------------------------------

func (r *AtendimentoGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Atendimento, error) {

	var ap models.Atendimento
	if err := r.db.WithContext(ctx).
		Preload("Cliente").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AtendimentoGormRepository) Update(
	ctx context.Context,
	ap *models.Atendimento,
) error {
	ap.DataHora = ap.DataHora.Truncate(time.Second)
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AtendimentoGormRepository) Delete(
	ctx context.Context,
	ap *models.Atendimento,
) error {
	return r.db.WithContext(ctx).Delete(ap).Error
}

// Compile-time check
var _ domain.Repository = (*AtendimentoGormRepository)(nil)
