package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gestaodeatendimentos/crm-atendimentos/internal/audit"
	domain "github.com/gestaodeatendimentos/crm-atendimentos/internal/domain/atendimento"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/dto"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/httperr"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/httpresp"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/middleware"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/models"
	ucAtendimento "github.com/gestaodeatendimentos/crm-atendimentos/internal/usecase/atendimento"
)

const atendimentosPerPage = 15

// ======================================================
// HANDLER
// ======================================================

type AtendimentoHandler struct {
	db       *gorm.DB
	audit    *audit.Dispatcher
	createUC *ucAtendimento.CreateAtendimento
	updateUC *ucAtendimento.UpdateAtendimento
}

func NewAtendimentoHandler(
	db *gorm.DB,
	auditDispatcher *audit.Dispatcher,
	createUC *ucAtendimento.CreateAtendimento,
	updateUC *ucAtendimento.UpdateAtendimento,
) *AtendimentoHandler {
	return &AtendimentoHandler{
		db:       db,
		audit:    auditDispatcher,
		createUC: createUC,
		updateUC: updateUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AtendimentoRequest struct {
	ClienteID uint   `json:"cliente_id"`
	DataHora  string `json:"data_hora"`
	Descricao string `json:"descricao"`
	Status    string `json:"status"`
}

// ======================================================
// LIST
// ======================================================

func (h *AtendimentoHandler) List(c *gin.Context) {
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	statusFilter := strings.TrimSpace(c.Query("status"))

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	q := h.db.Model(&models.Atendimento{}).
		Joins("JOIN clientes ON clientes.id = atendimentos.cliente_id")

	if search != "" {
		cond, args := atendimentoSearchClause(search)
		q = q.Where(cond, args...)
	}

	if statusFilter != "" {
		cond, args, ok := atendimentoStatusClause(statusFilter)
		if !ok {
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
			return
		}
		q = q.Where(cond, args...)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_count_atendimentos", "Erro ao listar atendimentos.")
		return
	}

	var atendimentos []models.Atendimento
	if err := q.
		Preload("Cliente").
		Preload("Usuario").
		Order("atendimentos.data_hora ASC").
		Limit(atendimentosPerPage).
		Offset((page - 1) * atendimentosPerPage).
		Find(&atendimentos).Error; err != nil {

		httperr.Internal(c, "failed_to_list_atendimentos", "Erro ao listar atendimentos.")
		return
	}

	items := make([]dto.AtendimentoListDTO, 0, len(atendimentos))
	for _, ap := range atendimentos {
		items = append(items, dto.FromAtendimento(&ap))
	}

	httpresp.Paged(c, items, page, atendimentosPerPage, total)
}

// atendimentoSearchClause busca pelo nome do cliente (via join) e
// pela descrição, ambos sem caixa.
func atendimentoSearchClause(search string) (string, []any) {
	like := "%" + search + "%"
	return "LOWER(clientes.nome) LIKE ? OR LOWER(atendimentos.descricao) LIKE ?",
		[]any{like, like}
}

// atendimentoStatusClause valida o filtro contra os status conhecidos
// antes de virar predicado; ok=false para valor desconhecido.
func atendimentoStatusClause(status string) (string, []any, bool) {
	if !domain.IsValid(domain.Status(status)) {
		return "", nil, false
	}
	return "atendimentos.status = ?", []any{status}, true
}

// ======================================================
// GET
// ======================================================

func (h *AtendimentoHandler) Get(c *gin.Context) {
	var ap models.Atendimento
	if err := h.db.
		Preload("Cliente").
		Preload("Usuario").
		First(&ap, c.Param("id")).Error; err != nil {

		httperr.NotFound(c, "not_found", "Atendimento não encontrado.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CREATE
// ======================================================

func (h *AtendimentoHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req AtendimentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, fe, err := h.createUC.Execute(c.Request.Context(), ucAtendimento.CreateAtendimentoInput{
		UsuarioID: userID,
		ClienteID: req.ClienteID,
		DataHora:  req.DataHora,
		Descricao: req.Descricao,
		Status:    req.Status,
	})

	if err != nil {
		if httperr.IsBusiness(err, "scheduling_conflict") {
			h.audit.Dispatch(audit.Event{
				UsuarioID: &userID,
				Action:    "atendimento_conflict",
				Entity:    "atendimento",
				Metadata:  map[string]any{"data_hora": req.DataHora},
			})

			httperr.Conflict(c, "scheduling_conflict", "Já existe um atendimento agendado para este horário.")
			return
		}
		httperr.Internal(c, "failed_to_create_atendimento", "Erro ao agendar atendimento.")
		return
	}

	if fe != nil && !fe.Empty() {
		httperr.Validation(c, fe)
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AtendimentoHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req AtendimentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, fe, err := h.updateUC.Execute(c.Request.Context(), ucAtendimento.UpdateAtendimentoInput{
		ID:        uint(id),
		UsuarioID: userID,
		ClienteID: req.ClienteID,
		DataHora:  req.DataHora,
		Descricao: req.Descricao,
		Status:    req.Status,
	})

	if err != nil {
		if httperr.IsBusiness(err, "not_found") {
			httperr.NotFound(c, "not_found", "Atendimento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_update_atendimento", "Erro ao atualizar atendimento.")
		return
	}

	if fe != nil && !fe.Empty() {
		httperr.Validation(c, fe)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AtendimentoHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var ap models.Atendimento
	if err := h.db.First(&ap, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "not_found", "Atendimento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_load_atendimento", "Erro ao carregar atendimento.")
		return
	}

	if err := h.db.Delete(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_atendimento", "Erro ao excluir atendimento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UsuarioID: &userID,
		Action:    "atendimento_deleted",
		Entity:    "atendimento",
		EntityID:  &ap.ID,
	})

	c.JSON(200, gin.H{"deleted": true})
}
