package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/gestaodeatendimentos/crm-atendimentos/internal/domain/atendimento"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/dto"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/httperr"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/models"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/timezone"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// Summary devolve os contadores da tela inicial e os próximos cinco
// atendimentos agendados.
func (h *DashboardHandler) Summary(c *gin.Context) {
	now := timezone.Now()
	dayStart, dayEnd := timezone.DayBounds(now)

	var clientesCount int64
	if err := h.db.Model(&models.Cliente{}).Count(&clientesCount).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "Erro ao montar o painel.")
		return
	}

	var atendimentosCount int64
	if err := h.db.Model(&models.Atendimento{}).Count(&atendimentosCount).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "Erro ao montar o painel.")
		return
	}

	var atendimentosHoje int64
	if err := h.db.Model(&models.Atendimento{}).
		Where("data_hora >= ? AND data_hora < ?", dayStart, dayEnd).
		Count(&atendimentosHoje).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "Erro ao montar o painel.")
		return
	}

	var proximos []models.Atendimento
	if err := h.db.
		Preload("Cliente").
		Preload("Usuario").
		Where("data_hora >= ? AND status = ?", now, string(domain.StatusAgendado)).
		Order("data_hora ASC").
		Limit(5).
		Find(&proximos).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "Erro ao montar o painel.")
		return
	}

	items := make([]dto.AtendimentoListDTO, 0, len(proximos))
	for _, ap := range proximos {
		items = append(items, dto.FromAtendimento(&ap))
	}

	c.JSON(200, gin.H{
		"clientes_count":        clientesCount,
		"atendimentos_count":    atendimentosCount,
		"atendimentos_hoje":     atendimentosHoje,
		"proximos_atendimentos": items,
	})
}
