package dto

import (
	"time"

	"github.com/gestaodeatendimentos/crm-atendimentos/internal/models"
)

type AtendimentoListDTO struct {
	ID          uint      `json:"id"`
	DataHora    time.Time `json:"data_hora"`
	Descricao   string    `json:"descricao"`
	Status      string    `json:"status"`
	ClienteID   uint      `json:"cliente_id"`
	ClienteNome string    `json:"cliente_nome"`
	UsuarioNome string    `json:"usuario_nome"`
}

func FromAtendimento(ap *models.Atendimento) AtendimentoListDTO {
	return AtendimentoListDTO{
		ID:          ap.ID,
		DataHora:    ap.DataHora,
		Descricao:   ap.Descricao,
		Status:      ap.Status,
		ClienteID:   ap.ClienteID,
		ClienteNome: ap.Cliente.Nome,
		UsuarioNome: ap.Usuario.Nome,
	}
}
