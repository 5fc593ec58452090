package models

import "time"

type Atendimento struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClienteID uint    `gorm:"not null" json:"cliente_id"`
	Cliente   Cliente `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"cliente"`

	UsuarioID uint    `gorm:"not null" json:"usuario_id"`
	Usuario   Usuario `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"usuario"`

	// Índice único parcial: no máximo um agendado por instante. O
	// pré-check da aplicação só dá a mensagem amigável; quem decide
	// sob corrida é este índice.
	DataHora  time.Time `gorm:"not null;index;uniqueIndex:uniq_atendimentos_agendado_slot,where:status = 'agendado'" json:"data_hora"`
	Descricao string    `gorm:"type:text;not null" json:"descricao"`

	Status string `gorm:"size:20;default:'agendado'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
