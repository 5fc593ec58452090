package models

import "time"

// Cliente guarda o valor digitado pelo usuário (telefone/cpf/cep com
// máscara); CPFDigits carrega só os dígitos e é o índice único real.
type Cliente struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome     string `gorm:"size:100;not null" json:"nome"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Telefone string `gorm:"size:15;not null" json:"telefone"`

	CPF       string `gorm:"size:14;not null" json:"cpf"`
	CPFDigits string `gorm:"size:11;uniqueIndex;not null" json:"-"`

	CEP         string `gorm:"size:9;not null" json:"cep"`
	Logradouro  string `gorm:"size:200;not null" json:"logradouro"`
	Numero      string `gorm:"size:10;not null" json:"numero"`
	Complemento string `gorm:"size:100" json:"complemento"`
	Bairro      string `gorm:"size:100;not null" json:"bairro"`
	Cidade      string `gorm:"size:100;not null" json:"cidade"`
	Estado      string `gorm:"size:2;not null" json:"estado"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
