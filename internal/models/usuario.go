package models

import "time"

type Usuario struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome      string `gorm:"size:30;not null" json:"nome"`
	Sobrenome string `gorm:"size:30;not null" json:"sobrenome"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	SenhaHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
