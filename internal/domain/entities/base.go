package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base contém campos comuns para todas as entidades
type Base struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// BeforeCreate gera o ID quando ele não foi informado
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
