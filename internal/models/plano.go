package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AssinaturaMensal     = "Mensal"
	AssinaturaTrimestral = "Trimestral"
	AssinaturaSemestral  = "Semestral"
	AssinaturaAnual      = "Anual"
)

func IsValidTipoAssinatura(v string) bool {
	switch v {
	case AssinaturaMensal, AssinaturaTrimestral, AssinaturaSemestral, AssinaturaAnual:
		return true
	}
	return false
}

type Plano struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Descricao           string          `gorm:"size:100;not null" json:"descricao"`
	Valor               decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"valor"`
	NumeroTreinosSemana int             `gorm:"not null" json:"numeroTreinosSemana"`
	TipoAssinatura      string          `gorm:"size:20;not null" json:"tipoAssinatura"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Plano) TableName() string { return "planos" }

func (p *Plano) BeforeCreate(*gorm.DB) error {
	newID(&p.ID)
	return nil
}
