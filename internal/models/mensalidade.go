package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Mensalidade é uma cobrança de um ciclo do plano.
// (cliente, plano, vencimento) é único no banco.
type Mensalidade struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ClienteID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_mensalidade_cliente_plano_vencimento,priority:1" json:"clienteId"`
	Cliente   *Cliente  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"cliente,omitempty"`

	PlanoID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_mensalidade_cliente_plano_vencimento,priority:2" json:"planoId"`
	Plano   *Plano    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"plano,omitempty"`

	Valor      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"valor"`
	Vencimento time.Time       `gorm:"not null;index;uniqueIndex:ux_mensalidade_cliente_plano_vencimento,priority:3" json:"vencimento"`
	Situacao   string          `gorm:"size:20;not null;index" json:"situacao"`

	DataGeracao time.Time `gorm:"not null" json:"dataGeracao"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Mensalidade) TableName() string { return "mensalidades" }

func (m *Mensalidade) BeforeCreate(*gorm.DB) error {
	newID(&m.ID)
	if m.DataGeracao.IsZero() {
		m.DataGeracao = time.Now()
	}
	return nil
}
