package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MovimentoEntrada = "Entrada"
	MovimentoSaida   = "Saida"
)

func IsValidTipoMovimento(v string) bool {
	return v == MovimentoEntrada || v == MovimentoSaida
}

type MovimentoCaixa struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Data      time.Time       `gorm:"not null;index" json:"data"`
	Descricao string          `gorm:"size:255;not null" json:"descricao"`
	Valor     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"valor"`
	Tipo      string          `gorm:"size:10;not null;index" json:"tipo"`

	ClienteID *uuid.UUID `gorm:"type:uuid;index" json:"clienteId"`
	Cliente   *Cliente   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"cliente,omitempty"`

	FormaPagamentoID uuid.UUID       `gorm:"type:uuid;not null" json:"formaPagamentoId"`
	FormaPagamento   *FormaPagamento `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"formaPagamento,omitempty"`

	MensalidadeID *uuid.UUID   `gorm:"type:uuid;index" json:"mensalidadeId"`
	Mensalidade   *Mensalidade `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"mensalidade,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (MovimentoCaixa) TableName() string { return "movimentos_caixa" }

func (m *MovimentoCaixa) BeforeCreate(*gorm.DB) error {
	newID(&m.ID)
	return nil
}
