package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PagamentoDinheiro      = "Dinheiro"
	PagamentoCartaoCredito = "CartaoCredito"
	PagamentoCartaoDebito  = "CartaoDebito"
	PagamentoPIX           = "PIX"
	PagamentoTransferencia = "Transferencia"
)

func IsValidTipoPagamento(v string) bool {
	switch v {
	case PagamentoDinheiro, PagamentoCartaoCredito, PagamentoCartaoDebito,
		PagamentoPIX, PagamentoTransferencia:
		return true
	}
	return false
}

type FormaPagamento struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Descricao string    `gorm:"size:100;not null" json:"descricao"`
	Tipo      string    `gorm:"size:20;not null" json:"tipo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (FormaPagamento) TableName() string { return "formas_pagamento" }

func (f *FormaPagamento) BeforeCreate(*gorm.DB) error {
	newID(&f.ID)
	return nil
}
