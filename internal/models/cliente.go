package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TipoCliente    = "Cliente"
	TipoFornecedor = "Fornecedor"
	TipoAmbos      = "Ambos"
)

const (
	SexoMasculino = "M"
	SexoFeminino  = "F"
	SexoOutro     = "Outro"
)

func IsValidTipoCliente(v string) bool {
	switch v {
	case TipoCliente, TipoFornecedor, TipoAmbos:
		return true
	}
	return false
}

func IsValidSexo(v string) bool {
	switch v {
	case SexoMasculino, SexoFeminino, SexoOutro:
		return true
	}
	return false
}

// Cliente da academia. O CPF é guardado sem máscara.
type Cliente struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Tipo           string    `gorm:"size:20;not null" json:"tipo"`
	NomeCompleto   string    `gorm:"size:150;not null" json:"nomeCompleto"`
	DataNascimento time.Time `gorm:"type:date;not null" json:"dataNascimento"`
	Sexo           string    `gorm:"size:10;not null" json:"sexo"`
	CPF            string    `gorm:"column:cpf;size:11;uniqueIndex;not null" json:"cpf"`
	Contato        *string   `gorm:"size:100" json:"contato"`
	Endereco       *string   `gorm:"size:255" json:"endereco"`

	PlanoID *uuid.UUID `gorm:"type:uuid;index" json:"planoId"`
	Plano   *Plano     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"plano,omitempty"`

	Ativo bool `gorm:"not null" json:"ativo"`

	FichaSaude *FichaSaude `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"fichaSaude,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Cliente) TableName() string { return "clientes" }

func (c *Cliente) BeforeCreate(*gorm.DB) error {
	newID(&c.ID)
	return nil
}

// Idade em anos completos na data de referência.
func (c *Cliente) Idade(ref time.Time) int {
	birth := c.DataNascimento
	years := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() ||
		(ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
