package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	NivelNunca         = "Nunca"
	NivelIniciante     = "Iniciante"
	NivelIntermediario = "Intermediario"
	NivelAvancado      = "Avancado"
)

const (
	FrequenciaTresPorSemana  = "TresPorSemana"
	FrequenciaCincoPorSemana = "CincoPorSemana"
	FrequenciaSeisPorSemana  = "SeisPorSemana"
)

func IsValidNivelAtividade(v string) bool {
	switch v {
	case NivelNunca, NivelIniciante, NivelIntermediario, NivelAvancado:
		return true
	}
	return false
}

func IsValidFrequencia(v string) bool {
	switch v {
	case FrequenciaTresPorSemana, FrequenciaCincoPorSemana, FrequenciaSeisPorSemana:
		return true
	}
	return false
}

type FichaSaude struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClienteID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"clienteId"`

	DoencaDiagnosticada            bool    `gorm:"not null" json:"doencaDiagnosticada"`
	DoencaDiagnosticadaQual        *string `gorm:"size:255" json:"doencaDiagnosticadaQual"`
	MedicamentosContinuos          bool    `gorm:"not null" json:"medicamentosContinuos"`
	MedicamentosContinuosQual      *string `gorm:"size:255" json:"medicamentosContinuosQual"`
	LesaoCirurgiaOrtopedia         bool    `gorm:"not null" json:"lesaoCirurgiaOrtopedia"`
	LesaoCirurgiaOrtopediaQual     *string `gorm:"size:255" json:"lesaoCirurgiaOrtopediaQual"`
	ProblemasCardiacosDiabetes     bool    `gorm:"not null" json:"problemasCardiacosDiabetes"`
	ProblemasCardiacosDiabetesQual *string `gorm:"size:255" json:"problemasCardiacosDiabetesQual"`
	RestricaoMedica                bool    `gorm:"not null" json:"restricaoMedica"`
	RestricaoMedicaQual            *string `gorm:"size:255" json:"restricaoMedicaQual"`

	Objetivos     pq.StringArray `gorm:"type:text[]" json:"objetivos"`
	ObjetivoOutro *string        `gorm:"size:255" json:"objetivoOutro"`

	NivelAtividade     string    `gorm:"size:20;not null" json:"nivelAtividade"`
	FrequenciaDesejada string    `gorm:"size:20;not null" json:"frequenciaDesejada"`
	DataFicha          time.Time `gorm:"not null" json:"dataFicha"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (FichaSaude) TableName() string { return "fichas_saude" }

func (f *FichaSaude) BeforeCreate(*gorm.DB) error {
	newID(&f.ID)
	if f.NivelAtividade == "" {
		f.NivelAtividade = NivelNunca
	}
	if f.FrequenciaDesejada == "" {
		f.FrequenciaDesejada = FrequenciaTresPorSemana
	}
	if f.DataFicha.IsZero() {
		f.DataFicha = time.Now()
	}
	return nil
}
