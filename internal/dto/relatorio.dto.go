package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/academia-backoffice/internal/models"
)

type PeriodoDTO struct {
	DataInicio time.Time `json:"dataInicio"`
	DataFim    time.Time `json:"dataFim"`
}

type RealizadosDTO struct {
	Entradas decimal.Decimal `json:"entradas"`
	Saidas   decimal.Decimal `json:"saidas"`
	Total    decimal.Decimal `json:"total"`
}

type PrevisaoCaixaDTO struct {
	Periodo    PeriodoDTO      `json:"periodo"`
	Realizados RealizadosDTO   `json:"realizados"`
	ARealizar  decimal.Decimal `json:"aRealizar"`
	// nome mantido como o front-end já consome
	MensalidadesAReceber []models.Mensalidade    `json:"mensalidadesARecber"`
	Movimentos           []models.MovimentoCaixa `json:"movimentos"`
}

type RecebimentosDTO struct {
	Periodo       PeriodoDTO              `json:"periodo"`
	Recebidos     []models.MovimentoCaixa `json:"recebidos"`
	Pagos         []models.MovimentoCaixa `json:"pagos"`
	TotalEntradas decimal.Decimal         `json:"totalEntradas"`
	TotalSaidas   decimal.Decimal         `json:"totalSaidas"`
	SaldoCaixa    decimal.Decimal         `json:"saldoCaixa"`
}

type TotalPlanoDTO struct {
	PlanoID        uuid.UUID `json:"planoId"`
	Descricao      string    `json:"descricao"`
	TipoAssinatura string    `json:"tipoAssinatura"`
	TotalClientes  int64     `json:"totalClientes"`
}

type TotalizadoresDTO struct {
	PorPlano            []TotalPlanoDTO `json:"porPlano"`
	TotalClientesAtivos int64           `json:"totalClientesAtivos"`
}
