// Package relatorio agrega movimentos e mensalidades já carregados do banco.
package relatorio

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/academia-backoffice/internal/dto"
	"github.com/BruksfildServices01/academia-backoffice/internal/models"
)

func PrevisaoCaixa(
	inicio time.Time,
	fim time.Time,
	movimentos []models.MovimentoCaixa,
	aReceber []models.Mensalidade,
) dto.PrevisaoCaixaDTO {

	entradas := sumMovimentos(byTipo(movimentos, models.MovimentoEntrada))
	saidas := sumMovimentos(byTipo(movimentos, models.MovimentoSaida))

	aRealizar := lo.Reduce(aReceber, func(acc decimal.Decimal, m models.Mensalidade, _ int) decimal.Decimal {
		return acc.Add(m.Valor)
	}, decimal.Zero)

	return dto.PrevisaoCaixaDTO{
		Periodo: dto.PeriodoDTO{DataInicio: inicio, DataFim: fim},
		Realizados: dto.RealizadosDTO{
			Entradas: entradas,
			Saidas:   saidas,
			Total:    entradas.Sub(saidas),
		},
		ARealizar:            aRealizar,
		MensalidadesAReceber: nonNil(aReceber),
		Movimentos:           nonNil(movimentos),
	}
}

func Recebimentos(
	inicio time.Time,
	fim time.Time,
	movimentos []models.MovimentoCaixa,
) dto.RecebimentosDTO {

	recebidos := byTipo(movimentos, models.MovimentoEntrada)
	pagos := byTipo(movimentos, models.MovimentoSaida)
	totalEntradas := sumMovimentos(recebidos)
	totalSaidas := sumMovimentos(pagos)

	return dto.RecebimentosDTO{
		Periodo:       dto.PeriodoDTO{DataInicio: inicio, DataFim: fim},
		Recebidos:     recebidos,
		Pagos:         pagos,
		TotalEntradas: totalEntradas,
		TotalSaidas:   totalSaidas,
		SaldoCaixa:    totalEntradas.Sub(totalSaidas),
	}
}

// Totalizadores lista todos os planos, com zero quando não há cliente ativo.
func Totalizadores(planos []models.Plano, ativosPorPlano map[uuid.UUID]int64) dto.TotalizadoresDTO {
	porPlano := lo.Map(planos, func(p models.Plano, _ int) dto.TotalPlanoDTO {
		return dto.TotalPlanoDTO{
			PlanoID:        p.ID,
			Descricao:      p.Descricao,
			TipoAssinatura: p.TipoAssinatura,
			TotalClientes:  ativosPorPlano[p.ID],
		}
	})

	total := lo.SumBy(porPlano, func(t dto.TotalPlanoDTO) int64 {
		return t.TotalClientes
	})

	return dto.TotalizadoresDTO{
		PorPlano:            porPlano,
		TotalClientesAtivos: total,
	}
}

func byTipo(list []models.MovimentoCaixa, tipo string) []models.MovimentoCaixa {
	return lo.Filter(list, func(m models.MovimentoCaixa, _ int) bool {
		return m.Tipo == tipo
	})
}

func sumMovimentos(list []models.MovimentoCaixa) decimal.Decimal {
	return lo.Reduce(list, func(acc decimal.Decimal, m models.MovimentoCaixa, _ int) decimal.Decimal {
		return acc.Add(m.Valor)
	}, decimal.Zero)
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
