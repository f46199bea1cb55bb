package mensalidade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/academia-backoffice/internal/clock"
	domain "github.com/BruksfildServices01/academia-backoffice/internal/domain/mensalidade"
	"github.com/BruksfildServices01/academia-backoffice/internal/logger"
	"github.com/BruksfildServices01/academia-backoffice/internal/metrics"
	"github.com/BruksfildServices01/academia-backoffice/internal/models"
)

type RegisterPaymentInput struct {
	MensalidadeID    uuid.UUID
	Valor            *decimal.Decimal
	FormaPagamentoID uuid.UUID
	Data             *time.Time
}

// RegisterPayment marca a mensalidade como paga e lança a entrada no caixa.
// Não gera a próxima mensalidade; isso fica com a varredura.
type RegisterPayment struct {
	repo  domain.Repository
	clock clock.Clock
	log   *logger.Logger
}

func NewRegisterPayment(
	repo domain.Repository,
	clk clock.Clock,
	log *logger.Logger,
) *RegisterPayment {
	return &RegisterPayment{
		repo:  repo,
		clock: clk,
		log:   log,
	}
}

func (uc *RegisterPayment) Execute(
	ctx context.Context,
	in RegisterPaymentInput,
) (*models.Mensalidade, error) {

	m, err := uc.repo.GetMensalidade(ctx, in.MensalidadeID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanPay(domain.Situacao(m.Situacao)); err != nil {
		return nil, err
	}

	forma, err := uc.repo.GetFormaPagamento(ctx, in.FormaPagamentoID)
	if err != nil {
		return nil, err
	}

	valor := m.Valor
	if in.Valor != nil {
		valor = *in.Valor
	}
	data := uc.clock.Now()
	if in.Data != nil {
		data = *in.Data
	}

	entry := domain.PaymentEntry(m, forma.ID, valor, data)

	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		// condicional: se outro pagamento entrou antes, nada muda
		if err := tx.MarkMensalidadePaga(ctx, m.ID); err != nil {
			return err
		}
		return tx.CreateMovimento(ctx, entry)
	})
	if err != nil {
		metrics.RecordPayment(forma.Tipo, "falha")
		return nil, err
	}

	metrics.RecordPayment(forma.Tipo, "ok")
	uc.log.Infow("pagamento registrado",
		"mensalidade_id", m.ID,
		"movimento_id", entry.ID,
		"valor", valor.String(),
		"forma_pagamento", forma.Tipo,
	)

	return uc.repo.GetMensalidade(ctx, m.ID)
}
