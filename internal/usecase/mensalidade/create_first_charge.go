package mensalidade

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/academia-backoffice/internal/clock"
	domain "github.com/BruksfildServices01/academia-backoffice/internal/domain/mensalidade"
	"github.com/BruksfildServices01/academia-backoffice/internal/logger"
	"github.com/BruksfildServices01/academia-backoffice/internal/metrics"
	"github.com/BruksfildServices01/academia-backoffice/internal/models"
)

type CreateFirstChargeInput struct {
	ClienteID  uuid.UUID
	PlanoID    uuid.UUID
	DataInicio *time.Time
}

// CreateFirstCharge vincula o plano ao cliente e gera a primeira
// mensalidade, tudo na mesma transação.
type CreateFirstCharge struct {
	repo  domain.Repository
	clock clock.Clock
	loc   *time.Location
	log   *logger.Logger
}

func NewCreateFirstCharge(
	repo domain.Repository,
	clk clock.Clock,
	loc *time.Location,
	log *logger.Logger,
) *CreateFirstCharge {
	return &CreateFirstCharge{
		repo:  repo,
		clock: clk,
		loc:   loc,
		log:   log,
	}
}

func (uc *CreateFirstCharge) Execute(
	ctx context.Context,
	in CreateFirstChargeInput,
) (*models.Cliente, error) {

	cliente, err := uc.repo.GetCliente(ctx, in.ClienteID)
	if err != nil {
		return nil, err
	}

	plano, err := uc.repo.GetPlano(ctx, in.PlanoID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	start := now
	if in.DataInicio != nil {
		start = *in.DataInicio
	}
	vencimento := domain.DueDate(start, uc.loc)

	charge := domain.NewCharge(cliente.ID, plano.ID, plano.Valor, vencimento, now)

	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		if err := tx.AssignPlano(ctx, cliente.ID, plano.ID); err != nil {
			return err
		}
		return tx.CreateMensalidade(ctx, charge)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordChargesCreated("contratacao", 1)
	uc.log.Infow("plano contratado",
		"cliente_id", cliente.ID,
		"plano_id", plano.ID,
		"mensalidade_id", charge.ID,
		"vencimento", vencimento.Format("2006-01-02"),
	)

	return uc.repo.GetCliente(ctx, cliente.ID)
}
