package mensalidade

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/academia-backoffice/internal/clock"
	domain "github.com/BruksfildServices01/academia-backoffice/internal/domain/mensalidade"
	"github.com/BruksfildServices01/academia-backoffice/internal/httperr"
	"github.com/BruksfildServices01/academia-backoffice/internal/logger"
	"github.com/BruksfildServices01/academia-backoffice/internal/metrics"
	"github.com/BruksfildServices01/academia-backoffice/internal/models"
)

const DefaultWindowDays = 5

// GenerationSummary resume uma execução da geração.
type GenerationSummary struct {
	Selecionadas int `json:"selecionadas"`
	Geradas      int `json:"geradas"`
	// já existiam (inclusive criadas por outro processo no meio da execução)
	Existentes int `json:"existentes"`
	// cliente ou plano ausente
	Ignoradas int `json:"ignoradas"`
	Falhas    int `json:"falhas"`
}

// GenerateUpcomingCharges gera a mensalidade do próximo ciclo para toda
// mensalidade em aberto que vence na janela [hoje, hoje+N dias].
// É idempotente: rodar de novo no mesmo dia não cria nada.
type GenerateUpcomingCharges struct {
	repo       domain.Repository
	clock      clock.Clock
	loc        *time.Location
	windowDays int
	log        *logger.Logger
}

func NewGenerateUpcomingCharges(
	repo domain.Repository,
	clk clock.Clock,
	loc *time.Location,
	windowDays int,
	log *logger.Logger,
) *GenerateUpcomingCharges {
	if windowDays < 0 {
		windowDays = DefaultWindowDays
	}
	return &GenerateUpcomingCharges{
		repo:       repo,
		clock:      clk,
		loc:        loc,
		windowDays: windowDays,
		log:        log,
	}
}

// Execute usa o relógio quando asOf é zero. Só devolve erro se a seleção
// falhar; falhas por linha entram no resumo.
func (uc *GenerateUpcomingCharges) Execute(
	ctx context.Context,
	asOf time.Time,
) (GenerationSummary, error) {

	var sum GenerationSummary

	if asOf.IsZero() {
		asOf = uc.clock.Now()
	}
	from, to := domain.RenewalWindow(asOf, uc.loc, uc.windowDays)

	due, err := uc.repo.ListDueForRenewal(ctx, from, to)
	if err != nil {
		return sum, fmt.Errorf("selecionar mensalidades a renovar: %w", err)
	}
	sum.Selecionadas = len(due)

	for i := range due {
		m := &due[i]

		created, err := uc.renew(ctx, m)
		switch {
		case errors.Is(err, errSkip):
			sum.Ignoradas++
		case httperr.IsConflict(err):
			sum.Existentes++
		case err != nil:
			sum.Falhas++
			uc.log.Errorw("falha ao gerar próxima mensalidade",
				"mensalidade_id", m.ID,
				"cliente_id", m.ClienteID,
				"error", err,
			)
		case created:
			sum.Geradas++
		default:
			sum.Existentes++
		}
	}

	metrics.RecordChargesCreated("varredura", sum.Geradas)
	return sum, nil
}

var errSkip = errors.New("mensalidade sem cliente ou plano")

func (uc *GenerateUpcomingCharges) renew(ctx context.Context, m *models.Mensalidade) (bool, error) {
	if m.PlanoID == uuid.Nil || m.Cliente == nil || m.Cliente.PlanoID == nil || m.Plano == nil {
		return false, errSkip
	}

	next := domain.NextDueDate(m.Vencimento.In(uc.loc), m.Plano.TipoAssinatura)

	created := false
	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		exists, err := tx.ExistsMensalidade(ctx, m.ClienteID, m.PlanoID, next)
		if err != nil || exists {
			return err
		}

		// valor atual do plano, não o da mensalidade anterior
		charge := domain.NewCharge(m.ClienteID, m.PlanoID, m.Plano.Valor, next, uc.clock.Now())
		if err := tx.CreateMensalidade(ctx, charge); err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}
