package mensalidade

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/academia-backoffice/internal/clock"
	"github.com/BruksfildServices01/academia-backoffice/internal/logger"
	"github.com/BruksfildServices01/academia-backoffice/internal/models"
	"github.com/BruksfildServices01/academia-backoffice/internal/testutil"
	"github.com/BruksfildServices01/academia-backoffice/internal/timezone"
)

type fixture struct {
	repo  *testutil.MemoryRepository
	loc   *time.Location
	now   time.Time
	clock clock.Clock
	log   *logger.Logger

	plano   models.Plano
	cliente models.Cliente
	pix     models.FormaPagamento
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	loc := timezone.Location("America/Sao_Paulo")
	now := time.Date(2025, 3, 10, 6, 0, 0, 0, loc)
	repo := testutil.NewMemoryRepository()

	f := &fixture{
		repo:  repo,
		loc:   loc,
		now:   now,
		clock: clock.Fixed(now),
		log:   logger.NewNop(),
	}

	f.plano = repo.AddPlano(models.Plano{
		Descricao:           "Musculação",
		Valor:               decimal.NewFromInt(100),
		NumeroTreinosSemana: 3,
		TipoAssinatura:      models.AssinaturaMensal,
	})
	f.cliente = repo.AddCliente(models.Cliente{
		Tipo:           models.TipoCliente,
		NomeCompleto:   "Ana Souza",
		DataNascimento: time.Date(1990, 6, 15, 0, 0, 0, 0, loc),
		Sexo:           models.SexoFeminino,
		CPF:            "52998224725",
		Ativo:          true,
	})
	f.pix = repo.AddFormaPagamento(models.FormaPagamento{
		Descricao: "PIX",
		Tipo:      models.PagamentoPIX,
	})

	return f
}

// day devolve 00:00 de now + n dias.
func (f *fixture) day(n int) time.Time {
	return timezone.StartOfDay(f.now, f.loc).AddDate(0, 0, n)
}

// subscribed liga o cliente ao plano sem passar pelo usecase.
func (f *fixture) subscribed(c models.Cliente, p models.Plano) models.Cliente {
	c.PlanoID = &p.ID
	f.repo.UpdateCliente(c)
	return c
}

func (f *fixture) openCharge(c models.Cliente, p models.Plano, vencimento time.Time, valor int64) models.Mensalidade {
	return f.repo.AddMensalidade(models.Mensalidade{
		ClienteID:   c.ID,
		PlanoID:     p.ID,
		Valor:       decimal.NewFromInt(valor),
		Vencimento:  vencimento,
		Situacao:    "NaoPago",
		DataGeracao: f.now,
	})
}
