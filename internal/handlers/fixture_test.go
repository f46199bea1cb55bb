package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/academia-backoffice/internal/clock"
	"github.com/BruksfildServices01/academia-backoffice/internal/logger"
	"github.com/BruksfildServices01/academia-backoffice/internal/models"
	"github.com/BruksfildServices01/academia-backoffice/internal/testutil"
	"github.com/BruksfildServices01/academia-backoffice/internal/timezone"
	ucMensalidade "github.com/BruksfildServices01/academia-backoffice/internal/usecase/mensalidade"
)

// apiFixture monta só as rotas que passam pelo repositório de mensalidades;
// os handlers que falam direto com o gorm recebem db nil e só são
// exercitados até a validação.
type apiFixture struct {
	repo   *testutil.MemoryRepository
	router *gin.Engine
	loc    *time.Location
	now    time.Time

	plano   models.Plano
	cliente models.Cliente
	pix     models.FormaPagamento
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	loc := timezone.Location("America/Sao_Paulo")
	now := time.Date(2025, 3, 10, 6, 0, 0, 0, loc)
	clk := clock.Fixed(now)
	lg := logger.NewNop()
	repo := testutil.NewMemoryRepository()

	f := &apiFixture{repo: repo, loc: loc, now: now}

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

	mensalidades := NewMensalidadeHandler(
		repo,
		ucMensalidade.NewListMensalidades(repo, loc),
		ucMensalidade.NewRegisterPayment(repo, clk, lg),
		loc,
	)
	clientes := NewClienteHandler(nil, ucMensalidade.NewCreateFirstCharge(repo, clk, loc, lg), clk, loc)

	r := gin.New()
	r.GET("/api/mensalidades", mensalidades.List)
	r.GET("/api/mensalidades/:id", mensalidades.Get)
	r.POST("/api/mensalidades/:id/registrar-pagamento", mensalidades.RegistrarPagamento)
	r.POST("/api/clientes/:id/contratar-plano", clientes.ContratarPlano)
	f.router = r

	return f
}

func (f *apiFixture) day(n int) time.Time {
	return timezone.StartOfDay(f.now, f.loc).AddDate(0, 0, n)
}

func (f *apiFixture) openCharge(vencimento time.Time) models.Mensalidade {
	return f.repo.AddMensalidade(models.Mensalidade{
		ClienteID:   f.cliente.ID,
		PlanoID:     f.plano.ID,
		Valor:       f.plano.Valor,
		Vencimento:  vencimento,
		Situacao:    "NaoPago",
		DataGeracao: f.now,
	})
}

func (f *apiFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[map[string]any](t, w)["error_code"].(string)
}
