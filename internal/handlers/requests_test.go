package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/academia-backoffice/internal/httperr"
	"github.com/BruksfildServices01/academia-backoffice/internal/models"
)

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func ptr[T any](v T) *T { return &v }

// ======================================================
// PLANOS
// ======================================================

func TestCreatePlanoRequestValidate(t *testing.T) {
	valid := CreatePlanoRequest{
		Descricao:           "Funcional",
		Valor:               ptr(decimal.RequireFromString("129.90")),
		NumeroTreinosSemana: ptr(5),
		TipoAssinatura:      models.AssinaturaTrimestral,
	}
	require.NoError(t, valid.validate())

	missing := valid
	missing.Valor = nil
	assert.True(t, httperr.IsBusiness(missing.validate(), "missing_fields"))

	tipo := valid
	tipo.TipoAssinatura = "Bienal"
	assert.True(t, httperr.IsBusiness(tipo.validate(), "invalid_tipo_assinatura"))

	neg := valid
	neg.Valor = ptr(decimal.NewFromInt(-1))
	assert.True(t, httperr.IsBusiness(neg.validate(), "invalid_values"))
}

func TestApplyPlanoPatch(t *testing.T) {
	updates, err := applyPlanoPatch(UpdatePlanoRequest{})
	require.NoError(t, err)
	assert.Empty(t, updates)

	updates, err = applyPlanoPatch(UpdatePlanoRequest{
		Descricao:      ptr(" Pilates "),
		Valor:          ptr(decimal.NewFromInt(90)),
		TipoAssinatura: ptr(models.AssinaturaAnual),
	})
	require.NoError(t, err)
	assert.Equal(t, "Pilates", updates["descricao"])
	assert.Equal(t, models.AssinaturaAnual, updates["tipo_assinatura"])
	assert.NotContains(t, updates, "numero_treinos_semana")

	_, err = applyPlanoPatch(UpdatePlanoRequest{TipoAssinatura: ptr("Diario")})
	assert.True(t, httperr.IsBusiness(err, "invalid_tipo_assinatura"))

	_, err = applyPlanoPatch(UpdatePlanoRequest{Descricao: ptr("")})
	assert.True(t, httperr.IsBusiness(err, "invalid_descricao"))
}

func TestPlanoHandlerValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewPlanoHandler(nil)
	r := gin.New()
	r.POST("/planos", h.Create)
	r.GET("/planos/:id", h.Get)
	r.PUT("/planos/:id", h.Update)
	r.DELETE("/planos/:id", h.Delete)

	w := serve(r, http.MethodPost, "/planos", `{"descricao":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_fields", errorCode(t, w))

	w = serve(r, http.MethodPut, "/planos/"+uuid.NewString(), `{"valor":-10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_values", errorCode(t, w))

	for _, m := range []string{http.MethodGet, http.MethodDelete} {
		w = serve(r, m, "/planos/123", "")
		assert.Equal(t, http.StatusBadRequest, w.Code, m)
		assert.Equal(t, "invalid_id", errorCode(t, w), m)
	}
}

// ======================================================
// FORMAS DE PAGAMENTO
// ======================================================

func TestFormaPagamentoRequests(t *testing.T) {
	require.NoError(t, CreateFormaPagamentoRequest{Descricao: "Pix", Tipo: models.PagamentoPIX}.validate())

	err := CreateFormaPagamentoRequest{Descricao: "Boleto", Tipo: "Boleto"}.validate()
	assert.True(t, httperr.IsBusiness(err, "invalid_tipo"))

	err = CreateFormaPagamentoRequest{Tipo: models.PagamentoPIX}.validate()
	assert.True(t, httperr.IsBusiness(err, "missing_fields"))

	updates, err := UpdateFormaPagamentoRequest{Descricao: ptr("Cartão")}.updates()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"descricao": "Cartão"}, updates)

	_, err = UpdateFormaPagamentoRequest{Tipo: ptr("Cheque")}.updates()
	assert.True(t, httperr.IsBusiness(err, "invalid_tipo"))
}

// ======================================================
// MOVIMENTOS DE CAIXA
// ======================================================

func TestCreateMovimentoRequestToModel(t *testing.T) {
	loc := time.UTC
	forma := uuid.New()
	cliente := uuid.New()

	req := CreateMovimentoRequest{
		Data:             "2025-03-10",
		Descricao:        " Conta de luz ",
		Valor:            ptr(decimal.NewFromInt(300)),
		Tipo:             models.MovimentoSaida,
		FormaPagamentoID: forma.String(),
		ClienteID:        ptr(cliente.String()),
		MensalidadeID:    ptr(""),
	}

	mv, err := req.toModel(loc)
	require.NoError(t, err)
	assert.Equal(t, "Conta de luz", mv.Descricao)
	assert.Equal(t, forma, mv.FormaPagamentoID)
	require.NotNil(t, mv.ClienteID)
	assert.Equal(t, cliente, *mv.ClienteID)
	assert.Nil(t, mv.MensalidadeID)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), mv.Data)

	bad := req
	bad.Tipo = "Transferencia"
	_, err = bad.toModel(loc)
	assert.True(t, httperr.IsBusiness(err, "invalid_tipo"))

	bad = req
	bad.ClienteID = ptr("ana")
	_, err = bad.toModel(loc)
	assert.True(t, httperr.IsBusiness(err, "invalid_clienteId"))

	bad = req
	bad.Valor = nil
	_, err = bad.toModel(loc)
	assert.True(t, httperr.IsBusiness(err, "missing_fields"))
}

func TestUpdateMovimentoRequestUpdates(t *testing.T) {
	var req UpdateMovimentoRequest
	require.NoError(t, jsonUnmarshal(`{"clienteId":null,"descricao":"Ajuste"}`, &req))

	updates, err := req.updates(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "Ajuste", updates["descricao"])
	assert.Contains(t, updates, "cliente_id")
	assert.Nil(t, updates["cliente_id"].(*uuid.UUID))
	assert.NotContains(t, updates, "mensalidade_id")

	req = UpdateMovimentoRequest{}
	require.NoError(t, jsonUnmarshal(`{"tipo":"Outro"}`, &req))
	_, err = req.updates(time.UTC)
	assert.True(t, httperr.IsBusiness(err, "invalid_tipo"))
}

// ======================================================
// RELATÓRIOS
// ======================================================

func TestRelatorioExigePeriodo(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewRelatorioHandler(nil, time.UTC)
	r := gin.New()
	r.GET("/previsao", h.PrevisaoCaixa)
	r.GET("/recebimentos", h.Recebimentos)

	for _, path := range []string{"/previsao", "/recebimentos?dataInicio=2025-03-01"} {
		w := serve(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, "periodo_obrigatorio", errorCode(t, w), path)
	}

	w := serve(r, http.MethodGet, "/previsao?dataInicio=2025-03-01&dataFim=fim", "")
	assert.Equal(t, "invalid_dataFim", errorCode(t, w))
}
