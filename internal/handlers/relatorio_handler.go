package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/academia-backoffice/internal/domain/mensalidade"
	"github.com/BruksfildServices01/academia-backoffice/internal/httperr"
	"github.com/BruksfildServices01/academia-backoffice/internal/models"
	"github.com/BruksfildServices01/academia-backoffice/internal/relatorio"
	"github.com/BruksfildServices01/academia-backoffice/internal/timezone"
)

type RelatorioHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewRelatorioHandler(db *gorm.DB, loc *time.Location) *RelatorioHandler {
	return &RelatorioHandler{db: db, loc: loc}
}

// periodo exige dataInicio e dataFim; o fim vale até 23:59:59 do dia.
func (h *RelatorioHandler) periodo(c *gin.Context) (time.Time, time.Time, bool) {
	inicio, ok := queryDate(c, "dataInicio", h.loc)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	fim, ok := queryDate(c, "dataFim", h.loc)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if inicio == nil || fim == nil {
		httperr.BadRequest(c, "periodo_obrigatorio", "dataInicio e dataFim são obrigatórios.")
		return time.Time{}, time.Time{}, false
	}
	return timezone.StartOfDay(*inicio, h.loc), timezone.EndOfDay(*fim, h.loc), true
}

// ======================================================
// PREVISÃO DE CAIXA
// ======================================================
func (h *RelatorioHandler) PrevisaoCaixa(c *gin.Context) {
	inicio, fim, ok := h.periodo(c)
	if !ok {
		return
	}
	db := h.db.WithContext(c.Request.Context())

	var movimentos []models.MovimentoCaixa
	if err := db.
		Where("data >= ? AND data <= ?", inicio, fim).
		Order("data ASC").
		Find(&movimentos).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	var aReceber []models.Mensalidade
	if err := db.
		Preload("Cliente").
		Preload("Plano").
		Where("vencimento >= ? AND vencimento <= ? AND situacao = ?",
			inicio, fim, string(domain.SituacaoNaoPago)).
		Order("vencimento ASC").
		Find(&aReceber).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, relatorio.PrevisaoCaixa(inicio, fim, movimentos, aReceber))
}

// ======================================================
// RECEBIMENTOS
// ======================================================
func (h *RelatorioHandler) Recebimentos(c *gin.Context) {
	inicio, fim, ok := h.periodo(c)
	if !ok {
		return
	}

	var movimentos []models.MovimentoCaixa
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Cliente").
		Preload("FormaPagamento").
		Where("data >= ? AND data <= ?", inicio, fim).
		Order("data ASC").
		Find(&movimentos).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, relatorio.Recebimentos(inicio, fim, movimentos))
}

// ======================================================
// DASHBOARD
// ======================================================

type clientesPorPlano struct {
	PlanoID uuid.UUID
	Total   int64
}

func (h *RelatorioHandler) Totalizadores(c *gin.Context) {
	db := h.db.WithContext(c.Request.Context())

	var rows []clientesPorPlano
	if err := db.Model(&models.Cliente{}).
		Select("plano_id, COUNT(id) AS total").
		Where("ativo = ? AND plano_id IS NOT NULL", true).
		Group("plano_id").
		Scan(&rows).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	var planos []models.Plano
	if err := db.Order("descricao ASC").Find(&planos).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	ativos := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		ativos[r.PlanoID] = r.Total
	}

	c.JSON(http.StatusOK, relatorio.Totalizadores(planos, ativos))
}
