package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/academia-backoffice/internal/domain/mensalidade"
	"github.com/BruksfildServices01/academia-backoffice/internal/httperr"
	ucMensalidade "github.com/BruksfildServices01/academia-backoffice/internal/usecase/mensalidade"
)

// ======================================================
// HANDLER
// ======================================================

type MensalidadeHandler struct {
	repo     domain.Repository
	list     *ucMensalidade.ListMensalidades
	register *ucMensalidade.RegisterPayment
	loc      *time.Location
}

func NewMensalidadeHandler(
	repo domain.Repository,
	list *ucMensalidade.ListMensalidades,
	register *ucMensalidade.RegisterPayment,
	loc *time.Location,
) *MensalidadeHandler {
	return &MensalidadeHandler{
		repo:     repo,
		list:     list,
		register: register,
		loc:      loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RegistrarPagamentoRequest struct {
	Valor            *decimal.Decimal `json:"valor"`
	FormaPagamentoID string           `json:"formaPagamentoId"`
	Data             *string          `json:"data"`
}

// ======================================================
// LIST
// ======================================================
func (h *MensalidadeHandler) List(c *gin.Context) {
	clienteID, ok := queryUUID(c, "clienteId")
	if !ok {
		return
	}
	inicio, ok := queryDate(c, "dataInicio", h.loc)
	if !ok {
		return
	}
	fim, ok := queryDate(c, "dataFim", h.loc)
	if !ok {
		return
	}

	list, err := h.list.Execute(c.Request.Context(), ucMensalidade.ListInput{
		ClienteID:  clienteID,
		Situacao:   strings.TrimSpace(c.Query("situacao")),
		DataInicio: inicio,
		DataFim:    fim,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// ======================================================
// GET
// ======================================================
func (h *MensalidadeHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	m, err := h.repo.GetMensalidade(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// ======================================================
// REGISTRAR PAGAMENTO
// ======================================================
func (h *MensalidadeHandler) RegistrarPagamento(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req RegistrarPagamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if strings.TrimSpace(req.FormaPagamentoID) == "" {
		httperr.BadRequest(c, "forma_pagamento_obrigatoria", "formaPagamentoId é obrigatório.")
		return
	}
	formaID, ok := parseUUIDField(req.FormaPagamentoID)
	if !ok {
		httperr.BadRequest(c, "invalid_forma_pagamento_id", "formaPagamentoId inválido.")
		return
	}
	if req.Valor != nil && !req.Valor.IsPositive() {
		httperr.BadRequest(c, "invalid_valor", "Valor deve ser positivo.")
		return
	}

	data, err := parseOptionalDate(req.Data, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_data", "Data de pagamento inválida.")
		return
	}

	m, err := h.register.Execute(c.Request.Context(), ucMensalidade.RegisterPaymentInput{
		MensalidadeID:    id,
		Valor:            req.Valor,
		FormaPagamentoID: formaID,
		Data:             data,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}
