package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/academia-backoffice/internal/dto"
	"github.com/BruksfildServices01/academia-backoffice/internal/httperr"
	infraRepo "github.com/BruksfildServices01/academia-backoffice/internal/infra/repository"
	"github.com/BruksfildServices01/academia-backoffice/internal/models"
	"github.com/BruksfildServices01/academia-backoffice/internal/timezone"
)

var (
	errMovimentoNotFound = httperr.ErrNotFound("movimento_not_found", "Movimento não encontrado.")
	errMovimentoRefs     = httperr.ErrNotFound("referencia_not_found", "Cliente, forma de pagamento ou mensalidade não encontrado.")
)

type MovimentoCaixaHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewMovimentoCaixaHandler(db *gorm.DB, loc *time.Location) *MovimentoCaixaHandler {
	return &MovimentoCaixaHandler{db: db, loc: loc}
}

// --------- Requests ---------

type CreateMovimentoRequest struct {
	Data             string           `json:"data"`
	Descricao        string           `json:"descricao"`
	ClienteID        *string          `json:"clienteId"`
	Valor            *decimal.Decimal `json:"valor"`
	Tipo             string           `json:"tipo"`
	FormaPagamentoID string           `json:"formaPagamentoId"`
	MensalidadeID    *string          `json:"mensalidadeId"`
}

type UpdateMovimentoRequest struct {
	Data             *string              `json:"data,omitempty"`
	Descricao        *string              `json:"descricao,omitempty"`
	ClienteID        dto.Optional[string] `json:"clienteId"`
	Valor            *decimal.Decimal     `json:"valor,omitempty"`
	Tipo             *string              `json:"tipo,omitempty"`
	FormaPagamentoID *string              `json:"formaPagamentoId,omitempty"`
	MensalidadeID    dto.Optional[string] `json:"mensalidadeId"`
}

func optionalUUID(raw *string, field string) (*uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, ok := parseUUIDField(*raw)
	if !ok {
		return nil, httperr.ErrValidation("invalid_"+field, field+" inválido.")
	}
	return &id, nil
}

func (r CreateMovimentoRequest) toModel(loc *time.Location) (models.MovimentoCaixa, error) {
	if r.Data == "" || strings.TrimSpace(r.Descricao) == "" || r.Valor == nil ||
		r.Tipo == "" || r.FormaPagamentoID == "" {
		return models.MovimentoCaixa{}, httperr.ErrValidation(
			"missing_fields",
			"data, descricao, valor, tipo e formaPagamentoId são obrigatórios.",
		)
	}
	if !models.IsValidTipoMovimento(r.Tipo) {
		return models.MovimentoCaixa{}, httperr.ErrValidation("invalid_tipo", "Tipo de movimento inválido.")
	}
	data, err := parseDate(r.Data, loc)
	if err != nil {
		return models.MovimentoCaixa{}, httperr.ErrValidation("invalid_data", "Data inválida.")
	}
	formaID, ok := parseUUIDField(r.FormaPagamentoID)
	if !ok {
		return models.MovimentoCaixa{}, httperr.ErrValidation("invalid_formaPagamentoId", "formaPagamentoId inválido.")
	}
	clienteID, err := optionalUUID(r.ClienteID, "clienteId")
	if err != nil {
		return models.MovimentoCaixa{}, err
	}
	mensalidadeID, err := optionalUUID(r.MensalidadeID, "mensalidadeId")
	if err != nil {
		return models.MovimentoCaixa{}, err
	}

	return models.MovimentoCaixa{
		Data:             data,
		Descricao:        strings.TrimSpace(r.Descricao),
		Valor:            *r.Valor,
		Tipo:             r.Tipo,
		ClienteID:        clienteID,
		FormaPagamentoID: formaID,
		MensalidadeID:    mensalidadeID,
	}, nil
}

func (r UpdateMovimentoRequest) updates(loc *time.Location) (map[string]any, error) {
	updates := map[string]any{}

	if r.Data != nil {
		data, err := parseDate(*r.Data, loc)
		if err != nil {
			return nil, httperr.ErrValidation("invalid_data", "Data inválida.")
		}
		updates["data"] = data
	}
	if r.Descricao != nil {
		updates["descricao"] = strings.TrimSpace(*r.Descricao)
	}
	if r.Valor != nil {
		updates["valor"] = *r.Valor
	}
	if r.Tipo != nil {
		if !models.IsValidTipoMovimento(*r.Tipo) {
			return nil, httperr.ErrValidation("invalid_tipo", "Tipo de movimento inválido.")
		}
		updates["tipo"] = *r.Tipo
	}
	if r.FormaPagamentoID != nil {
		id, ok := parseUUIDField(*r.FormaPagamentoID)
		if !ok {
			return nil, httperr.ErrValidation("invalid_formaPagamentoId", "formaPagamentoId inválido.")
		}
		updates["forma_pagamento_id"] = id
	}
	if r.ClienteID.Set {
		id, err := optionalUUID(r.ClienteID.Ptr(), "clienteId")
		if err != nil {
			return nil, err
		}
		updates["cliente_id"] = id
	}
	if r.MensalidadeID.Set {
		id, err := optionalUUID(r.MensalidadeID.Ptr(), "mensalidadeId")
		if err != nil {
			return nil, err
		}
		updates["mensalidade_id"] = id
	}

	return updates, nil
}

// --------- Handlers ---------

func (h *MovimentoCaixaHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).
		Preload("Cliente").
		Preload("FormaPagamento").
		Preload("Mensalidade")

	if tipo := strings.TrimSpace(c.Query("tipo")); tipo != "" {
		q = q.Where("tipo = ?", tipo)
	}

	clienteID, ok := queryUUID(c, "clienteId")
	if !ok {
		return
	}
	if clienteID != nil {
		q = q.Where("cliente_id = ?", *clienteID)
	}

	inicio, ok := queryDate(c, "dataInicio", h.loc)
	if !ok {
		return
	}
	if inicio != nil {
		q = q.Where("data >= ?", timezone.StartOfDay(*inicio, h.loc))
	}

	fim, ok := queryDate(c, "dataFim", h.loc)
	if !ok {
		return
	}
	if fim != nil {
		q = q.Where("data <= ?", timezone.EndOfDay(*fim, h.loc))
	}

	var movimentos []models.MovimentoCaixa
	if err := q.Order("data DESC").Find(&movimentos).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, movimentos)
}

func (h *MovimentoCaixaHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	mv, err := h.load(c, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, mv)
}

func (h *MovimentoCaixaHandler) Create(c *gin.Context) {
	var req CreateMovimentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	mv, err := req.toModel(h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&mv).Error; err != nil {
		if infraRepo.IsForeignKeyViolation(err) {
			httperr.Respond(c, errMovimentoRefs)
			return
		}
		httperr.Respond(c, err)
		return
	}

	created, err := h.load(c, mv.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *MovimentoCaixaHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateMovimentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	updates, err := req.updates(h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if len(updates) > 0 {
		res := h.db.WithContext(c.Request.Context()).
			Model(&models.MovimentoCaixa{}).
			Where("id = ?", id).
			Updates(updates)
		if res.Error != nil {
			if infraRepo.IsForeignKeyViolation(res.Error) {
				httperr.Respond(c, errMovimentoRefs)
				return
			}
			httperr.Respond(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			httperr.Respond(c, errMovimentoNotFound)
			return
		}
	}

	mv, err := h.load(c, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, mv)
}

func (h *MovimentoCaixaHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.MovimentoCaixa{}, "id = ?", id)
	if !respondDelete(c, res.Error, res.RowsAffected, errMovimentoNotFound, errMovimentoRefs) {
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MovimentoCaixaHandler) load(c *gin.Context, id uuid.UUID) (*models.MovimentoCaixa, error) {
	var mv models.MovimentoCaixa
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Cliente").
		Preload("FormaPagamento").
		Preload("Mensalidade").
		First(&mv, "id = ?", id).Error; err != nil {
		if infraRepo.IsNotFound(err) {
			return nil, errMovimentoNotFound
		}
		return nil, err
	}
	return &mv, nil
}
