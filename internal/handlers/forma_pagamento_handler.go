package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/academia-backoffice/internal/httperr"
	infraRepo "github.com/BruksfildServices01/academia-backoffice/internal/infra/repository"
	"github.com/BruksfildServices01/academia-backoffice/internal/models"
)

var (
	errFormaNotFound = httperr.ErrNotFound("forma_pagamento_not_found", "Forma de pagamento não encontrada.")
	errFormaEmUso    = httperr.ErrConflict("forma_pagamento_em_uso", "Forma de pagamento possui movimentos vinculados.")
)

type FormaPagamentoHandler struct {
	db *gorm.DB
}

func NewFormaPagamentoHandler(db *gorm.DB) *FormaPagamentoHandler {
	return &FormaPagamentoHandler{db: db}
}

// --------- Requests ---------

type CreateFormaPagamentoRequest struct {
	Descricao string `json:"descricao"`
	Tipo      string `json:"tipo"`
}

type UpdateFormaPagamentoRequest struct {
	Descricao *string `json:"descricao,omitempty"`
	Tipo      *string `json:"tipo,omitempty"`
}

func (r CreateFormaPagamentoRequest) validate() error {
	if strings.TrimSpace(r.Descricao) == "" || r.Tipo == "" {
		return httperr.ErrValidation("missing_fields", "descricao e tipo são obrigatórios.")
	}
	if !models.IsValidTipoPagamento(r.Tipo) {
		return httperr.ErrValidation("invalid_tipo", "Tipo de pagamento inválido.")
	}
	return nil
}

func (r UpdateFormaPagamentoRequest) updates() (map[string]any, error) {
	updates := map[string]any{}
	if r.Descricao != nil {
		if strings.TrimSpace(*r.Descricao) == "" {
			return nil, httperr.ErrValidation("invalid_descricao", "Descrição não pode ser vazia.")
		}
		updates["descricao"] = strings.TrimSpace(*r.Descricao)
	}
	if r.Tipo != nil {
		if !models.IsValidTipoPagamento(*r.Tipo) {
			return nil, httperr.ErrValidation("invalid_tipo", "Tipo de pagamento inválido.")
		}
		updates["tipo"] = *r.Tipo
	}
	return updates, nil
}

// --------- Handlers ---------

func (h *FormaPagamentoHandler) List(c *gin.Context) {
	var formas []models.FormaPagamento
	if err := h.db.WithContext(c.Request.Context()).
		Order("descricao ASC").
		Find(&formas).Error; err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, formas)
}

func (h *FormaPagamentoHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var forma models.FormaPagamento
	if err := h.db.WithContext(c.Request.Context()).First(&forma, "id = ?", id).Error; err != nil {
		if infraRepo.IsNotFound(err) {
			httperr.Respond(c, errFormaNotFound)
			return
		}
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, forma)
}

func (h *FormaPagamentoHandler) Create(c *gin.Context) {
	var req CreateFormaPagamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if err := req.validate(); err != nil {
		httperr.Respond(c, err)
		return
	}

	forma := models.FormaPagamento{
		Descricao: strings.TrimSpace(req.Descricao),
		Tipo:      req.Tipo,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&forma).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, forma)
}

func (h *FormaPagamentoHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateFormaPagamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	updates, err := req.updates()
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	db := h.db.WithContext(c.Request.Context())

	var forma models.FormaPagamento
	if err := db.First(&forma, "id = ?", id).Error; err != nil {
		if infraRepo.IsNotFound(err) {
			httperr.Respond(c, errFormaNotFound)
			return
		}
		httperr.Respond(c, err)
		return
	}

	if len(updates) > 0 {
		if err := db.Model(&forma).Updates(updates).Error; err != nil {
			httperr.Respond(c, err)
			return
		}
		if err := db.First(&forma, "id = ?", id).Error; err != nil {
			httperr.Respond(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, forma)
}

func (h *FormaPagamentoHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.FormaPagamento{}, "id = ?", id)
	if !respondDelete(c, res.Error, res.RowsAffected, errFormaNotFound, errFormaEmUso) {
		return
	}
	c.Status(http.StatusNoContent)
}
