package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/academia-backoffice/internal/httperr"
	infraRepo "github.com/BruksfildServices01/academia-backoffice/internal/infra/repository"
	"github.com/BruksfildServices01/academia-backoffice/internal/models"
)

var (
	errPlanoNotFound = httperr.ErrNotFound("plano_not_found", "Plano não encontrado.")
	errPlanoEmUso    = httperr.ErrConflict("plano_em_uso", "Plano possui clientes ou mensalidades vinculados.")
)

type PlanoHandler struct {
	db *gorm.DB
}

func NewPlanoHandler(db *gorm.DB) *PlanoHandler {
	return &PlanoHandler{db: db}
}

// --------- Requests ---------

type CreatePlanoRequest struct {
	Descricao           string           `json:"descricao"`
	Valor               *decimal.Decimal `json:"valor"`
	NumeroTreinosSemana *int             `json:"numeroTreinosSemana"`
	TipoAssinatura      string           `json:"tipoAssinatura"`
}

type UpdatePlanoRequest struct {
	Descricao           *string          `json:"descricao,omitempty"`
	Valor               *decimal.Decimal `json:"valor,omitempty"`
	NumeroTreinosSemana *int             `json:"numeroTreinosSemana,omitempty"`
	TipoAssinatura      *string          `json:"tipoAssinatura,omitempty"`
}

func (r CreatePlanoRequest) validate() error {
	if strings.TrimSpace(r.Descricao) == "" || r.Valor == nil ||
		r.NumeroTreinosSemana == nil || r.TipoAssinatura == "" {
		return httperr.ErrValidation(
			"missing_fields",
			"descricao, valor, numeroTreinosSemana e tipoAssinatura são obrigatórios.",
		)
	}
	if !models.IsValidTipoAssinatura(r.TipoAssinatura) {
		return httperr.ErrValidation("invalid_tipo_assinatura", "Tipo de assinatura inválido.")
	}
	if r.Valor.IsNegative() || *r.NumeroTreinosSemana < 0 {
		return httperr.ErrValidation("invalid_values", "Valor e treinos por semana não podem ser negativos.")
	}
	return nil
}

// applyPlanoPatch devolve só as colunas enviadas.
func applyPlanoPatch(req UpdatePlanoRequest) (map[string]any, error) {
	updates := map[string]any{}

	if req.Descricao != nil {
		if strings.TrimSpace(*req.Descricao) == "" {
			return nil, httperr.ErrValidation("invalid_descricao", "Descrição não pode ser vazia.")
		}
		updates["descricao"] = strings.TrimSpace(*req.Descricao)
	}
	if req.Valor != nil {
		if req.Valor.IsNegative() {
			return nil, httperr.ErrValidation("invalid_values", "Valor não pode ser negativo.")
		}
		updates["valor"] = *req.Valor
	}
	if req.NumeroTreinosSemana != nil {
		updates["numero_treinos_semana"] = *req.NumeroTreinosSemana
	}
	if req.TipoAssinatura != nil {
		if !models.IsValidTipoAssinatura(*req.TipoAssinatura) {
			return nil, httperr.ErrValidation("invalid_tipo_assinatura", "Tipo de assinatura inválido.")
		}
		updates["tipo_assinatura"] = *req.TipoAssinatura
	}

	return updates, nil
}

// --------- Handlers ---------

func (h *PlanoHandler) List(c *gin.Context) {
	var planos []models.Plano
	if err := h.db.WithContext(c.Request.Context()).
		Order("descricao ASC").
		Find(&planos).Error; err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, planos)
}

func (h *PlanoHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var plano models.Plano
	if err := h.db.WithContext(c.Request.Context()).First(&plano, "id = ?", id).Error; err != nil {
		if infraRepo.IsNotFound(err) {
			httperr.Respond(c, errPlanoNotFound)
			return
		}
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, plano)
}

func (h *PlanoHandler) Create(c *gin.Context) {
	var req CreatePlanoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if err := req.validate(); err != nil {
		httperr.Respond(c, err)
		return
	}

	plano := models.Plano{
		Descricao:           strings.TrimSpace(req.Descricao),
		Valor:               *req.Valor,
		NumeroTreinosSemana: *req.NumeroTreinosSemana,
		TipoAssinatura:      req.TipoAssinatura,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&plano).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, plano)
}

func (h *PlanoHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdatePlanoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	updates, err := applyPlanoPatch(req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	db := h.db.WithContext(c.Request.Context())

	var plano models.Plano
	if err := db.First(&plano, "id = ?", id).Error; err != nil {
		if infraRepo.IsNotFound(err) {
			httperr.Respond(c, errPlanoNotFound)
			return
		}
		httperr.Respond(c, err)
		return
	}

	if len(updates) > 0 {
		if err := db.Model(&plano).Updates(updates).Error; err != nil {
			httperr.Respond(c, err)
			return
		}
		if err := db.First(&plano, "id = ?", id).Error; err != nil {
			httperr.Respond(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, plano)
}

func (h *PlanoHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Plano{}, "id = ?", id)
	if !respondDelete(c, res.Error, res.RowsAffected, errPlanoNotFound, errPlanoEmUso) {
		return
	}
	c.Status(http.StatusNoContent)
}
