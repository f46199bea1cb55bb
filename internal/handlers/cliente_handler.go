package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/academia-backoffice/internal/clock"
	"github.com/BruksfildServices01/academia-backoffice/internal/dto"
	"github.com/BruksfildServices01/academia-backoffice/internal/httperr"
	infraRepo "github.com/BruksfildServices01/academia-backoffice/internal/infra/repository"
	"github.com/BruksfildServices01/academia-backoffice/internal/models"
	ucMensalidade "github.com/BruksfildServices01/academia-backoffice/internal/usecase/mensalidade"
)

var (
	errClienteNotFound = httperr.ErrNotFound("cliente_not_found", "Cliente não encontrado.")
	errClienteEmUso    = httperr.ErrConflict("cliente_em_uso", "Cliente possui registros vinculados.")
)

type ClienteHandler struct {
	db        *gorm.DB
	contratar *ucMensalidade.CreateFirstCharge
	clock     clock.Clock
	loc       *time.Location
}

func NewClienteHandler(
	db *gorm.DB,
	contratar *ucMensalidade.CreateFirstCharge,
	clk clock.Clock,
	loc *time.Location,
) *ClienteHandler {
	return &ClienteHandler{
		db:        db,
		contratar: contratar,
		clock:     clk,
		loc:       loc,
	}
}

type ContratarPlanoRequest struct {
	PlanoID    string  `json:"planoId"`
	DataInicio *string `json:"dataInicio"`
}

// ======================================================
// LIST
// ======================================================
func (h *ClienteHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).
		Preload("Plano").
		Preload("FichaSaude")

	switch strings.TrimSpace(c.Query("ativo")) {
	case "true":
		q = q.Where("ativo = ?", true)
	case "false":
		q = q.Where("ativo = ?", false)
	}

	planoID, ok := queryUUID(c, "planoId")
	if !ok {
		return
	}
	if planoID != nil {
		q = q.Where("plano_id = ?", *planoID)
	}

	if tipo := strings.TrimSpace(c.Query("tipo")); tipo != "" {
		q = q.Where("tipo = ?", tipo)
	}

	var clientes []models.Cliente
	if err := q.Order("nome_completo ASC").Find(&clientes).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewClienteListDTO(clientes, h.clock.Now()))
}

// ======================================================
// GET
// ======================================================
func (h *ClienteHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	cliente, err := h.load(c, h.db, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewClienteDTO(*cliente, h.clock.Now()))
}

// ======================================================
// CREATE
// ======================================================
func (h *ClienteHandler) Create(c *gin.Context) {
	var req CreateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	cliente, err := req.toModel(h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var ficha *models.FichaSaude
	if req.FichaSaude != nil {
		f, err := req.FichaSaude.toModel(uuid.Nil, h.clock.Now(), h.loc)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		ficha = &f
	}

	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := h.ensurePlano(tx, cliente.PlanoID); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(&cliente).Error; err != nil {
			return mapClienteWriteError(err)
		}
		if ficha != nil {
			ficha.ClienteID = cliente.ID
			if err := tx.Create(ficha).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	created, err := h.load(c, h.db, cliente.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewClienteDTO(*created, h.clock.Now()))
}

// ======================================================
// UPDATE
// ======================================================
func (h *ClienteHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var cliente models.Cliente
		if err := tx.First(&cliente, "id = ?", id).Error; err != nil {
			if infraRepo.IsNotFound(err) {
				return errClienteNotFound
			}
			return err
		}

		cols, err := applyClientePatch(&cliente, req, h.loc)
		if err != nil {
			return err
		}

		if req.PlanoID.HasValue() {
			if err := h.ensurePlano(tx, cliente.PlanoID); err != nil {
				return err
			}
		}

		if len(cols) > 0 {
			if err := tx.Model(&cliente).
				Select(cols).
				Omit(clause.Associations).
				Updates(&cliente).Error; err != nil {
				return mapClienteWriteError(err)
			}
		}

		if req.FichaSaude != nil {
			ficha, err := req.FichaSaude.toModel(cliente.ID, h.clock.Now(), h.loc)
			if err != nil {
				return err
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "cliente_id"}},
				UpdateAll: true,
			}).Create(&ficha).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	updated, err := h.load(c, h.db, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewClienteDTO(*updated, h.clock.Now()))
}

// ======================================================
// DELETE (ficha e mensalidades vão junto pelo banco)
// ======================================================
func (h *ClienteHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Cliente{}, "id = ?", id)
	if !respondDelete(c, res.Error, res.RowsAffected, errClienteNotFound, errClienteEmUso) {
		return
	}
	c.Status(http.StatusNoContent)
}

// ======================================================
// CONTRATAR PLANO
// ======================================================
func (h *ClienteHandler) ContratarPlano(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req ContratarPlanoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if strings.TrimSpace(req.PlanoID) == "" {
		httperr.BadRequest(c, "plano_obrigatorio", "planoId é obrigatório.")
		return
	}
	planoID, ok := parseUUIDField(req.PlanoID)
	if !ok {
		httperr.Respond(c, errPlanoIDFormat)
		return
	}

	dataInicio, err := parseOptionalDate(req.DataInicio, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_data_inicio", "Data de início inválida.")
		return
	}

	cliente, err := h.contratar.Execute(c.Request.Context(), ucMensalidade.CreateFirstChargeInput{
		ClienteID:  id,
		PlanoID:    planoID,
		DataInicio: dataInicio,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewClienteDTO(*cliente, h.clock.Now()))
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func (h *ClienteHandler) load(c *gin.Context, db *gorm.DB, id uuid.UUID) (*models.Cliente, error) {
	var cliente models.Cliente
	if err := db.WithContext(c.Request.Context()).
		Preload("Plano").
		Preload("FichaSaude").
		First(&cliente, "id = ?", id).Error; err != nil {
		if infraRepo.IsNotFound(err) {
			return nil, errClienteNotFound
		}
		return nil, err
	}
	return &cliente, nil
}

func (h *ClienteHandler) ensurePlano(tx *gorm.DB, planoID *uuid.UUID) error {
	if planoID == nil {
		return nil
	}
	var count int64
	if err := tx.Model(&models.Plano{}).Where("id = ?", *planoID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errPlanoNotFound
	}
	return nil
}

func mapClienteWriteError(err error) error {
	if infraRepo.IsUniqueViolation(err) {
		return errCPFDuplicado
	}
	return err
}
