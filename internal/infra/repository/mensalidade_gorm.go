package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/academia-backoffice/internal/domain/mensalidade"
	"github.com/BruksfildServices01/academia-backoffice/internal/models"
)

type MensalidadeGormRepository struct {
	db *gorm.DB
}

func NewMensalidadeGormRepository(db *gorm.DB) *MensalidadeGormRepository {
	return &MensalidadeGormRepository{db: db}
}

var _ domain.Repository = (*MensalidadeGormRepository)(nil)

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *MensalidadeGormRepository) GetCliente(
	ctx context.Context,
	id uuid.UUID,
) (*models.Cliente, error) {

	var cliente models.Cliente
	if err := r.db.WithContext(ctx).
		Preload("Plano").
		Preload("FichaSaude").
		First(&cliente, "id = ?", id).Error; err != nil {
		if IsNotFound(err) {
			return nil, domain.ErrClienteNotFound
		}
		return nil, err
	}
	return &cliente, nil
}

func (r *MensalidadeGormRepository) GetPlano(
	ctx context.Context,
	id uuid.UUID,
) (*models.Plano, error) {

	var plano models.Plano
	if err := r.db.WithContext(ctx).First(&plano, "id = ?", id).Error; err != nil {
		if IsNotFound(err) {
			return nil, domain.ErrPlanoNotFound
		}
		return nil, err
	}
	return &plano, nil
}

func (r *MensalidadeGormRepository) GetFormaPagamento(
	ctx context.Context,
	id uuid.UUID,
) (*models.FormaPagamento, error) {

	var forma models.FormaPagamento
	if err := r.db.WithContext(ctx).First(&forma, "id = ?", id).Error; err != nil {
		if IsNotFound(err) {
			return nil, domain.ErrFormaPagamentoNotFound
		}
		return nil, err
	}
	return &forma, nil
}

func (r *MensalidadeGormRepository) GetMensalidade(
	ctx context.Context,
	id uuid.UUID,
) (*models.Mensalidade, error) {

	var m models.Mensalidade
	if err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Plano").
		First(&m, "id = ?", id).Error; err != nil {
		if IsNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// --------------------------------------------------
// Escrita
// --------------------------------------------------

func (r *MensalidadeGormRepository) AssignPlano(
	ctx context.Context,
	clienteID uuid.UUID,
	planoID uuid.UUID,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Cliente{}).
		Where("id = ?", clienteID).
		Update("plano_id", planoID)
	if res.Error != nil {
		if IsForeignKeyViolation(res.Error) {
			return domain.ErrPlanoNotFound
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrClienteNotFound
	}
	return nil
}

func (r *MensalidadeGormRepository) CreateMensalidade(
	ctx context.Context,
	m *models.Mensalidade,
) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if IsUniqueViolation(err) {
			return domain.ErrDuplicada
		}
		return err
	}
	return nil
}

func (r *MensalidadeGormRepository) ExistsMensalidade(
	ctx context.Context,
	clienteID uuid.UUID,
	planoID uuid.UUID,
	vencimento time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Mensalidade{}).
		Where(
			"cliente_id = ? AND plano_id = ? AND vencimento = ?",
			clienteID, planoID, vencimento,
		).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MensalidadeGormRepository) MarkMensalidadePaga(
	ctx context.Context,
	id uuid.UUID,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Mensalidade{}).
		Where("id = ? AND situacao = ?", id, string(domain.SituacaoNaoPago)).
		Update("situacao", string(domain.SituacaoPago))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrJaPaga
	}
	return nil
}

func (r *MensalidadeGormRepository) CreateMovimento(
	ctx context.Context,
	mv *models.MovimentoCaixa,
) error {
	if err := r.db.WithContext(ctx).Create(mv).Error; err != nil {
		if IsForeignKeyViolation(err) {
			return domain.ErrFormaPagamentoNotFound
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Consultas
// --------------------------------------------------

func (r *MensalidadeGormRepository) ListDueForRenewal(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Mensalidade, error) {

	var list []models.Mensalidade
	if err := r.db.WithContext(ctx).
		Joins("JOIN clientes ON clientes.id = mensalidades.cliente_id").
		Where(
			"mensalidades.situacao = ? AND mensalidades.vencimento >= ? AND mensalidades.vencimento <= ?",
			string(domain.SituacaoNaoPago), from, to,
		).
		Where("clientes.ativo = ? AND clientes.plano_id IS NOT NULL", true).
		Preload("Cliente").
		Preload("Plano").
		Order("mensalidades.vencimento ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *MensalidadeGormRepository) ListMensalidades(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Mensalidade, error) {

	q := r.db.WithContext(ctx).Model(&models.Mensalidade{})

	if f.ClienteID != nil {
		q = q.Where("cliente_id = ?", *f.ClienteID)
	}
	if f.Situacao != "" {
		q = q.Where("situacao = ?", f.Situacao)
	}
	if f.From != nil {
		q = q.Where("vencimento >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("vencimento <= ?", *f.To)
	}

	var list []models.Mensalidade
	if err := q.
		Preload("Cliente").
		Preload("Plano").
		Order("vencimento ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// --------------------------------------------------
// Transação
// --------------------------------------------------

func (r *MensalidadeGormRepository) WithinTx(
	ctx context.Context,
	fn func(repo domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&MensalidadeGormRepository{db: tx})
	})
}
