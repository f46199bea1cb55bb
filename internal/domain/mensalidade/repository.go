package mensalidade

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/academia-backoffice/internal/models"
)

type ListFilter struct {
	ClienteID *uuid.UUID
	Situacao  string
	// Limites de vencimento, ambos inclusivos
	From *time.Time
	To   *time.Time
}

// Repository é tudo que o motor de cobrança precisa do banco.
// Os métodos Get devolvem httperr NotFound; CreateMensalidade devolve
// erro KindConflict quando (cliente, plano, vencimento) já existe.
type Repository interface {
	// -------- Lookups --------
	GetCliente(ctx context.Context, id uuid.UUID) (*models.Cliente, error)
	GetPlano(ctx context.Context, id uuid.UUID) (*models.Plano, error)
	GetFormaPagamento(ctx context.Context, id uuid.UUID) (*models.FormaPagamento, error)

	// GetMensalidade carrega Cliente e Plano junto.
	GetMensalidade(ctx context.Context, id uuid.UUID) (*models.Mensalidade, error)

	// -------- Escrita --------
	AssignPlano(ctx context.Context, clienteID uuid.UUID, planoID uuid.UUID) error

	CreateMensalidade(ctx context.Context, m *models.Mensalidade) error

	ExistsMensalidade(
		ctx context.Context,
		clienteID uuid.UUID,
		planoID uuid.UUID,
		vencimento time.Time,
	) (bool, error)

	// MarkMensalidadePaga só altera linhas em NaoPago; nenhuma linha
	// alterada vira InvalidState.
	MarkMensalidadePaga(ctx context.Context, id uuid.UUID) error

	CreateMovimento(ctx context.Context, mv *models.MovimentoCaixa) error

	// -------- Consultas --------
	ListDueForRenewal(ctx context.Context, from time.Time, to time.Time) ([]models.Mensalidade, error)

	ListMensalidades(ctx context.Context, f ListFilter) ([]models.Mensalidade, error)

	// WithinTx roda fn numa transação; erro em fn desfaz tudo.
	WithinTx(ctx context.Context, fn func(repo Repository) error) error
}
