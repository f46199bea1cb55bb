// Package testutil traz um repositório de mensalidades em memória para os
// testes do motor de cobrança. Segue as mesmas regras do banco: unicidade de
// (cliente, plano, vencimento), update condicional do pagamento e rollback
// da transação quando fn retorna erro. O rollback desfaz só o que a própria
// transação escreveu; gravações feitas pelos ganchos (outro "processo")
// sobrevivem, como no banco.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	domain "github.com/BruksfildServices01/academia-backoffice/internal/domain/mensalidade"
	"github.com/BruksfildServices01/academia-backoffice/internal/models"
)

type MemoryRepository struct {
	mu sync.Mutex

	clientes     map[uuid.UUID]models.Cliente
	planos       map[uuid.UUID]models.Plano
	formas       map[uuid.UUID]models.FormaPagamento
	mensalidades map[uuid.UUID]models.Mensalidade
	movimentos   []models.MovimentoCaixa

	txDepth int
	undo    []func()

	// Ganchos de falha para os testes
	BeforeCreateMensalidade func(m *models.Mensalidade) error
	BeforeCreateMovimento   func(mv *models.MovimentoCaixa) error
	ListErr                 error
}

var _ domain.Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		clientes:     map[uuid.UUID]models.Cliente{},
		planos:       map[uuid.UUID]models.Plano{},
		formas:       map[uuid.UUID]models.FormaPagamento{},
		mensalidades: map[uuid.UUID]models.Mensalidade{},
	}
}

// --------------------------------------------------
// Seeds
// --------------------------------------------------

func (r *MemoryRepository) AddPlano(p models.Plano) models.Plano {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.planos[p.ID] = p
	return p
}

func (r *MemoryRepository) AddCliente(c models.Cliente) models.Cliente {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.Plano = nil
	r.clientes[c.ID] = c
	return c
}

func (r *MemoryRepository) AddFormaPagamento(f models.FormaPagamento) models.FormaPagamento {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.formas[f.ID] = f
	return f
}

// AddMensalidade grava direto, sem checar unicidade.
func (r *MemoryRepository) AddMensalidade(m models.Mensalidade) models.Mensalidade {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.Cliente, m.Plano = nil, nil
	r.mensalidades[m.ID] = m
	return m
}

func (r *MemoryRepository) UpdatePlano(p models.Plano) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.planos[p.ID] = p
}

func (r *MemoryRepository) UpdateCliente(c models.Cliente) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.Plano = nil
	r.clientes[c.ID] = c
}

// --------------------------------------------------
// Inspeção
// --------------------------------------------------

func (r *MemoryRepository) Mensalidades() []models.Mensalidade {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := lo.Values(r.mensalidades)
	sortByVencimento(list)
	return list
}

func (r *MemoryRepository) MensalidadesDoCliente(clienteID uuid.UUID) []models.Mensalidade {
	return lo.Filter(r.Mensalidades(), func(m models.Mensalidade, _ int) bool {
		return m.ClienteID == clienteID
	})
}

func (r *MemoryRepository) Movimentos() []models.MovimentoCaixa {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.MovimentoCaixa(nil), r.movimentos...)
}

func (r *MemoryRepository) Cliente(id uuid.UUID) models.Cliente {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clientes[id]
}

// --------------------------------------------------
// domain.Repository
// --------------------------------------------------

func (r *MemoryRepository) GetCliente(_ context.Context, id uuid.UUID) (*models.Cliente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.clientes[id]
	if !ok {
		return nil, domain.ErrClienteNotFound
	}
	if c.PlanoID != nil {
		if p, ok := r.planos[*c.PlanoID]; ok {
			c.Plano = &p
		}
	}
	return &c, nil
}

func (r *MemoryRepository) GetPlano(_ context.Context, id uuid.UUID) (*models.Plano, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.planos[id]
	if !ok {
		return nil, domain.ErrPlanoNotFound
	}
	return &p, nil
}

func (r *MemoryRepository) GetFormaPagamento(_ context.Context, id uuid.UUID) (*models.FormaPagamento, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.formas[id]
	if !ok {
		return nil, domain.ErrFormaPagamentoNotFound
	}
	return &f, nil
}

func (r *MemoryRepository) GetMensalidade(_ context.Context, id uuid.UUID) (*models.Mensalidade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.mensalidades[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	r.attach(&m)
	return &m, nil
}

func (r *MemoryRepository) AssignPlano(_ context.Context, clienteID uuid.UUID, planoID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.clientes[clienteID]
	if !ok {
		return domain.ErrClienteNotFound
	}
	if _, ok := r.planos[planoID]; !ok {
		return domain.ErrPlanoNotFound
	}
	prev := c.PlanoID
	r.journal(func() {
		c := r.clientes[clienteID]
		c.PlanoID = prev
		r.clientes[clienteID] = c
	})

	c.PlanoID = &planoID
	r.clientes[clienteID] = c
	return nil
}

func (r *MemoryRepository) CreateMensalidade(_ context.Context, m *models.Mensalidade) error {
	if r.BeforeCreateMensalidade != nil {
		if err := r.BeforeCreateMensalidade(m); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.exists(m.ClienteID, m.PlanoID, m.Vencimento) {
		return domain.ErrDuplicada
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	stored := *m
	stored.Cliente, stored.Plano = nil, nil
	r.mensalidades[m.ID] = stored

	id := m.ID
	r.journal(func() { delete(r.mensalidades, id) })
	return nil
}

func (r *MemoryRepository) ExistsMensalidade(
	_ context.Context,
	clienteID uuid.UUID,
	planoID uuid.UUID,
	vencimento time.Time,
) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.exists(clienteID, planoID, vencimento), nil
}

func (r *MemoryRepository) MarkMensalidadePaga(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.mensalidades[id]
	if !ok || m.Situacao != string(domain.SituacaoNaoPago) {
		return domain.ErrJaPaga
	}
	prev := m.Situacao
	r.journal(func() {
		m := r.mensalidades[id]
		m.Situacao = prev
		r.mensalidades[id] = m
	})

	m.Situacao = string(domain.SituacaoPago)
	r.mensalidades[id] = m
	return nil
}

func (r *MemoryRepository) CreateMovimento(_ context.Context, mv *models.MovimentoCaixa) error {
	if r.BeforeCreateMovimento != nil {
		if err := r.BeforeCreateMovimento(mv); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.formas[mv.FormaPagamentoID]; !ok {
		return domain.ErrFormaPagamentoNotFound
	}
	if mv.ID == uuid.Nil {
		mv.ID = uuid.New()
	}
	r.movimentos = append(r.movimentos, *mv)

	n := len(r.movimentos) - 1
	r.journal(func() { r.movimentos = r.movimentos[:n] })
	return nil
}

func (r *MemoryRepository) ListDueForRenewal(_ context.Context, from time.Time, to time.Time) ([]models.Mensalidade, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list := lo.Filter(lo.Values(r.mensalidades), func(m models.Mensalidade, _ int) bool {
		if m.Situacao != string(domain.SituacaoNaoPago) {
			return false
		}
		if m.Vencimento.Before(from) || m.Vencimento.After(to) {
			return false
		}
		c, ok := r.clientes[m.ClienteID]
		return ok && c.Ativo && c.PlanoID != nil
	})
	for i := range list {
		r.attach(&list[i])
	}
	sortByVencimento(list)
	return list, nil
}

func (r *MemoryRepository) ListMensalidades(_ context.Context, f domain.ListFilter) ([]models.Mensalidade, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list := lo.Filter(lo.Values(r.mensalidades), func(m models.Mensalidade, _ int) bool {
		switch {
		case f.ClienteID != nil && m.ClienteID != *f.ClienteID:
			return false
		case f.Situacao != "" && m.Situacao != f.Situacao:
			return false
		case f.From != nil && m.Vencimento.Before(*f.From):
			return false
		case f.To != nil && m.Vencimento.After(*f.To):
			return false
		}
		return true
	})
	for i := range list {
		r.attach(&list[i])
	}
	sortByVencimento(list)
	return list, nil
}

// WithinTx desfaz, na ordem inversa, as escritas feitas dentro de fn
// quando fn falha.
func (r *MemoryRepository) WithinTx(_ context.Context, fn func(repo domain.Repository) error) error {
	r.mu.Lock()
	r.txDepth++
	mark := len(r.undo)
	r.mu.Unlock()

	err := fn(r)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.txDepth--

	if err != nil {
		for i := len(r.undo) - 1; i >= mark; i-- {
			r.undo[i]()
		}
		r.undo = r.undo[:mark]
		return err
	}
	if r.txDepth == 0 {
		r.undo = nil
	}
	return nil
}

// --------------------------------------------------
// internos; esperam mu travado
// --------------------------------------------------

func (r *MemoryRepository) journal(undo func()) {
	if r.txDepth > 0 {
		r.undo = append(r.undo, undo)
	}
}

func (r *MemoryRepository) exists(clienteID, planoID uuid.UUID, vencimento time.Time) bool {
	return lo.SomeBy(lo.Values(r.mensalidades), func(m models.Mensalidade) bool {
		return m.ClienteID == clienteID &&
			m.PlanoID == planoID &&
			m.Vencimento.Equal(vencimento)
	})
}

func (r *MemoryRepository) attach(m *models.Mensalidade) {
	if c, ok := r.clientes[m.ClienteID]; ok {
		m.Cliente = &c
	}
	if p, ok := r.planos[m.PlanoID]; ok {
		m.Plano = &p
	}
}

func sortByVencimento(list []models.Mensalidade) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Vencimento.Before(list[j].Vencimento)
	})
}
