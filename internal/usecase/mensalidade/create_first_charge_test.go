package mensalidade

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/academia-backoffice/internal/domain/mensalidade"
	"github.com/BruksfildServices01/academia-backoffice/internal/httperr"
	"github.com/BruksfildServices01/academia-backoffice/internal/models"
)

func TestCreateFirstCharge(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateFirstCharge(f.repo, f.clock, f.loc, f.log)

	inicio := time.Date(2025, 3, 12, 15, 30, 0, 0, f.loc)
	cliente, err := uc.Execute(context.Background(), CreateFirstChargeInput{
		ClienteID:  f.cliente.ID,
		PlanoID:    f.plano.ID,
		DataInicio: &inicio,
	})
	require.NoError(t, err)

	require.NotNil(t, cliente.PlanoID)
	assert.Equal(t, f.plano.ID, *cliente.PlanoID)
	require.NotNil(t, cliente.Plano)
	assert.Equal(t, "Musculação", cliente.Plano.Descricao)

	list := f.repo.MensalidadesDoCliente(f.cliente.ID)
	require.Len(t, list, 1)
	m := list[0]
	assert.Equal(t, string(domain.SituacaoNaoPago), m.Situacao)
	assert.True(t, decimal.NewFromInt(100).Equal(m.Valor))
	assert.True(t, time.Date(2025, 3, 12, 0, 0, 0, 0, f.loc).Equal(m.Vencimento))
	assert.True(t, f.now.Equal(m.DataGeracao))
}

func TestCreateFirstChargeDefaultsToToday(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateFirstCharge(f.repo, f.clock, f.loc, f.log)

	_, err := uc.Execute(context.Background(), CreateFirstChargeInput{
		ClienteID: f.cliente.ID,
		PlanoID:   f.plano.ID,
	})
	require.NoError(t, err)

	list := f.repo.MensalidadesDoCliente(f.cliente.ID)
	require.Len(t, list, 1)
	assert.True(t, f.day(0).Equal(list[0].Vencimento))
}

func TestCreateFirstChargeRepeatIsConflict(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateFirstCharge(f.repo, f.clock, f.loc, f.log)

	in := CreateFirstChargeInput{ClienteID: f.cliente.ID, PlanoID: f.plano.ID}

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	// mesmo dia, horário diferente: mesmo vencimento normalizado
	later := f.now.Add(5 * time.Hour)
	in.DataInicio = &later
	_, err = uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsConflict(err))
	assert.True(t, httperr.IsBusiness(err, domain.CodeDuplicada))
	assert.Len(t, f.repo.MensalidadesDoCliente(f.cliente.ID), 1)
}

func TestCreateFirstChargeRollsBackPlanAssignment(t *testing.T) {
	f := newFixture(t)
	f.repo.BeforeCreateMensalidade = func(*models.Mensalidade) error {
		return errors.New("conexão perdida")
	}
	uc := NewCreateFirstCharge(f.repo, f.clock, f.loc, f.log)

	_, err := uc.Execute(context.Background(), CreateFirstChargeInput{
		ClienteID: f.cliente.ID,
		PlanoID:   f.plano.ID,
	})

	require.Error(t, err)
	assert.False(t, httperr.IsConflict(err))
	assert.Nil(t, f.repo.Cliente(f.cliente.ID).PlanoID)
	assert.Empty(t, f.repo.Mensalidades())
}

func TestCreateFirstChargeNotFound(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateFirstCharge(f.repo, f.clock, f.loc, f.log)

	_, err := uc.Execute(context.Background(), CreateFirstChargeInput{
		ClienteID: uuid.New(),
		PlanoID:   f.plano.ID,
	})
	assert.True(t, httperr.IsBusiness(err, domain.CodeClienteNotFound))

	_, err = uc.Execute(context.Background(), CreateFirstChargeInput{
		ClienteID: f.cliente.ID,
		PlanoID:   uuid.New(),
	})
	assert.True(t, httperr.IsBusiness(err, domain.CodePlanoNotFound))
	assert.True(t, httperr.IsNotFound(err))

	assert.Empty(t, f.repo.Mensalidades())
}
