package mensalidade

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMensalidadesDateRangeInclusive(t *testing.T) {
	f := newFixture(t)
	c := f.subscribed(f.cliente, f.plano)
	f.openCharge(c, f.plano, f.day(0), 100)
	f.openCharge(c, f.plano, f.day(3).Add(20*time.Hour), 100)
	f.openCharge(c, f.plano, f.day(4), 100)

	uc := NewListMensalidades(f.repo, f.loc)
	inicio, fim := f.day(0).Add(10*time.Hour), f.day(3)

	list, err := uc.Execute(context.Background(), ListInput{DataInicio: &inicio, DataFim: &fim})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].Vencimento.Before(list[1].Vencimento))
	require.NotNil(t, list[0].Cliente)
	require.NotNil(t, list[0].Plano)
}

func TestListMensalidadesFilters(t *testing.T) {
	f := newFixture(t)
	c := f.subscribed(f.cliente, f.plano)
	f.openCharge(c, f.plano, f.day(0), 100)

	uc := NewListMensalidades(f.repo, f.loc)

	list, err := uc.Execute(context.Background(), ListInput{ClienteID: &c.ID, Situacao: "Pago"})
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = uc.Execute(context.Background(), ListInput{Situacao: "Atrasada"})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
