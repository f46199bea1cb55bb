package mensalidade

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/academia-backoffice/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func NewCharge(
	clienteID uuid.UUID,
	planoID uuid.UUID,
	valor decimal.Decimal,
	vencimento time.Time,
	now time.Time,
) *models.Mensalidade {
	return &models.Mensalidade{
		ClienteID:   clienteID,
		PlanoID:     planoID,
		Valor:       valor,
		Vencimento:  vencimento,
		Situacao:    string(InitialSituacao()),
		DataGeracao: now,
	}
}

// PaymentEntry monta a entrada de caixa que acompanha o pagamento.
func PaymentEntry(
	m *models.Mensalidade,
	formaPagamentoID uuid.UUID,
	valor decimal.Decimal,
	data time.Time,
) *models.MovimentoCaixa {
	clienteID := m.ClienteID
	mensalidadeID := m.ID

	return &models.MovimentoCaixa{
		Data:             data,
		Descricao:        DescricaoPagamento(m.Plano, m.Cliente),
		Valor:            valor,
		Tipo:             models.MovimentoEntrada,
		ClienteID:        &clienteID,
		FormaPagamentoID: formaPagamentoID,
		MensalidadeID:    &mensalidadeID,
	}
}

func DescricaoPagamento(plano *models.Plano, cliente *models.Cliente) string {
	var descPlano, nome string
	if plano != nil {
		descPlano = plano.Descricao
	}
	if cliente != nil {
		nome = cliente.NomeCompleto
	}
	return fmt.Sprintf("Mensalidade %s - %s", descPlano, nome)
}
