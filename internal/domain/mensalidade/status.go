package mensalidade

import "github.com/BruksfildServices01/academia-backoffice/internal/httperr"

// ===============================
// Situação da mensalidade
// ===============================

type Situacao string

const (
	SituacaoNaoPago    Situacao = "NaoPago"
	SituacaoPago       Situacao = "Pago"
	SituacaoBonificada Situacao = "Bonificada"
)

func IsValidSituacao(v string) bool {
	switch Situacao(v) {
	case SituacaoNaoPago, SituacaoPago, SituacaoBonificada:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanPay: só NaoPago aceita pagamento. Pago e Bonificada são finais.
func CanPay(current Situacao) error {
	switch current {
	case SituacaoNaoPago:
		return nil
	case SituacaoBonificada:
		return httperr.ErrInvalidState(CodeBonificada, "Mensalidade bonificada não aceita pagamento.")
	default:
		return httperr.ErrInvalidState(CodeJaPaga, "Mensalidade já está paga.")
	}
}

func InitialSituacao() Situacao {
	return SituacaoNaoPago
}
