package mensalidade

import "github.com/BruksfildServices01/academia-backoffice/internal/httperr"

const (
	CodeClienteNotFound        = "cliente_not_found"
	CodePlanoNotFound          = "plano_not_found"
	CodeFormaPagamentoNotFound = "forma_pagamento_not_found"
	CodeNotFound               = "mensalidade_not_found"
	CodeDuplicada              = "mensalidade_duplicada"
	CodeJaPaga                 = "mensalidade_ja_paga"
	CodeBonificada             = "mensalidade_bonificada"
)

var (
	ErrClienteNotFound        = httperr.ErrNotFound(CodeClienteNotFound, "Cliente não encontrado.")
	ErrPlanoNotFound          = httperr.ErrNotFound(CodePlanoNotFound, "Plano não encontrado.")
	ErrFormaPagamentoNotFound = httperr.ErrNotFound(CodeFormaPagamentoNotFound, "Forma de pagamento não encontrada.")
	ErrNotFound               = httperr.ErrNotFound(CodeNotFound, "Mensalidade não encontrada.")
	ErrDuplicada              = httperr.ErrConflict(CodeDuplicada, "Já existe mensalidade para este cliente, plano e vencimento.")
	ErrJaPaga                 = httperr.ErrInvalidState(CodeJaPaga, "Mensalidade já está paga.")
)
