package mensalidade

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/academia-backoffice/internal/domain/mensalidade"
	"github.com/BruksfildServices01/academia-backoffice/internal/models"
	"github.com/BruksfildServices01/academia-backoffice/internal/timezone"
)

type ListInput struct {
	ClienteID  *uuid.UUID
	Situacao   string
	DataInicio *time.Time
	DataFim    *time.Time
}

type ListMensalidades struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListMensalidades(repo domain.Repository, loc *time.Location) *ListMensalidades {
	return &ListMensalidades{repo: repo, loc: loc}
}

// Execute ordena por vencimento; dataFim vale até o fim do dia.
// Situação desconhecida não casa com nenhuma linha: lista vazia.
func (uc *ListMensalidades) Execute(
	ctx context.Context,
	in ListInput,
) ([]models.Mensalidade, error) {

	f := domain.ListFilter{
		ClienteID: in.ClienteID,
		Situacao:  in.Situacao,
	}
	if in.DataInicio != nil {
		from := timezone.StartOfDay(*in.DataInicio, uc.loc)
		f.From = &from
	}
	if in.DataFim != nil {
		to := timezone.EndOfDay(*in.DataFim, uc.loc)
		f.To = &to
	}

	return uc.repo.ListMensalidades(ctx, f)
}
