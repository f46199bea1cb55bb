package mensalidade

import (
	"time"

	"github.com/BruksfildServices01/academia-backoffice/internal/models"
	"github.com/BruksfildServices01/academia-backoffice/internal/timezone"
)

// NextDueDate soma um período do plano ao vencimento atual.
// Tipo desconhecido conta como mensal. A soma é de calendário:
// 31/01 + 1 mês normaliza para o começo de março.
func NextDueDate(current time.Time, tipoAssinatura string) time.Time {
	switch tipoAssinatura {
	case models.AssinaturaTrimestral:
		return current.AddDate(0, 3, 0)
	case models.AssinaturaSemestral:
		return current.AddDate(0, 6, 0)
	case models.AssinaturaAnual:
		return current.AddDate(1, 0, 0)
	default:
		return current.AddDate(0, 1, 0)
	}
}

// RenewalWindow devolve [início do dia de asOf, fim do dia asOf+days], ambos inclusivos.
func RenewalWindow(asOf time.Time, loc *time.Location, days int) (time.Time, time.Time) {
	from := timezone.StartOfDay(asOf, loc)
	to := timezone.EndOfDay(from.AddDate(0, 0, days), loc)
	return from, to
}

// DueDate normaliza uma data qualquer para 00:00 do fuso da academia.
func DueDate(t time.Time, loc *time.Location) time.Time {
	return timezone.StartOfDay(t, loc)
}
