package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/academia-backoffice/internal/httperr"
)

// --------------------------------------------------
// Datas sempre no fuso da academia
// --------------------------------------------------

var errInvalidDate = errors.New("data inválida")

var localLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// parseDate aceita YYYY-MM-DD, DD/MM/YYYY ou RFC 3339.
// Sem fuso explícito, a data é lida no fuso loc.
func parseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errInvalidDate
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.In(loc), nil
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errInvalidDate
}

func parseOptionalDate(value *string, loc *time.Location) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	t, err := parseDate(*value, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// queryDate lê um parâmetro de data opcional. Em caso de formato inválido
// já responde 400 e devolve ok=false.
func queryDate(c *gin.Context, key string, loc *time.Location) (*time.Time, bool) {
	raw := c.Query(key)
	t, err := parseOptionalDate(&raw, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+key, "Data inválida em "+key+".")
		return nil, false
	}
	return t, true
}
