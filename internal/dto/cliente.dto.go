package dto

import (
	"time"

	"github.com/BruksfildServices01/academia-backoffice/internal/models"
)

// ClienteDTO é o cliente com a idade calculada.
type ClienteDTO struct {
	models.Cliente
	Idade int `json:"idade"`
}

func NewClienteDTO(c models.Cliente, now time.Time) ClienteDTO {
	return ClienteDTO{Cliente: c, Idade: c.Idade(now)}
}

func NewClienteListDTO(list []models.Cliente, now time.Time) []ClienteDTO {
	out := make([]ClienteDTO, 0, len(list))
	for _, c := range list {
		out = append(out, NewClienteDTO(c, now))
	}
	return out
}
