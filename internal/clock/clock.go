// Package clock isola a leitura do horário atual para que regras de
// vencimento e a varredura possam ser testadas com instantes fixos.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// System retorna o relógio real, sempre no fuso informado.
func System(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed sempre devolve o mesmo instante.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
