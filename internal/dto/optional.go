package dto

import "encoding/json"

// Optional distingue três estados de um campo no PATCH/PUT:
// ausente (Set=false), null explícito (Null=true) e valor.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// Ptr devolve nil para ausente ou null.
func (o Optional[T]) Ptr() *T {
	if !o.Set || o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// HasValue é true só quando veio um valor não-nulo.
func (o Optional[T]) HasValue() bool {
	return o.Set && !o.Null
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}
