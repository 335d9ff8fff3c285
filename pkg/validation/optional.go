package validation

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes a field omitted from a JSON object from one that is
// present, including present-but-null.
type Optional[T any] struct {
	Present bool
	Null    bool
	Value   T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Present = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// Set builds a present, non-null value.
func Set[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: v}
}

// Ptr returns nil for null, otherwise a pointer to the value. Only meaningful when Present.
func (o Optional[T]) Ptr() *T {
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}
