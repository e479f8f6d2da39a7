// Package patch membedakan field JSON yang tidak dikirim, dikirim null,
// dan dikirim dengan nilai. Pointer biasa tidak bisa membedakan dua kasus
// pertama, padahal partial update butuh ketiganya.
package patch

import "encoding/json"

type Field[T any] struct {
	set   bool
	valid bool
	value T
}

// NewValue builds a present, non-null field (test helper and internal use).
func NewValue[T any](v T) Field[T] {
	return Field[T]{set: true, valid: true, value: v}
}

// NewNull builds a present field carrying an explicit null.
func NewNull[T any]() Field[T] {
	return Field[T]{set: true}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if string(data) == "null" {
		f.valid = false
		return nil
	}
	if err := json.Unmarshal(data, &f.value); err != nil {
		return err
	}
	f.valid = true
	return nil
}

// IsSet reports whether the field appeared in the payload at all.
func (f Field[T]) IsSet() bool {
	return f.set
}

// IsNull reports whether the field was sent as an explicit null.
func (f Field[T]) IsNull() bool {
	return f.set && !f.valid
}

// Value returns the carried value; ok is false when absent or null.
func (f Field[T]) Value() (T, bool) {
	return f.value, f.set && f.valid
}
