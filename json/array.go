package json

import (
	"iter"
	"log/slog"
)

// Array is an ordered JSON array.
//
// An Array is immutable once parsing completes. All methods are safe to call
// on a nil *Array, which behaves as an empty array.
type Array struct {
	elements []Value
}

func newArray() *Array {
	return &Array{}
}

func (a *Array) append(v Value) {
	a.elements = append(a.elements, v)
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}

	return len(a.elements)
}

// All returns an iterator over the elements in order.
func (a *Array) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		if a == nil {
			return
		}

		for i, v := range a.elements {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Value returns the element at index, or an error wrapping
// [ErrIndexOutOfRange] if index is not in [0, Len()).
func (a *Array) Value(index int) (Value, error) {
	if index < 0 || index >= a.Len() {
		return nil, ErrIndexOutOfRange.With(
			slog.Int("index", index),
			slog.Int("len", a.Len()),
		)
	}

	return a.elements[index], nil
}

func (a *Array) at(index int) Value {
	v, err := a.Value(index)
	if err != nil {
		return nil
	}

	return v
}

// StringValue returns the string at index, or def if index is out of range
// or the element is not a string.
func (a *Array) StringValue(index int, def string) string {
	if s, ok := a.at(index).(String); ok {
		return string(s)
	}

	return def
}

// BoolValue returns the boolean at index, or def if index is out of range
// or the element is not a boolean.
func (a *Array) BoolValue(index int, def bool) bool {
	if b, ok := a.at(index).(Bool); ok {
		return bool(b)
	}

	return def
}

// NumberValue returns the number at index, or def if index is out of range
// or the element is not a number.
func (a *Array) NumberValue(index int, def float64) float64 {
	if n, ok := a.at(index).(Number); ok {
		return float64(n)
	}

	return def
}

// ArrayValue returns the array at index, or nil.
func (a *Array) ArrayValue(index int) *Array {
	arr, _ := a.at(index).(*Array)

	return arr
}

// ObjectValue returns the object at index, or nil.
func (a *Array) ObjectValue(index int) *Object {
	obj, _ := a.at(index).(*Object)

	return obj
}

// NullValue reports whether the element at index is an explicit null.
func (a *Array) NullValue(index int) (Null, bool) {
	n, ok := a.at(index).(Null)

	return n, ok
}
