package json

import "iter"

// Object is a JSON object: a mapping from unique keys to values.
// Members are enumerated in key order.
//
// An Object is immutable once parsing completes. All methods are safe to
// call on a nil *Object, which behaves as an empty object.
type Object struct {
	members map[string]Value
}

func newObject() *Object {
	return &Object{members: make(map[string]Value)}
}

// set stores v under key, replacing any earlier member with the same key.
func (o *Object) set(key string, v Value) {
	o.members[key] = v
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.members)
}

// Keys returns the member keys in sorted order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	return sortedKeys(o.members)
}

// All returns an iterator over the members in key order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, key := range o.Keys() {
			if !yield(key, o.members[key]) {
				return
			}
		}
	}
}

// Lookup returns the member stored under name and whether it exists.
func (o *Object) Lookup(name string) (Value, bool) {
	if o == nil {
		return nil, false
	}

	v, ok := o.members[name]

	return v, ok
}

// Value returns the member stored under name, or nil if there is none.
func (o *Object) Value(name string) Value {
	v, _ := o.Lookup(name)

	return v
}

// StringValue returns the string stored under name, or def if the member is
// absent or not a string.
func (o *Object) StringValue(name, def string) string {
	if s, ok := o.Value(name).(String); ok {
		return string(s)
	}

	return def
}

// BoolValue returns the boolean stored under name, or def if the member is
// absent or not a boolean.
func (o *Object) BoolValue(name string, def bool) bool {
	if b, ok := o.Value(name).(Bool); ok {
		return bool(b)
	}

	return def
}

// NumberValue returns the number stored under name, or def if the member is
// absent or not a number.
func (o *Object) NumberValue(name string, def float64) float64 {
	if n, ok := o.Value(name).(Number); ok {
		return float64(n)
	}

	return def
}

// ArrayValue returns the array stored under name, or nil if the member is
// absent or not an array.
func (o *Object) ArrayValue(name string) *Array {
	a, _ := o.Value(name).(*Array)

	return a
}

// ObjectValue returns the object stored under name, or nil if the member is
// absent or not an object.
func (o *Object) ObjectValue(name string) *Object {
	obj, _ := o.Value(name).(*Object)

	return obj
}

// NullValue reports whether the member stored under name is an explicit null.
func (o *Object) NullValue(name string) (Null, bool) {
	n, ok := o.Value(name).(Null)

	return n, ok
}

// Find looks up name in o and, failing that, searches the object-valued
// members of o depth-first in key order. It returns the first match, or nil.
//
// Arrays are not searched. Use [Object.Value] for a lookup confined to o.
func (o *Object) Find(name string) Value {
	if v, ok := o.Lookup(name); ok {
		return v
	}

	for _, member := range o.All() {
		child, ok := member.(*Object)
		if !ok {
			continue
		}

		if v := child.Find(name); v != nil {
			return v
		}
	}

	return nil
}
