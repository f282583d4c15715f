package json

// Kind identifies the variant of a [Value].
type Kind int

const (
	KindObject Kind = iota
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Value is a node of a parsed document tree.
//
// The set of implementations is closed: [*Object], [*Array], [String],
// [Number], [Bool], and [Null].
type Value interface {
	Kind() Kind

	value()
}

// String is a decoded JSON string.
type String string

// Number is a JSON number converted to float64.
type Number float64

// Bool is a JSON boolean.
type Bool bool

// Null is an explicit JSON null, as opposed to an absent member.
type Null struct{}

func (*Object) Kind() Kind { return KindObject }
func (*Array) Kind() Kind  { return KindArray }
func (String) Kind() Kind  { return KindString }
func (Number) Kind() Kind  { return KindNumber }
func (Bool) Kind() Kind    { return KindBool }
func (Null) Kind() Kind    { return KindNull }

func (*Object) value() {}
func (*Array) value()  {}
func (String) value()  {}
func (Number) value()  {}
func (Bool) value()    {}
func (Null) value()    {}

// Native converts v to plain Go values: map[string]any for objects, []any
// for arrays, and string, float64, bool, or nil for scalars.
func Native(v Value) any {
	switch v := v.(type) {
	case *Object:
		if v == nil {
			return nil
		}

		m := make(map[string]any, v.Len())
		for key, member := range v.All() {
			m[key] = Native(member)
		}

		return m

	case *Array:
		if v == nil {
			return nil
		}

		s := make([]any, 0, v.Len())
		for _, elem := range v.All() {
			s = append(s, Native(elem))
		}

		return s

	case String:
		return string(v)

	case Number:
		return float64(v)

	case Bool:
		return bool(v)

	case Null:
		return nil

	default:
		return nil
	}
}

// Summary returns a short description of v: scalars are rendered as their
// Go values, containers as their kind and size.
func Summary(v Value) string {
	switch v := v.(type) {
	case *Object:
		return "object{" + itoa(v.Len()) + "}"
	case *Array:
		return "array[" + itoa(v.Len()) + "]"
	case String:
		return string(v)
	case Number:
		return formatNumber(float64(v))
	case Bool:
		if v {
			return "true"
		}

		return "false"
	case Null:
		return "null"
	default:
		return ""
	}
}
