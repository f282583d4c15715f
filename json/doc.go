// Package json parses JSON text into an immutable, typed document tree.
//
// The package is built from two stages that run in a single linear pass over
// an in-memory buffer:
//
//   - [Lexer] classifies raw bytes into [Token] values, tracking the 1-based
//     line and column of every token for diagnostics.
//   - [Parser] pulls tokens one at a time, holding exactly one token of
//     lookahead, and builds the [Value] tree by recursive descent.
//
// # Grammar
//
// The document root must be an object. Arrays and scalars are accepted only
// as member values.
//
//	document → object EOF
//	object   → '{' '}' | '{' member (',' member)* '}'
//	member   → STRING ':' value
//	array    → '[' ']' | '[' value (',' value)* ']'
//	value    → STRING | NUMBER | BOOL | NULL | object | array
//
// Trailing commas are rejected. The first lexical or structural fault aborts
// the parse; there is no partial result.
//
// # Values
//
// [Value] is a closed set of variants: [*Object], [*Array], [String],
// [Number], [Bool], and [Null]. Use a type switch or [Value.Kind] to
// discriminate, or the typed getters on [Object] and [Array], which return
// the caller's default when a member is absent or has a different type.
//
//	root, err := json.Parse(`{"name": "gopher", "tags": ["a", "b"]}`)
//	if err != nil {
//		return err
//	}
//
//	name := root.StringValue("name", "anonymous")
//	tags := root.ArrayValue("tags") // nil if absent or not an array
//
// [Object.Find] is a separate, recursive lookup: when the key is absent at
// the current level it searches nested objects depth-first.
//
// # Escapes
//
// By default the whitespace-class escapes \b \f \n \r \t are kept verbatim as
// a backslash followed by the letter. [WithEscapeMode] with [EscapeDecode]
// converts them to the control characters they name. In both modes \uXXXX is
// replaced by its four hex digits; code points are never decoded.
package json
