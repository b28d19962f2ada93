package typemap

import "github.com/digitalsanctum/svcgen/apidef"

// Mapping is the result of resolving one shape (or scalar kind) to its
// target-language type, for use in both type hints and `@var` doc
// annotations.
type Mapping struct {
	// Type is the type string: a target-language type keyword, a union
	// expression, or an emitted class name.
	Type string

	// Nullable reports whether the member defaults to null absent a value.
	// Containers (list, map) are the one exception: they default to an
	// empty container rather than null (spec §4.1).
	Nullable bool
}

// DocType returns the type string to render in a `@var` doc comment, which
// is Type unchanged for every mapping, timestamps included. The timestamp
// input union comes from [ForScalarDoc], not from DocType.
func (m Mapping) DocType() string {
	return m.Type
}

// scalarMappings is the total table from spec §4.1's first column to its
// second and third.
var scalarMappings = map[apidef.ScalarKind]Mapping{
	apidef.KindBoolean:   {Type: "bool", Nullable: true},
	apidef.KindInteger:   {Type: "int", Nullable: true},
	apidef.KindLong:      {Type: "string", Nullable: true},
	apidef.KindBlob:      {Type: "string", Nullable: true},
	apidef.KindTimestamp: {Type: timestampType, Nullable: true},
	apidef.KindString:    {Type: "string", Nullable: true},
}

// timestampType is the constructed-value type emitted for timestamp
// members; see §6.3 for the full accepted-input union.
const timestampType = "\\DateTimeInterface"

// timestampDocType documents both forms a timestamp accepts at the
// emitted-API boundary (spec §6.3): an already-constructed date-time value,
// or an ISO-8601 string.
const timestampDocType = "\\DateTimeInterface|string"

// ContainerType is the target type for list and map shapes (spec §4.1).
// Element types are resolved per element via ForScalar/ForStructure and
// rendered by the caller (typically in a doc comment), not folded into this
// string — the container itself is untyped-element `array`.
const ContainerType = "array"

// StreamingType is the union type for streaming members at the input
// boundary (spec §6.4): a raw string, a byte-stream resource, or a
// zero-argument producer callable.
const StreamingType = "string|resource|callable"

// ForScalar resolves a scalar kind (spec §4.1). Any kind outside the closed
// set currently defined falls back to the "string (and any unmapped)" row.
func ForScalar(kind apidef.ScalarKind) Mapping {
	if m, ok := scalarMappings[kind]; ok {
		return m
	}
	return Mapping{Type: "string", Nullable: true}
}

// ForScalarDoc resolves the `@var` doc-comment type for a scalar kind,
// which for timestamps includes the input union typemap.ForScalar omits
// (spec §6.3).
func ForScalarDoc(kind apidef.ScalarKind) string {
	if kind == apidef.KindTimestamp {
		return timestampDocType
	}
	return ForScalar(kind).Type
}

// ForContainer resolves a list or map shape. Containers default to an
// empty value rather than null (spec §4.1).
func ForContainer() Mapping {
	return Mapping{Type: ContainerType, Nullable: false}
}

// ForStructure resolves a structure shape given its already-sanitized
// emitted class name.
func ForStructure(className string) Mapping {
	return Mapping{Type: className, Nullable: true}
}

// ForStreaming resolves a streaming member, bypassing the normal shape
// mapping entirely (spec §6.4).
func ForStreaming() Mapping {
	return Mapping{Type: StreamingType, Nullable: true}
}

// Resolve maps shape to its Mapping. className is consulted only when
// shape.Kind() == apidef.ShapeStructure; pass the structure's sanitized
// emitted class name.
func Resolve(shape *apidef.Shape, className string) Mapping {
	switch shape.Kind() {
	case apidef.ShapeScalar:
		return ForScalar(shape.Scalar())
	case apidef.ShapeList, apidef.ShapeMap:
		return ForContainer()
	case apidef.ShapeStructure:
		return ForStructure(className)
	default:
		return Mapping{Type: "string", Nullable: true}
	}
}
