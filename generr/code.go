package generr

// Code is a stable, closed identifier for a generation failure. Unlike an
// error string, a Code is safe to switch on. The zero value is never
// produced by this package; callers receive one of the exported constants
// below.
type Code struct {
	s string
}

// String returns the code's wire identifier, e.g. "E_SHAPE_NOT_FOUND".
func (c Code) String() string { return c.s }

var (
	// CodeShapeNotFound: an operation or member referenced a shape name
	// absent from the ServiceDefinition (spec §3.1 invariant, §7.1).
	CodeShapeNotFound = Code{"E_SHAPE_NOT_FOUND"}

	// CodeUnknownShapeType: a shape reported a Kind() outside the closed
	// set scalar/list/map/structure.
	CodeUnknownShapeType = Code{"E_UNKNOWN_SHAPE_TYPE"}

	// CodeMapMissingLocationName: a map shape's key member carries no
	// locationName, which parseXml requires (spec §4.4).
	CodeMapMissingLocationName = Code{"E_MAP_MISSING_LOCATION_NAME"}

	// CodeComplexKeyMap: a map shape's key resolves to a non-scalar shape,
	// which the generator cannot render as an XML/query map key.
	CodeComplexKeyMap = Code{"E_COMPLEX_KEY_MAP"}

	// CodeMissingResultKey: an operation declared pagination with no
	// result_key, or an empty one (spec §3.1, §7.1).
	CodeMissingResultKey = Code{"E_MISSING_RESULT_KEY"}

	// CodePaginationNotIterable: a pagination result_key resolved to a
	// shape that is not list-typed (spec §4.6, §7.1).
	CodePaginationNotIterable = Code{"E_PAGINATION_NOT_ITERABLE"}

	// CodeUnsupportedDocumentation: HTML documentation retained a residual
	// '<' after stripping (spec §4.3 step 5, §7.2).
	CodeUnsupportedDocumentation = Code{"E_UNSUPPORTED_DOCUMENTATION"}

	// CodeIO: a FileWriter operation failed (spec §7.3).
	CodeIO = Code{"E_IO"}

	// CodeUnsupportedProtocol: names a request body for a protocol other
	// than the form-urlencoded default. No function in this module returns
	// it; gen has no code path for other protocols.
	CodeUnsupportedProtocol = Code{"E_UNSUPPORTED_PROTOCOL"}
)
