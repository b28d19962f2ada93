package apidef

import "iter"

// ServiceDefinition is the generator's sole query interface onto a service's
// shape graph and operation catalog (spec §6.1). It is read-only: nothing
// in this module mutates a ServiceDefinition during generation (spec §5).
//
// Absence of documentation is benign — callers pass it straight through
// docfmt, which tolerates an empty string. Absence of a referenced shape is
// fatal (spec §3.1 invariant; surfaced as generr.ErrSchema by shapewalk and
// gen).
type ServiceDefinition interface {
	// Operation returns the named operation, and true if it exists.
	Operation(name string) (*Operation, bool)

	// Shape returns the named shape, and true if it exists.
	Shape(name string) (*Shape, bool)

	// Shapes iterates every shape in the definition, in an unspecified but
	// stable order. Used by tests and tooling that enumerate the whole
	// graph; generation itself only ever follows references from an
	// operation's input/output shape.
	Shapes() iter.Seq2[string, *Shape]

	// APIVersion returns the service's API version string, seeded into the
	// default form-urlencoded request body (spec §4.5).
	APIVersion() string

	// EndpointPrefix returns the service's wire endpoint code, and true if
	// declared. When present, OperationGenerator emits a getServiceCode
	// method (spec §4.7).
	EndpointPrefix() (string, bool)

	// SignatureVersion returns the service's signature version, and true if
	// declared. When present, OperationGenerator emits a
	// getSignatureVersion method (spec §4.7).
	SignatureVersion() (string, bool)

	// OperationDocumentation returns the operation's top-level
	// documentation HTML, and true if present.
	OperationDocumentation(name string) (string, bool)

	// OperationPagination returns the operation's pagination descriptor,
	// and true if the operation is paginated.
	OperationPagination(name string) (Pagination, bool)

	// ParameterDocumentation returns the documentation HTML for a single
	// member of shapeName, and true if present. memberShape is the
	// referenced shape's name, supplied so implementations that document
	// by (container, member, target-type) triples can disambiguate.
	ParameterDocumentation(shapeName, memberName, memberShape string) (string, bool)

	// ShapesDocumentation returns definition-wide shape documentation HTML
	// (used as a fallback when a structure itself carries no per-shape
	// doc), and true if present.
	ShapesDocumentation() (string, bool)
}
