// Package build provides a fluent constructor for assembling an
// [apidef.Registry] in tests without hand-writing a service definition file.
package build

import "github.com/digitalsanctum/svcgen/apidef"

// Builder accumulates shapes and operations, then produces a *Registry.
//
// Builder is not safe for concurrent use; each goroutine should build its
// own fixture.
type Builder struct {
	reg *apidef.Registry
}

// New starts a Builder for a service with the given API version.
func New(apiVersion string) *Builder {
	return &Builder{reg: apidef.NewRegistry(apiVersion)}
}

// EndpointPrefix sets the service's endpoint prefix and returns the Builder
// for chaining.
func (b *Builder) EndpointPrefix(prefix string) *Builder {
	b.reg.SetEndpointPrefix(prefix)
	return b
}

// SignatureVersion sets the service's signature version and returns the
// Builder for chaining.
func (b *Builder) SignatureVersion(version string) *Builder {
	b.reg.SetSignatureVersion(version)
	return b
}

// ShapesDocumentation sets the definition-wide shape documentation fallback
// and returns the Builder for chaining.
func (b *Builder) ShapesDocumentation(doc string) *Builder {
	b.reg.SetShapesDocumentation(doc)
	return b
}

// Shape registers s and returns the Builder for chaining.
func (b *Builder) Shape(s *apidef.Shape) *Builder {
	b.reg.AddShape(s)
	return b
}

// Scalar registers a scalar shape named name and returns the Builder for
// chaining.
func (b *Builder) Scalar(name string, kind apidef.ScalarKind) *Builder {
	return b.Shape(apidef.NewScalarShape(name, kind))
}

// List registers a list shape named name whose elements are memberShape and
// returns the Builder for chaining.
func (b *Builder) List(name, memberShape string) *Builder {
	return b.Shape(apidef.NewListShape(name, memberShape))
}

// Map registers a map shape and returns the Builder for chaining.
func (b *Builder) Map(name, keyShape, keyLocationName, valueShape, valueLocationName string) *Builder {
	return b.Shape(apidef.NewMapShape(name, keyShape, keyLocationName, valueShape, valueLocationName))
}

// Structure registers a structure shape and returns the Builder for
// chaining.
func (b *Builder) Structure(name string, members []apidef.Member, required []string, payload string) *Builder {
	return b.Shape(apidef.NewStructureShape(name, members, required, payload))
}

// ParameterDocumentation records documentation for one member of a
// structure shape and returns the Builder for chaining.
func (b *Builder) ParameterDocumentation(shapeName, memberName, doc string) *Builder {
	b.reg.SetParameterDocumentation(shapeName, memberName, doc)
	return b
}

// Operation registers op and returns the Builder for chaining.
func (b *Builder) Operation(op *apidef.Operation) *Builder {
	b.reg.AddOperation(op)
	return b
}

// Build returns the assembled Registry.
func (b *Builder) Build() *apidef.Registry {
	return b.reg
}
