// Package apidef models the input half of the generator: the shape graph
// and operation catalog of a single AWS-style service definition.
//
// # Overview
//
// A [ServiceDefinition] is a read-only query interface (§6.1 of the spec)
// over:
//
//   - Shapes: named nodes in a possibly cyclic graph, represented by a
//     single [Shape] type discriminated by [ShapeKind] (ShapeScalar,
//     ShapeList, ShapeMap, ShapeStructure) rather than one Go type per
//     variant. Built via [NewScalarShape], [NewListShape], [NewMapShape],
//     and [NewStructureShape].
//   - Operations: named RPCs with an HTTP binding, an input shape, an
//     optional output shape, and optional [Pagination].
//
// This package never parses a service definition file; producing a
// [ServiceDefinition] from JSON (or any other wire format) is explicitly an
// external collaborator's responsibility. What this package provides
// instead is the in-memory shape of that data plus a small, in-process
// [Registry] (see the build subpackage for a fluent constructor) so tests
// and programmatic callers can assemble a ServiceDefinition without a file
// on disk.
//
// # Shapes are immutable once built
//
// A [Shape] is built once (via the build package or directly) and never
// mutated afterward. Consumers — principally the shapewalk and gen packages
// — treat a *Registry as safe for concurrent read access.
package apidef
