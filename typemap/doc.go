// Package typemap implements the generator's wire-to-target type mapping
// (spec §4.1, component C1).
//
// The mapping is total: every [apidef.ScalarKind] and every [apidef.ShapeKind]
// has a defined [Mapping]. Structure shapes are the one case that needs a
// caller-supplied input (the shape's already-sanitized class name) since
// name collision avoidance is namesan's concern, not typemap's — the two
// packages sit at the same foundation tier and neither imports the other.
package typemap
