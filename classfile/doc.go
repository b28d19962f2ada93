// Package classfile implements the generator's class merger (spec §4.8,
// component C8): load an existing emitted class from its rendered source
// if present, or create a fresh one, then apply the generator's only
// allowed mutations (removeMethod, addMethod, hasMethod, import additions)
// before handing the result back for rendering and writing.
//
// Per the design note in spec §9 ("Merging into existing classes requires a
// round-trippable representation of the target class"), this package takes
// option (i): a minimal textual parser that recovers [emitclass.Class]'s
// structured fields (namespace, base class, interfaces, traits, imports,
// properties, methods) from rendered PHP source well enough to preserve
// every pre-existing member the generator does not explicitly touch.
// It is not a general PHP parser: constructs outside what [emitclass.Render]
// itself produces (this package's own prior output, or hand-written code
// following the same shape) may not round-trip.
package classfile
