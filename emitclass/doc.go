// Package emitclass models the abstract emitted class representation
// described in spec §3.2: namespace, class name, base class/interfaces,
// traits, imports, properties, and methods — each carrying its own
// visibility, doc comment, and (for methods) body text.
//
// A [Class] is a mutable, in-memory model; nothing in this package touches
// a filesystem. classfile loads a [Class] from disk or creates one fresh,
// gen's generators populate it, and classfile's FileWriter integration
// renders it back to text via [Class.Render].
package emitclass
