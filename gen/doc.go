// Package gen implements the generator's top-level orchestration: the
// FileWriter collaborator (spec §6.2), InputGenerator (C5), ResultGenerator
// (C6), and OperationGenerator (C7), wired together through shapewalk,
// typemap, namesan, docfmt, classfile, and xmlcfg.
//
// [Generator] is the single entry point. One call to
// [Generator.GenerateOperation] is a self-contained, synchronous unit of
// work (spec §5): it resolves one operation's input and output shape
// trees, emits one class per reachable shape, merges the operation method
// into the service's client class, and writes every touched class through
// the configured [FileWriter]. Concurrent calls across different
// operations are safe as long as the caller serializes writes to the
// shared client class (spec §5) — Generator itself takes no lock.
package gen
