package gen

import "github.com/digitalsanctum/svcgen/emitclass"

// FileWriter is the generator's sole storage collaborator (spec §6.2),
// extended with a Read method so classfile's merge step (spec §4.8) can
// recover a pre-existing class without a second, separate collaborator.
// Path layout remains entirely the implementation's concern; the generator
// commits only to producing well-named classes in the correct namespace.
type FileWriter interface {
	// Write persists class, overwriting any prior file for the same
	// fully-qualified name.
	Write(class *emitclass.Class) error

	// Delete removes the file backing fullyQualifiedName, if any.
	Delete(fullyQualifiedName string) error

	// Read returns the previously written source for fullyQualifiedName,
	// and true if it exists. classfile.LoadOrCreate calls this to recover
	// a mergeable class representation.
	Read(fullyQualifiedName string) (source string, ok bool)
}
