package classfile

import "github.com/digitalsanctum/svcgen/emitclass"

// Source is the read side of the generator's file storage collaborator.
// Together with gen.FileWriter's write/delete, it forms the single storage
// collaborator spec §6.2 describes — this package never resolves a
// fully-qualified class name to a file path itself, just as FileWriter's
// path layout is its own concern.
type Source interface {
	// Read returns the rendered source of fullyQualifiedName, and true if
	// a file for that class exists.
	Read(fullyQualifiedName string) (source string, ok bool)
}

// LoadOrCreate returns the existing class named name in namespace, parsed
// from src, or a fresh empty Class if none exists (spec §4.8).
func LoadOrCreate(src Source, namespace, name string) *emitclass.Class {
	fqcn := namespace + "\\" + name
	source, ok := src.Read(fqcn)
	if !ok {
		return emitclass.New(namespace, name)
	}
	return Parse(source)
}
