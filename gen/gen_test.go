package gen

import (
	"context"

	"github.com/digitalsanctum/svcgen/emitclass"
)

// fakeWriter is an in-memory FileWriter test double, backed by a map of
// rendered source keyed by fully-qualified class name.
type fakeWriter struct {
	files      map[string]string
	writeCount int
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{files: make(map[string]string)}
}

func (w *fakeWriter) Write(class *emitclass.Class) error {
	w.writeCount++
	w.files[class.Namespace+"\\"+class.Name] = class.Render()
	return nil
}

func (w *fakeWriter) Delete(fullyQualifiedName string) error {
	delete(w.files, fullyQualifiedName)
	return nil
}

func (w *fakeWriter) Read(fullyQualifiedName string) (string, bool) {
	source, ok := w.files[fullyQualifiedName]
	return source, ok
}

func (w *fakeWriter) has(fqcn string) bool {
	_, ok := w.files[fqcn]
	return ok
}

func mustGenerate(g *Generator, op string) error {
	return g.GenerateOperation(context.Background(), op)
}
