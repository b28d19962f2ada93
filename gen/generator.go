package gen

import (
	"context"
	"log/slog"

	"github.com/digitalsanctum/svcgen/apidef"
	"github.com/digitalsanctum/svcgen/internal/trace"
	"github.com/digitalsanctum/svcgen/shapewalk"
)

// Generator is the top-level entry point: one ServiceDefinition, one
// FileWriter, one base PHP namespace under which Input/Result/client
// classes are emitted.
type Generator struct {
	def       apidef.ServiceDefinition
	writer    FileWriter
	namespace string

	logger             *slog.Logger
	xmlNamespacePrefix string

	walker *shapewalk.Walker
}

// New builds a Generator over def, writing through writer, emitting
// classes under the given base namespace (e.g. "Aws\S3").
func New(def apidef.ServiceDefinition, writer FileWriter, namespace string, opts ...Option) *Generator {
	g := &Generator{
		def:       def,
		writer:    writer,
		namespace: namespace,
		walker:    shapewalk.New(def),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// run holds the per-invocation state a single GenerateOperation call needs:
// the memoization sets that let ShapeWalker-driven recursion terminate over
// a cyclic shape graph (spec §3.1, §3.2, §5), and the list of classes
// emitted so far, for summary logging.
type run struct {
	memoInput     map[string]bool
	memoResult    map[string]bool
	inputClasses  []emitClassRef
	resultClasses []emitClassRef
}

func newRun() *run {
	return &run{
		memoInput:  make(map[string]bool),
		memoResult: make(map[string]bool),
	}
}

// emitClassRef records the namespace and name of an emitted class, so the
// caller can report its fully-qualified name in logs/errors.
type emitClassRef struct {
	namespace string
	name      string
}

func (e emitClassRef) fqcn() string { return e.namespace + "\\" + e.name }

// GenerateOperation is the OperationGenerator entry point (spec §4.7,
// component C7). It resolves name against the ServiceDefinition, emits the
// input and (if declared) output class trees, merges the operation method
// into the service's client class, and writes every touched class.
func (g *Generator) GenerateOperation(ctx context.Context, name string) error {
	ctx = trace.WithRequestID(ctx, string(NewRunID()))
	op := trace.Begin(ctx, g.logger, "svcgen.gen.operation", slog.String("operation", name))
	err := g.generateOperation(ctx, name)
	op.End(err)
	return err
}
