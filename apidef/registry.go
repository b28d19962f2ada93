package apidef

import (
	"iter"
	"maps"
	"slices"
)

// Registry is an in-memory [ServiceDefinition]. It never parses a wire
// format itself; callers populate it directly or via the build package's
// fluent [build.Builder].
type Registry struct {
	apiVersion        string
	endpointPrefix    string
	signatureVersion  string
	shapesDoc         string

	shapes     map[string]*Shape
	operations map[string]*Operation

	// paramDocs holds per-(shape, member) documentation, keyed
	// "shapeName\x00memberName".
	paramDocs map[string]string
}

// NewRegistry builds an empty Registry with the given API version.
func NewRegistry(apiVersion string) *Registry {
	return &Registry{
		apiVersion: apiVersion,
		shapes:     make(map[string]*Shape),
		operations: make(map[string]*Operation),
		paramDocs:  make(map[string]string),
	}
}

// SetEndpointPrefix records the service's endpoint prefix.
func (r *Registry) SetEndpointPrefix(prefix string) { r.endpointPrefix = prefix }

// SetSignatureVersion records the service's signature version.
func (r *Registry) SetSignatureVersion(version string) { r.signatureVersion = version }

// SetShapesDocumentation records the definition-wide shape documentation
// fallback.
func (r *Registry) SetShapesDocumentation(doc string) { r.shapesDoc = doc }

// AddShape registers a shape, overwriting any existing shape of the same
// name.
func (r *Registry) AddShape(s *Shape) { r.shapes[s.Name()] = s }

// AddOperation registers an operation, overwriting any existing operation of
// the same name.
func (r *Registry) AddOperation(op *Operation) { r.operations[op.Name()] = op }

// SetParameterDocumentation records documentation for one member of a
// structure shape.
func (r *Registry) SetParameterDocumentation(shapeName, memberName, doc string) {
	r.paramDocs[paramDocKey(shapeName, memberName)] = doc
}

func paramDocKey(shapeName, memberName string) string {
	return shapeName + "\x00" + memberName
}

var _ ServiceDefinition = (*Registry)(nil)

func (r *Registry) Operation(name string) (*Operation, bool) {
	op, ok := r.operations[name]
	return op, ok
}

func (r *Registry) Shape(name string) (*Shape, bool) {
	s, ok := r.shapes[name]
	return s, ok
}

func (r *Registry) Shapes() iter.Seq2[string, *Shape] {
	return func(yield func(string, *Shape) bool) {
		for _, name := range slices.Sorted(maps.Keys(r.shapes)) {
			if !yield(name, r.shapes[name]) {
				return
			}
		}
	}
}

func (r *Registry) APIVersion() string { return r.apiVersion }

func (r *Registry) EndpointPrefix() (string, bool) {
	return r.endpointPrefix, r.endpointPrefix != ""
}

func (r *Registry) SignatureVersion() (string, bool) {
	return r.signatureVersion, r.signatureVersion != ""
}

func (r *Registry) OperationDocumentation(name string) (string, bool) {
	op, ok := r.operations[name]
	if !ok {
		return "", false
	}
	doc := op.Documentation()
	return doc, doc != ""
}

func (r *Registry) OperationPagination(name string) (Pagination, bool) {
	op, ok := r.operations[name]
	if !ok {
		return Pagination{}, false
	}
	return op.Pagination()
}

func (r *Registry) ParameterDocumentation(shapeName, memberName, _ string) (string, bool) {
	doc, ok := r.paramDocs[paramDocKey(shapeName, memberName)]
	return doc, ok
}

func (r *Registry) ShapesDocumentation() (string, bool) {
	return r.shapesDoc, r.shapesDoc != ""
}
