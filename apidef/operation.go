package apidef

// HTTPBinding carries the wire method and URI template for an operation.
type HTTPBinding struct {
	Method     string
	RequestURI string
}

// OutputBinding names an operation's output shape and, optionally, the XML
// element it is wrapped in (GLOSSARY: Result wrapper).
type OutputBinding struct {
	ShapeName     string
	ResultWrapper string
}

// Pagination carries the subset of AWS pagination metadata this generator
// acts on (spec §3.1): only ResultKey is consumed; other fields a real
// service definition might carry (InputToken, OutputToken, limit key, ...)
// are recognized by callers but irrelevant to code synthesis.
type Pagination struct {
	// ResultKey names the member(s) whose lists constitute the paged items
	// (GLOSSARY: Pagination result key). A nil or empty slice is a hard
	// error at generation time (spec §3.1).
	ResultKey []string
}

// HasResultKey reports whether pagination declares at least one result key.
func (p Pagination) HasResultKey() bool {
	return len(p.ResultKey) > 0
}

// Operation is a named RPC (spec §3.1, GLOSSARY: Operation).
type Operation struct {
	name            string
	http            HTTPBinding
	inputShape      string
	output          *OutputBinding
	documentation   string
	documentationURL string
	pagination      *Pagination
}

// OperationOption configures optional Operation attributes.
type OperationOption func(*Operation)

func WithOutput(shapeName, resultWrapper string) OperationOption {
	return func(o *Operation) {
		o.output = &OutputBinding{ShapeName: shapeName, ResultWrapper: resultWrapper}
	}
}

func WithDocumentation(doc, url string) OperationOption {
	return func(o *Operation) {
		o.documentation = doc
		o.documentationURL = url
	}
}

func WithPagination(resultKey ...string) OperationOption {
	return func(o *Operation) {
		o.pagination = &Pagination{ResultKey: resultKey}
	}
}

// NewOperation builds an Operation.
func NewOperation(name string, http HTTPBinding, inputShape string, opts ...OperationOption) *Operation {
	op := &Operation{name: name, http: http, inputShape: inputShape}
	for _, opt := range opts {
		opt(op)
	}
	return op
}

func (o *Operation) Name() string              { return o.name }
func (o *Operation) HTTP() HTTPBinding          { return o.http }
func (o *Operation) InputShape() string         { return o.inputShape }
func (o *Operation) Documentation() string      { return o.documentation }
func (o *Operation) DocumentationURL() string   { return o.documentationURL }

// Output returns the output binding, and true if the operation declares one.
func (o *Operation) Output() (OutputBinding, bool) {
	if o.output == nil {
		return OutputBinding{}, false
	}
	return *o.output, true
}

// Pagination returns the pagination descriptor, and true if the operation
// is paginated.
func (o *Operation) Pagination() (Pagination, bool) {
	if o.pagination == nil {
		return Pagination{}, false
	}
	return *o.pagination, true
}
