package gen

import (
	"fmt"
	"strings"

	"github.com/digitalsanctum/svcgen/apidef"
	"github.com/digitalsanctum/svcgen/emitclass"
	"github.com/digitalsanctum/svcgen/generr"
	"github.com/digitalsanctum/svcgen/namesan"
	"github.com/digitalsanctum/svcgen/shapewalk"
	"github.com/digitalsanctum/svcgen/typemap"
)

// generateResultTree emits one class per structure shape reachable from
// rootShapeName, memoized in r.memoResult (spec §4.6, component C6).
func (g *Generator) generateResultTree(r *run, rootShapeName string, op *apidef.Operation, output apidef.OutputBinding) error {
	return g.visitResultShape(r, rootShapeName, op, output, rootShapeName == output.ShapeName)
}

func (g *Generator) visitResultShape(r *run, shapeName string, op *apidef.Operation, output apidef.OutputBinding, isRoot bool) error {
	if r.memoResult[shapeName] {
		return nil
	}
	shape, ok := g.def.Shape(shapeName)
	if !ok {
		return generr.NewSchemaError(generr.CodeShapeNotFound, shapeName, "referenced shape not found")
	}
	if shape.Kind() != apidef.ShapeStructure {
		return nil
	}
	r.memoResult[shapeName] = true

	class, err := g.buildResultClass(shape, op, output, isRoot)
	if err != nil {
		return err
	}
	ref := emitClassRef{namespace: class.Namespace, name: class.Name}
	r.resultClasses = append(r.resultClasses, ref)
	if err := g.writer.Write(class); err != nil {
		return generr.NewIOError(ref.fqcn(), err)
	}

	for _, m := range shape.MembersSlice() {
		nested, ok := g.nestedStructureShape(m.ShapeName())
		if !ok {
			continue
		}
		if err := g.visitResultShape(r, nested, op, output, false); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) buildResultClass(shape *apidef.Shape, op *apidef.Operation, output apidef.OutputBinding, isRoot bool) (*emitclass.Class, error) {
	namespace := resultNamespace(g.namespace)
	className := namesan.Sanitize(shape.Name())
	class := emitclass.New(namespace, className)
	if isRoot {
		class.BaseClass = "\\Aws\\Result"
	}

	var ctorLines []string
	for _, m := range shape.MembersSlice() {
		memberShape, ok := g.def.Shape(m.ShapeName())
		if !ok {
			return nil, generr.NewSchemaError(generr.CodeShapeNotFound, m.ShapeName(), "member shape not found")
		}
		mapping, err := g.mapMember(m, memberShape)
		if err != nil {
			return nil, err
		}

		class.AddProperty(emitclass.Property{
			Name:       m.Name(),
			Visibility: emitclass.Private,
			Doc:        propertyDoc(g.def, shape.Name(), m, mapping),
		})
		class.AddMethod(emitclass.Method{
			Name:       "get" + m.Name(),
			Visibility: emitclass.Public,
			ReturnType: mapping.Type,
			Nullable:   mapping.Nullable,
			Body:       fmt.Sprintf("return $this->%s;", m.Name()),
		})

		if !isRoot {
			init, err := g.walker.ConstructorInit(m.Name(), m)
			if err != nil {
				return nil, err
			}
			ctorLines = append(ctorLines, init)
		}
	}

	// Nested result classes get the same named-constructor treatment as
	// input classes (spec §4.6), minus validation and request helpers: the
	// root class is populated from an HTTP response via populateResult, not
	// constructed from a raw mapping, so it needs neither.
	if !isRoot {
		ctorBody := strings.Join(ctorLines, "\n")
		if ctorBody == "" {
			ctorBody = "// no members"
		}
		class.AddMethod(emitclass.Method{
			Name:       "__construct",
			Visibility: emitclass.Public,
			Params:     []emitclass.Param{{Name: "input", Type: "array", HasDefault: true, Default: "[]"}},
			Body:       ctorBody,
		})
		class.AddMethod(emitclass.Method{
			Name:       "create",
			Visibility: emitclass.Public,
			Static:     true,
			ReturnType: "self",
			Params:     []emitclass.Param{{Name: "input", Type: "array|self"}},
			Body:       "if ($input instanceof self) {\n    return $input;\n}\nreturn new self($input);",
		})
	}

	if isRoot {
		if err := g.addPopulateResult(class, shape, op, output); err != nil {
			return nil, err
		}
		if pag, ok := op.Pagination(); ok {
			if err := g.addPaginationMethods(class, shape, pag); err != nil {
				return nil, err
			}
		}
	}

	return class, nil
}

// addPopulateResult adds populateResult(), the three-phase body that reads
// an HTTP response into this result's properties (spec §4.6): headers,
// then payload/body, dispatched through ShapeWalker's XML helpers. When the
// root's payload member is streaming, the method gains a second, optional
// httpClient parameter used to wrap the response in a streamable-body
// handle (spec §6.4).
func (g *Generator) addPopulateResult(class *emitclass.Class, shape *apidef.Shape, op *apidef.Operation, output apidef.OutputBinding) error {
	streaming, err := g.hasStreamingPayload(shape)
	if err != nil {
		return err
	}

	var lines []string
	lines = append(lines, "// TODO Verify correctness")

	var headerLines, bodyLines []string
	if hasHeaderMember(shape) {
		headerLines = append(headerLines, "$headers = array_change_key_case($response->getHeaders(), CASE_LOWER);")
	}
	for _, m := range shape.MembersSlice() {
		switch m.Location() {
		case apidef.LocationHeader:
			line, err := g.populateHeaderLine(m)
			if err != nil {
				return err
			}
			headerLines = append(headerLines, line)
		case apidef.LocationHeaders:
			headerLines = append(headerLines, populateHeadersPrefixLine(m))
		default:
			continue
		}
	}
	lines = append(lines, headerLines...)

	bodyExpr, err := g.bodyParseExpr(shape, output, streaming)
	if err != nil {
		return err
	}
	bodyLines = append(bodyLines, bodyExpr...)
	lines = append(lines, bodyLines...)

	params := []emitclass.Param{
		{Name: "response", Type: "\\Psr\\Http\\Message\\ResponseInterface"},
	}
	if streaming {
		params = append(params, emitclass.Param{
			Name: "httpClient", Type: "\\Aws\\Api\\HttpClient", Nullable: true, HasDefault: true, Default: "null",
		})
	}

	class.AddMethod(emitclass.Method{
		Name:       "populateResult",
		Visibility: emitclass.Public,
		Params:     params,
		Body:       strings.Join(lines, "\n"),
	})
	return nil
}

// hasStreamingPayload reports whether shape declares a payload member typed
// as streaming (spec §4.6, §6.4).
func (g *Generator) hasStreamingPayload(shape *apidef.Shape) (bool, error) {
	payloadName, ok := shape.Payload()
	if !ok {
		return false, nil
	}
	member, ok := shape.Member(payloadName)
	if !ok {
		return false, generr.NewSchemaError(generr.CodeShapeNotFound, payloadName, "payload member not found")
	}
	return member.Streaming(), nil
}

func hasHeaderMember(shape *apidef.Shape) bool {
	for _, m := range shape.MembersSlice() {
		if m.Location() == apidef.LocationHeader {
			return true
		}
	}
	return false
}

// populateHeaderLine reads one header-location member per invariant #5: a
// lowercase key lookup into the pre-lowered $headers array, taking the
// first value (Scenario E).
func (g *Generator) populateHeaderLine(m apidef.Member) (string, error) {
	shape, ok := g.def.Shape(m.ShapeName())
	if !ok {
		return "", generr.NewSchemaError(generr.CodeShapeNotFound, m.ShapeName(), "header member shape not found")
	}
	raw := fmt.Sprintf("($headers['%s'][0] ?? null)", strings.ToLower(m.LocationName()))
	value, err := headerCoerce(shape, raw)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("$this->%s = %s;", m.Name(), value), nil
}

// headerCoerce applies the filter-style coercion invariant #5 specifies:
// integer/long cast, boolean filter_var, timestamp construction, else the
// raw string.
func headerCoerce(shape *apidef.Shape, raw string) (string, error) {
	if shape.Kind() != apidef.ShapeScalar {
		return raw, nil
	}
	switch shape.Scalar() {
	case apidef.KindInteger, apidef.KindLong:
		return fmt.Sprintf("%s !== null ? (int) %s : null", raw, raw), nil
	case apidef.KindBoolean:
		return fmt.Sprintf("%s !== null ? filter_var(%s, FILTER_VALIDATE_BOOLEAN) : null", raw, raw), nil
	case apidef.KindTimestamp:
		return fmt.Sprintf("%s !== null ? new \\DateTimeImmutable(%s) : null", raw, raw), nil
	default:
		return raw, nil
	}
}

func populateHeadersPrefixLine(m apidef.Member) string {
	prefix := m.LocationName()
	return fmt.Sprintf(
		"$this->%s = [];\nforeach ($response->getHeaders() as $name => $values) {\n"+
			"    if (stripos($name, '%s') === 0) {\n        $this->%s[substr($name, strlen('%s'))] = $values[0] ?? null;\n    }\n}",
		m.Name(), prefix, m.Name(), prefix)
}

// bodyParseExpr renders the payload/body phase of populateResult (spec
// §4.6): a streaming payload wraps the response in a streamable-body
// handle when an httpClient was supplied, else reads the full body; a
// scalar payload reads the body as a string; everything else XML-parses
// the (optionally wrapper-unwrapped) response via ShapeWalker.
func (g *Generator) bodyParseExpr(shape *apidef.Shape, output apidef.OutputBinding, streaming bool) ([]string, error) {
	if payloadName, ok := shape.Payload(); ok {
		member, _ := shape.Member(payloadName)
		memberShape, ok := g.def.Shape(member.ShapeName())
		if !ok {
			return nil, generr.NewSchemaError(generr.CodeShapeNotFound, member.ShapeName(), "payload member shape not found")
		}
		if streaming {
			return []string{fmt.Sprintf(
				"$this->%s = $httpClient !== null ? new \\Aws\\Api\\StreamableBody($httpClient->stream($response)) : (string) $response->getBody();",
				member.Name())}, nil
		}
		if memberShape.Kind() == apidef.ShapeScalar {
			return []string{fmt.Sprintf("$this->%s = (string) $response->getBody();", member.Name())}, nil
		}
	}

	walker := shapewalk.New(g.def)
	dataExpr := "$data"
	var lines []string
	lines = append(lines, fmt.Sprintf("%s = new \\SimpleXMLElement((string) $response->getBody());", dataExpr))
	if output.ResultWrapper != "" {
		lines = append(lines, fmt.Sprintf("%s = %s->%s;", dataExpr, dataExpr, output.ResultWrapper))
	}

	body, err := walker.ParseXmlRoot(shape)
	if err != nil {
		return nil, err
	}
	lines = append(lines, body)
	return lines, nil
}

// addPaginationMethods adds get<ResultKey>(bool) and iterator() when the
// operation declares pagination (spec §4.6, GLOSSARY: Pagination result
// key). Only the first declared result key is used; further keys are
// ignored. No result key at all is a hard CodeMissingResultKey error, and a
// first key that is absent from the shape or not list-typed is a hard
// CodePaginationNotIterable error (spec §3.1, §8.3).
func (g *Generator) addPaginationMethods(class *emitclass.Class, shape *apidef.Shape, pag apidef.Pagination) error {
	if !pag.HasResultKey() {
		return generr.NewSchemaError(generr.CodeMissingResultKey, "", "pagination declared with no result_key")
	}
	key := pag.ResultKey[0]
	member, ok := shape.Member(key)
	if !ok {
		return generr.NewSchemaError(generr.CodePaginationNotIterable, key, "pagination result key not found on output shape")
	}
	memberShape, ok := g.def.Shape(member.ShapeName())
	if !ok {
		return generr.NewSchemaError(generr.CodeShapeNotFound, member.ShapeName(), "pagination result key shape not found")
	}
	if memberShape.Kind() != apidef.ShapeList {
		return generr.NewSchemaError(generr.CodePaginationNotIterable, key, "pagination result key is not list-typed")
	}

	elem, ok := g.def.Shape(memberShape.ListMember())
	if !ok {
		return generr.NewSchemaError(generr.CodeShapeNotFound, memberShape.ListMember(), "pagination result key element shape not found")
	}
	elemDocType := typemap.Resolve(elem, namesan.Sanitize(elem.Name())).DocType()
	if elem.Kind() == apidef.ShapeStructure {
		elemDocType = "\\" + g.namespace + "\\Result\\" + namesan.Sanitize(elem.Name())
	}

	class.AddMethod(emitclass.Method{
		Name:       "get" + key,
		Visibility: emitclass.Public,
		ReturnType: "array",
		Params: []emitclass.Param{
			{Name: "currentPageOnly", Type: "bool", HasDefault: true, Default: "false"},
		},
		Doc: fmt.Sprintf("@return %s[]", elemDocType),
		Body: fmt.Sprintf(
			"if ($currentPageOnly) {\n    return $this->%s;\n}\n"+
				"// TODO loading subsequent pages is left to the runtime's paginator\n"+
				"return $this->%s;",
			member.Name(), member.Name()),
	})

	class.AddMethod(emitclass.Method{
		Name:       "iterator",
		Visibility: emitclass.Public,
		ReturnType: "\\Generator",
		Body: fmt.Sprintf(
			"foreach ($this->%s as $item) {\n    yield $item;\n}\n// TODO loading next page is left to the runtime's paginator",
			member.Name()),
	})

	return nil
}

