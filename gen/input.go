package gen

import (
	"fmt"
	"strings"

	"github.com/digitalsanctum/svcgen/apidef"
	"github.com/digitalsanctum/svcgen/docfmt"
	"github.com/digitalsanctum/svcgen/emitclass"
	"github.com/digitalsanctum/svcgen/generr"
	"github.com/digitalsanctum/svcgen/namesan"
	"github.com/digitalsanctum/svcgen/typemap"
)

// generateInputTree emits one class per structure shape reachable from
// rootShapeName (spec §4.5, component C5), memoized in r.memoInput so a
// cyclic shape graph still terminates (spec §3.1, §3.2).
func (g *Generator) generateInputTree(r *run, rootShapeName string, op *apidef.Operation) error {
	return g.visitInputShape(r, rootShapeName, op, rootShapeName == op.InputShape())
}

func (g *Generator) visitInputShape(r *run, shapeName string, op *apidef.Operation, isRoot bool) error {
	if r.memoInput[shapeName] {
		return nil
	}
	shape, ok := g.def.Shape(shapeName)
	if !ok {
		return generr.NewSchemaError(generr.CodeShapeNotFound, shapeName, "referenced shape not found")
	}
	if shape.Kind() != apidef.ShapeStructure {
		return nil
	}
	r.memoInput[shapeName] = true

	class, err := g.buildInputClass(shape, op, isRoot)
	if err != nil {
		return err
	}
	ref := emitClassRef{namespace: class.Namespace, name: class.Name}
	r.inputClasses = append(r.inputClasses, ref)
	if err := g.writer.Write(class); err != nil {
		return generr.NewIOError(ref.fqcn(), err)
	}

	for _, m := range shape.MembersSlice() {
		nested, ok := g.nestedStructureShape(m.ShapeName())
		if !ok {
			continue
		}
		if err := g.visitInputShape(r, nested, op, false); err != nil {
			return err
		}
	}
	return nil
}

// nestedStructureShape resolves shapeName and, if it is itself a structure,
// a list-of-structures, or a map-of-structures, returns the structure shape
// name that needs its own class.
func (g *Generator) nestedStructureShape(shapeName string) (string, bool) {
	shape, ok := g.def.Shape(shapeName)
	if !ok {
		return "", false
	}
	switch shape.Kind() {
	case apidef.ShapeStructure:
		return shape.Name(), true
	case apidef.ShapeList:
		elem, ok := g.def.Shape(shape.ListMember())
		if ok && elem.Kind() == apidef.ShapeStructure {
			return elem.Name(), true
		}
	case apidef.ShapeMap:
		_, valShapeName := shape.MapValue()
		val, ok := g.def.Shape(valShapeName)
		if ok && val.Kind() == apidef.ShapeStructure {
			return val.Name(), true
		}
	}
	return "", false
}

func (g *Generator) buildInputClass(shape *apidef.Shape, op *apidef.Operation, isRoot bool) (*emitclass.Class, error) {
	namespace := inputNamespace(g.namespace)
	className := namesan.Sanitize(shape.Name())
	class := emitclass.New(namespace, className)

	var ctorLines, validateLines []string
	required := shape.RequiredNames()

	for _, m := range shape.MembersSlice() {
		memberShapeName := m.ShapeName()
		memberShape, ok := g.def.Shape(memberShapeName)
		if !ok {
			return nil, generr.NewSchemaError(generr.CodeShapeNotFound, memberShapeName, "member shape not found")
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
		class.AddMethod(emitclass.Method{
			Name:       "set" + m.Name(),
			Visibility: emitclass.Public,
			ReturnType: "self",
			Params:     []emitclass.Param{{Name: "value", Type: mapping.Type, Nullable: mapping.Nullable}},
			Body:       fmt.Sprintf("$this->%s = $value;\nreturn $this;", m.Name()),
		})

		init, err := g.walker.ConstructorInit(m.Name(), m)
		if err != nil {
			return nil, err
		}
		ctorLines = append(ctorLines, init)

		nestedValidate, err := g.walker.Validate(m.Name(), m)
		if err != nil {
			return nil, err
		}
		if nestedValidate != "" {
			validateLines = append(validateLines, nestedValidate)
		}
	}

	ctorBody := strings.Join(ctorLines, "\n")
	if ctorBody == "" {
		ctorBody = "// no members"
	}
	class.AddMethod(emitclass.Method{
		Name:       "__construct",
		Visibility: emitclass.Public,
		Params:     []emitclass.Param{{Name: "input", Type: "array", HasDefault: len(required) == 0, Default: "[]"}},
		Body:       ctorBody,
	})

	class.AddMethod(emitclass.Method{
		Name:       "create",
		Visibility: emitclass.Public,
		Static:     true,
		ReturnType: "self",
		Params:     []emitclass.Param{{Name: "input", Type: "array|self"}},
		Body: fmt.Sprintf(
			"if ($input instanceof self) {\n    return $input;\n}\nreturn new self($input);"),
	})

	class.AddMethod(emitclass.Method{
		Name: "validate",
		Body: buildValidateBody(shape.Name(), required, validateLines),
	})

	if isRoot {
		if err := g.addRequestMethods(class, shape, op); err != nil {
			return nil, err
		}
	}

	return class, nil
}

func (g *Generator) mapMember(m apidef.Member, memberShape *apidef.Shape) (typemap.Mapping, error) {
	if m.Streaming() {
		return typemap.ForStreaming(), nil
	}
	if memberShape.Kind() == apidef.ShapeStructure {
		return typemap.ForStructure(namesan.Sanitize(memberShape.Name())), nil
	}
	return typemap.Resolve(memberShape, namesan.Sanitize(memberShape.Name())), nil
}

func propertyDoc(def apidef.ServiceDefinition, shapeName string, m apidef.Member, mapping typemap.Mapping) string {
	docType := mapping.Type
	if mapping.Nullable {
		docType += "|null"
	}
	doc := fmt.Sprintf("@var %s", docType)
	if html, ok := def.ParameterDocumentation(shapeName, m.Name(), m.ShapeName()); ok {
		if res, err := docfmt.Format(html); err == nil && res.Summary != "" {
			doc = res.Summary + "\n" + doc
		}
	}
	return doc
}

func buildValidateBody(className string, required []string, nestedLines []string) string {
	var lines []string
	if len(required) == 0 && len(nestedLines) == 0 {
		return "// no validation required"
	}
	for _, name := range required {
		lines = append(lines, fmt.Sprintf(
			"if ($this->%s === null) {\n    throw new MissingParameter('%s', '%s');\n}",
			name, name, className))
	}
	lines = append(lines, nestedLines...)
	return strings.Join(lines, "\n")
}
