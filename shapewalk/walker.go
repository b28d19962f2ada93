package shapewalk

import (
	"fmt"

	"github.com/digitalsanctum/svcgen/apidef"
	"github.com/digitalsanctum/svcgen/generr"
	"github.com/digitalsanctum/svcgen/namesan"
)

// Walker resolves shape references against a fixed [apidef.ServiceDefinition]
// for the lifetime of one generation run. A Walker holds no mutable state
// and is safe for concurrent use across operations that share one
// definition.
type Walker struct {
	def apidef.ServiceDefinition
}

// New builds a Walker over def.
func New(def apidef.ServiceDefinition) *Walker {
	return &Walker{def: def}
}

func (w *Walker) resolve(shapeName string) (*apidef.Shape, error) {
	shape, ok := w.def.Shape(shapeName)
	if !ok {
		return nil, generr.NewSchemaError(generr.CodeShapeNotFound, shapeName, "referenced shape not found")
	}
	return shape, nil
}

// ConstructorInit produces the assignment statement that initializes
// property memberName from a raw input mapping entry, per the per-kind
// rules in spec §4.4.
func (w *Walker) ConstructorInit(memberName string, member apidef.Member) (string, error) {
	if member.Streaming() {
		return fmt.Sprintf(`$this->%s = $input['%s'] ?? "";`, memberName, memberName), nil
	}

	shape, err := w.resolve(member.ShapeName())
	if err != nil {
		return "", err
	}

	switch shape.Kind() {
	case apidef.ShapeStructure:
		className := namesan.Sanitize(shape.Name())
		return fmt.Sprintf(`$this->%s = isset($input['%s']) ? %s::create($input['%s']) : null;`,
			memberName, memberName, className, memberName), nil

	case apidef.ShapeList:
		elem, err := w.resolve(shape.ListMember())
		if err != nil {
			return "", err
		}
		if elem.Kind() == apidef.ShapeStructure {
			className := namesan.Sanitize(elem.Name())
			return fmt.Sprintf(`$this->%s = array_map(function ($v) { return %s::create($v); }, $input['%s'] ?? []);`,
				memberName, className, memberName), nil
		}
		return fmt.Sprintf(`$this->%s = $input['%s'] ?? [];`, memberName, memberName), nil

	case apidef.ShapeMap:
		valShapeName, _ := shape.MapValue()
		valShape, err := w.resolve(valShapeName)
		if err != nil {
			return "", err
		}
		if valShape.Kind() == apidef.ShapeStructure {
			className := namesan.Sanitize(valShape.Name())
			return fmt.Sprintf(`$this->%s = array_map(function ($v) { return %s::create($v); }, $input['%s'] ?? []);`,
				memberName, className, memberName), nil
		}
		return fmt.Sprintf(`$this->%s = $input['%s'] ?? [];`, memberName, memberName), nil

	case apidef.ShapeScalar:
		if shape.Scalar() == apidef.KindTimestamp {
			return fmt.Sprintf(
				`$this->%s = isset($input['%s']) ? ($input['%s'] instanceof \DateTimeInterface ? $input['%s'] : new \DateTimeImmutable($input['%s'])) : null;`,
				memberName, memberName, memberName, memberName, memberName), nil
		}
		return fmt.Sprintf(`$this->%s = $input['%s'] ?? null;`, memberName, memberName), nil

	default:
		return "", generr.NewSchemaError(generr.CodeUnknownShapeType, shape.Name(), "unknown shape kind")
	}
}

// Validate produces the nested-validation statement for memberName, or ""
// when the member's shape does not recurse. Only structures and
// lists-of-structures recurse (spec §4.4); the required-member preamble
// itself is InputGenerator's responsibility, not ShapeWalker's.
func (w *Walker) Validate(memberName string, member apidef.Member) (string, error) {
	shape, err := w.resolve(member.ShapeName())
	if err != nil {
		return "", err
	}

	switch shape.Kind() {
	case apidef.ShapeStructure:
		return fmt.Sprintf("if ($this->%s !== null) {\n    $this->%s->validate();\n}", memberName, memberName), nil

	case apidef.ShapeList:
		elem, err := w.resolve(shape.ListMember())
		if err != nil {
			return "", err
		}
		if elem.Kind() == apidef.ShapeStructure {
			return fmt.Sprintf("foreach ($this->%s as $item) {\n    $item->validate();\n}", memberName), nil
		}
		return "", nil

	default:
		return "", nil
	}
}
