package shapewalk

import (
	"fmt"
	"strings"

	"github.com/digitalsanctum/svcgen/apidef"
	"github.com/digitalsanctum/svcgen/generr"
	"github.com/digitalsanctum/svcgen/namesan"
	"github.com/digitalsanctum/svcgen/typemap"
)

// xmlAccess computes the child-access expression for a member, per the
// priority rule in spec §4.4: attribute indexing, then explicit
// locationName, then the member name itself, then (when memberName is
// empty — the root case) currentExpr unchanged.
func xmlAccess(currentExpr, memberName string, member apidef.Member) string {
	if memberName == "" {
		return currentExpr
	}
	if member.XMLAttribute() {
		return fmt.Sprintf("%s->attributes()['%s']", currentExpr, member.LocationName())
	}
	if locName := member.LocationName(); locName != "" && locName != memberName {
		return fmt.Sprintf("%s->{'%s'}", currentExpr, locName)
	}
	return fmt.Sprintf("%s->%s", currentExpr, memberName)
}

// ParseXml produces the expression that extracts memberName's value from
// currentExpr, an in-scope XML element expression, per spec §4.4.
func (w *Walker) ParseXml(currentExpr, memberName string, member apidef.Member) (string, error) {
	access := xmlAccess(currentExpr, memberName, member)
	shape, err := w.resolve(member.ShapeName())
	if err != nil {
		return "", err
	}
	return w.parseXMLShape(access, shape)
}

func (w *Walker) parseXMLShape(expr string, shape *apidef.Shape) (string, error) {
	switch shape.Kind() {
	case apidef.ShapeList:
		elem, err := w.resolve(shape.ListMember())
		if err != nil {
			return "", err
		}
		inner, err := w.parseXMLShape("$child", elem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("array_map(function ($child) { return %s; }, iterator_to_array(%s->children()))", inner, expr), nil

	case apidef.ShapeMap:
		_, keyLocationName := shape.MapKey()
		if keyLocationName == "" {
			return "", generr.NewSchemaError(generr.CodeMapMissingLocationName, shape.Name(), "map key member has no locationName")
		}
		valShapeName, _ := shape.MapValue()
		valShape, err := w.resolve(valShapeName)
		if err != nil {
			return "", err
		}
		inner, err := w.parseXMLShape("$child", valShape)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("xmlMapFromChildren(%s->children(), '%s', function ($child) { return %s; })",
			expr, keyLocationName, inner), nil

	case apidef.ShapeStructure:
		className := namesan.Sanitize(shape.Name())
		var parts []string
		for _, m := range shape.MembersSlice() {
			if m.Location() == apidef.LocationHeader || m.Location() == apidef.LocationHeaders {
				continue
			}
			sub, err := w.ParseXml(expr, m.Name(), m)
			if err != nil {
				return "", err
			}
			parts = append(parts, fmt.Sprintf("'%s' => %s", m.Name(), sub))
		}
		return fmt.Sprintf("%s::create([%s])", className, strings.Join(parts, ", ")), nil

	case apidef.ShapeScalar:
		return fmt.Sprintf("xmlValueOrNull(%s, '%s')", expr, typemap.ForScalar(shape.Scalar()).Type), nil

	default:
		return "", generr.NewSchemaError(generr.CodeUnknownShapeType, shape.Name(), "unknown shape kind")
	}
}

// ParseXmlRoot produces one assignment statement per top-level member of
// shape whose location is not header or headers (spec §4.4). shape must be
// a structure shape.
func (w *Walker) ParseXmlRoot(shape *apidef.Shape) (string, error) {
	if shape.Kind() != apidef.ShapeStructure {
		return "", generr.NewSchemaError(generr.CodeUnknownShapeType, shape.Name(), "parseXmlRoot requires a structure shape")
	}

	var lines []string
	for _, m := range shape.MembersSlice() {
		if m.Location() == apidef.LocationHeader || m.Location() == apidef.LocationHeaders {
			continue
		}
		expr, err := w.ParseXml("$data", m.Name(), m)
		if err != nil {
			return "", err
		}
		lines = append(lines, fmt.Sprintf("$this->%s = %s;", m.Name(), expr))
	}
	return strings.Join(lines, "\n"), nil
}
