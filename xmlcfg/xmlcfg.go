package xmlcfg

import (
	"github.com/digitalsanctum/svcgen/apidef"
	"github.com/digitalsanctum/svcgen/generr"
)

// MemberRef is a reference to a shape from within a structure, list, or map
// descriptor.
type MemberRef struct {
	// Name is the member name; empty for list elements and map keys/values,
	// which carry no member name of their own.
	Name            string
	Shape           string
	LocationName    string
	XMLAttribute    bool
	XMLNamespaceURI string
}

// Descriptor is one pruned shape entry. Exactly the fields relevant to
// Type are populated; scalar shapes carry only Type (spec §4.7.1).
type Descriptor struct {
	Type       string
	Members    []MemberRef // structure
	ListMember *MemberRef  // list
	MapKey     *MemberRef  // map
	MapValue   *MemberRef  // map
}

// RootEntry is the synthetic "_root" config entry (spec §4.7.1).
type RootEntry struct {
	Type    string
	XMLName string
	URI     string
}

// RootKey is the map key under which Config stores RootEntry, mirroring
// the "_root" entry name spec §4.7.1 specifies.
const RootKey = "_root"

// Config is the pruned shape-name-to-descriptor map plus its root entry.
type Config struct {
	Root   RootEntry
	Shapes map[string]Descriptor
}

// Extract walks def starting at payloadShapeName and returns the pruned
// Config the XmlBuilder runtime helper consumes. payloadLocationName and
// namespaceURI seed the synthetic root entry.
func Extract(def apidef.ServiceDefinition, payloadShapeName, payloadLocationName, namespaceURI string) (*Config, error) {
	cfg := &Config{
		Root: RootEntry{
			Type:    payloadShapeName,
			XMLName: payloadLocationName,
			URI:     namespaceURI,
		},
		Shapes: make(map[string]Descriptor),
	}

	if err := walk(def, payloadShapeName, cfg, make(map[string]bool)); err != nil {
		return nil, err
	}
	return cfg, nil
}

func walk(def apidef.ServiceDefinition, shapeName string, cfg *Config, visited map[string]bool) error {
	if visited[shapeName] {
		return nil
	}
	visited[shapeName] = true

	shape, ok := def.Shape(shapeName)
	if !ok {
		return generr.NewSchemaError(generr.CodeShapeNotFound, shapeName, "referenced shape not found")
	}

	switch shape.Kind() {
	case apidef.ShapeScalar:
		cfg.Shapes[shapeName] = Descriptor{Type: shape.Scalar().String()}
		return nil

	case apidef.ShapeList:
		elemShape := shape.ListMember()
		cfg.Shapes[shapeName] = Descriptor{
			Type:       "list",
			ListMember: &MemberRef{Shape: elemShape},
		}
		return walk(def, elemShape, cfg, visited)

	case apidef.ShapeMap:
		keyShape, keyLoc := shape.MapKey()
		valShape, valLoc := shape.MapValue()

		keyDef, ok := def.Shape(keyShape)
		if !ok {
			return generr.NewSchemaError(generr.CodeShapeNotFound, keyShape, "referenced shape not found")
		}
		if keyDef.Kind() != apidef.ShapeScalar {
			return generr.NewSchemaError(generr.CodeComplexKeyMap, shapeName, "map key must resolve to a scalar shape")
		}

		cfg.Shapes[shapeName] = Descriptor{
			Type:     "map",
			MapKey:   &MemberRef{Shape: keyShape, LocationName: keyLoc},
			MapValue: &MemberRef{Shape: valShape, LocationName: valLoc},
		}
		if err := walk(def, keyShape, cfg, visited); err != nil {
			return err
		}
		return walk(def, valShape, cfg, visited)

	case apidef.ShapeStructure:
		members := make([]MemberRef, 0, len(shape.MembersSlice()))
		for _, m := range shape.MembersSlice() {
			members = append(members, MemberRef{
				Name:            m.Name(),
				Shape:           m.ShapeName(),
				LocationName:    m.LocationName(),
				XMLAttribute:    m.XMLAttribute(),
				XMLNamespaceURI: m.XMLNamespaceURI(),
			})
		}
		cfg.Shapes[shapeName] = Descriptor{Type: "structure", Members: members}
		for _, m := range shape.MembersSlice() {
			if err := walk(def, m.ShapeName(), cfg, visited); err != nil {
				return err
			}
		}
		return nil

	default:
		return generr.NewSchemaError(generr.CodeUnknownShapeType, shapeName, "unknown shape kind")
	}
}
