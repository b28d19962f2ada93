package apidef

import (
	"iter"
	"slices"
)

// ScalarKind identifies a wire-level scalar primitive (spec §3.1).
type ScalarKind uint8

const (
	KindString ScalarKind = iota
	KindBoolean
	KindInteger
	KindLong
	KindBlob
	KindTimestamp
)

// String returns the wire name of the scalar kind, exactly as it would
// appear in a service definition's `type` field.
func (k ScalarKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindLong:
		return "long"
	case KindBlob:
		return "blob"
	case KindTimestamp:
		return "timestamp"
	default:
		return "string"
	}
}

// ShapeKind discriminates the variant of a [Shape].
type ShapeKind uint8

const (
	ShapeScalar ShapeKind = iota
	ShapeList
	ShapeMap
	ShapeStructure
)

// Location identifies where a structure member is carried in an HTTP
// request or response (spec GLOSSARY: Location).
type Location uint8

const (
	// LocationUnspecified means the member declared no `location`; the
	// generator's default for that context applies (payload for input
	// members, spec §4.5).
	LocationUnspecified Location = iota
	LocationPayload
	LocationHeader
	LocationHeaders
	LocationQuerystring
	LocationURI
)

// String returns the wire name of the location, or "" for LocationUnspecified.
func (l Location) String() string {
	switch l {
	case LocationPayload:
		return "payload"
	case LocationHeader:
		return "header"
	case LocationHeaders:
		return "headers"
	case LocationQuerystring:
		return "querystring"
	case LocationURI:
		return "uri"
	default:
		return ""
	}
}

// Member is one entry in a structure shape's ordered member list.
type Member struct {
	name            string
	shapeName       string
	location        Location
	locationName    string
	streaming       bool
	xmlAttribute    bool
	xmlNamespaceURI string
	documentation   string
}

// NewMember builds a Member. locationName, when empty, means the wire name
// defaults to name (spec GLOSSARY: Location name).
func NewMember(name, shapeName string, opts ...MemberOption) Member {
	m := Member{name: name, shapeName: shapeName}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// MemberOption configures optional Member attributes.
type MemberOption func(*Member)

func WithLocation(loc Location) MemberOption {
	return func(m *Member) { m.location = loc }
}

func WithLocationName(name string) MemberOption {
	return func(m *Member) { m.locationName = name }
}

func WithStreaming() MemberOption {
	return func(m *Member) { m.streaming = true }
}

func WithXMLAttribute() MemberOption {
	return func(m *Member) { m.xmlAttribute = true }
}

func WithXMLNamespace(uri string) MemberOption {
	return func(m *Member) { m.xmlNamespaceURI = uri }
}

func WithMemberDocumentation(doc string) MemberOption {
	return func(m *Member) { m.documentation = doc }
}

func (m Member) Name() string       { return m.name }
func (m Member) ShapeName() string  { return m.shapeName }
func (m Member) Location() Location { return m.location }

// LocationName returns the wire name for this member: the explicit
// locationName if set, else the member name itself (GLOSSARY: Location name).
func (m Member) LocationName() string {
	if m.locationName != "" {
		return m.locationName
	}
	return m.name
}

func (m Member) Streaming() bool          { return m.streaming }
func (m Member) XMLAttribute() bool       { return m.xmlAttribute }
func (m Member) XMLNamespaceURI() string  { return m.xmlNamespaceURI }
func (m Member) Documentation() string    { return m.documentation }

// Shape is a named node in the service's type graph (spec §3.1).
//
// Exactly one of its variant-specific accessors is meaningful, selected by
// Kind(). Shape is immutable once constructed.
type Shape struct {
	name string
	kind ShapeKind

	scalar ScalarKind

	listMember string

	mapKeyShape        string
	mapKeyLocationName string
	mapValueShape      string
	mapValueLocName    string

	members    []Member
	memberByName map[string]int
	required   map[string]bool
	payload    string
}

func (s *Shape) Name() string    { return s.name }
func (s *Shape) Kind() ShapeKind { return s.kind }

// Scalar returns the scalar kind. Valid only when Kind() == ShapeScalar.
func (s *Shape) Scalar() ScalarKind { return s.scalar }

// ListMember returns the shape name of list elements. Valid only when
// Kind() == ShapeList.
func (s *Shape) ListMember() string { return s.listMember }

// MapKey returns the shape name and locationName of a map's key. Valid only
// when Kind() == ShapeMap.
func (s *Shape) MapKey() (shapeName, locationName string) {
	return s.mapKeyShape, s.mapKeyLocationName
}

// MapValue returns the shape name and locationName of a map's value. Valid
// only when Kind() == ShapeMap.
func (s *Shape) MapValue() (shapeName, locationName string) {
	return s.mapValueShape, s.mapValueLocName
}

// Member returns the named member and true if it exists. Valid only when
// Kind() == ShapeStructure.
func (s *Shape) Member(name string) (Member, bool) {
	idx, ok := s.memberByName[name]
	if !ok {
		return Member{}, false
	}
	return s.members[idx], true
}

// Members iterates structure members in declaration order.
func (s *Shape) Members() iter.Seq[Member] {
	return func(yield func(Member) bool) {
		for _, m := range s.members {
			if !yield(m) {
				return
			}
		}
	}
}

// MembersSlice returns a defensive copy of the member list.
func (s *Shape) MembersSlice() []Member {
	return slices.Clone(s.members)
}

// IsRequired reports whether memberName is in the structure's required set.
func (s *Shape) IsRequired(memberName string) bool {
	return s.required[memberName]
}

// RequiredNames returns the required member names, sorted for determinism.
func (s *Shape) RequiredNames() []string {
	names := make([]string, 0, len(s.required))
	for name := range s.required {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Payload returns the name of the distinguished payload member, and true if
// one is declared. At most one member may have location == payload (spec
// §3.1 invariant).
func (s *Shape) Payload() (string, bool) {
	return s.payload, s.payload != ""
}

// NewScalarShape builds a scalar shape.
func NewScalarShape(name string, kind ScalarKind) *Shape {
	return &Shape{name: name, kind: ShapeScalar, scalar: kind}
}

// NewListShape builds a list shape whose elements are instances of
// memberShape.
func NewListShape(name, memberShape string) *Shape {
	return &Shape{name: name, kind: ShapeList, listMember: memberShape}
}

// NewMapShape builds a map shape. keyLocationName and valueLocationName may
// be empty; ShapeWalker's map XML parsing requires keyLocationName to be
// set (spec §4.4), which is validated at walk time, not construction time.
func NewMapShape(name, keyShape, keyLocationName, valueShape, valueLocationName string) *Shape {
	return &Shape{
		name:                name,
		kind:                ShapeMap,
		mapKeyShape:         keyShape,
		mapKeyLocationName:  keyLocationName,
		mapValueShape:       valueShape,
		mapValueLocName:     valueLocationName,
	}
}

// NewStructureShape builds a structure shape. required lists member names
// that must be non-null; payload names the at-most-one payload member
// ("" if none).
func NewStructureShape(name string, members []Member, required []string, payload string) *Shape {
	memberByName := make(map[string]int, len(members))
	for i, m := range members {
		memberByName[m.name] = i
	}
	req := make(map[string]bool, len(required))
	for _, name := range required {
		req[name] = true
	}
	return &Shape{
		name:         name,
		kind:         ShapeStructure,
		members:      slices.Clone(members),
		memberByName: memberByName,
		required:     req,
		payload:      payload,
	}
}
