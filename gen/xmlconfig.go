package gen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/digitalsanctum/svcgen/xmlcfg"
)

// renderXMLConfig renders cfg as a PHP array literal, the form the
// generated method body passes to the XmlBuilder runtime helper (spec
// §4.7 step 4, §4.7.1).
func renderXMLConfig(cfg *xmlcfg.Config) string {
	var b strings.Builder
	b.WriteString("[\n")
	b.WriteString(fmt.Sprintf("    '_root' => ['type' => %s, 'xmlName' => %s, 'uri' => %s],\n",
		phpStringLiteral(cfg.Root.Type), phpStringLiteral(cfg.Root.XMLName), phpStringLiteral(cfg.Root.URI)))

	names := make([]string, 0, len(cfg.Shapes))
	for name := range cfg.Shapes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		b.WriteString(fmt.Sprintf("    %s => %s,\n", phpStringLiteral(name), renderDescriptor(cfg.Shapes[name])))
	}
	b.WriteString("]")
	return b.String()
}

func renderDescriptor(d xmlcfg.Descriptor) string {
	switch d.Type {
	case "structure":
		var members []string
		for _, m := range d.Members {
			members = append(members, renderMemberRef(m, true))
		}
		return fmt.Sprintf("['type' => 'structure', 'members' => [%s]]", strings.Join(members, ", "))
	case "list":
		return fmt.Sprintf("['type' => 'list', 'member' => %s]", renderMemberRef(*d.ListMember, false))
	case "map":
		return fmt.Sprintf("['type' => 'map', 'key' => %s, 'value' => %s]",
			renderMemberRef(*d.MapKey, false), renderMemberRef(*d.MapValue, false))
	default:
		return fmt.Sprintf("['type' => %s]", phpStringLiteral(d.Type))
	}
}

func renderMemberRef(m xmlcfg.MemberRef, keyed bool) string {
	var fields []string
	fields = append(fields, fmt.Sprintf("'shape' => %s", phpStringLiteral(m.Shape)))
	if m.LocationName != "" {
		fields = append(fields, fmt.Sprintf("'locationName' => %s", phpStringLiteral(m.LocationName)))
	}
	if m.XMLAttribute {
		fields = append(fields, "'xmlAttribute' => true")
	}
	if m.XMLNamespaceURI != "" {
		fields = append(fields, fmt.Sprintf("'xmlNamespaceUri' => %s", phpStringLiteral(m.XMLNamespaceURI)))
	}
	entry := fmt.Sprintf("[%s]", strings.Join(fields, ", "))
	if keyed && m.Name != "" {
		return fmt.Sprintf("%s => %s", phpStringLiteral(m.Name), entry)
	}
	return entry
}
