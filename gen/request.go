package gen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/digitalsanctum/svcgen/apidef"
	"github.com/digitalsanctum/svcgen/emitclass"
)

// addRequestMethods adds requestHeaders, requestQuery, requestBody, and
// requestUri to the root input class (spec §4.5).
func (g *Generator) addRequestMethods(class *emitclass.Class, shape *apidef.Shape, op *apidef.Operation) error {
	class.AddMethod(emitclass.Method{
		Name:       "requestHeaders",
		Visibility: emitclass.Public,
		ReturnType: "array",
		Body:       buildLocationMapBody(shape, apidef.LocationHeader),
	})
	class.AddMethod(emitclass.Method{
		Name:       "requestQuery",
		Visibility: emitclass.Public,
		ReturnType: "array",
		Body:       buildLocationMapBody(shape, apidef.LocationQuerystring),
	})
	class.AddMethod(emitclass.Method{
		Name:       "requestBody",
		Visibility: emitclass.Public,
		ReturnType: "array",
		Body:       buildRequestBodyMethod(shape, op, g.def.APIVersion()),
	})
	class.AddMethod(emitclass.Method{
		Name:       "requestUri",
		Visibility: emitclass.Public,
		ReturnType: "string",
		Body:       buildRequestURIBody(shape, op.HTTP().RequestURI),
	})
	return nil
}

// buildLocationMapBody renders a method body returning the subset of
// members whose location equals want, keyed by locationName ?? memberName.
func buildLocationMapBody(shape *apidef.Shape, want apidef.Location) string {
	var lines []string
	for _, m := range shape.MembersSlice() {
		if m.Location() != want {
			continue
		}
		lines = append(lines, fmt.Sprintf("    '%s' => $this->%s,", m.LocationName(), m.Name()))
	}
	if len(lines) == 0 {
		return "return [];"
	}
	return "return [\n" + strings.Join(lines, "\n") + "\n];"
}

// buildRequestBodyMethod renders requestBody(), seeded with {Action,
// Version} for the default form-urlencoded protocol (spec §4.5), plus any
// member whose location is payload or unspecified (which defaults to
// payload).
func buildRequestBodyMethod(shape *apidef.Shape, op *apidef.Operation, apiVersion string) string {
	lines := []string{
		fmt.Sprintf("    'Action' => '%s',", op.Name()),
		fmt.Sprintf("    'Version' => '%s',", apiVersion),
	}
	for _, m := range shape.MembersSlice() {
		if m.Location() != apidef.LocationUnspecified && m.Location() != apidef.LocationPayload {
			continue
		}
		lines = append(lines, fmt.Sprintf("    '%s' => $this->%s,", m.LocationName(), m.Name()))
	}
	return "return [\n" + strings.Join(lines, "\n") + "\n];"
}

var uriTokenRe = regexp.MustCompile(`\{([A-Za-z0-9_]+)\+?\}`)

// buildRequestURIBody substitutes {name} and {name+} tokens in template
// with values from members whose location is uri, keyed by locationName
// (spec §4.5). A token with no matching member substitutes the empty
// string.
func buildRequestURIBody(shape *apidef.Shape, template string) string {
	byLocationName := make(map[string]string, len(shape.MembersSlice()))
	for _, m := range shape.MembersSlice() {
		if m.Location() != apidef.LocationURI {
			continue
		}
		byLocationName[m.LocationName()] = m.Name()
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("$uri = %s;", phpStringLiteral(template)))
	for _, match := range uriTokenRe.FindAllStringSubmatch(template, -1) {
		token, key := match[0], match[1]
		memberName, ok := byLocationName[key]
		replacement := `""`
		if ok {
			replacement = fmt.Sprintf("rawurlencode((string) ($this->%s ?? ''))", memberName)
		}
		lines = append(lines, fmt.Sprintf("$uri = str_replace(%s, %s, $uri);", phpStringLiteral(token), replacement))
	}
	lines = append(lines, "return $uri;")
	return strings.Join(lines, "\n")
}

func phpStringLiteral(s string) string {
	escaped := strings.ReplaceAll(s, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `'`, `\'`)
	return "'" + escaped + "'"
}
