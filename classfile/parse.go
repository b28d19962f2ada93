package classfile

import (
	"regexp"
	"strings"

	"github.com/digitalsanctum/svcgen/emitclass"
)

var (
	namespaceRe = regexp.MustCompile(`namespace\s+([^;]+);`)
	importRe    = regexp.MustCompile(`(?m)^use\s+([^;]+);`)
	classHeadRe = regexp.MustCompile(`class\s+(\w+)(?:\s+extends\s+([\w\\]+))?(?:\s+implements\s+([^{]+))?\s*\{`)
	traitUseRe  = regexp.MustCompile(`(?m)^\s{4}use\s+([\w\\]+);`)
	memberHeadRe = regexp.MustCompile(
		`(?s)(/\*\*(.*?)\*/\s*)?\n?\s{4}(public|protected|private)(\s+static)?\s+function\s+(\w+)\s*\(([^)]*)\)\s*(:\s*(\??[\w\\]+))?\s*\{`)
	propertyRe = regexp.MustCompile(
		`(?s)(/\*\*(.*?)\*/\s*)?\n?\s{4}(public|protected|private)\s+\$(\w+)(\s*=\s*([^;]+))?;`)
)

// Parse recovers a *emitclass.Class from source previously produced by
// [emitclass.Class.Render] (or hand-written code following the same
// layout). Unrecognized top-level content is not an error: properties and
// methods this parser cannot identify are simply absent from the result,
// which is safe because classfile only ever removes methods the generator
// names explicitly.
func Parse(source string) *emitclass.Class {
	namespace := firstSubmatch(namespaceRe, source)

	headMatch := classHeadRe.FindStringSubmatch(source)
	name, base, ifaceList := "", "", ""
	if headMatch != nil {
		name = headMatch[1]
		base = headMatch[2]
		ifaceList = headMatch[3]
	}

	c := emitclass.New(namespace, name)
	c.BaseClass = base
	for _, iface := range splitList(ifaceList) {
		c.AddInterface(iface)
	}

	for _, m := range importRe.FindAllStringSubmatch(source, -1) {
		c.AddImport(strings.TrimSpace(m[1]))
	}

	bodyStart := 0
	if headMatch != nil {
		bodyStart = strings.Index(source, headMatch[0]) + len(headMatch[0])
	}
	body := source
	if bodyStart > 0 && bodyStart <= len(source) {
		body = source[bodyStart:]
	}

	for _, m := range traitUseRe.FindAllStringSubmatch(body, -1) {
		c.AddTrait(m[1])
	}

	parseMethods(body, c)
	parseProperties(body, c)

	return c
}

func parseMethods(body string, c *emitclass.Class) {
	locs := memberHeadRe.FindAllStringSubmatchIndex(body, -1)
	for _, loc := range locs {
		groups := submatches(body, loc)
		doc := strings.TrimSpace(groups[2])
		visibility := parseVisibility(groups[3])
		static := strings.TrimSpace(groups[4]) == "static"
		name := groups[5]
		params := parseParams(groups[6])
		returnType, nullable := parseReturnType(groups[8])

		openBrace := loc[1] - 1
		closeBrace := matchBrace(body, openBrace)
		if closeBrace < 0 {
			continue
		}
		rawBody := body[openBrace+1 : closeBrace]

		c.AddMethod(emitclass.Method{
			Name:       name,
			Visibility: visibility,
			Static:     static,
			ReturnType: returnType,
			Nullable:   nullable,
			Params:     params,
			Doc:        formatDocBody(doc),
			Body:       dedentBody(rawBody),
		})
	}
}

func parseProperties(body string, c *emitclass.Class) {
	// Properties share a member-head shape with methods except there is no
	// "function" keyword or parameter list; skip any span already claimed
	// by a method match so we don't double-count a method's doc comment as
	// a property.
	methodSpans := memberHeadRe.FindAllStringIndex(body, -1)

	for _, loc := range propertyRe.FindAllStringSubmatchIndex(body, -1) {
		if overlapsAny(loc, methodSpans) {
			continue
		}
		groups := submatches(body, loc)
		doc := strings.TrimSpace(groups[2])
		visibility := parseVisibility(groups[3])
		name := groups[4]
		hasDefault := groups[6] != ""
		defaultVal := strings.TrimSpace(groups[6])

		c.AddProperty(emitclass.Property{
			Name:       name,
			Visibility: visibility,
			HasDefault: hasDefault,
			Default:    defaultVal,
			Doc:        formatDocBody(doc),
		})
	}
}

func parseVisibility(raw string) emitclass.Visibility {
	switch strings.TrimSpace(raw) {
	case "protected":
		return emitclass.Protected
	case "private":
		return emitclass.Private
	default:
		return emitclass.Public
	}
}

func parseReturnType(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	nullable := strings.HasPrefix(raw, "?")
	return strings.TrimPrefix(raw, "?"), nullable
}

func parseParams(raw string) []emitclass.Param {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var params []emitclass.Param
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var defaultVal string
		hasDefault := false
		if idx := strings.Index(part, "="); idx >= 0 {
			defaultVal = strings.TrimSpace(part[idx+1:])
			part = strings.TrimSpace(part[:idx])
			hasDefault = true
		}
		typ := ""
		nullable := false
		fields := strings.Fields(part)
		varName := fields[len(fields)-1]
		if len(fields) > 1 {
			typ = fields[0]
			nullable = strings.HasPrefix(typ, "?")
			typ = strings.TrimPrefix(typ, "?")
		}
		params = append(params, emitclass.Param{
			Name:       strings.TrimPrefix(varName, "$"),
			Type:       typ,
			Nullable:   nullable,
			HasDefault: hasDefault,
			Default:    defaultVal,
		})
	}
	return params
}

func formatDocBody(docComment string) string {
	if docComment == "" {
		return ""
	}
	var lines []string
	for _, line := range strings.Split(docComment, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func dedentBody(raw string) string {
	lines := strings.Split(raw, "\n")
	var out []string
	for i, line := range lines {
		if i == 0 && strings.TrimSpace(line) == "" {
			continue
		}
		if i == len(lines)-1 && strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, strings.TrimPrefix(line, "        "))
	}
	return strings.Join(out, "\n")
}

func splitList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func firstSubmatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// matchBrace returns the index of the brace matching the '{' at openIdx, or
// -1 if unbalanced.
func matchBrace(s string, openIdx int) int {
	depth := 0
	for i := openIdx; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// submatches returns each capture group's text for a FindSubmatchIndex
// result, using "" for groups that did not participate.
func submatches(s string, loc []int) []string {
	out := make([]string, len(loc)/2)
	for i := range out {
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 || end < 0 {
			out[i] = ""
			continue
		}
		out[i] = s[start:end]
	}
	return out
}

func overlapsAny(loc []int, spans [][]int) bool {
	for _, span := range spans {
		if loc[0] < span[1] && span[0] < loc[1] {
			return true
		}
	}
	return false
}
