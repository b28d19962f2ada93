package namesan

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// reservedExtra is the fixed set carried over for call-site compatibility
// with the source ecosystem (spec §4.2), kept distinct from the target
// language's own keyword list below.
var reservedExtra = map[string]bool{
	"object": true,
	"class":  true,
	"trait":  true,
}

// reservedKeywords is the target language's reserved-word list. Matching is
// case-insensitive, since PHP keywords are case-insensitive.
var reservedKeywords = map[string]bool{
	"abstract": true, "and": true, "array": true, "as": true, "break": true,
	"callable": true, "case": true, "catch": true, "clone": true,
	"const": true, "continue": true, "declare": true, "default": true,
	"do": true, "echo": true, "else": true, "elseif": true, "empty": true,
	"enddeclare": true, "endfor": true, "endforeach": true, "endif": true,
	"endswitch": true, "endwhile": true, "enum": true, "eval": true,
	"exit": true, "extends": true, "final": true, "finally": true,
	"fn": true, "for": true, "foreach": true, "function": true,
	"global": true, "goto": true, "if": true, "implements": true,
	"include": true, "include_once": true, "instanceof": true,
	"insteadof": true, "interface": true, "isset": true, "list": true,
	"match": true, "namespace": true, "new": true, "or": true,
	"print": true, "private": true, "protected": true, "public": true,
	"readonly": true, "require": true, "require_once": true, "return": true,
	"static": true, "switch": true, "throw": true, "try": true,
	"unset": true, "use": true, "var": true, "while": true, "xor": true,
	"yield": true,
}

// reservedPrefix is prepended on collision. "AwsAws..." cannot occur since
// the prefixed form is never itself reserved.
const reservedPrefix = "Aws"

// isReserved reports whether name collides with the reserved set,
// case-insensitively.
func isReserved(name string) bool {
	lower := strings.ToLower(name)
	return reservedExtra[lower] || reservedKeywords[lower]
}

// Sanitize returns name unchanged unless it collides with a reserved
// identifier, in which case it returns name prefixed with "Aws". The input
// is first normalized to NFC so visually identical names (distinct only in
// combining-mark representation) collide the same way.
func Sanitize(name string) string {
	normalized := norm.NFC.String(name)
	if isReserved(normalized) {
		return reservedPrefix + normalized
	}
	return normalized
}
