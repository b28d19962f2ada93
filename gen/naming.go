package gen

import (
	"strings"
	"unicode"
)

func inputNamespace(base string) string  { return base + "\\Input" }
func resultNamespace(base string) string { return base + "\\Result" }

// clientClassName derives the client class name from the base namespace's
// last segment, e.g. "Aws\S3" -> "S3Client".
func clientClassName(base string) string {
	segments := strings.Split(base, "\\")
	return segments[len(segments)-1] + "Client"
}

// lowerFirst lowercases the first rune, per the generated operation
// method's naming rule (spec §6.5).
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
