// Package namesan implements the generator's reserved-word avoidance for
// emitted class names (spec §4.2, component C2).
//
// Sanitize is total (defined for every input string) and idempotent
// (Sanitize(Sanitize(s)) == Sanitize(s)): once prefixed, a name is never a
// member of the reserved set, so a second pass is a no-op.
package namesan
