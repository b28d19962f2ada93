// Package docfmt converts the HTML documentation fragments carried by a
// service definition into plain-text doc comments (spec §4.3, component C3).
//
// [Format] runs the six-step contract in order: collapse adjacent tags,
// resolve paragraph breaks, substitute inline markup, extract link
// references, reject residual markup, then hard-wrap and append `@see`
// lines. The first non-empty line of the result is exposed separately as
// [Result.Summary] for callers that need a single-line description (e.g. a
// class-level doc comment's first line) distinct from the full wrapped
// body.
package docfmt
