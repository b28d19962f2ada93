// Package generr defines the three error kinds the generator surfaces
// (spec §7): SchemaError, UnsupportedDocumentation, and IoError.
//
// Each kind is a sentinel wrapped with context via fmt.Errorf's %w verb, so
// callers match on kind with errors.Is and recover structured detail with
// errors.As where a typed payload (SchemaError,
// UnsupportedDocumentationError, IOError) is attached. A closed [Code] enum gives every failure a
// stable, non-prose identifier for programmatic dispatch without parsing
// messages.
//
// No error in this package is retried or swallowed internally; that
// decision belongs to the caller (spec §7: "No errors are swallowed. The
// generator never retries.").
package generr
