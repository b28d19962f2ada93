// Package ident provides rune-aware identifier tokenization and case
// conversion utilities shared by the generator's naming packages.
//
// # Internal Package
//
// This package is internal to the svcgen module and is not importable by
// external consumers per Go's internal/ package semantics. No other package
// in this module imports it: namesan, typemap and gen build their
// identifiers without it.
//
// # CamelCase Conversion
//
// [Capitalize]/[ToUpperCamel] and [ToLowerCamel] provide rune-aware
// CamelCase conversion with acronym preservation:
//
//	http_server -> HttpServer  (Capitalize/ToUpperCamel)
//	http_server -> httpServer  (ToLowerCamel)
//	HTTPServer  -> HTTPServer  (Capitalize preserves acronyms)
//
// [ToLowerSnake] is kept for wire-name normalization where a shape or
// member name carrying separators (e.g. "WORKS_AT"-style locationNames)
// needs a predictable lower_snake form for diagnostics.
//
// # Thread Safety
//
// All functions in this package are stateless and safe for concurrent use.
//
// # Stdlib-Only Dependencies
//
// This package depends only on stdlib and can be imported by any layer.
package ident
