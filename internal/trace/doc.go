// Package trace provides optional debug logging helpers for the generator.
//
// This package is an internal utility for developer observability. It is
// distinct from [generr] (user-facing generation failures) and plain error
// returns (system failures such as FileWriter I/O).
//
// # Internal Package
//
// This package is internal to the svcgen module and is not importable by
// external consumers per Go's internal/ package semantics. Within the
// module, only gen imports it.
//
// # Design Principles
//
//   - Near-zero cost when disabled: when the logger is nil, overhead is a
//     single nil check (~2ns). When the logger is non-nil but the level is
//     disabled, overhead includes the nil check plus a level test. The Lazy
//     variants guarantee no allocation from attribute construction when
//     disabled.
//   - Stdlib only: uses [log/slog] (Go 1.21+), no external logging
//     dependency.
//   - Logger injection: loggers are passed via functional options at API
//     boundaries (see gen.WithLogger), never read from globals or the
//     environment.
//
// # Usage Patterns
//
//   - [Begin]/[Op.End]: operation boundaries (start/end of a
//     GenerateOperation call). Wraps
//     top-level functions with automatic duration measurement.
//   - [Debug], [Info], [Warn], [Error]: simple, pre-computed attributes.
//   - [DebugLazy], [InfoLazy], [WarnLazy], [ErrorLazy]: computed attributes;
//     the function argument is not called when logging is disabled.
//   - [Enabled]: for complex control flow or multiple log calls at
//     different levels.
//
// # Op Runner
//
//	func (g *OperationGenerator) Generate(ctx context.Context, opName string) error {
//	    op := trace.Begin(ctx, g.logger, "svcgen.gen.operation", slog.String("operation", opName))
//	    defer op.End(nil)
//
//	    if err := g.generate(ctx, opName); err != nil {
//	        op.End(err)
//	        return err
//	    }
//	    op.End(nil)
//	    return nil
//	}
//
// The Op runner automatically logs "op", "request_id" (via [WithRequestID],
// stamped with the run's UUID), "elapsed_ms", "duration", "ctx_err", and
// "error".
//
// # Operation Names
//
// Operation names follow the format svcgen.<package>.<operation>:
//   - svcgen.gen.operation
//   - svcgen.shapewalk.validate
//   - svcgen.classfile.merge
//
// Operation names are implementation details and may change without notice.
package trace
