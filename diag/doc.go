// Package diag is the single error-reporting side channel of polyhedra.
//
// What:
//
//   - Level classifies a violation: input error, geometric degeneracy,
//     or topological integrity violation.
//   - Reporter receives (level, function, message) events.
//   - NewSlogReporter forwards events to a *slog.Logger.
//   - Recorder keeps events in memory (tests, batch tools).
//   - Strict wraps a Reporter and panics on integrity violations; this is
//     the "detection-enabled" mode used while developing new operators.
//
// Why:
//
//   - Generation never aborts the process in production: callers receive an
//     error value AND the violation is surfaced through one injected sink,
//     instead of a global engine log.
//
// Errors:
//
//   - None. Reporters must not fail; a broken sink must not break generation.
package diag
