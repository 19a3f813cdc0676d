// Package diagnostic collects the non-fatal problems met while discovering
// columns or resolving preference scope.
//
// Nothing in the engine aborts the caller on a malformed sample or an
// unreachable team directory; instead the problem is recorded here and the
// engine degrades (fallback columns, personal scope). Callers may show the
// warnings, log them, or ignore them.
package diagnostic
