// Package merge combines a set of signature-file documents into one.
//
// Two identifier namespaces must survive the combination collision-free:
// internal signature IDs (document-scoped on input, global on output) and
// PUIDs. The package renumbers internal IDs from a run-scoped counter,
// rewriting every reference so links keep resolving, and reallocates
// custom-namespace PUIDs from a strictly increasing sequence while passing
// authority-issued PUIDs through untouched.
//
// Processing is strictly sequential: later documents' assignments depend on
// the counter state left behind by earlier ones, so there is nothing to
// parallelize. All run state lives in values owned by Combine and passed
// explicitly; there are no package-level counters.
//
// Every failure is fatal. A malformed PUID, a dangling reference, or a PUID
// collision is a data-quality problem for the operator to fix, not a
// transient fault, so Combine aborts on first error and produces no output.
package merge
