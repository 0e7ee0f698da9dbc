// Package puid provides type-safe handling of PRONOM persistent unique
// identifiers (PUIDs).
//
// A PUID is a namespaced string of the form "<authority>/<number>", e.g.
// "fmt/123" or "x-fmt/44". The authority token classifies the identifier:
//
//   - Authority namespaces (fmt, x-fmt, ...) are issued by an external
//     registry and must never be rewritten, only checked for collisions.
//
//   - The custom namespace (dev by default) marks locally-defined formats
//     whose PUIDs are eligible for reallocation when documents are combined.
//
// The Allocator hands out custom PUIDs from a strictly increasing,
// run-scoped sequence; it carries no hidden global state and is owned by
// whoever drives the merge.
package puid
