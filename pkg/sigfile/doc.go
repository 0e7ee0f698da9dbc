// Package sigfile models PRONOM-style signature files (FFSignatureFile
// documents) as consumed and produced by the combiner.
//
// A signature file carries two ordered collections:
//
//  1. InternalSignatureCollection: the byte-sequence building blocks, each
//     carrying a document-scoped ID attribute.
//
//  2. FileFormatCollection: the detectable formats, each carrying a PUID and
//     referencing internal signatures by ID through InternalSignatureID
//     child elements.
//
// IDs are only unique within a single source document. Making them unique
// across a set of documents is the job of the merge package; this package
// only loads, represents, and serializes the trees.
//
// Loading goes through an afero filesystem so callers (and tests) can run
// the same code against the OS filesystem or an in-memory one.
package sigfile
