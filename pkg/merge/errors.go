package merge

import (
	"fmt"

	"github.com/ffdev-info/combiner/pkg/puid"
)

// DanglingReferenceError reports a format entry referencing an internal
// signature ID that does not exist in the same source document.
// Cross-document references are not supported by the signature-file format,
// so this is always an authoring error in the input.
type DanglingReferenceError struct {
	Source string
	Format string
	Ref    string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf(
		"%s: format %q references internal signature %q which does not exist in the document",
		e.Source, e.Format, e.Ref,
	)
}

// DuplicatePUIDError reports two format entries resolving to the same PUID.
// FirstSource is the document that claimed the PUID first.
type DuplicatePUIDError struct {
	Source      string
	FirstSource string
	PUID        string
}

func (e *DuplicatePUIDError) Error() string {
	return fmt.Sprintf(
		"%s: PUID %q already used by %s", e.Source, e.PUID, e.FirstSource,
	)
}

// MalformedPUIDError wraps a puid parse failure with the document and
// format that carried the bad value.
type MalformedPUIDError struct {
	Source string
	Format string
	Err    *puid.MalformedError
}

func (e *MalformedPUIDError) Error() string {
	return fmt.Sprintf("%s: format %q: %v", e.Source, e.Format, e.Err)
}

func (e *MalformedPUIDError) Unwrap() error {
	return e.Err
}

// InternalConsistencyError reports an invariant the merge algorithm itself
// guarantees being observed violated, e.g. a freshly assigned identifier
// colliding with an already-used one despite the monotonic counters. It
// indicates a defect in the combiner, never bad input.
type InternalConsistencyError struct {
	Source string
	Detail string
}

func (e *InternalConsistencyError) Error() string {
	return fmt.Sprintf("%s: internal consistency violation: %s", e.Source, e.Detail)
}
