package merge

import (
	"strconv"

	"github.com/ffdev-info/combiner/pkg/sigfile"
)

// buildIDMap decides new identifiers for every internal signature in doc,
// in order of appearance, drawing from next. It is a pure function of its
// inputs: it returns the old-to-new mapping and the advanced counter
// without touching the document. Keeping the decide step separate from the
// rewrite makes the mapping testable in isolation.
func buildIDMap(doc *sigfile.Document, next int) (map[string]string, int) {
	idMap := make(map[string]string, len(doc.Signatures))
	for _, sig := range doc.Signatures {
		idMap[sig.ID] = strconv.Itoa(next)
		next++
	}
	return idMap, next
}

// applyIDMap rewrites every internal signature ID and every
// InternalSignatureID reference in doc according to idMap. A reference with
// no mapping means the referenced signature does not exist in this
// document, which is fatal.
func applyIDMap(doc *sigfile.Document, idMap map[string]string) error {
	for i := range doc.Signatures {
		doc.Signatures[i].ID = idMap[doc.Signatures[i].ID]
	}
	for i := range doc.Formats {
		format := &doc.Formats[i]
		for j, ref := range format.InternalSignatureIDs {
			newID, ok := idMap[ref]
			if !ok {
				return &DanglingReferenceError{
					Source: doc.Source,
					Format: format.Name,
					Ref:    ref,
				}
			}
			format.InternalSignatureIDs[j] = newID
		}
	}
	return nil
}
