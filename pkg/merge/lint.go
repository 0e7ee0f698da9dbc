package merge

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/ffdev-info/combiner/pkg/puid"
	"github.com/ffdev-info/combiner/pkg/sigfile"
)

// Lint checks one document for every problem Combine would abort on, plus a
// few it would tolerate, without modifying the document. Unlike Combine it
// keeps going after the first finding so the operator gets the full list in
// one pass.
func Lint(doc *sigfile.Document, customToken string, authorities []string) error {
	if customToken == "" {
		customToken = puid.DefaultCustomToken
	}
	if authorities == nil {
		authorities = puid.DefaultAuthorities
	}
	known := make(map[string]bool, len(authorities))
	for _, a := range authorities {
		known[a] = true
	}

	var result *multierror.Error

	ids := make(map[string]bool, len(doc.Signatures))
	for _, sig := range doc.Signatures {
		if ids[sig.ID] {
			result = multierror.Append(result, fmt.Errorf(
				"%s: duplicate internal signature ID %q", doc.Source, sig.ID))
		}
		ids[sig.ID] = true
	}

	puids := make(map[string]bool, len(doc.Formats))
	for _, format := range doc.Formats {
		parsed, err := puid.Parse(format.PUID)
		if err != nil {
			result = multierror.Append(result, &MalformedPUIDError{
				Source: doc.Source,
				Format: format.Name,
				Err:    &puid.MalformedError{Value: format.PUID},
			})
		} else {
			if puids[format.PUID] {
				result = multierror.Append(result, fmt.Errorf(
					"%s: format %q: duplicate PUID %q", doc.Source, format.Name, format.PUID))
			}
			puids[format.PUID] = true
			if parsed.Authority != customToken && !known[parsed.Authority] {
				result = multierror.Append(result, fmt.Errorf(
					"%s: format %q: unrecognized authority namespace %q in PUID %q",
					doc.Source, format.Name, parsed.Authority, format.PUID))
			}
		}

		for _, ref := range format.InternalSignatureIDs {
			if !ids[ref] {
				result = multierror.Append(result, &DanglingReferenceError{
					Source: doc.Source,
					Format: format.Name,
					Ref:    ref,
				})
			}
		}
	}

	return result.ErrorOrNil()
}

// LintAll lints every document and aggregates the findings.
func LintAll(docs []*sigfile.Document, customToken string, authorities []string) error {
	var result *multierror.Error
	for _, doc := range docs {
		if err := Lint(doc, customToken, authorities); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
