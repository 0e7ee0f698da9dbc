package merge

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hashicorp/go-hclog"

	"github.com/ffdev-info/combiner/pkg/puid"
	"github.com/ffdev-info/combiner/pkg/sigfile"
)

// Options configures one merge run.
type Options struct {
	// Prefix is the namespace newly allocated custom PUIDs are written
	// under. Defaults to puid.DefaultPrefix.
	Prefix string

	// StartIndex is the numeric suffix of the first allocated custom PUID.
	StartIndex int

	// CustomToken is the input namespace whose PUIDs are reallocated.
	// Every other namespace is passed through unmodified. Defaults to
	// puid.DefaultCustomToken.
	CustomToken string

	// Logger receives per-document progress. Defaults to a null logger.
	Logger hclog.Logger
}

// state is the run-scoped mutable state of one merge: the two identifier
// counters, the custom-PUID allocator, and the used sets that back the
// collision checks. It is owned by Combine and threaded explicitly through
// the per-document passes.
type state struct {
	sigNext    int
	formatNext int
	alloc      *puid.Allocator
	usedPUIDs  map[string]string // PUID -> source document that claimed it
	usedIDs    map[string]string // internal signature ID -> source document
}

// Combine merges docs, in the order given, into a single document. Callers
// wanting deterministic output pass documents in a deterministic order
// (sigfile.NewManifest sorts by path).
//
// On any error the merge aborts and no document is returned: either every
// input merges cleanly or there is no output.
func Combine(docs []*sigfile.Document, opts Options) (*sigfile.Document, error) {
	log := opts.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}
	if opts.CustomToken == "" {
		opts.CustomToken = puid.DefaultCustomToken
	}

	st := &state{
		alloc:     puid.NewAllocator(opts.Prefix, opts.StartIndex),
		usedPUIDs: make(map[string]string),
		usedIDs:   make(map[string]string),
	}

	merged := &sigfile.Document{}
	for _, doc := range docs {
		if err := mergeDocument(merged, doc, st, opts.CustomToken, log); err != nil {
			return nil, err
		}
	}

	log.Debug("merge complete",
		"documents", len(docs),
		"signatures", len(merged.Signatures),
		"formats", len(merged.Formats),
	)
	return merged, nil
}

// mergeDocument runs the renumber and PUID passes over one document and
// appends the transformed entries to merged. The document is mutated in
// place; callers hand ownership of doc to the merge.
func mergeDocument(merged, doc *sigfile.Document, st *state, customToken string, log hclog.Logger) error {
	idMap, sigNext := buildIDMap(doc, st.sigNext)
	if err := applyIDMap(doc, idMap); err != nil {
		return err
	}
	st.sigNext = sigNext

	// Record the fresh IDs. A collision here should be impossible given
	// the monotonic counter; seeing one means the combiner itself is
	// broken, not the input.
	for _, sig := range doc.Signatures {
		if first, ok := st.usedIDs[sig.ID]; ok {
			return &InternalConsistencyError{
				Source: doc.Source,
				Detail: fmt.Sprintf("internal signature ID %q already assigned while merging %s", sig.ID, first),
			}
		}
		st.usedIDs[sig.ID] = doc.Source
	}

	for i := range doc.Formats {
		format := &doc.Formats[i]

		format.ID = strconv.Itoa(st.formatNext)
		st.formatNext++

		parsed, err := puid.Parse(format.PUID)
		if err != nil {
			var malformed *puid.MalformedError
			if !errors.As(err, &malformed) {
				malformed = &puid.MalformedError{Value: format.PUID}
			}
			return &MalformedPUIDError{
				Source: doc.Source,
				Format: format.Name,
				Err:    malformed,
			}
		}

		switch puid.Classify(parsed, customToken) {
		case puid.NamespaceCustom:
			allocated := st.alloc.Next()
			log.Debug("reallocated custom PUID",
				"source", doc.Source, "from", format.PUID, "to", allocated.String())
			format.PUID = allocated.String()
		case puid.NamespaceAuthority:
			log.Debug("passing through authority PUID",
				"source", doc.Source, "puid", format.PUID)
		}

		if first, ok := st.usedPUIDs[format.PUID]; ok {
			return &DuplicatePUIDError{
				Source:      doc.Source,
				FirstSource: first,
				PUID:        format.PUID,
			}
		}
		st.usedPUIDs[format.PUID] = doc.Source
	}

	merged.Signatures = append(merged.Signatures, doc.Signatures...)
	merged.Formats = append(merged.Formats, doc.Formats...)
	log.Info("merged document",
		"source", doc.Source,
		"signatures", len(doc.Signatures),
		"formats", len(doc.Formats),
	)
	return nil
}
