package sigfile

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// NewManifest walks root recursively, loads every file that parses as an
// FFSignatureFile document, and returns the documents sorted by path so
// repeated runs over the same input set process documents in the same order.
//
// Files that do not parse (READMEs, licenses, unrelated XML) are skipped
// with a logged warning rather than failing the run; input directories
// legitimately contain more than signature files.
func NewManifest(fs afero.Fs, root string, log hclog.Logger) ([]*Document, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}

	var paths []string
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		log.Debug("found candidate file", "path", path)
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	sort.Strings(paths)

	var docs []*Document
	for _, path := range paths {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		doc, err := Parse(data, path)
		if err != nil {
			log.Warn("skipping file that is not a signature file", "path", path, "error", err)
			continue
		}
		log.Debug("loaded signature file",
			"path", path,
			"signatures", len(doc.Signatures),
			"formats", len(doc.Formats),
		)
		docs = append(docs, doc)
	}

	return docs, nil
}
