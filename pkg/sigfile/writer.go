package sigfile

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"
)

// utcTimeFormat is the DateCreated timestamp layout used by PRONOM
// signature files.
const utcTimeFormat = "2006-01-02T15:04:05Z"

// Write serializes doc as a complete signature file: XML declaration,
// PRONOM namespace, Version="1" and a DateCreated stamp taken from now in
// UTC. now is injected so tests (and reproducible builds) can pin the
// timestamp.
func Write(w io.Writer, doc *Document, now func() time.Time) error {
	if now == nil {
		now = time.Now
	}

	out := *doc
	// Clear any namespace captured at parse time so the marshaller does not
	// emit xmlns twice (once from the element name, once from the attr).
	out.XMLName = xml.Name{Local: "FFSignatureFile"}
	out.Xmlns = SignatureFileNS
	out.Version = "1"
	out.DateCreated = now().UTC().Format(utcTimeFormat)

	data, err := xml.MarshalIndent(&out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize signature file: %w", err)
	}
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return fmt.Errorf("failed to write signature file: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write signature file: %w", err)
	}
	return nil
}
