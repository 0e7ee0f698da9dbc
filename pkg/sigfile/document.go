package sigfile

import (
	"encoding/xml"
	"fmt"
)

// SignatureFileNS is the XML namespace of PRONOM signature files.
const SignatureFileNS = "http://www.nationalarchives.gov.uk/pronom/SignatureFile"

// Document is one FFSignatureFile tree, either loaded from disk or produced
// by a merge. Source is the path the document was loaded from and is used
// for error context only; it is never serialized.
type Document struct {
	XMLName     xml.Name            `xml:"FFSignatureFile"`
	Xmlns       string              `xml:"xmlns,attr,omitempty"`
	Version     string              `xml:"Version,attr,omitempty"`
	DateCreated string              `xml:"DateCreated,attr,omitempty"`
	Signatures  []InternalSignature `xml:"InternalSignatureCollection>InternalSignature"`
	Formats     []FileFormat        `xml:"FileFormatCollection>FileFormat"`

	Source string `xml:"-"`
}

// InternalSignature is one byte-sequence definition. The signature body
// (ByteSequence and SubSequence elements) is opaque to the combiner and is
// carried through verbatim.
type InternalSignature struct {
	ID          string `xml:"ID,attr"`
	Specificity string `xml:"Specificity,attr,omitempty"`
	Body        string `xml:",innerxml"`
}

// FileFormat is one detectable format entry. InternalSignatureIDs are
// non-owning references into the same document's signature collection,
// resolved by ID lookup.
type FileFormat struct {
	ID       string `xml:"ID,attr"`
	Name     string `xml:"Name,attr"`
	PUID     string `xml:"PUID,attr"`
	Version  string `xml:"Version,attr,omitempty"`
	MIMEType string `xml:"MIMEType,attr,omitempty"`

	InternalSignatureIDs []string `xml:"InternalSignatureID"`
	Extensions           []string `xml:"Extension,omitempty"`
	Priorities           []string `xml:"HasPriorityOverFileFormatID,omitempty"`
}

// Parse decodes one signature file. source is recorded on the returned
// document for error reporting. Documents whose root element is not
// FFSignatureFile fail to decode; the caller decides whether that is fatal.
func Parse(data []byte, source string) (*Document, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse signature file %s: %w", source, err)
	}
	doc.Source = source
	return &doc, nil
}
