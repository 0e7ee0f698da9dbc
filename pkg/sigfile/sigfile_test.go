package sigfile

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<?xml version="1.0" encoding="utf-8"?>
<FFSignatureFile xmlns="http://www.nationalarchives.gov.uk/pronom/SignatureFile" Version="1" DateCreated="2023-05-01T10:00:00Z">
  <InternalSignatureCollection>
    <InternalSignature ID="0" Specificity="Specific">
      <ByteSequence Reference="BOFoffset">
        <SubSequence MinFragLength="0" Position="1" SubSeqMaxOffset="0" SubSeqMinOffset="0">
          <Sequence>'hello'</Sequence>
        </SubSequence>
      </ByteSequence>
    </InternalSignature>
    <InternalSignature ID="1">
      <ByteSequence Reference="BOFoffset"/>
    </InternalSignature>
  </InternalSignatureCollection>
  <FileFormatCollection>
    <FileFormat ID="0" Name="Hello Format" PUID="dev/1" Version="1.0" MIMEType="application/x-hello">
      <InternalSignatureID>0</InternalSignatureID>
      <Extension>hello</Extension>
    </FileFormat>
    <FileFormat ID="1" Name="Other Format" PUID="fmt/999">
      <InternalSignatureID>1</InternalSignatureID>
    </FileFormat>
  </FileFormatCollection>
</FFSignatureFile>`

func TestParse(t *testing.T) {
	t.Run("well-formed signature file", func(t *testing.T) {
		doc, err := Parse([]byte(sampleDoc), "sample.xml")
		require.NoError(t, err)

		assert.Equal(t, "sample.xml", doc.Source)
		require.Len(t, doc.Signatures, 2)
		assert.Equal(t, "0", doc.Signatures[0].ID)
		assert.Equal(t, "Specific", doc.Signatures[0].Specificity)
		assert.Contains(t, doc.Signatures[0].Body, "'hello'")
		assert.Equal(t, "1", doc.Signatures[1].ID)

		require.Len(t, doc.Formats, 2)
		assert.Equal(t, "Hello Format", doc.Formats[0].Name)
		assert.Equal(t, "dev/1", doc.Formats[0].PUID)
		assert.Equal(t, "application/x-hello", doc.Formats[0].MIMEType)
		assert.Equal(t, []string{"0"}, doc.Formats[0].InternalSignatureIDs)
		assert.Equal(t, []string{"hello"}, doc.Formats[0].Extensions)
		assert.Equal(t, []string{"1"}, doc.Formats[1].InternalSignatureIDs)
	})

	t.Run("wrong root element", func(t *testing.T) {
		_, err := Parse([]byte(`<project><name>not signatures</name></project>`), "pom.xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pom.xml")
	})

	t.Run("not XML", func(t *testing.T) {
		_, err := Parse([]byte("# a readme"), "README.md")
		require.Error(t, err)
	})
}

func TestNewManifest(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "sigs/b.xml", []byte(sampleDoc), 0o644))
	require.NoError(t, afero.WriteFile(fs, "sigs/a.xml", []byte(sampleDoc), 0o644))
	require.NoError(t, afero.WriteFile(fs, "sigs/nested/c.xml", []byte(sampleDoc), 0o644))
	require.NoError(t, afero.WriteFile(fs, "sigs/README.md", []byte("# docs"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "sigs/other.xml", []byte("<unrelated/>"), 0o644))

	docs, err := NewManifest(fs, "sigs", hclog.NewNullLogger())
	require.NoError(t, err)

	// Junk is skipped, signature files come back in sorted path order.
	require.Len(t, docs, 3)
	assert.Equal(t, "sigs/a.xml", docs[0].Source)
	assert.Equal(t, "sigs/b.xml", docs[1].Source)
	assert.Equal(t, "sigs/nested/c.xml", docs[2].Source)
}

func TestNewManifest_MissingRoot(t *testing.T) {
	_, err := NewManifest(afero.NewMemMapFs(), "nope", nil)
	require.Error(t, err)
}

func TestWrite(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc), "sample.xml")
	require.NoError(t, err)

	now := func() time.Time {
		return time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, now))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `xmlns="http://www.nationalarchives.gov.uk/pronom/SignatureFile"`)
	assert.Contains(t, out, `Version="1"`)
	assert.Contains(t, out, `DateCreated="2024-06-01T12:30:00Z"`)
	assert.Contains(t, out, `PUID="fmt/999"`)
	assert.Contains(t, out, "<InternalSignatureCollection>")
	assert.Contains(t, out, "<FileFormatCollection>")

	// The output is itself a loadable signature file.
	reparsed, err := Parse(buf.Bytes(), "roundtrip.xml")
	require.NoError(t, err)
	assert.Len(t, reparsed.Signatures, 2)
	assert.Len(t, reparsed.Formats, 2)

	// Serialization is deterministic given a fixed clock.
	var again bytes.Buffer
	require.NoError(t, Write(&again, doc, now))
	assert.Equal(t, buf.String(), again.String())
}
