package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	html := `
<div id="main">
    <a href="adjacent_file.txt">a</a>
    <a href="/relative/file.txt">b</a>
    <a id="url" href="https://www.google.com">c</a>
    <div id="sub" />
</div>`

	doc, err := NewHTMLParser().Extract(html)
	require.NoError(t, err)

	assert.Equal(t, []string{"adjacent_file.txt", "/relative/file.txt"}, doc.RelativeHrefs)
	assert.Equal(t, []string{"https://www.google.com"}, doc.ExternalHrefs)
	assert.Len(t, doc.IDs, 3)
	for _, id := range []string{"main", "url", "sub"} {
		assert.True(t, doc.HasID(id), "expected id %q", id)
	}
}

func TestExtractClassifiesSchemes(t *testing.T) {
	html := `
<html>
<body>
    <a href="#anchor">Anchor</a>
    <a href="../up.html">Up</a>
    <a href="">Self</a>
    <a href="javascript:void(0)">JS</a>
    <a href="mailto:test@example.com">Mail</a>
    <a href="ftp://example.com/file">FTP</a>
    <a href="//cdn.example.com/x.html">CDN</a>
    <a name="no-href">Named</a>
</body>
</html>`

	doc, err := NewHTMLParser().Extract(html)
	require.NoError(t, err)

	assert.Equal(t, []string{"#anchor", "../up.html", ""}, doc.RelativeHrefs)
	assert.Equal(t, []string{
		"javascript:void(0)",
		"mailto:test@example.com",
		"ftp://example.com/file",
		"//cdn.example.com/x.html",
	}, doc.ExternalHrefs)
}

func TestExtractUnparsableRelativeHrefs(t *testing.T) {
	doc, err := NewHTMLParser().Extract(`<a href="50%off.html">Sale</a><a href="nope%zz.html">x</a><a href="http://[::1">bad</a>`)
	require.NoError(t, err)

	assert.Equal(t, []string{"50%off.html", "nope%zz.html"}, doc.RelativeHrefs)
	assert.Equal(t, []string{"http://[::1"}, doc.ExternalHrefs)
}

func TestExtractDuplicateIDsCollapse(t *testing.T) {
	doc, err := NewHTMLParser().Extract(`<p id="x"></p><span id="x"></span><h2 id="y">Y</h2>`)
	require.NoError(t, err)

	assert.Len(t, doc.IDs, 2)
	assert.True(t, doc.HasID("x"))
	assert.True(t, doc.HasID("y"))
	assert.False(t, doc.HasID("z"))
}

func TestExtractEmptyDocument(t *testing.T) {
	doc, err := NewHTMLParser().Extract("")
	require.NoError(t, err)

	assert.Empty(t, doc.RelativeHrefs)
	assert.Empty(t, doc.ExternalHrefs)
	assert.Empty(t, doc.IDs)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestExtractReaderError(t *testing.T) {
	_, err := NewHTMLParser().ExtractReader(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestNilDocumentHasNoIDs(t *testing.T) {
	var doc *Document
	assert.False(t, doc.HasID("anything"))
}
