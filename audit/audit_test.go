package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deadlinks/internal/checker"
	"deadlinks/internal/corpus"
	"deadlinks/internal/report"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for p, body := range files {
		full := filepath.Join(dir, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(body), 0o644))
	}
	return dir
}

// TestAuditCleanSite проверяет сайт без битых ссылок
func TestAuditCleanSite(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"index.html":       `<a href="about/">About</a><a href="img/logo.png">Logo</a><a href="https://example.com">Ext</a>`,
		"about/index.html": `<h1 id="team">Team</h1><a href="../index.html">Home</a><a href="#team">Team</a>`,
		"img/logo.png":     "png",
	})

	result, err := Audit(context.Background(), Options{Roots: []string{dir}})
	require.NoError(t, err)

	assert.True(t, result.Clean())
	assert.Equal(t, 2, result.Documents)

	var buf bytes.Buffer
	require.NoError(t, result.WriteText(&buf))
	assert.Empty(t, buf.String())
}

// TestAuditBrokenLinks проверяет обнаружение битых ссылок и фрагментов
func TestAuditBrokenLinks(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"index.html":     `<a href="a/b.html">B</a><a href="a/b.html#nope">Frag</a><a href="missing.png">Img</a>`,
		"a/b.html":       `<a href="../c.html">C</a><a href="../docs/guide.pdf">Guide</a>`,
		"docs/guide.pdf": "%PDF",
	})

	result, err := Audit(context.Background(), Options{Roots: []string{dir}, Workers: 2})
	require.NoError(t, err)
	require.False(t, result.Clean())

	got := map[string]checker.Status{}
	for _, m := range result.Missing {
		got[m.Source+" -> "+m.Ref.String()] = m.Status
	}
	assert.Equal(t, map[string]checker.Status{
		"index.html -> a/b.html#nope": checker.StatusMissingFragment,
		"index.html -> missing.png":   checker.StatusMissingTarget,
		"a/b.html -> c.html":          checker.StatusMissingTarget,
	}, got)

	data, err := result.Encode(false)
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, json.Unmarshal(data, &r))
	assert.Equal(t, dir, r.Base)
	assert.Equal(t, 2, r.Documents)
	require.Len(t, r.BrokenLinks, 3)
	assert.Equal(t, "a/b.html", r.BrokenLinks[0].Source)
	assert.Equal(t, "c.html", r.BrokenLinks[0].Target)
}

// TestAuditSeparateBase проверяет, что наличие файлов ищется под базовым каталогом
func TestAuditSeparateBase(t *testing.T) {
	site := writeTree(t, map[string]string{
		"index.html": `<a href="static/app.js">App</a>`,
	})
	base := writeTree(t, map[string]string{
		"static/app.js": "console.log(1)",
	})

	result, err := Audit(context.Background(), Options{Roots: []string{site}})
	require.NoError(t, err)
	assert.Len(t, result.Missing, 1)

	result, err = Audit(context.Background(), Options{Roots: []string{site}, Base: base})
	require.NoError(t, err)
	assert.True(t, result.Clean())
}

// TestAuditMultipleRoots проверяет, что ссылки разрешаются по объединенному корпусу
func TestAuditMultipleRoots(t *testing.T) {
	first := writeTree(t, map[string]string{
		"index.html": `<a href="guide/index.html#install">Guide</a>`,
	})
	second := writeTree(t, map[string]string{
		"guide/index.html": `<h2 id="install">Install</h2>`,
	})

	result, err := Audit(context.Background(), Options{Roots: []string{first, second}})
	require.NoError(t, err)
	assert.True(t, result.Clean())
	assert.Equal(t, 2, result.Documents)
}

// TestAuditUnparsableHrefs проверяет, что ссылки с одиночным "%" тоже проверяются
func TestAuditUnparsableHrefs(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"index.html":     `<a href="50%off.html">Sale</a><a href="sale/100%.html">Full</a>`,
		"sale/100%.html": `<p>full price</p>`,
	})

	result, err := Audit(context.Background(), Options{Roots: []string{dir}})
	require.NoError(t, err)

	require.Len(t, result.Missing, 1)
	assert.Equal(t, "50%off.html", result.Missing[0].Href)
	assert.Equal(t, "50%off.html", result.Missing[0].Ref.Path)
	assert.Equal(t, checker.StatusMissingTarget, result.Missing[0].Status)
}

func TestAuditNoRoots(t *testing.T) {
	_, err := Audit(context.Background(), Options{})
	assert.ErrorIs(t, err, ErrNoRoots)
}

func TestAuditMissingRootIsFatal(t *testing.T) {
	_, err := Audit(context.Background(), Options{Roots: []string{filepath.Join(t.TempDir(), "nope")}})
	require.Error(t, err)

	var walkErr *corpus.WalkError
	assert.True(t, errors.As(err, &walkErr))
}

// TestAuditWithContext проверяет отмену через контекст
func TestAuditWithContext(t *testing.T) {
	dir := writeTree(t, map[string]string{"index.html": "<p>home</p>"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Audit(ctx, Options{Roots: []string{dir}})
	assert.ErrorIs(t, err, context.Canceled)
}
