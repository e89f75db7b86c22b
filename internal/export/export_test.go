package export_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hashversion/koes/internal/export"
	"github.com/Hashversion/koes/internal/site"
)

func testOptions(t *testing.T) export.Options {
	t.Helper()

	fontsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(fontsDir, "GeistVF.woff"), []byte("sans"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(fontsDir, "GeistMonoVF.woff"), []byte("mono"), 0o644))

	return export.Options{
		OutDir:   filepath.Join(t.TempDir(), "out"),
		FontsDir: fontsDir,
		Site:     site.New("Koes"),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	return string(data)
}

func TestExport(t *testing.T) {
	opts := testOptions(t)

	manifest, err := export.Export(context.Background(), opts)
	require.NoError(t, err)

	index := readFile(t, filepath.Join(opts.OutDir, "index.html"))
	assert.Contains(t, index, "<!DOCTYPE html>")
	assert.Contains(t, index, "KOES")

	notFound := readFile(t, filepath.Join(opts.OutDir, "404.html"))
	assert.Contains(t, notFound, "This page could not be found.")

	assert.Contains(t, readFile(t, filepath.Join(opts.OutDir, "_koes", "fonts.css")), "@font-face")
	assert.Contains(t, readFile(t, filepath.Join(opts.OutDir, "_koes", "static", "styles.css")), ".font-geist-sans")
	assert.Equal(t, "sans", readFile(t, filepath.Join(opts.OutDir, "fonts", "GeistVF.woff")))
	assert.Equal(t, "mono", readFile(t, filepath.Join(opts.OutDir, "fonts", "GeistMonoVF.woff")))

	info, err := os.Stat(filepath.Join(opts.OutDir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	_, err = uuid.Parse(manifest.BuildID)
	assert.NoError(t, err)
	assert.Equal(t, manifest.BuildID, readFile(t, filepath.Join(opts.OutDir, "_koes", "BUILD_ID")))
	assert.Equal(t, []string{"/404.html", "/index.html"}, manifest.Pages)
	assert.Contains(t, manifest.Assets, "/_koes/fonts.css")
	assert.Contains(t, manifest.Assets, "/_koes/static/styles.css")
	assert.Contains(t, manifest.Assets, "/fonts/GeistVF.woff")
	assert.Contains(t, manifest.Assets, "/_koes/BUILD_ID")

	var written export.Manifest
	require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(opts.OutDir, "_koes", "build-manifest.json"))), &written))
	assert.Equal(t, manifest.BuildID, written.BuildID)
	assert.Equal(t, manifest.Pages, written.Pages)
}

func TestExportOverwrites(t *testing.T) {
	opts := testOptions(t)

	first, err := export.Export(context.Background(), opts)
	require.NoError(t, err)
	second, err := export.Export(context.Background(), opts)
	require.NoError(t, err)

	assert.NotEqual(t, first.BuildID, second.BuildID)
	assert.Equal(t, second.BuildID, readFile(t, filepath.Join(opts.OutDir, "_koes", "BUILD_ID")))
}

func TestExportWithoutFonts(t *testing.T) {
	opts := testOptions(t)
	opts.FontsDir = filepath.Join(t.TempDir(), "missing")

	manifest, err := export.Export(context.Background(), opts)
	require.NoError(t, err)
	assert.NotContains(t, manifest.Assets, "/fonts/GeistVF.woff")
	assert.NoFileExists(t, filepath.Join(opts.OutDir, "fonts", "GeistVF.woff"))
}

func TestExportFontsDirIsFile(t *testing.T) {
	opts := testOptions(t)
	opts.FontsDir = filepath.Join(opts.FontsDir, "GeistVF.woff")

	_, err := export.Export(context.Background(), opts)
	assert.Error(t, err)
}

func TestExportNoOutDir(t *testing.T) {
	_, err := export.Export(context.Background(), export.Options{})
	assert.ErrorIs(t, err, export.ErrNoOutDir)
}

func TestExportCancelled(t *testing.T) {
	opts := testOptions(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := export.Export(ctx, opts)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(opts.OutDir, "index.html"))
}
