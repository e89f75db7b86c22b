package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestClassesCommand(t *testing.T) {
	assert.Equal(t, "p-3 bg-blue-500\n", run(t, "classes", "px-2 py-1 bg-red-500", "p-3 bg-blue-500"))
	assert.Equal(t, "\n", run(t, "classes"))
}

func TestVersionCommand(t *testing.T) {
	assert.Contains(t, run(t, "version"), "koes version ")
}

func TestExportCommand(t *testing.T) {
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, key := range []string{"PORT", "BASE_URL", "ENVIRONMENT", "SITE_NAME", "OUT_DIR", "FONTS_DIR", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	out := filepath.Join(t.TempDir(), "site")

	run(t, "export", "--out", out)
	t.Cleanup(func() { exportOutDir = "" })

	_, err := os.Stat(filepath.Join(out, "index.html"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "404.html"))
	assert.NoError(t, err)
}
