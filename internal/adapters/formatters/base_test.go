package formatters

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadStyleConfig(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		cfg, err := LoadStyleConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, StyleConfig{Parser: "typescript"}, cfg)
	})

	t.Run("json", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, ".prettierrc.json", `{"tabWidth": 4, "useTabs": true, "parser": "babel", "semi": false}`)

		cfg, err := LoadStyleConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, StyleConfig{TabWidth: 4, UseTabs: true, Parser: "typescript", Path: path}, cfg)
	})

	t.Run("yaml", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, ".prettierrc.yaml", "tabWidth: 3\nsingleQuote: true\n")

		cfg, err := LoadStyleConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.TabWidth)
		assert.Equal(t, path, cfg.Path)
		assert.Equal(t, "   ", cfg.indent())
	})

	t.Run("first match wins", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, ".prettierrc", "tabWidth: 8\n")
		writeFile(t, dir, ".prettierrc.json", `{"tabWidth": 4}`)

		cfg, err := LoadStyleConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.TabWidth)
		assert.Equal(t, path, cfg.Path)
	})

	t.Run("invalid", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".prettierrc.json", `{"tabWidth": "wide"}`)

		cfg, err := LoadStyleConfig(dir)
		require.Error(t, err)
		assert.Equal(t, "typescript", cfg.Parser)
	})
}

func TestPrettierFormatter(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	t.Run("pipes source through the command", func(t *testing.T) {
		f := NewPrettierFormatter(StyleConfig{}, t.TempDir())
		f.command = []string{"sh", "-c", "cat"}

		out, err := f.Format(context.Background(), "Foo", "export type A = string;\n")
		require.NoError(t, err)
		assert.Equal(t, "export type A = string;\n", out)
		assert.Equal(t, "prettier", f.Name())
	})

	t.Run("reports stderr", func(t *testing.T) {
		f := NewPrettierFormatter(StyleConfig{}, t.TempDir())
		f.command = []string{"sh", "-c", "echo boom >&2; exit 3"}

		_, err := f.Format(context.Background(), "Foo", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Foo")
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestNoopFormatter(t *testing.T) {
	out, err := NoopFormatter{}.Format(context.Background(), "Foo", "  x  ")
	require.NoError(t, err)
	assert.Equal(t, "  x  ", out)
	assert.Equal(t, "none", NoopFormatter{}.Name())
}
