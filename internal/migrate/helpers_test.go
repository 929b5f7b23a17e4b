package migrate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beixiyo/ai-sync/internal/logging"
	"github.com/beixiyo/ai-sync/internal/tool"
)

// testHome points HOME at a fresh directory and returns it.
func testHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func newMigrator(t *testing.T, ct tool.ConfigType, source string, opts Options, tools ...string) Migrator {
	t.Helper()
	m, err := New(ct, Config{
		Source:   source,
		Tools:    tools,
		Options:  opts,
		Registry: tool.Default(),
		Logger:   logging.ForTest(t),
	})
	require.NoError(t, err)
	return m
}
