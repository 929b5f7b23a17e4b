package migrate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beixiyo/ai-sync/internal/errors"
	"github.com/beixiyo/ai-sync/internal/tool"
)

func TestNew(t *testing.T) {
	for _, ct := range tool.AllTypes() {
		m, err := New(ct, Config{})
		require.NoError(t, err)
		assert.Equal(t, ct, m.Type())
	}

	_, err := New("hooks", Config{})
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestMigrate_ToolFailureIsIsolated(t *testing.T) {
	home := testHome(t)
	src := filepath.Join(t.TempDir(), ".claude", "skills")
	writeFile(t, filepath.Join(src, "a", "SKILL.md"), "skill")

	stats := newMigrator(t, tool.Skills, src, Options{}, "nope", tool.Cursor).Migrate()

	assert.Equal(t, 1, stats.Success)
	assert.Equal(t, 1, stats.Error)
	require.Len(t, stats.Errors, 1)
	assert.Equal(t, "nope:skills", stats.Errors[0].File)
	assert.FileExists(t, filepath.Join(home, ".cursor", "skills", "a", "SKILL.md"))
}

func TestMigrate_UnknownTransformFailsTool(t *testing.T) {
	testHome(t)
	src := filepath.Join(t.TempDir(), ".claude", "agents")
	writeFile(t, filepath.Join(src, "a.md"), "x")

	reg := tool.Default()
	require.NoError(t, reg.ApplyOverrides(map[string]any{
		"gemini": map[string]any{"agents": map[string]any{"transform": "does-not-exist"}},
	}))
	m, err := New(tool.Agents, Config{Source: src, Tools: []string{tool.Gemini, tool.Claude}, Registry: reg})
	require.NoError(t, err)

	stats := m.Migrate()
	assert.Equal(t, 1, stats.Success)
	assert.Equal(t, 1, stats.Error)
	assert.Equal(t, "gemini:agents", stats.Errors[0].File)
	assert.Contains(t, stats.Errors[0].Error, "does-not-exist")
}

func TestMigrate_PanickingTransformIsRecovered(t *testing.T) {
	testHome(t)
	src := filepath.Join(t.TempDir(), ".claude", "agents")
	writeFile(t, filepath.Join(src, "a.md"), "x")

	tool.RegisterTransform("test-panic", func(string, string) (string, error) {
		panic("broken transform")
	})
	reg := tool.Default()
	require.NoError(t, reg.ApplyOverrides(map[string]any{
		"codex": map[string]any{"agents": map[string]any{"transform": "test-panic"}},
	}))
	m, err := New(tool.Agents, Config{Source: src, Tools: []string{tool.Codex, tool.Cursor}, Registry: reg})
	require.NoError(t, err)

	stats := m.Migrate()
	assert.Equal(t, 1, stats.Success)
	assert.Equal(t, 1, stats.Error)
	assert.Equal(t, "codex:agents", stats.Errors[0].File)
	assert.Contains(t, stats.Errors[0].Error, "broken transform")
}

func TestMigrate_TransformErrorIsPerFile(t *testing.T) {
	home := testHome(t)
	src := filepath.Join(t.TempDir(), ".claude", "agents")
	writeFile(t, filepath.Join(src, "bad.md"), "bad")
	writeFile(t, filepath.Join(src, "good.md"), "good")

	tool.RegisterTransform("test-reject-bad", func(content, fileName string) (string, error) {
		if content == "bad" {
			return "", errors.Newf("cannot convert %s", fileName)
		}
		return content, nil
	})
	reg := tool.Default()
	require.NoError(t, reg.ApplyOverrides(map[string]any{
		"cursor": map[string]any{"agents": map[string]any{"transform": "test-reject-bad"}},
	}))
	m, err := New(tool.Agents, Config{Source: src, Tools: []string{tool.Cursor}, Registry: reg})
	require.NoError(t, err)

	stats := m.Migrate()
	assert.Equal(t, 1, stats.Success)
	assert.Equal(t, 1, stats.Error)
	assert.Equal(t, filepath.Join(src, "bad.md"), stats.Errors[0].File)
	assert.FileExists(t, filepath.Join(home, ".cursor", "agents", "good.md"))
	assert.NoFileExists(t, filepath.Join(home, ".cursor", "agents", "bad.md"))
}
