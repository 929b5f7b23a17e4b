package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beixiyo/ai-sync/internal/errors"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_NoConfigFile(t *testing.T) {
	dir := t.TempDir()
	Init(dir)

	cfg, err := Load("", dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigDir, cfg.Global.DefaultConfigDir)
	assert.Empty(t, cfg.Global.DefaultSourceDir)
}

func TestLoad_YAMLInWorkDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "ai-sync.yaml", `global:
  default_source_dir: ~/work
  default_target_tools: [cursor, gemini]
tools:
  cursor:
    commands:
      target: ~/custom/commands
`)
	Init(dir)

	cfg, err := Load("", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ai-sync.yaml"), Used())
	assert.Equal(t, "~/work", cfg.Global.DefaultSourceDir)
	assert.Equal(t, []string{"cursor", "gemini"}, cfg.Global.DefaultTargetTools)
	require.Contains(t, cfg.Tools, "cursor")

	cursor, ok := cfg.Tools["cursor"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"target": "~/custom/commands"}, cursor["commands"])
}

func TestLoad_ExplicitJSONAndTOML(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeConfig(t, dir, "custom.json", `{"global": {"default_config_dir": "/etc/claude"}}`)
	tomlPath := writeConfig(t, dir, "custom.toml", "[global]\ndefault_source_dir = \"/src\"\n")

	Init(dir)
	cfg, err := Load(jsonPath, dir)
	require.NoError(t, err)
	assert.Equal(t, "/etc/claude", cfg.Global.DefaultConfigDir)

	Init(dir)
	cfg, err = Load(tomlPath, dir)
	require.NoError(t, err)
	assert.Equal(t, "/src", cfg.Global.DefaultSourceDir)
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	dir := t.TempDir()
	Init(dir)

	_, err := Load(filepath.Join(dir, "missing.yaml"), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "ai-sync.yml", "global:\n  default_source_dir: /from/file\n")
	t.Setenv("AI_SYNC_GLOBAL_DEFAULT_SOURCE_DIR", "/from/env")
	Init(dir)

	cfg, err := Load("", dir)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Global.DefaultSourceDir)
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"tool override not an object", "tools:\n  cursor: yes\n"},
		{"empty tool name", "global:\n  default_target_tools: [\"\"]\n"},
		{"malformed yaml", "global: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			p := writeConfig(t, dir, "ai-sync.yaml", tt.content)
			Init(dir)

			_, err := Load(p, dir)
			assert.Error(t, err)
		})
	}
}

func TestLoad_PackageJSONConfigDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "package.json", `{"name": "x", "ai-sync": {"configDir": "./team/.claude"}}`)
	Init(dir)

	cfg, err := Load("", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "team", ".claude"), cfg.Global.DefaultConfigDir)
}

func TestLoad_FileWinsOverPackageJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "package.json", `{"ai-sync": {"configDir": "/pkg"}}`)
	writeConfig(t, dir, "ai-sync.yaml", "global:\n  default_config_dir: /file\n")
	Init(dir)

	cfg, err := Load("", dir)
	require.NoError(t, err)
	assert.Equal(t, "/file", cfg.Global.DefaultConfigDir)
}

func TestPackageConfigDir(t *testing.T) {
	dir := t.TempDir()

	got, err := PackageConfigDir(dir)
	require.NoError(t, err)
	assert.Empty(t, got, "no package.json")

	writeConfig(t, dir, "package.json", `{"name": "x"}`)
	got, err = PackageConfigDir(dir)
	require.NoError(t, err)
	assert.Empty(t, got, "no ai-sync section")

	writeConfig(t, dir, "package.json", `{"ai-sync": {"configDir": "/abs/.claude"}}`)
	got, err = PackageConfigDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "/abs/.claude", got)

	writeConfig(t, dir, "package.json", `{broken`)
	_, err = PackageConfigDir(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.Len(t, Validate(nil), 1)
	assert.Empty(t, Validate(&Config{}))

	errs := Validate(&Config{
		Global: Global{DefaultSourceDir: "bad\x00path"},
		Tools:  map[string]any{"x": "nope"},
	})
	require.Len(t, errs, 2)

	var pathErr *PathError
	var toolErr *ToolError
	for _, err := range errs {
		switch {
		case errors.As(err, &pathErr):
			assert.ErrorIs(t, err, ErrInvalidPath)
		case errors.As(err, &toolErr):
			assert.Equal(t, "x", toolErr.Tool)
			assert.ErrorIs(t, err, ErrInvalidOverride)
		default:
			t.Errorf("unexpected error %v", err)
		}
	}
}
