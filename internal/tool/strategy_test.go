package tool

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beixiyo/ai-sync/internal/errors"
)

func TestLookupTransform(t *testing.T) {
	fn, err := LookupTransform(TransformOpenCodeAgent)
	require.NoError(t, err)
	out, err := fn("BODY", "a.md")
	require.NoError(t, err)
	assert.Equal(t, "---\nmode: subagent\n---\n\nBODY", out)

	_, err = LookupTransform("missing")
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestLookupMCPTransform(t *testing.T) {
	fn, err := LookupMCPTransform("")
	require.NoError(t, err)
	doc := map[string]any{"mcpServers": map[string]any{"x": map[string]any{"command": "x"}}}
	assert.Equal(t, doc, fn(doc))

	_, err = LookupMCPTransform("nope")
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestRegisterTransform(t *testing.T) {
	RegisterTransform("test-upper", func(content, _ string) (string, error) {
		return strings.ToUpper(content), nil
	})

	fn, err := LookupTransform("test-upper")
	require.NoError(t, err)
	out, _ := fn("abc", "x.md")
	assert.Equal(t, "ABC", out)

	content, _, _ := StrategyNames()
	assert.Contains(t, content, "test-upper")
	assert.Contains(t, content, TransformUniversalAgent)
}

func TestMergeMDCStrategy(t *testing.T) {
	fn, err := LookupMerge(MergeMDC)
	require.NoError(t, err)

	src := t.TempDir()
	target := filepath.Join(t.TempDir(), "out", "AGENTS.md")

	require.NoError(t, fn(src, target))
	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr), "no .mdc files writes nothing")

	require.NoError(t, os.WriteFile(filepath.Join(src, "a.mdc"), []byte("rule a"), 0o644))
	require.NoError(t, fn(src, target))
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "# a\n\nrule a\n", string(data))

	_, err = LookupMerge("nope")
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
}
