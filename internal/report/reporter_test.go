package report

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beixiyo/ai-sync/internal/migrate"
	"github.com/beixiyo/ai-sync/internal/tool"
)

func init() {
	color.NoColor = true
}

func sampleReport() *migrate.Report {
	rep := &migrate.Report{
		SourceDir: "/src",
		Tools:     []string{"cursor", "gemini"},
		Types: []migrate.TypeReport{
			{Type: tool.Commands, Tools: []string{"cursor", "gemini"}, Stats: migrate.Stats{Success: 3, Skipped: 1}},
			{Type: tool.MCP, Tools: []string{"gemini"}, Stats: migrate.Stats{
				Error:  1,
				Errors: []migrate.FileError{{File: "gemini:mcp", Error: "boom"}},
			}},
		},
	}
	for _, tr := range rep.Types {
		rep.Add(tr.Stats)
	}
	return rep
}

func TestReporter_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatText).Report(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Source: /src")
	assert.Contains(t, out, "Tools:  cursor, gemini")
	assert.Contains(t, out, "commands  3 ok, 1 skipped")
	assert.Contains(t, out, "mcp       0 ok, 1 failed")
	assert.Contains(t, out, "✗ 3 succeeded, 1 skipped, 1 failed")
	assert.Contains(t, out, "• gemini:mcp: boom")
}

func TestReporter_TextSuccess(t *testing.T) {
	var buf bytes.Buffer
	rep := &migrate.Report{
		SourceDir: "/src",
		Tools:     []string{"claude"},
		Types:     []migrate.TypeReport{{Type: tool.Rules, Stats: migrate.Stats{Success: 1}}},
		Stats:     migrate.Stats{Success: 1},
	}
	require.NoError(t, NewReporter(&buf, FormatText).Report(rep))

	assert.Contains(t, buf.String(), "✓ 1 succeeded, 0 skipped, 0 failed")
	assert.NotContains(t, buf.String(), "Errors:")
}

func TestReporter_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatText).Report(&migrate.Report{SourceDir: "/src"}))
	assert.Contains(t, buf.String(), "Nothing to migrate")

	buf.Reset()
	require.NoError(t, NewReporter(&buf, FormatText).Report(nil))
	assert.Empty(t, buf.String())
}

func TestReporter_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatJSON).Report(sampleReport()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "/src", got["source_dir"])
	assert.Equal(t, float64(3), got["success"])
	assert.Equal(t, float64(1), got["error"])
	assert.Len(t, got["types"], 2)
	assert.Len(t, got["errors"], 1)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("yaml")
	assert.Error(t, err)
}

func TestToolRows(t *testing.T) {
	proj := t.TempDir()
	rows := ToolRows(tool.Default(), tool.Scope{IsProject: true, ProjectDir: proj})

	require.Len(t, rows, len(tool.BuiltinNames()))
	assert.Equal(t, "cursor", rows[0].ID)
	assert.Equal(t, "Cursor", rows[0].Name)
	assert.Equal(t, ToolTarget{Type: tool.Commands, Target: filepath.Join(proj, ".cursor", "commands")}, rows[0].Targets[0])

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatText).Tools(rows))
	out := buf.String()
	assert.Contains(t, out, "cursor (Cursor)")
	assert.True(t, strings.Contains(out, "codex (Codex)"))

	buf.Reset()
	require.NoError(t, NewReporter(&buf, FormatJSON).Tools(rows[:1]))
	assert.Contains(t, buf.String(), `"id": "cursor"`)
}
