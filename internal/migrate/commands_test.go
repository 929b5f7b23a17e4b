package migrate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beixiyo/ai-sync/internal/tool"
)

func commandsSource(t *testing.T) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), ".claude", "commands")
	writeFile(t, filepath.Join(src, "review.md"), "---\ndescription: Review code\nallowed-tools: Bash\n---\nReview $ARGUMENTS using `git diff`.\n")
	writeFile(t, filepath.Join(src, "git", "commit.md"), "Commit with message $1\n")
	writeFile(t, filepath.Join(src, "notes.txt"), "not a command\n")
	return src
}

func TestCommands_CopyVerbatim(t *testing.T) {
	home := testHome(t)
	src := commandsSource(t)

	stats := newMigrator(t, tool.Commands, src, Options{}, tool.Cursor).Migrate()

	assert.Equal(t, Stats{Success: 3}, stats)
	target := filepath.Join(home, ".cursor", "commands")
	assert.Equal(t, readFile(t, filepath.Join(src, "git", "commit.md")), readFile(t, filepath.Join(target, "git", "commit.md")))
	assert.FileExists(t, filepath.Join(target, "notes.txt"))
}

func TestCommands_TOMLConversion(t *testing.T) {
	home := testHome(t)
	src := commandsSource(t)

	stats := newMigrator(t, tool.Commands, src, Options{}, tool.Gemini).Migrate()
	assert.Equal(t, Stats{Success: 2}, stats)

	target := filepath.Join(home, ".gemini", "commands")
	review := readFile(t, filepath.Join(target, "review.toml"))
	assert.Contains(t, review, `description = "Review code"`)
	assert.Contains(t, review, "Review {{args}} using !{git diff}.")
	assert.NotContains(t, review, "allowed-tools")

	commit := readFile(t, filepath.Join(target, "git", "commit.toml"))
	assert.Contains(t, commit, "Commit with message {{arg1}}")
	assert.NotContains(t, commit, "description")

	assert.NoFileExists(t, filepath.Join(target, "notes.txt"))
	assert.NoFileExists(t, filepath.Join(target, "review.md"))
}

func TestCommands_Idempotent(t *testing.T) {
	home := testHome(t)
	src := commandsSource(t)
	target := filepath.Join(home, ".gemini", "commands", "review.toml")

	first := newMigrator(t, tool.Commands, src, Options{}, tool.Gemini).Migrate()
	require.Equal(t, 2, first.Success)
	want := readFile(t, target)

	second := newMigrator(t, tool.Commands, src, Options{}, tool.Gemini).Migrate()
	assert.Equal(t, Stats{Skipped: 2}, second)

	third := newMigrator(t, tool.Commands, src, Options{AutoOverwrite: true}, tool.Gemini).Migrate()
	assert.Equal(t, Stats{Success: 2}, third)
	assert.Equal(t, want, readFile(t, target))
}

func TestCommands_SkipKeepsExistingFile(t *testing.T) {
	home := testHome(t)
	src := commandsSource(t)
	existing := filepath.Join(home, ".cursor", "commands", "review.md")
	writeFile(t, existing, "mine\n")

	stats := newMigrator(t, tool.Commands, src, Options{}, tool.Cursor).Migrate()

	assert.Equal(t, 2, stats.Success)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, "mine\n", readFile(t, existing))
}

func TestCommands_NamedTransform(t *testing.T) {
	home := testHome(t)
	src := commandsSource(t)

	reg := tool.Default()
	require.NoError(t, reg.ApplyOverrides(map[string]any{
		"cursor": map[string]any{
			"commands": map[string]any{"transform": tool.TransformOpenCodeAgent},
		},
	}))
	m, err := New(tool.Commands, Config{Source: src, Tools: []string{tool.Cursor}, Registry: reg})
	require.NoError(t, err)

	stats := m.Migrate()
	assert.Equal(t, Stats{Success: 3}, stats)

	target := filepath.Join(home, ".cursor", "commands")
	assert.Equal(t, "---\nmode: subagent\n---\n\nCommit with message $1\n", readFile(t, filepath.Join(target, "git", "commit.md")))
	assert.Equal(t, "not a command\n", readFile(t, filepath.Join(target, "notes.txt")))
}

func TestCommands_ProjectScope(t *testing.T) {
	testHome(t)
	proj := t.TempDir()
	src := commandsSource(t)

	stats := newMigrator(t, tool.Commands, src, Options{IsProject: true, ProjectDir: proj}, tool.OpenCode).Migrate()

	assert.Equal(t, 3, stats.Success)
	assert.FileExists(t, filepath.Join(proj, ".opencode", "command", "git", "commit.md"))
}

func TestCommands_TargetIsSource(t *testing.T) {
	home := testHome(t)
	src := filepath.Join(home, ".claude", "commands")
	writeFile(t, filepath.Join(src, "review.md"), "Review $ARGUMENTS\n")

	stats := newMigrator(t, tool.Commands, src, Options{AutoOverwrite: true}, tool.Claude, tool.Cursor).Migrate()

	assert.Equal(t, Stats{Success: 1, Skipped: 1}, stats)
	assert.Equal(t, "Review $ARGUMENTS\n", readFile(t, filepath.Join(src, "review.md")))
	assert.Equal(t, "Review $ARGUMENTS\n", readFile(t, filepath.Join(home, ".cursor", "commands", "review.md")))
}

func TestCommands_OneFailedFileIsIsolated(t *testing.T) {
	home := testHome(t)
	src := filepath.Join(t.TempDir(), ".claude", "commands")
	writeFile(t, filepath.Join(src, "a.md"), "a\n")
	writeFile(t, filepath.Join(src, "bad", "x.md"), "x\n")
	writeFile(t, filepath.Join(src, "z.md"), "z\n")
	// A regular file where the bad/ directory should go.
	writeFile(t, filepath.Join(home, ".cursor", "commands", "bad"), "")

	stats := newMigrator(t, tool.Commands, src, Options{}, tool.Cursor).Migrate()

	assert.Equal(t, 2, stats.Success)
	assert.Equal(t, 1, stats.Error)
	require.Len(t, stats.Errors, 1)
	assert.Equal(t, filepath.Join(src, "bad", "x.md"), stats.Errors[0].File)
	assert.FileExists(t, filepath.Join(home, ".cursor", "commands", "z.md"))
}

func TestCommands_UnreadableSubdirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	home := testHome(t)
	src := commandsSource(t)
	locked := filepath.Join(src, "locked")
	writeFile(t, filepath.Join(locked, "hidden.md"), "x")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	stats := newMigrator(t, tool.Commands, src, Options{}, tool.Gemini).Migrate()

	assert.Equal(t, 2, stats.Success)
	assert.Equal(t, 1, stats.Error)
	require.Len(t, stats.Errors, 1)
	assert.Equal(t, locked, stats.Errors[0].File)
	assert.FileExists(t, filepath.Join(home, ".gemini", "commands", "git", "commit.toml"))
}
