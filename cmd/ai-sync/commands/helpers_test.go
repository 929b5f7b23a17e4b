package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// execute runs the root command with args after resetting flag state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	migrateOpts = migrateFlags{output: "text"}
	verbosity, quiet, logFormat, logFile, configFile = 0, false, "text", "", ""
	toolsProject, toolsProjectDir, toolsOutput = false, "", "text"

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// sourceTree creates a source tree with one command and one MCP server and
// points HOME at a fresh directory.
func sourceTree(t *testing.T) (src, home string) {
	t.Helper()

	home = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("AI_SYNC_DEBUG", "")

	src = t.TempDir()
	writeFile(t, filepath.Join(src, ".claude", "commands", "hello.md"), "Say hello to $ARGUMENTS\n")
	writeFile(t, filepath.Join(src, ".claude.json"),
		`{"mcpServers":{"fs":{"command":"npx","args":["-y","server-fs"]}}}`)
	return src, home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
