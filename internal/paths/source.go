package paths

import (
	"os"
	"path/filepath"
)

// Well-known locations inside a source tree.
const (
	ClaudeDir         = ".claude"
	MCPSourceFile     = ".claude.json"
	CommandsSource    = ".claude/commands"
	SkillsSource      = ".claude/skills"
	AgentsSource      = ".claude/agents"
	SettingsSource    = ".claude/settings.json"
	DefaultRuleSource = ".claude/CLAUDE.md"
)

// ruleCandidates lists rule sources in priority order.
var ruleCandidates = []string{
	".claude/CLAUDE.md",
	".claude/AGENTS.md",
	"CLAUDE.md",
	"AGENTS.md",
	".cursor/rules",
	".claude/rules",
}

// SourceDir normalizes a user supplied source directory. A path whose base
// name is ".claude" resolves to its parent, so both "~/work" and
// "~/work/.claude" select the same tree.
func SourceDir(p string) (string, error) {
	abs, err := Abs(p)
	if err != nil {
		return "", err
	}
	if filepath.Base(abs) == ClaudeDir {
		return filepath.Dir(abs), nil
	}
	return abs, nil
}

// DefaultSourceDir picks the source tree when none was given on the command
// line: defaultSourceDir if set, then the parent of defaultConfigDir when
// that is a ".claude" directory, then the home directory.
func DefaultSourceDir(defaultSourceDir, defaultConfigDir string) (string, error) {
	if defaultSourceDir != "" {
		return SourceDir(defaultSourceDir)
	}
	if defaultConfigDir != "" {
		abs, err := Abs(defaultConfigDir)
		if err != nil {
			return "", err
		}
		if filepath.Base(abs) == ClaudeDir {
			return filepath.Dir(abs), nil
		}
	}
	return ResolveHome()
}

// RuleSource returns the first existing rule source under sourceDir, in the
// order .claude/CLAUDE.md, .claude/AGENTS.md, CLAUDE.md, AGENTS.md,
// .cursor/rules, .claude/rules. When none exists .claude/CLAUDE.md is
// returned.
func RuleSource(sourceDir string) string {
	for _, rel := range ruleCandidates {
		p := filepath.Join(sourceDir, rel)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(sourceDir, DefaultRuleSource)
}
