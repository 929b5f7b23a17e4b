package tool

import (
	"path/filepath"

	"github.com/beixiyo/ai-sync/pkg/fileutil"
)

// OpenCode config file names, in lookup order.
const (
	OpenCodeJSONC = "opencode.jsonc"
	OpenCodeJSON  = "opencode.json"
)

// OpenCodeConfigPath returns the OpenCode config file in dir: the existing
// opencode.jsonc, else the existing opencode.json, else opencode.jsonc.
func OpenCodeConfigPath(dir string) string {
	return FirstExisting(Paths{
		filepath.Join(dir, OpenCodeJSONC),
		filepath.Join(dir, OpenCodeJSON),
	})
}

// FirstExisting returns the first candidate that exists on disk, or the
// first candidate when none does. It returns "" for an empty list.
func FirstExisting(candidates Paths) string {
	for _, p := range candidates {
		if fileutil.Exists(p) {
			return p
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	return candidates[0]
}

func opencode() *Config {
	return &Config{
		Name: "OpenCode",
		Commands: &TypeConfig{
			Source:        ".claude/commands",
			Format:        FormatMarkdown,
			Target:        Paths{"~/.config/opencode/command"},
			ProjectTarget: Paths{".opencode/command"},
		},
		Skills: &TypeConfig{
			Source:        ".claude/skills",
			Target:        Paths{"~/.config/opencode/skill"},
			ProjectTarget: Paths{".opencode/skill"},
		},
		Rules: &TypeConfig{
			Source:        ".claude/CLAUDE.md",
			Format:        FormatMarkdown,
			Target:        Paths{"~/.config/opencode/AGENTS.md"},
			ProjectTarget: Paths{"AGENTS.md"},
			Merge:         true,
		},
		MCP: &TypeConfig{
			Source: ".claude.json",
			Target: Paths{
				"~/.config/opencode/" + OpenCodeJSONC,
				"~/.config/opencode/" + OpenCodeJSON,
			},
			ProjectTarget: Paths{OpenCodeJSONC, OpenCodeJSON},
			Convert:       true,
			Transform:     "opencode",
		},
		Agents: &TypeConfig{
			Source:        ".claude/agents",
			Target:        Paths{"~/.config/opencode/agent"},
			ProjectTarget: Paths{".opencode/agent"},
			Transform:     "opencode-agent",
		},
		Supported: []ConfigType{Commands, Skills, Rules, MCP, Agents},
	}
}
