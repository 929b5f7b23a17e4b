package tool

func codex() *Config {
	return &Config{
		Name: "Codex",
		Commands: &TypeConfig{
			Source: ".claude/commands",
			Format: FormatMarkdown,
			Target: Paths{"~/.codex/prompts"},
		},
		Skills: &TypeConfig{
			Source: ".claude/skills",
			Target: Paths{"~/.codex/skills"},
		},
		Rules: &TypeConfig{
			Source:        ".cursor/rules",
			Format:        FormatMarkdown,
			Target:        Paths{"~/.codex/AGENTS.md"},
			ProjectTarget: Paths{"AGENTS.md"},
			Merge:         true,
		},
		MCP: &TypeConfig{
			Source:    ".claude.json",
			Target:    Paths{"~/.codex/config.toml"},
			Convert:   true,
			Transform: "codex",
		},
		Agents: &TypeConfig{
			Source:    ".claude/agents",
			Target:    Paths{"~/.codex/agents"},
			Transform: "universal-agent",
		},
		Supported: []ConfigType{Commands, Skills, Rules, MCP, Agents},
	}
}
