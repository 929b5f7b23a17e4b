package tool

func claude() *Config {
	return &Config{
		Name: "Claude Code",
		Commands: &TypeConfig{
			Source: ".claude/commands",
			Format: FormatMarkdown,
			Target: Paths{"~/.claude/commands"},
		},
		Skills: &TypeConfig{
			Source: ".claude/skills",
			Target: Paths{"~/.claude/skills"},
		},
		Rules: &TypeConfig{
			Source:        ".cursor/rules",
			Format:        FormatMarkdown,
			Target:        Paths{"~/.claude/CLAUDE.md"},
			ProjectTarget: Paths{"CLAUDE.md"},
			Merge:         true,
		},
		MCP: &TypeConfig{
			Source:        ".claude.json",
			Target:        Paths{"~/.claude/.claude.json"},
			ProjectTarget: Paths{".mcp.json"},
		},
		Settings: &TypeConfig{
			Source: ".claude/settings.json",
			Target: Paths{"~/.claude/settings.json"},
			Merge:  true,
		},
		Agents: &TypeConfig{
			Source: ".claude/agents",
			Target: Paths{"~/.claude/agents"},
		},
		Supported: []ConfigType{Commands, Skills, Rules, MCP, Settings, Agents},
	}
}
