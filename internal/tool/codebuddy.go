package tool

func codebuddy() *Config {
	return &Config{
		Name: "CodeBuddy",
		Commands: &TypeConfig{
			Source: ".claude/commands",
			Format: FormatMarkdown,
			Target: Paths{"~/.codebuddy/commands"},
		},
		Skills: &TypeConfig{
			Source: ".claude/skills",
			Target: Paths{"~/.codebuddy/skills"},
		},
		Rules: &TypeConfig{
			Source:        ".claude/CLAUDE.md",
			Format:        FormatMarkdown,
			Target:        Paths{"~/.codebuddy/CODEBUDDY.md"},
			ProjectTarget: Paths{"CODEBUDDY.md"},
			Merge:         true,
		},
		MCP: &TypeConfig{
			Source: ".claude.json",
			Target: Paths{"~/.codebuddy/.mcp.json"},
			Mirror: Paths{"~/.codebuddy/mcp.json"},
		},
		Settings: &TypeConfig{
			Source: ".claude/settings.json",
			Target: Paths{"~/.codebuddy/settings.json"},
			Merge:  true,
		},
		Agents: &TypeConfig{
			Source: ".claude/agents",
			Target: Paths{"~/.codebuddy/agents"},
		},
		Supported: []ConfigType{Commands, Skills, Rules, MCP, Settings, Agents},
	}
}
