package tool

func cursor() *Config {
	return &Config{
		Name: "Cursor",
		Commands: &TypeConfig{
			Source: ".claude/commands",
			Format: FormatMarkdown,
			Target: Paths{"~/.cursor/commands"},
		},
		Skills: &TypeConfig{
			Source: ".claude/skills",
			Target: Paths{"~/.cursor/skills"},
		},
		Rules: &TypeConfig{
			Source: ".claude/CLAUDE.md",
			Format: FormatMDC,
			Target: Paths{"~/.cursor/rules"},
		},
		MCP: &TypeConfig{
			Source:  ".claude.json",
			Target:  Paths{"~/.cursor/mcp.json"},
			Convert: true,
		},
		Agents: &TypeConfig{
			Source: ".claude/agents",
			Target: Paths{"~/.cursor/agents"},
		},
		Supported: []ConfigType{Commands, Skills, Rules, MCP, Agents},
	}
}
