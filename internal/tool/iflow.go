package tool

func iflow() *Config {
	return &Config{
		Name: "IFlow CLI",
		Commands: &TypeConfig{
			Source:  ".claude/commands",
			Format:  FormatTOML,
			Target:  Paths{"~/.iflow/commands"},
			Convert: true,
		},
		Skills: &TypeConfig{
			Source: ".claude/skills",
			Target: Paths{"~/.iflow/skills"},
		},
		Rules: &TypeConfig{
			Source:        ".cursor/rules",
			Format:        FormatMarkdown,
			Target:        Paths{"~/.iflow/IFLOW.md"},
			ProjectTarget: Paths{"IFLOW.md"},
			Merge:         true,
		},
		MCP: &TypeConfig{
			Source:    ".claude.json",
			Target:    Paths{"~/.iflow/settings.json"},
			Convert:   true,
			Transform: "gemini",
		},
		Agents: &TypeConfig{
			Source:    ".claude/agents",
			Target:    Paths{"~/.iflow/agents"},
			Transform: "universal-agent",
		},
		Supported: []ConfigType{Commands, Skills, Rules, MCP, Agents},
	}
}
